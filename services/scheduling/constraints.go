// File: services/scheduling/constraints.go
package scheduling

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	bookingRepo "bookwise/database/repository/booking"
	providerRepo "bookwise/database/repository/provider"
	scheduleRepo "bookwise/database/repository/schedule"
	"bookwise/models"
	"bookwise/utils"
)

// DefaultConstraintLoader resolves shifts, time blocks and buffered bookings
// from the store.
type DefaultConstraintLoader struct {
	ProviderRepo providerRepo.ProviderRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
}

// Load resolves the effective working window for the date (shift override
// first, weekly rule second, nothing third), the day's time blocks, and the
// committed bookings with each end extended by its offering's buffer minutes.
// With work-hours enforcement on and no window defined, StaffShifts stays
// empty: the calculator fails closed rather than assuming open availability.
func (l *DefaultConstraintLoader) Load(ctx context.Context, staffID, date string) (models.Constraints, error) {
	logger := utils.GetLogger()

	provider, err := l.ProviderRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		return models.Constraints{}, fmt.Errorf("failed to resolve staff %s: %w", staffID, err)
	}

	cons := models.Constraints{
		WorkHoursEnabled: provider.WorkHoursEnforced,
		StaffShifts:      []models.Interval{},
		TimeBlocks:       []models.Interval{},
		ExistingBookings: []models.BufferedInterval{},
	}

	shift, err := l.resolveShift(ctx, staffID, date)
	if err != nil {
		return models.Constraints{}, err
	}
	if shift != nil {
		cons.StaffShifts = append(cons.StaffShifts, *shift)
	}

	blocks, err := l.ScheduleRepo.ListTimeBlocks(ctx, staffID, date)
	if err != nil {
		return models.Constraints{}, fmt.Errorf("failed to load time blocks: %w", err)
	}
	for _, b := range blocks {
		if b.AllDay {
			cons.TimeBlocks = append(cons.TimeBlocks, models.Interval{Start: 0, End: utils.MinutesPerDay})
			continue
		}
		cons.TimeBlocks = append(cons.TimeBlocks, models.Interval{Start: b.Start, End: b.End})
	}

	bookings, err := l.BookingRepo.ListForStaffDay(ctx, staffID, date)
	if err != nil {
		return models.Constraints{}, fmt.Errorf("failed to load bookings: %w", err)
	}
	for i := range bookings {
		b := &bookings[i]
		if !b.Active() {
			continue
		}
		buffer := b.TravelBuffer
		if offering, ok := provider.OfferingByID(b.OfferingID); ok {
			buffer += offering.BufferMinutes
		} else {
			logger.Warn("booking references unknown offering; no buffer applied",
				zap.String("bookingId", b.ID), zap.String("offeringId", b.OfferingID))
		}
		cons.ExistingBookings = append(cons.ExistingBookings, models.BufferedInterval{
			Interval:  models.Interval{Start: b.Start, End: b.End + buffer},
			BookingID: b.ID,
			Buffer:    buffer,
		})
	}

	return cons, nil
}

// resolveShift applies the precedence: exact-date (or recurring) shift
// override, then the weekly work-hours rule for the weekday.
func (l *DefaultConstraintLoader) resolveShift(ctx context.Context, staffID, date string) (*models.Interval, error) {
	override, err := l.ScheduleRepo.GetShiftOverride(ctx, staffID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift override: %w", err)
	}
	if override != nil {
		return &models.Interval{Start: override.Start, End: override.End}, nil
	}

	weekday, err := utils.WeekdayOf(date)
	if err != nil {
		return nil, err
	}
	rule, err := l.ScheduleRepo.GetWorkHoursRule(ctx, staffID, weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to load work-hours rule: %w", err)
	}
	if rule == nil || rule.Closed {
		return nil, nil
	}
	return &models.Interval{Start: rule.Open, End: rule.Close}, nil
}
