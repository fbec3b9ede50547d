// File: services/booking/reschedule.go
package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	bookingRepo "bookwise/database/repository/booking"
	"bookwise/models"
	"bookwise/services/scheduling"
	"bookwise/utils"
)

// withoutBookings drops the given booking ids from the constraint set so a
// move within the same day does not conflict with itself.
func withoutBookings(cons models.Constraints, exclude map[string]bool) models.Constraints {
	kept := make([]models.BufferedInterval, 0, len(cons.ExistingBookings))
	for _, b := range cons.ExistingBookings {
		if !exclude[b.BookingID] {
			kept = append(kept, b)
		}
	}
	cons.ExistingBookings = kept
	return cons
}

// Reschedule moves one booking to a new date/start after re-validating the
// slot, then rewrites its times through the transactional overlap guard.
func (s *DefaultBookingService) Reschedule(ctx context.Context, bookingID, newDate string, newStart int) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	provider, err := s.ProviderRepo.GetByID(ctx, b.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	offering, ok := provider.OfferingByID(b.OfferingID)
	if !ok {
		return nil, ErrUnknownOffering
	}

	cons, err := s.Loader.Load(ctx, b.StaffID, newDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load constraints: %w", err)
	}
	cons = withoutBookings(cons, map[string]bool{b.ID: true})

	opts := models.SlotOptions{TravelBuffer: b.TravelBuffer}
	if !scheduling.StartFits(cons, offering.DurationMinutes, newStart, opts) {
		return nil, ErrSlotUnavailable
	}

	oldDate := b.Date
	b.Date = newDate
	b.Start = newStart
	b.End = newStart + offering.DurationMinutes

	if err := s.BookingRepo.UpdateTimesGuarded(ctx, b, offering.BufferMinutes); err != nil {
		if errors.Is(err, bookingRepo.ErrOverlap) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("booking reschedule failed: %w", err)
	}

	utils.GetLogger().Info("booking rescheduled",
		zap.String("bookingId", b.ID),
		zap.String("from", oldDate),
		zap.String("to", newDate),
		zap.Int("start", newStart))

	if s.Availability != nil {
		s.Availability.Invalidate(ctx, b.StaffID, oldDate)
		s.Availability.Invalidate(ctx, b.StaffID, newDate)
	}
	// The vacated interval may satisfy someone on the waitlist.
	s.emitWaitlistScan(b.ProviderID, b.StaffID, oldDate)

	return b, nil
}

// RescheduleGroup moves every member of a group booking. Durations and
// buffers are summed across all members, one constraint check runs against
// the first booking's staff, and the members' timestamps are rewritten
// atomically once the combined slot is confirmed available.
func (s *DefaultBookingService) RescheduleGroup(ctx context.Context, groupID, newDate string, newStart int) ([]models.Booking, error) {
	members, err := s.BookingRepo.ListGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	if len(members) == 0 {
		return nil, ErrEmptyGroup
	}

	first := members[0]
	provider, err := s.ProviderRepo.GetByID(ctx, first.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}

	// Sum service durations plus recovery buffers across the whole group.
	exclude := make(map[string]bool, len(members))
	total := 0
	durations := make([]int, len(members))
	buffers := make([]int, len(members))
	for i := range members {
		exclude[members[i].ID] = true
		offering, ok := provider.OfferingByID(members[i].OfferingID)
		if !ok {
			return nil, ErrUnknownOffering
		}
		durations[i] = offering.DurationMinutes
		buffers[i] = offering.BufferMinutes
		total += offering.DurationMinutes + offering.BufferMinutes
	}

	cons, err := s.Loader.Load(ctx, first.StaffID, newDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load constraints: %w", err)
	}
	cons = withoutBookings(cons, exclude)

	if !scheduling.StartFits(cons, total, newStart, models.SlotOptions{}) {
		return nil, ErrSlotUnavailable
	}

	// Stack the members back to back, each separated by its own buffer.
	// Lengths come from the catalogue, not the stored intervals, so a
	// retuned offering duration takes effect on the rewrite.
	starts := make(map[string]models.Interval, len(members))
	cursor := newStart
	oldDate := first.Date
	for i := range members {
		starts[members[i].ID] = models.Interval{Start: cursor, End: cursor + durations[i]}
		cursor += durations[i] + buffers[i]
	}

	if err := s.BookingRepo.UpdateGroupTimes(ctx, groupID, newDate, starts); err != nil {
		return nil, fmt.Errorf("group reschedule failed: %w", err)
	}

	utils.GetLogger().Info("group rescheduled",
		zap.String("groupId", groupID),
		zap.String("to", newDate),
		zap.Int("members", len(members)))

	if s.Availability != nil {
		s.Availability.Invalidate(ctx, first.StaffID, oldDate)
		s.Availability.Invalidate(ctx, first.StaffID, newDate)
	}
	s.emitWaitlistScan(first.ProviderID, first.StaffID, oldDate)

	return s.BookingRepo.ListGroup(ctx, groupID)
}
