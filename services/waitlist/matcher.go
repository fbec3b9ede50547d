// File: services/waitlist/matcher.go
package waitlist

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	bookingRepo "bookwise/database/repository/booking"
	providerRepo "bookwise/database/repository/provider"
	waitlistRepo "bookwise/database/repository/waitlist"
	"bookwise/models"
	"bookwise/services/notify"
	"bookwise/services/scheduling"
	"bookwise/utils"
)

// DefaultMaxMatches caps a matching pass when the caller does not.
const DefaultMaxMatches = 10

// DefaultWaitlistService implements Service. Matching re-derives availability
// through the same constraint loader and slot calculator the booking path
// uses, so a match means "this entry could be booked right now" — nothing is
// reserved until quick-book commits.
type DefaultWaitlistService struct {
	WaitlistRepo waitlistRepo.WaitlistRepository
	ProviderRepo providerRepo.ProviderRepository
	BookingRepo  bookingRepo.BookingRepository
	Loader       scheduling.ConstraintLoader
	Availability scheduling.AvailabilityService
	Notifier     notify.Service
	Queue        *asynq.Client
	SlotInterval int
}

// FindMatches returns open entries, ranked priority-first then oldest-first,
// that could be fulfilled by a currently available slot. Read-only.
func (s *DefaultWaitlistService) FindMatches(ctx context.Context, providerID string, filter MatchFilter) ([]models.WaitlistMatch, error) {
	logger := utils.GetLogger()

	maxMatches := filter.MaxMatches
	if maxMatches <= 0 {
		maxMatches = DefaultMaxMatches
	}

	provider, err := s.ProviderRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}

	// Already sorted by priority desc, createdAt asc.
	entries, err := s.WaitlistRepo.ListOpen(ctx, providerID, filter.Date, filter.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load open entries: %w", err)
	}

	matches := []models.WaitlistMatch{}
	for i := range entries {
		if len(matches) >= maxMatches {
			break
		}
		entry := entries[i]

		staffID, offering, err := s.resolveTarget(provider, &entry)
		if err != nil {
			logger.Debug("skipping unmatchable entry",
				zap.String("entryId", entry.ID), zap.Error(err))
			continue
		}

		cons, err := s.Loader.Load(ctx, staffID, entry.PreferredDate)
		if err != nil {
			// Treat a fetch failure as "no availability" for this entry.
			logger.Warn("constraint load failed during matching",
				zap.String("entryId", entry.ID), zap.Error(err))
			continue
		}

		opts := models.SlotOptions{SlotInterval: s.SlotInterval}
		if offering.Mode == models.OfferingMobile {
			opts.TravelBuffer = provider.MobileTravelBuffer
		}
		slots := scheduling.CalculateSlots(cons, offering.DurationMinutes, opts)

		if slot, ok := firstSlotInWindow(slots, entry.WindowStart, entry.WindowEnd); ok {
			matches = append(matches, models.WaitlistMatch{
				Entry:   entry,
				StaffID: staffID,
				Slot:    slot,
			})
		}
	}

	return matches, nil
}

// resolveTarget picks the staff member to check for an entry: the preferred
// staff when set, otherwise any active staff performing the offering.
func (s *DefaultWaitlistService) resolveTarget(provider *models.Provider, entry *models.WaitlistEntry) (string, *models.Offering, error) {
	offering, ok := provider.OfferingByID(entry.OfferingID)
	if !ok {
		return "", nil, ErrUnknownOffering
	}

	if entry.StaffID != "" {
		if _, ok := provider.StaffByID(entry.StaffID); !ok {
			return "", nil, ErrNoStaff
		}
		return entry.StaffID, offering, nil
	}

	staff, ok := provider.StaffForOffering(entry.OfferingID)
	if !ok {
		return "", nil, ErrNoStaff
	}
	return staff.ID, offering, nil
}

// firstSlotInWindow returns the earliest available slot whose start falls in
// the entry's preferred window, or anywhere in the day when no window is set.
func firstSlotInWindow(slots []models.Slot, windowStart, windowEnd *int) (models.Slot, bool) {
	for _, slot := range slots {
		if !slot.Available {
			continue
		}
		if windowStart != nil && slot.Start < *windowStart {
			continue
		}
		if windowEnd != nil && slot.Start > *windowEnd {
			continue
		}
		return slot, true
	}
	return models.Slot{}, false
}
