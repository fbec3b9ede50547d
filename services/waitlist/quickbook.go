// File: services/waitlist/quickbook.go
package waitlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	bookingRepo "bookwise/database/repository/booking"
	waitlistRepo "bookwise/database/repository/waitlist"
	"bookwise/models"
	"bookwise/utils"
)

// QuickBook converts an open entry into a committed booking at the
// operator-chosen time. The time itself is trusted (matches are advisory and
// may be stale); the status compare-and-set plus the guarded insert are the
// only conflict checks, so two operators racing on one match resolve at the
// store.
func (s *DefaultWaitlistService) QuickBook(ctx context.Context, entryID string, input QuickBookInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	entry, err := s.WaitlistRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load waitlist entry: %w", err)
	}
	if !entry.Open() {
		return nil, ErrNotOpen
	}
	priorStatus := entry.Status

	provider, err := s.ProviderRepo.GetByID(ctx, entry.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}

	staffID := input.StaffID
	if staffID == "" {
		var offeringErr error
		staffID, _, offeringErr = s.resolveTarget(provider, entry)
		if offeringErr != nil {
			return nil, offeringErr
		}
	}
	offering, ok := provider.OfferingByID(entry.OfferingID)
	if !ok {
		return nil, ErrUnknownOffering
	}

	date := input.Date
	if date == "" {
		date = entry.PreferredDate
	}

	// Claim the entry first; a concurrent operator loses the CAS.
	open := []string{models.WaitlistWaiting, models.WaitlistContacted}
	if err := s.WaitlistRepo.UpdateStatusFrom(ctx, entryID, models.WaitlistBooked, open); err != nil {
		if errors.Is(err, waitlistRepo.ErrStale) {
			return nil, ErrNotOpen
		}
		return nil, fmt.Errorf("failed to claim waitlist entry: %w", err)
	}

	now := time.Now()
	travelBuffer := 0
	if offering.Mode == models.OfferingMobile {
		travelBuffer = provider.MobileTravelBuffer
	}
	b := &models.Booking{
		ID:            uuid.New().String(),
		ProviderID:    provider.ID,
		StaffID:       staffID,
		OfferingID:    offering.ID,
		CustomerName:  entry.CustomerName,
		CustomerPhone: entry.CustomerPhone,
		CustomerEmail: entry.CustomerEmail,
		Date:          date,
		Start:         input.Start,
		End:           input.Start + offering.DurationMinutes,
		TravelBuffer:  travelBuffer,
		TotalPrice:    offering.Price,
		Status:        models.BookingConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.BookingRepo.InsertGuarded(ctx, b, offering.BufferMinutes); err != nil {
		// Hand the entry back so another operator can still act on it.
		if rbErr := s.WaitlistRepo.UpdateStatusFrom(ctx, entryID, priorStatus,
			[]string{models.WaitlistBooked}); rbErr != nil {
			logger.Error("failed to release waitlist entry after booking failure",
				zap.String("entryId", entryID), zap.Error(rbErr))
		}
		if errors.Is(err, bookingRepo.ErrOverlap) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("quick-book insert failed: %w", err)
	}

	logger.Info("waitlist entry quick-booked",
		zap.String("entryId", entryID),
		zap.String("bookingId", b.ID),
		zap.String("staffId", staffID),
		zap.String("date", date))

	if s.Availability != nil {
		s.Availability.Invalidate(ctx, staffID, date)
	}
	s.emitBookingCreated(b)
	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, b); err != nil {
			logger.Warn("confirmation notification failed", zap.Error(err))
		}
	}

	return b, nil
}

func (s *DefaultWaitlistService) emitBookingCreated(b *models.Booking) {
	if s.Queue == nil {
		return
	}
	logger := utils.GetLogger()
	payload := models.BookingCreatedPayload{
		BookingID:  b.ID,
		ProviderID: b.ProviderID,
		StaffID:    b.StaffID,
		Date:       b.Date,
		Start:      b.Start,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal booking payload", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(asynq.NewTask(models.TaskBookingCreated, data)); err != nil {
		logger.Error("failed to enqueue booking event", zap.Error(err))
	}
}
