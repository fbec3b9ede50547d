// File: services/booking/create.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	bookingRepo "bookwise/database/repository/booking"
	providerRepo "bookwise/database/repository/provider"
	"bookwise/models"
	"bookwise/services/scheduling"
	"bookwise/utils"
)

// DefaultBookingService implements Service on top of the scheduling pipeline
// and the guarded booking write path.
type DefaultBookingService struct {
	ProviderRepo providerRepo.ProviderRepository
	BookingRepo  bookingRepo.BookingRepository
	Loader       scheduling.ConstraintLoader
	Availability scheduling.AvailabilityService
	Queue        *asynq.Client
}

// Create validates the requested start against freshly loaded constraints and
// inserts the booking through the transactional overlap guard. A start that
// is no longer open returns ErrSlotUnavailable.
func (s *DefaultBookingService) Create(ctx context.Context, input models.CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	provider, err := s.ProviderRepo.GetByID(ctx, input.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}

	staff, ok := provider.StaffByID(input.StaffID)
	if !ok || !staff.Active {
		return nil, ErrUnknownStaff
	}
	offering, ok := provider.OfferingByID(input.OfferingID)
	if !ok || !offering.Active {
		return nil, ErrUnknownOffering
	}

	travelBuffer := 0
	if offering.Mode == models.OfferingMobile {
		travelBuffer = provider.MobileTravelBuffer
	}

	cons, err := s.Loader.Load(ctx, input.StaffID, input.Date)
	if err != nil {
		// Data-fetch failure reads as "no availability", not a crash.
		return nil, fmt.Errorf("failed to load constraints: %w", err)
	}

	opts := models.SlotOptions{TravelBuffer: travelBuffer}
	if !scheduling.StartFits(cons, offering.DurationMinutes, input.Start, opts) {
		return nil, ErrSlotUnavailable
	}

	now := time.Now()
	b := &models.Booking{
		ID:            uuid.New().String(),
		ProviderID:    provider.ID,
		StaffID:       input.StaffID,
		OfferingID:    offering.ID,
		GroupID:       input.GroupID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Date:          input.Date,
		Start:         input.Start,
		End:           input.Start + offering.DurationMinutes,
		TravelBuffer:  travelBuffer,
		TotalPrice:    offering.Price,
		Status:        models.BookingConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.BookingRepo.InsertGuarded(ctx, b, offering.BufferMinutes); err != nil {
		if errors.Is(err, bookingRepo.ErrOverlap) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("booking insert failed: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingId", b.ID),
		zap.String("staffId", b.StaffID),
		zap.String("date", b.Date),
		zap.Int("start", b.Start))

	if s.Availability != nil {
		s.Availability.Invalidate(ctx, b.StaffID, b.Date)
	}
	s.emitBookingCreated(b)

	return b, nil
}

// ListForStaffDay returns a staff member's bookings for the date.
func (s *DefaultBookingService) ListForStaffDay(ctx context.Context, staffID, date string) ([]models.Booking, error) {
	return s.BookingRepo.ListForStaffDay(ctx, staffID, date)
}
