// File: services/booking/cancel.go
package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bookwise/models"
	"bookwise/utils"
)

// Cancel marks the booking cancelled, drops the cached availability for the
// freed day and asks the worker to scan the waitlist for it.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID string) error {
	b, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}
	if b.Status == models.BookingCancelled {
		return nil
	}

	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, models.BookingCancelled); err != nil {
		return fmt.Errorf("booking cancel failed: %w", err)
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingId", bookingID),
		zap.String("staffId", b.StaffID),
		zap.String("date", b.Date))

	if s.Availability != nil {
		s.Availability.Invalidate(ctx, b.StaffID, b.Date)
	}
	s.emitWaitlistScan(b.ProviderID, b.StaffID, b.Date)

	return nil
}
