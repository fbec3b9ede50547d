// File: services/booking/interface.go
package booking

import (
	"context"

	"bookwise/models"
)

// Service is the booking write path: every mutation validates the requested
// time against the scheduling pipeline before touching the store.
type Service interface {
	Create(ctx context.Context, input models.CreateBookingInput) (*models.Booking, error)
	Reschedule(ctx context.Context, bookingID, newDate string, newStart int) (*models.Booking, error)
	RescheduleGroup(ctx context.Context, groupID, newDate string, newStart int) ([]models.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
	ListForStaffDay(ctx context.Context, staffID, date string) ([]models.Booking, error)
}
