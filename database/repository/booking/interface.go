// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bookwise/database"
	"bookwise/models"
)

// BookingRepository persists committed bookings. InsertGuarded and
// UpdateGroupTimes are the transactional write paths that resolve concurrent
// attempts on the same staff/interval.
type BookingRepository interface {
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListForStaffDay(ctx context.Context, staffID, date string) ([]models.Booking, error)
	ListGroup(ctx context.Context, groupID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) error

	// InsertGuarded inserts the booking inside a transaction, re-counting
	// overlapping active bookings first; a conflict aborts with ErrOverlap.
	InsertGuarded(ctx context.Context, booking *models.Booking, buffer int) error

	// UpdateTimesGuarded rewrites one booking's date/start/end with the same
	// overlap re-count, ignoring the booking itself and its group members.
	UpdateTimesGuarded(ctx context.Context, booking *models.Booking, buffer int) error

	// UpdateGroupTimes rewrites every group member's timestamps in one
	// transaction once the slot is confirmed available.
	UpdateGroupTimes(ctx context.Context, groupID, date string, starts map[string]models.Interval) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{coll: database.DB().Collection("bookings")}
}
