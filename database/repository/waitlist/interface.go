// File: database/repository/waitlist/interface.go
package waitlistRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bookwise/database"
	"bookwise/models"
)

// WaitlistRepository persists waitlist entries. Matching reads through
// ListOpen; only explicit status transitions mutate entries.
type WaitlistRepository interface {
	Create(ctx context.Context, entry *models.WaitlistEntry) error
	GetByID(ctx context.Context, entryID string) (*models.WaitlistEntry, error)
	List(ctx context.Context, providerID, status string) ([]models.WaitlistEntry, error)
	ListOpen(ctx context.Context, providerID, date, staffID string) ([]models.WaitlistEntry, error)

	// UpdateStatusFrom transitions the entry only when its current status is
	// one of the allowed prior states; a stale transition returns ErrStale.
	UpdateStatusFrom(ctx context.Context, entryID, newStatus string, from []string) error
}

type mongoWaitlistRepo struct {
	coll *mongo.Collection
}

// NewMongoWaitlistRepo constructs a new MongoDB WaitlistRepository.
func NewMongoWaitlistRepo() WaitlistRepository {
	return &mongoWaitlistRepo{coll: database.DB().Collection("waitlist")}
}
