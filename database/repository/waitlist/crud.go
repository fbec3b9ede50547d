package waitlistRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"bookwise/models"
)

// ErrStale is returned when a status transition races with another operator.
var ErrStale = errors.New("waitlist entry status changed concurrently")

func (repo *mongoWaitlistRepo) Create(ctx context.Context, entry *models.WaitlistEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("error creating waitlist entry: %w", err)
	}
	return nil
}

func (repo *mongoWaitlistRepo) GetByID(ctx context.Context, entryID string) (*models.WaitlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.WaitlistEntry
	if err := repo.coll.FindOne(ctx, bson.M{"id": entryID}).Decode(&entry); err != nil {
		return nil, fmt.Errorf("waitlist entry not found: %w", err)
	}
	return &entry, nil
}

// UpdateStatusFrom performs a compare-and-set on the entry status so two
// operators acting on the same match cannot both convert it.
func (repo *mongoWaitlistRepo) UpdateStatusFrom(ctx context.Context, entryID, newStatus string, from []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": entryID, "status": bson.M{"$in": from}}
	update := bson.M{"$set": bson.M{"status": newStatus, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating waitlist entry %s: %w", entryID, err)
	}
	if res.MatchedCount == 0 {
		return ErrStale
	}
	return nil
}
