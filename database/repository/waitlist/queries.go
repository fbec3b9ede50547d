package waitlistRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookwise/models"
)

func (repo *mongoWaitlistRepo) List(ctx context.Context, providerID, status string) ([]models.WaitlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch waitlist entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.WaitlistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding waitlist entries: %w", err)
	}
	return entries, nil
}

// ListOpen returns waiting/contacted entries for the provider, optionally
// narrowed by preferred date and staff. Entries with no staff preference are
// always included so the matcher can resolve a staff member for them.
func (repo *mongoWaitlistRepo) ListOpen(ctx context.Context, providerID, date, staffID string) ([]models.WaitlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"status":     bson.M{"$in": bson.A{models.WaitlistWaiting, models.WaitlistContacted}},
	}
	if date != "" {
		filter["preferredDate"] = date
	}
	if staffID != "" {
		filter["$or"] = bson.A{
			bson.M{"staffId": staffID},
			bson.M{"staffId": bson.M{"$in": bson.A{"", nil}}},
		}
	}

	// Priority desc, then first-come-first-served within a tier.
	opts := options.Find().SetSort(bson.D{
		{Key: "priority", Value: -1},
		{Key: "createdAt", Value: 1},
	})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open waitlist entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.WaitlistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding open waitlist entries: %w", err)
	}
	return entries, nil
}
