package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"bookwise/models"
)

func (repo *mongoScheduleRepo) CreateTimeBlock(ctx context.Context, block *models.TimeBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.blocksColl.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("error creating time block: %w", err)
	}
	return nil
}

func (repo *mongoScheduleRepo) DeleteTimeBlock(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.blocksColl.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting time block %s: %w", id, err)
	}
	return nil
}

func (repo *mongoScheduleRepo) ListTimeBlocks(ctx context.Context, staffID, date string) ([]models.TimeBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.blocksColl.Find(ctx, bson.M{"staffId": staffID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("error listing time blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.TimeBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding time blocks: %w", err)
	}
	return blocks, nil
}
