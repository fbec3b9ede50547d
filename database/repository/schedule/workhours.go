package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookwise/models"
)

func (repo *mongoScheduleRepo) UpsertWorkHoursRule(ctx context.Context, rule *models.WorkHoursRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"staffId": rule.StaffID, "weekday": rule.Weekday}
	update := bson.M{"$set": rule}
	opts := options.Update().SetUpsert(true)

	if _, err := repo.workHoursColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting work-hours rule: %w", err)
	}
	return nil
}

func (repo *mongoScheduleRepo) GetWorkHoursRule(ctx context.Context, staffID string, weekday time.Weekday) (*models.WorkHoursRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rule models.WorkHoursRule
	err := repo.workHoursColl.FindOne(ctx, bson.M{"staffId": staffID, "weekday": weekday}).Decode(&rule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching work-hours rule: %w", err)
	}
	return &rule, nil
}

func (repo *mongoScheduleRepo) ListWorkHoursRules(ctx context.Context, staffID string) ([]models.WorkHoursRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.workHoursColl.Find(ctx, bson.M{"staffId": staffID})
	if err != nil {
		return nil, fmt.Errorf("error listing work-hours rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.WorkHoursRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("error decoding work-hours rules: %w", err)
	}
	return rules, nil
}

func (repo *mongoScheduleRepo) CreateShiftOverride(ctx context.Context, ov *models.ShiftOverride) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.overridesColl.InsertOne(ctx, ov); err != nil {
		return fmt.Errorf("error creating shift override: %w", err)
	}
	return nil
}

func (repo *mongoScheduleRepo) DeleteShiftOverride(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.overridesColl.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting shift override %s: %w", id, err)
	}
	return nil
}

// GetShiftOverride resolves the override effective on date: an exact-date
// match wins; otherwise a weekly-recurring override anchored on the same
// weekday at or before date applies.
func (repo *mongoScheduleRepo) GetShiftOverride(ctx context.Context, staffID, date string) (*models.ShiftOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exact models.ShiftOverride
	err := repo.overridesColl.FindOne(ctx, bson.M{"staffId": staffID, "date": date}).Decode(&exact)
	if err == nil {
		return &exact, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("error fetching shift override: %w", err)
	}

	target, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	cursor, err := repo.overridesColl.Find(ctx, bson.M{
		"staffId":     staffID,
		"recurWeekly": true,
		"date":        bson.M{"$lte": date},
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching recurring overrides: %w", err)
	}
	defer cursor.Close(ctx)

	var recurring []models.ShiftOverride
	if err := cursor.All(ctx, &recurring); err != nil {
		return nil, fmt.Errorf("error decoding recurring overrides: %w", err)
	}

	for i := range recurring {
		anchor, err := time.Parse("2006-01-02", recurring[i].Date)
		if err != nil {
			continue
		}
		if anchor.Weekday() == target.Weekday() {
			return &recurring[i], nil
		}
	}
	return nil, nil
}
