// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"bookwise/database"
	"bookwise/models"
)

// ScheduleRepository stores the scheduler's configuration inputs: weekly
// work-hour rules, date-specific shift overrides and time blocks.
type ScheduleRepository interface {
	UpsertWorkHoursRule(ctx context.Context, rule *models.WorkHoursRule) error
	GetWorkHoursRule(ctx context.Context, staffID string, weekday time.Weekday) (*models.WorkHoursRule, error)
	ListWorkHoursRules(ctx context.Context, staffID string) ([]models.WorkHoursRule, error)

	CreateShiftOverride(ctx context.Context, ov *models.ShiftOverride) error
	DeleteShiftOverride(ctx context.Context, id string) error
	GetShiftOverride(ctx context.Context, staffID, date string) (*models.ShiftOverride, error)

	CreateTimeBlock(ctx context.Context, block *models.TimeBlock) error
	DeleteTimeBlock(ctx context.Context, id string) error
	ListTimeBlocks(ctx context.Context, staffID, date string) ([]models.TimeBlock, error)
}

type mongoScheduleRepo struct {
	workHoursColl *mongo.Collection
	overridesColl *mongo.Collection
	blocksColl    *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	return &mongoScheduleRepo{
		workHoursColl: db.Collection("work_hours"),
		overridesColl: db.Collection("shift_overrides"),
		blocksColl:    db.Collection("time_blocks"),
	}
}
