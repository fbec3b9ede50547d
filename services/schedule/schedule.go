// File: services/schedule/schedule.go
package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	scheduleRepo "bookwise/database/repository/schedule"
	"bookwise/models"
	"bookwise/services/scheduling"
	"bookwise/utils"
)

var (
	// ErrInvalidWindow is returned for intervals that do not fit in a day.
	ErrInvalidWindow = errors.New("time window must satisfy 0 <= start < end <= 1440")
)

// Service manages the scheduler's configuration inputs: weekly work-hour
// rules, date-specific shift overrides and time blocks. Every mutation
// invalidates the affected staff member's cached availability.
type Service interface {
	SetWorkHours(ctx context.Context, rule *models.WorkHoursRule) (*models.WorkHoursRule, error)
	ListWorkHours(ctx context.Context, staffID string) ([]models.WorkHoursRule, error)

	AddShiftOverride(ctx context.Context, ov *models.ShiftOverride) (*models.ShiftOverride, error)
	RemoveShiftOverride(ctx context.Context, staffID, id string) error

	AddTimeBlock(ctx context.Context, block *models.TimeBlock) (*models.TimeBlock, error)
	RemoveTimeBlock(ctx context.Context, staffID, id string) error
	ListTimeBlocks(ctx context.Context, staffID, date string) ([]models.TimeBlock, error)
}

// DefaultScheduleService implements Service on the schedule repository.
type DefaultScheduleService struct {
	Repo         scheduleRepo.ScheduleRepository
	Availability scheduling.AvailabilityService
}

func validWindow(start, end int) bool {
	return start >= 0 && start < end && end <= utils.MinutesPerDay
}

// SetWorkHours upserts the weekly rule for one staff member and weekday.
func (s *DefaultScheduleService) SetWorkHours(ctx context.Context, rule *models.WorkHoursRule) (*models.WorkHoursRule, error) {
	if !rule.Closed && !validWindow(rule.Open, rule.Close) {
		return nil, ErrInvalidWindow
	}
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	if err := s.Repo.UpsertWorkHoursRule(ctx, rule); err != nil {
		return nil, err
	}
	// Weekly rules affect every future date; drop whatever is cached.
	s.Availability.Invalidate(ctx, rule.StaffID, "")
	return rule, nil
}

// ListWorkHours returns the staff member's weekly template.
func (s *DefaultScheduleService) ListWorkHours(ctx context.Context, staffID string) ([]models.WorkHoursRule, error) {
	return s.Repo.ListWorkHoursRules(ctx, staffID)
}

// AddShiftOverride records a date-specific shift replacing the weekly rule.
func (s *DefaultScheduleService) AddShiftOverride(ctx context.Context, ov *models.ShiftOverride) (*models.ShiftOverride, error) {
	if !validWindow(ov.Start, ov.End) {
		return nil, ErrInvalidWindow
	}
	if _, err := utils.ParseDate(ov.Date); err != nil {
		return nil, err
	}
	ov.ID = uuid.New().String()
	ov.CreatedAt = time.Now()
	if err := s.Repo.CreateShiftOverride(ctx, ov); err != nil {
		return nil, err
	}
	s.Availability.Invalidate(ctx, ov.StaffID, ov.Date)
	if ov.RecurWeekly {
		s.Availability.Invalidate(ctx, ov.StaffID, "")
	}
	return ov, nil
}

// RemoveShiftOverride deletes the override and clears cached availability.
func (s *DefaultScheduleService) RemoveShiftOverride(ctx context.Context, staffID, id string) error {
	if err := s.Repo.DeleteShiftOverride(ctx, id); err != nil {
		return err
	}
	s.Availability.Invalidate(ctx, staffID, "")
	return nil
}

// AddTimeBlock records an unavailable interval on one date.
func (s *DefaultScheduleService) AddTimeBlock(ctx context.Context, block *models.TimeBlock) (*models.TimeBlock, error) {
	if !block.AllDay && !validWindow(block.Start, block.End) {
		return nil, ErrInvalidWindow
	}
	if _, err := utils.ParseDate(block.Date); err != nil {
		return nil, err
	}
	if block.Type == "" {
		block.Type = models.TimeBlockUnpaid
	}
	block.ID = uuid.New().String()
	block.CreatedAt = time.Now()
	if err := s.Repo.CreateTimeBlock(ctx, block); err != nil {
		return nil, err
	}
	s.Availability.Invalidate(ctx, block.StaffID, block.Date)
	return block, nil
}

// RemoveTimeBlock deletes the block and clears cached availability.
func (s *DefaultScheduleService) RemoveTimeBlock(ctx context.Context, staffID, id string) error {
	if err := s.Repo.DeleteTimeBlock(ctx, id); err != nil {
		return err
	}
	s.Availability.Invalidate(ctx, staffID, "")
	return nil
}

// ListTimeBlocks returns the staff member's blocks, optionally for one date.
func (s *DefaultScheduleService) ListTimeBlocks(ctx context.Context, staffID, date string) ([]models.TimeBlock, error) {
	return s.Repo.ListTimeBlocks(ctx, staffID, date)
}
