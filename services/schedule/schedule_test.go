// File: services/schedule/schedule_test.go
package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookwise/models"
	"bookwise/services/scheduling"
)

type mockScheduleRepo struct {
	mock.Mock
}

func (m *mockScheduleRepo) UpsertWorkHoursRule(ctx context.Context, rule *models.WorkHoursRule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *mockScheduleRepo) GetWorkHoursRule(ctx context.Context, staffID string, weekday time.Weekday) (*models.WorkHoursRule, error) {
	args := m.Called(ctx, staffID, weekday)
	r, _ := args.Get(0).(*models.WorkHoursRule)
	return r, args.Error(1)
}

func (m *mockScheduleRepo) ListWorkHoursRules(ctx context.Context, staffID string) ([]models.WorkHoursRule, error) {
	args := m.Called(ctx, staffID)
	r, _ := args.Get(0).([]models.WorkHoursRule)
	return r, args.Error(1)
}

func (m *mockScheduleRepo) CreateShiftOverride(ctx context.Context, ov *models.ShiftOverride) error {
	return m.Called(ctx, ov).Error(0)
}

func (m *mockScheduleRepo) DeleteShiftOverride(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockScheduleRepo) GetShiftOverride(ctx context.Context, staffID, date string) (*models.ShiftOverride, error) {
	args := m.Called(ctx, staffID, date)
	ov, _ := args.Get(0).(*models.ShiftOverride)
	return ov, args.Error(1)
}

func (m *mockScheduleRepo) CreateTimeBlock(ctx context.Context, block *models.TimeBlock) error {
	return m.Called(ctx, block).Error(0)
}

func (m *mockScheduleRepo) DeleteTimeBlock(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockScheduleRepo) ListTimeBlocks(ctx context.Context, staffID, date string) ([]models.TimeBlock, error) {
	args := m.Called(ctx, staffID, date)
	b, _ := args.Get(0).([]models.TimeBlock)
	return b, args.Error(1)
}

type mockAvailability struct {
	mock.Mock
}

func (m *mockAvailability) DaySlots(ctx context.Context, q scheduling.AvailabilityQuery) (models.AvailabilityResponse, error) {
	args := m.Called(ctx, q)
	resp, _ := args.Get(0).(models.AvailabilityResponse)
	return resp, args.Error(1)
}

func (m *mockAvailability) Invalidate(ctx context.Context, staffID, date string) {
	m.Called(ctx, staffID, date)
}

func fixture() (*DefaultScheduleService, *mockScheduleRepo, *mockAvailability) {
	repo := new(mockScheduleRepo)
	av := new(mockAvailability)
	return &DefaultScheduleService{Repo: repo, Availability: av}, repo, av
}

func TestSetWorkHoursValidatesWindow(t *testing.T) {
	svc, repo, _ := fixture()

	_, err := svc.SetWorkHours(context.Background(), &models.WorkHoursRule{Open: 600, Close: 540})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = svc.SetWorkHours(context.Background(), &models.WorkHoursRule{Open: -10, Close: 600})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = svc.SetWorkHours(context.Background(), &models.WorkHoursRule{Open: 540, Close: 1500})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	repo.AssertNotCalled(t, "UpsertWorkHoursRule", mock.Anything, mock.Anything)
}

func TestSetWorkHoursClosedSkipsWindowCheck(t *testing.T) {
	svc, repo, av := fixture()

	repo.On("UpsertWorkHoursRule", mock.Anything, mock.AnythingOfType("*models.WorkHoursRule")).Return(nil)
	av.On("Invalidate", mock.Anything, "staff-1", "").Return()

	rule, err := svc.SetWorkHours(context.Background(), &models.WorkHoursRule{
		StaffID: "staff-1", Weekday: time.Monday, Closed: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rule.ID)
	av.AssertCalled(t, "Invalidate", mock.Anything, "staff-1", "")
}

func TestAddShiftOverrideInvalidatesDate(t *testing.T) {
	svc, repo, av := fixture()

	repo.On("CreateShiftOverride", mock.Anything, mock.AnythingOfType("*models.ShiftOverride")).Return(nil)
	av.On("Invalidate", mock.Anything, "staff-1", "2026-09-04").Return()

	ov, err := svc.AddShiftOverride(context.Background(), &models.ShiftOverride{
		StaffID: "staff-1", Date: "2026-09-04", Start: 720, End: 960,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ov.ID)
	assert.False(t, ov.CreatedAt.IsZero())
	av.AssertCalled(t, "Invalidate", mock.Anything, "staff-1", "2026-09-04")
}

func TestAddShiftOverrideRejectsBadDate(t *testing.T) {
	svc, repo, _ := fixture()

	_, err := svc.AddShiftOverride(context.Background(), &models.ShiftOverride{
		StaffID: "staff-1", Date: "04/09/2026", Start: 720, End: 960,
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "CreateShiftOverride", mock.Anything, mock.Anything)
}

func TestAddTimeBlockDefaultsToUnpaid(t *testing.T) {
	svc, repo, av := fixture()

	repo.On("CreateTimeBlock", mock.Anything, mock.AnythingOfType("*models.TimeBlock")).Return(nil)
	av.On("Invalidate", mock.Anything, "staff-1", "2026-09-04").Return()

	block, err := svc.AddTimeBlock(context.Background(), &models.TimeBlock{
		StaffID: "staff-1", Date: "2026-09-04", Start: 720, End: 780,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TimeBlockUnpaid, block.Type)
}

func TestAddTimeBlockAllDaySkipsWindowCheck(t *testing.T) {
	svc, repo, av := fixture()

	repo.On("CreateTimeBlock", mock.Anything, mock.AnythingOfType("*models.TimeBlock")).Return(nil)
	av.On("Invalidate", mock.Anything, "staff-1", "2026-09-04").Return()

	_, err := svc.AddTimeBlock(context.Background(), &models.TimeBlock{
		StaffID: "staff-1", Date: "2026-09-04", AllDay: true,
	})
	assert.NoError(t, err)
}
