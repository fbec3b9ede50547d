// File: services/scheduling/mocks_test.go
package scheduling

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"bookwise/models"
)

type mockProviderRepo struct {
	mock.Mock
}

func (m *mockProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	return m.Called(ctx, provider).Error(0)
}

func (m *mockProviderRepo) GetByID(ctx context.Context, providerID string) (*models.Provider, error) {
	args := m.Called(ctx, providerID)
	p, _ := args.Get(0).(*models.Provider)
	return p, args.Error(1)
}

func (m *mockProviderRepo) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
	args := m.Called(ctx, email)
	p, _ := args.Get(0).(*models.Provider)
	return p, args.Error(1)
}

func (m *mockProviderRepo) GetByStaffID(ctx context.Context, staffID string) (*models.Provider, error) {
	args := m.Called(ctx, staffID)
	p, _ := args.Get(0).(*models.Provider)
	return p, args.Error(1)
}

func (m *mockProviderRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Provider, error) {
	args := m.Called(ctx, tokenHash)
	p, _ := args.Get(0).(*models.Provider)
	return p, args.Error(1)
}

func (m *mockProviderRepo) Update(ctx context.Context, provider *models.Provider) error {
	return m.Called(ctx, provider).Error(0)
}

func (m *mockProviderRepo) SetTokenHash(ctx context.Context, providerID, tokenHash string) error {
	return m.Called(ctx, providerID, tokenHash).Error(0)
}

func (m *mockProviderRepo) UpsertOffering(ctx context.Context, providerID string, offering models.Offering) error {
	return m.Called(ctx, providerID, offering).Error(0)
}

func (m *mockProviderRepo) UpsertStaff(ctx context.Context, providerID string, staff models.Staff) error {
	return m.Called(ctx, providerID, staff).Error(0)
}

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

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) ListForStaffDay(ctx context.Context, staffID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, staffID, date)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) ListGroup(ctx context.Context, groupID string) ([]models.Booking, error) {
	args := m.Called(ctx, groupID)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID, status string) error {
	return m.Called(ctx, bookingID, status).Error(0)
}

func (m *mockBookingRepo) InsertGuarded(ctx context.Context, booking *models.Booking, buffer int) error {
	return m.Called(ctx, booking, buffer).Error(0)
}

func (m *mockBookingRepo) UpdateTimesGuarded(ctx context.Context, booking *models.Booking, buffer int) error {
	return m.Called(ctx, booking, buffer).Error(0)
}

func (m *mockBookingRepo) UpdateGroupTimes(ctx context.Context, groupID, date string, starts map[string]models.Interval) error {
	return m.Called(ctx, groupID, date, starts).Error(0)
}
