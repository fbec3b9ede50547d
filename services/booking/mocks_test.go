// File: services/booking/mocks_test.go
package booking

import (
	"context"

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

type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) Load(ctx context.Context, staffID, date string) (models.Constraints, error) {
	args := m.Called(ctx, staffID, date)
	cons, _ := args.Get(0).(models.Constraints)
	return cons, args.Error(1)
}
