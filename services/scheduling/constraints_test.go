// File: services/scheduling/constraints_test.go
package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookwise/models"
)

const (
	testStaffID = "staff-1"
	testDate    = "2026-09-04" // a Friday
)

func loaderFixture() (*DefaultConstraintLoader, *mockProviderRepo, *mockScheduleRepo, *mockBookingRepo) {
	provRepo := new(mockProviderRepo)
	schedRepo := new(mockScheduleRepo)
	bookRepo := new(mockBookingRepo)
	loader := &DefaultConstraintLoader{
		ProviderRepo: provRepo,
		ScheduleRepo: schedRepo,
		BookingRepo:  bookRepo,
	}
	return loader, provRepo, schedRepo, bookRepo
}

func fixtureProvider(enforced bool) *models.Provider {
	return &models.Provider{
		ID:                "prov-1",
		WorkHoursEnforced: enforced,
		Offerings: []models.Offering{
			{ID: "off-cut", DurationMinutes: 30, BufferMinutes: 15, Active: true},
		},
		Staff: []models.Staff{
			{ID: testStaffID, OfferingIDs: []string{"off-cut"}, Active: true},
		},
	}
}

func TestLoadWeeklyRule(t *testing.T) {
	loader, provRepo, schedRepo, bookRepo := loaderFixture()

	provRepo.On("GetByStaffID", mock.Anything, testStaffID).Return(fixtureProvider(true), nil)
	schedRepo.On("GetShiftOverride", mock.Anything, testStaffID, testDate).Return(nil, nil)
	schedRepo.On("GetWorkHoursRule", mock.Anything, testStaffID, time.Friday).
		Return(&models.WorkHoursRule{Weekday: time.Friday, Open: 540, Close: 1020}, nil)
	schedRepo.On("ListTimeBlocks", mock.Anything, testStaffID, testDate).Return([]models.TimeBlock{}, nil)
	bookRepo.On("ListForStaffDay", mock.Anything, testStaffID, testDate).Return([]models.Booking{}, nil)

	cons, err := loader.Load(context.Background(), testStaffID, testDate)
	require.NoError(t, err)
	assert.True(t, cons.WorkHoursEnabled)
	assert.Equal(t, []models.Interval{{Start: 540, End: 1020}}, cons.StaffShifts)
}

func TestLoadOverrideBeatsWeeklyRule(t *testing.T) {
	loader, provRepo, schedRepo, bookRepo := loaderFixture()

	provRepo.On("GetByStaffID", mock.Anything, testStaffID).Return(fixtureProvider(true), nil)
	schedRepo.On("GetShiftOverride", mock.Anything, testStaffID, testDate).
		Return(&models.ShiftOverride{Date: testDate, Start: 720, End: 960}, nil)
	schedRepo.On("ListTimeBlocks", mock.Anything, testStaffID, testDate).Return([]models.TimeBlock{}, nil)
	bookRepo.On("ListForStaffDay", mock.Anything, testStaffID, testDate).Return([]models.Booking{}, nil)

	cons, err := loader.Load(context.Background(), testStaffID, testDate)
	require.NoError(t, err)
	assert.Equal(t, []models.Interval{{Start: 720, End: 960}}, cons.StaffShifts)
	schedRepo.AssertNotCalled(t, "GetWorkHoursRule", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoadClosedRuleFailsClosed(t *testing.T) {
	loader, provRepo, schedRepo, bookRepo := loaderFixture()

	provRepo.On("GetByStaffID", mock.Anything, testStaffID).Return(fixtureProvider(true), nil)
	schedRepo.On("GetShiftOverride", mock.Anything, testStaffID, testDate).Return(nil, nil)
	schedRepo.On("GetWorkHoursRule", mock.Anything, testStaffID, time.Friday).
		Return(&models.WorkHoursRule{Weekday: time.Friday, Closed: true}, nil)
	schedRepo.On("ListTimeBlocks", mock.Anything, testStaffID, testDate).Return([]models.TimeBlock{}, nil)
	bookRepo.On("ListForStaffDay", mock.Anything, testStaffID, testDate).Return([]models.Booking{}, nil)

	cons, err := loader.Load(context.Background(), testStaffID, testDate)
	require.NoError(t, err)
	assert.Empty(t, cons.StaffShifts)
	assert.Empty(t, CalculateSlots(cons, 30, models.SlotOptions{}), "no shift resolves to zero slots")
}

func TestLoadExtendsBookingsByBuffer(t *testing.T) {
	loader, provRepo, schedRepo, bookRepo := loaderFixture()

	provRepo.On("GetByStaffID", mock.Anything, testStaffID).Return(fixtureProvider(true), nil)
	schedRepo.On("GetShiftOverride", mock.Anything, testStaffID, testDate).Return(nil, nil)
	schedRepo.On("GetWorkHoursRule", mock.Anything, testStaffID, time.Friday).
		Return(&models.WorkHoursRule{Weekday: time.Friday, Open: 540, Close: 1020}, nil)
	schedRepo.On("ListTimeBlocks", mock.Anything, testStaffID, testDate).Return([]models.TimeBlock{}, nil)
	bookRepo.On("ListForStaffDay", mock.Anything, testStaffID, testDate).Return([]models.Booking{
		{ID: "b-1", OfferingID: "off-cut", Start: 600, End: 660, Status: models.BookingConfirmed},
		{ID: "b-2", OfferingID: "off-cut", TravelBuffer: 20, Start: 720, End: 780, Status: models.BookingConfirmed},
		{ID: "b-3", OfferingID: "off-cut", Start: 840, End: 900, Status: models.BookingCancelled},
	}, nil)

	cons, err := loader.Load(context.Background(), testStaffID, testDate)
	require.NoError(t, err)
	require.Len(t, cons.ExistingBookings, 2, "cancelled bookings never constrain")
	assert.Equal(t, models.Interval{Start: 600, End: 675}, cons.ExistingBookings[0].Interval,
		"offering buffer extends the end")
	assert.Equal(t, models.Interval{Start: 720, End: 815}, cons.ExistingBookings[1].Interval,
		"travel buffer stacks on the offering buffer")
}

func TestLoadAllDayBlock(t *testing.T) {
	loader, provRepo, schedRepo, bookRepo := loaderFixture()

	provRepo.On("GetByStaffID", mock.Anything, testStaffID).Return(fixtureProvider(true), nil)
	schedRepo.On("GetShiftOverride", mock.Anything, testStaffID, testDate).Return(nil, nil)
	schedRepo.On("GetWorkHoursRule", mock.Anything, testStaffID, time.Friday).
		Return(&models.WorkHoursRule{Weekday: time.Friday, Open: 540, Close: 1020}, nil)
	schedRepo.On("ListTimeBlocks", mock.Anything, testStaffID, testDate).Return([]models.TimeBlock{
		{AllDay: true, Type: models.TimeBlockUnpaid},
	}, nil)
	bookRepo.On("ListForStaffDay", mock.Anything, testStaffID, testDate).Return([]models.Booking{}, nil)

	cons, err := loader.Load(context.Background(), testStaffID, testDate)
	require.NoError(t, err)
	assert.Equal(t, []models.Interval{{Start: 0, End: 1440}}, cons.TimeBlocks)
	assert.Empty(t, availableStarts(CalculateSlots(cons, 30, models.SlotOptions{})))
}

func TestLoadStoreFailureSurfaces(t *testing.T) {
	loader, provRepo, schedRepo, bookRepo := loaderFixture()

	provRepo.On("GetByStaffID", mock.Anything, testStaffID).Return(fixtureProvider(true), nil)
	schedRepo.On("GetShiftOverride", mock.Anything, testStaffID, testDate).Return(nil, nil)
	schedRepo.On("GetWorkHoursRule", mock.Anything, testStaffID, time.Friday).
		Return(nil, errors.New("connection reset"))
	_ = bookRepo

	_, err := loader.Load(context.Background(), testStaffID, testDate)
	assert.Error(t, err, "a fetch failure is an error, never silent full availability")
}
