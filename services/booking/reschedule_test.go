// File: services/booking/reschedule_test.go
package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookwise/models"
)

func existingBooking() *models.Booking {
	return &models.Booking{
		ID:         "b-1",
		ProviderID: testProviderID,
		StaffID:    testStaffID,
		OfferingID: "off-cut",
		Date:       testDate,
		Start:      600,
		End:        630,
		Status:     models.BookingConfirmed,
		CreatedAt:  time.Now(),
	}
}

func TestRescheduleIgnoresOwnInterval(t *testing.T) {
	svc, provRepo, bookRepo, loader := serviceFixture()

	// The only commitment on the day is the booking being moved; shifting it
	// by 15 minutes must not collide with its old interval.
	day := openDay()
	day.ExistingBookings = append(day.ExistingBookings, models.BufferedInterval{
		Interval:  models.Interval{Start: 600, End: 675},
		BookingID: "b-1",
		Buffer:    15,
	})

	bookRepo.On("GetByID", mock.Anything, "b-1").Return(existingBooking(), nil)
	provRepo.On("GetByID", mock.Anything, testProviderID).Return(testProvider(), nil)
	loader.On("Load", mock.Anything, testStaffID, testDate).Return(day, nil)
	bookRepo.On("UpdateTimesGuarded", mock.Anything, mock.AnythingOfType("*models.Booking"), 15).Return(nil)

	b, err := svc.Reschedule(context.Background(), "b-1", testDate, 615)
	require.NoError(t, err)
	assert.Equal(t, 615, b.Start)
	assert.Equal(t, 645, b.End)
}

func TestRescheduleRejectsForeignConflict(t *testing.T) {
	svc, provRepo, bookRepo, loader := serviceFixture()

	day := openDay()
	day.ExistingBookings = append(day.ExistingBookings, models.BufferedInterval{
		Interval:  models.Interval{Start: 660, End: 735},
		BookingID: "b-other",
	})

	bookRepo.On("GetByID", mock.Anything, "b-1").Return(existingBooking(), nil)
	provRepo.On("GetByID", mock.Anything, testProviderID).Return(testProvider(), nil)
	loader.On("Load", mock.Anything, testStaffID, testDate).Return(day, nil)

	_, err := svc.Reschedule(context.Background(), "b-1", testDate, 700)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	bookRepo.AssertNotCalled(t, "UpdateTimesGuarded", mock.Anything, mock.Anything, mock.Anything)
}

func groupMembers() []models.Booking {
	return []models.Booking{
		{ID: "g-1", ProviderID: testProviderID, StaffID: testStaffID, OfferingID: "off-cut",
			GroupID: "grp", Date: testDate, Start: 600, End: 630, Status: models.BookingConfirmed},
		{ID: "g-2", ProviderID: testProviderID, StaffID: testStaffID, OfferingID: "off-mobile",
			GroupID: "grp", Date: testDate, Start: 645, End: 705, Status: models.BookingConfirmed},
	}
}

func TestRescheduleGroupStacksMembers(t *testing.T) {
	svc, provRepo, bookRepo, loader := serviceFixture()

	bookRepo.On("ListGroup", mock.Anything, "grp").Return(groupMembers(), nil)
	provRepo.On("GetByID", mock.Anything, testProviderID).Return(testProvider(), nil)
	loader.On("Load", mock.Anything, testStaffID, "2026-09-05").Return(openDay(), nil)

	var captured map[string]models.Interval
	bookRepo.On("UpdateGroupTimes", mock.Anything, "grp", "2026-09-05",
		mock.AnythingOfType("map[string]models.Interval")).
		Run(func(args mock.Arguments) {
			captured = args.Get(3).(map[string]models.Interval)
		}).Return(nil)

	_, err := svc.RescheduleGroup(context.Background(), "grp", "2026-09-05", 540)
	require.NoError(t, err)
	require.Len(t, captured, 2)
	// 30-minute cut plus its 15-minute buffer, then the 60-minute visit.
	assert.Equal(t, models.Interval{Start: 540, End: 570}, captured["g-1"])
	assert.Equal(t, models.Interval{Start: 585, End: 645}, captured["g-2"])
}

func TestRescheduleGroupUsesCurrentOfferingDurations(t *testing.T) {
	svc, provRepo, bookRepo, loader := serviceFixture()

	// The first member was written when the cut was 25 minutes; the
	// catalogue now says 30. The rewrite follows the catalogue.
	members := groupMembers()
	members[0].End = members[0].Start + 25

	bookRepo.On("ListGroup", mock.Anything, "grp").Return(members, nil)
	provRepo.On("GetByID", mock.Anything, testProviderID).Return(testProvider(), nil)
	loader.On("Load", mock.Anything, testStaffID, "2026-09-05").Return(openDay(), nil)

	var captured map[string]models.Interval
	bookRepo.On("UpdateGroupTimes", mock.Anything, "grp", "2026-09-05",
		mock.AnythingOfType("map[string]models.Interval")).
		Run(func(args mock.Arguments) {
			captured = args.Get(3).(map[string]models.Interval)
		}).Return(nil)

	_, err := svc.RescheduleGroup(context.Background(), "grp", "2026-09-05", 540)
	require.NoError(t, err)
	assert.Equal(t, models.Interval{Start: 540, End: 570}, captured["g-1"])
	assert.Equal(t, models.Interval{Start: 585, End: 645}, captured["g-2"])
}

func TestRescheduleGroupNeedsCombinedSlot(t *testing.T) {
	svc, provRepo, bookRepo, loader := serviceFixture()

	// Combined length: 30+15 + 60+10 = 115 minutes. A window shorter than
	// that rejects the move even though each member alone would fit.
	short := models.Constraints{
		WorkHoursEnabled: true,
		StaffShifts:      []models.Interval{{Start: 540, End: 630}},
	}

	bookRepo.On("ListGroup", mock.Anything, "grp").Return(groupMembers(), nil)
	provRepo.On("GetByID", mock.Anything, testProviderID).Return(testProvider(), nil)
	loader.On("Load", mock.Anything, testStaffID, "2026-09-05").Return(short, nil)

	_, err := svc.RescheduleGroup(context.Background(), "grp", "2026-09-05", 540)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	bookRepo.AssertNotCalled(t, "UpdateGroupTimes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRescheduleGroupEmpty(t *testing.T) {
	svc, _, bookRepo, _ := serviceFixture()
	bookRepo.On("ListGroup", mock.Anything, "grp").Return([]models.Booking{}, nil)

	_, err := svc.RescheduleGroup(context.Background(), "grp", testDate, 540)
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestCancelIdempotent(t *testing.T) {
	svc, _, bookRepo, _ := serviceFixture()

	cancelled := existingBooking()
	cancelled.Status = models.BookingCancelled
	bookRepo.On("GetByID", mock.Anything, "b-1").Return(cancelled, nil)

	require.NoError(t, svc.Cancel(context.Background(), "b-1"))
	bookRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelMarksCancelled(t *testing.T) {
	svc, _, bookRepo, _ := serviceFixture()

	bookRepo.On("GetByID", mock.Anything, "b-1").Return(existingBooking(), nil)
	bookRepo.On("UpdateStatus", mock.Anything, "b-1", models.BookingCancelled).Return(nil)

	require.NoError(t, svc.Cancel(context.Background(), "b-1"))
	bookRepo.AssertCalled(t, "UpdateStatus", mock.Anything, "b-1", models.BookingCancelled)
}
