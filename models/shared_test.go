// File: models/shared_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalOverlaps(t *testing.T) {
	base := Interval{Start: 600, End: 660}

	assert.True(t, base.Overlaps(Interval{Start: 630, End: 700}))
	assert.True(t, base.Overlaps(Interval{Start: 550, End: 610}))
	assert.True(t, base.Overlaps(Interval{Start: 610, End: 650}))
	assert.False(t, base.Overlaps(Interval{Start: 660, End: 700}), "touching at the end is not overlap")
	assert.False(t, base.Overlaps(Interval{Start: 540, End: 600}), "touching at the start is not overlap")
}

func TestIntervalContains(t *testing.T) {
	win := Interval{Start: 540, End: 1020}

	assert.True(t, win.Contains(Interval{Start: 540, End: 600}))
	assert.True(t, win.Contains(Interval{Start: 990, End: 1020}))
	assert.False(t, win.Contains(Interval{Start: 530, End: 600}))
	assert.False(t, win.Contains(Interval{Start: 1000, End: 1030}))
}

func TestBookingActive(t *testing.T) {
	for status, active := range map[string]bool{
		BookingPending:   true,
		BookingConfirmed: true,
		BookingCompleted: true,
		BookingCancelled: false,
		BookingNoShow:    false,
	} {
		b := Booking{Status: status}
		assert.Equal(t, active, b.Active(), status)
	}
}

func TestWaitlistEntryOpen(t *testing.T) {
	for status, open := range map[string]bool{
		WaitlistWaiting:   true,
		WaitlistContacted: true,
		WaitlistBooked:    false,
		WaitlistCancelled: false,
	} {
		e := WaitlistEntry{Status: status}
		assert.Equal(t, open, e.Open(), status)
	}
}
