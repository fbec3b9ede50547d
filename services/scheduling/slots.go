// File: services/scheduling/slots.go
package scheduling

import (
	"sort"

	"bookwise/models"
	"bookwise/utils"
)

// DefaultSlotInterval is the fallback enumeration granularity in minutes.
const DefaultSlotInterval = 15

// CalculateSlots enumerates candidate start times for the day described by
// cons. The result is every grid start within the open windows, ascending,
// flagged available when the occupied interval [start, start+duration+travel)
// clears every time block and buffered booking. Closed or fully-booked days
// yield an empty (never nil on the happy path) slice, not an error.
func CalculateSlots(cons models.Constraints, durationMinutes int, opts models.SlotOptions) []models.Slot {
	if opts.SlotInterval <= 0 {
		opts.SlotInterval = DefaultSlotInterval
	}
	if opts.TravelBuffer < 0 {
		opts.TravelBuffer = 0
	}

	slots := []models.Slot{}
	if durationMinutes <= 0 {
		return slots
	}
	// Work-hours enforcement with no shift defined: fail closed.
	if cons.WorkHoursEnabled && len(cons.StaffShifts) == 0 {
		return slots
	}

	windows := make([]models.Interval, len(cons.StaffShifts))
	copy(windows, cons.StaffShifts)
	sort.Slice(windows, func(i, j int) bool { return windows[i].Start < windows[j].Start })

	for _, win := range windows {
		if win.Length() <= 0 {
			continue
		}
		for start := win.Start; start+durationMinutes <= win.End; start += opts.SlotInterval {
			occupied := models.Interval{Start: start, End: start + durationMinutes + opts.TravelBuffer}

			available := clearsConstraints(occupied, cons)
			if available && opts.AvoidGaps && strandsGap(occupied, win, cons, opts.SlotInterval) {
				available = false
			}

			slots = append(slots, models.Slot{
				Start:     start,
				Time:      utils.FormatMinutes(start),
				Available: available,
			})
		}
	}

	return slots
}

// StartFits reports whether a single requested start time is still open:
// the service interval lies inside an open window and the occupied interval
// clears every block and buffered booking. Booking creation and reschedule
// validate against this before writing.
func StartFits(cons models.Constraints, durationMinutes, start int, opts models.SlotOptions) bool {
	if durationMinutes <= 0 {
		return false
	}
	if cons.WorkHoursEnabled && len(cons.StaffShifts) == 0 {
		return false
	}

	service := models.Interval{Start: start, End: start + durationMinutes}
	inWindow := false
	for _, win := range cons.StaffShifts {
		if win.Contains(service) {
			inWindow = true
			break
		}
	}
	if !inWindow {
		return false
	}

	occupied := models.Interval{Start: start, End: start + durationMinutes + opts.TravelBuffer}
	return clearsConstraints(occupied, cons)
}

func clearsConstraints(occupied models.Interval, cons models.Constraints) bool {
	for _, block := range cons.TimeBlocks {
		if occupied.Overlaps(block) {
			return false
		}
	}
	for _, booked := range cons.ExistingBookings {
		if occupied.Overlaps(booked.Interval) {
			return false
		}
	}
	return true
}

// strandsGap reports whether booking the occupied interval would leave a dead
// gap, shorter than one slot interval, before the next commitment in the
// window. Suppressing those starts keeps the staff member's day defragmented.
// The shift end itself is not a commitment: residue against closing time
// never suppresses the day's last viable start.
func strandsGap(occupied, win models.Interval, cons models.Constraints, slotInterval int) bool {
	next := -1
	for _, block := range cons.TimeBlocks {
		if block.Start >= occupied.End && block.Start < win.End && (next < 0 || block.Start < next) {
			next = block.Start
		}
	}
	for _, booked := range cons.ExistingBookings {
		if booked.Start >= occupied.End && booked.Start < win.End && (next < 0 || booked.Start < next) {
			next = booked.Start
		}
	}
	if next < 0 {
		return false
	}

	gap := next - occupied.End
	return gap > 0 && gap < slotInterval
}
