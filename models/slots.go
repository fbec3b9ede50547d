package models

// Constraints is the normalized per-staff, per-date input of the slot
// calculator. ExistingBookings carry their offering buffer already applied.
type Constraints struct {
	WorkHoursEnabled bool               `json:"workHoursEnabled"`
	StaffShifts      []Interval         `json:"staffShifts"`
	TimeBlocks       []Interval         `json:"timeBlocks"`
	ExistingBookings []BufferedInterval `json:"existingBookings"`
}

// SlotOptions tune slot enumeration.
type SlotOptions struct {
	SlotInterval int  `json:"slotInterval"` // granularity in minutes, typically 15
	AvoidGaps    bool `json:"avoidGaps"`    // suppress starts that strand sub-slot gaps
	TravelBuffer int  `json:"travelBuffer"` // minutes added for mobile bookings
}

// Slot is one candidate start time on the requested date.
type Slot struct {
	Start     int    `json:"startMinute"` // minutes from midnight
	Time      string `json:"start"`       // "HH:MM" rendering of Start
	Available bool   `json:"available"`
}

// AvailabilityResponse is the public availability endpoint payload.
type AvailabilityResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}
