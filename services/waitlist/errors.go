package waitlist

import "errors"

var (
	// ErrNotOpen is returned when an entry is no longer waiting/contacted.
	ErrNotOpen = errors.New("waitlist entry is not open")
	// ErrNoStaff is returned when no staff member can perform the entry's
	// preferred offering.
	ErrNoStaff = errors.New("no staff member available for the offering")
	// ErrUnknownOffering is returned when the entry references an offering
	// the provider does not carry.
	ErrUnknownOffering = errors.New("unknown offering")
)

// ErrSlotTaken is returned when the guarded insert finds the trusted time
// already occupied.
var ErrSlotTaken = errors.New("chosen slot was taken concurrently")
