package booking

import "errors"

var (
	// ErrSlotUnavailable is the conflict returned when the requested start is
	// no longer in the computed set of open slots.
	ErrSlotUnavailable = errors.New("requested slot is no longer available")
	// ErrUnknownOffering is returned when the booking references an offering
	// the provider does not carry.
	ErrUnknownOffering = errors.New("unknown offering")
	// ErrUnknownStaff is returned when the staff member is not on the roster.
	ErrUnknownStaff = errors.New("unknown staff member")
	// ErrEmptyGroup is returned when a group reschedule finds no members.
	ErrEmptyGroup = errors.New("booking group is empty")
)
