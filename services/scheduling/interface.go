// File: services/scheduling/interface.go
package scheduling

import (
	"context"

	"bookwise/models"
)

// ConstraintLoader assembles the normalized constraint set for one staff
// member and date. Read-only; a data-fetch failure surfaces as an error the
// caller treats as "no availability".
type ConstraintLoader interface {
	Load(ctx context.Context, staffID, date string) (models.Constraints, error)
}

// AvailabilityQuery describes one day-slot computation.
type AvailabilityQuery struct {
	StaffID      string
	Date         string // "YYYY-MM-DD"
	Duration     int    // total requested minutes, including stacked services
	SlotInterval int    // enumeration granularity; 0 falls back to the configured default
	TravelBuffer int    // minutes appended for mobile bookings
	AvoidGaps    bool
}

// AvailabilityService computes (and caches) a staff member's day slots.
type AvailabilityService interface {
	DaySlots(ctx context.Context, q AvailabilityQuery) (models.AvailabilityResponse, error)
	Invalidate(ctx context.Context, staffID, date string)
}
