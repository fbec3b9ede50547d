// File: services/waitlist/interface.go
package waitlist

import (
	"context"

	"bookwise/models"
)

// MatchFilter narrows a matching pass. MaxMatches caps the result size;
// zero or negative falls back to DefaultMaxMatches.
type MatchFilter struct {
	Date       string
	StaffID    string
	MaxMatches int
}

// QuickBookInput converts a matched entry into a real booking. The time is
// taken from the operator acting on an advisory match; only the store's
// guarded insert re-checks it.
type QuickBookInput struct {
	Date    string `json:"date"`
	Start   int    `json:"start" binding:"required"`
	StaffID string `json:"staffId"` // optional override of the entry's preference
}

// Service manages waitlist entries. FindMatches is strictly read-only; the
// only state transitions are Add, Cancel, MarkContacted and QuickBook.
type Service interface {
	Add(ctx context.Context, entry *models.WaitlistEntry) error
	List(ctx context.Context, providerID, status string) ([]models.WaitlistEntry, error)
	Cancel(ctx context.Context, entryID string) error
	MarkContacted(ctx context.Context, entryID string) error
	FindMatches(ctx context.Context, providerID string, filter MatchFilter) ([]models.WaitlistMatch, error)
	QuickBook(ctx context.Context, entryID string, input QuickBookInput) (*models.Booking, error)
}
