package models

import "time"

// Waitlist entry statuses. Matching only considers waiting and contacted
// entries; quick-book transitions either of those to booked.
const (
	WaitlistWaiting   = "waiting"
	WaitlistContacted = "contacted"
	WaitlistBooked    = "booked"
	WaitlistCancelled = "cancelled"
)

// WaitlistEntry is a customer's request to be booked when a preferred slot
// frees up.
type WaitlistEntry struct {
	ID            string    `bson:"id" json:"id"`
	ProviderID    string    `bson:"providerId" json:"providerId"`
	CustomerName  string    `bson:"customerName" json:"customerName"`
	CustomerPhone string    `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	CustomerEmail string    `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	OfferingID    string    `bson:"offeringId" json:"offeringId"`
	StaffID       string    `bson:"staffId,omitempty" json:"staffId,omitempty"` // empty means any staff performing the offering
	PreferredDate string    `bson:"preferredDate" json:"preferredDate"`         // "YYYY-MM-DD"
	WindowStart   *int      `bson:"windowStart,omitempty" json:"windowStart,omitempty"` // minutes from midnight; nil means anytime
	WindowEnd     *int      `bson:"windowEnd,omitempty" json:"windowEnd,omitempty"`
	Priority      int       `bson:"priority" json:"priority"` // higher matches first
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Open reports whether the entry is still eligible for matching.
func (e *WaitlistEntry) Open() bool {
	return e.Status == WaitlistWaiting || e.Status == WaitlistContacted
}

// WaitlistMatch pairs an entry with the first slot that would satisfy it.
// Matches are advisory: nothing is reserved until quick-book commits.
type WaitlistMatch struct {
	Entry   WaitlistEntry `json:"entry"`
	StaffID string        `json:"staffId"`
	Slot    Slot          `json:"slot"`
}
