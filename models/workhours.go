package models

import "time"

// WorkHoursRule is one weekday entry of a staff member's weekly recurring
// template. Configured by the provider owner; read-only to the scheduler.
type WorkHoursRule struct {
	ID         string       `bson:"id" json:"id"`
	ProviderID string       `bson:"providerId" json:"providerId"`
	StaffID    string       `bson:"staffId" json:"staffId"`
	Weekday    time.Weekday `bson:"weekday" json:"weekday"` // 0 = Sunday
	Open       int          `bson:"open" json:"open"`       // minutes from midnight
	Close      int          `bson:"close" json:"close"`     // minutes from midnight
	Closed     bool         `bson:"closed" json:"closed"`   // true means no work on this weekday
}

// ShiftOverride supersedes the weekly template for one specific date.
type ShiftOverride struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"providerId" json:"providerId"`
	StaffID     string    `bson:"staffId" json:"staffId"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start       int       `bson:"start" json:"start"`
	End         int       `bson:"end" json:"end"`
	RecurWeekly bool      `bson:"recurWeekly" json:"recurWeekly"` // re-applies every 7 days from Date
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// TimeBlockType distinguishes paid from unpaid unavailability.
type TimeBlockType string

const (
	TimeBlockPaid   TimeBlockType = "paid"
	TimeBlockUnpaid TimeBlockType = "unpaid"
)

// TimeBlock is an explicit unavailable interval on a date (time off, break,
// personal appointment). AllDay blocks span the whole day regardless of
// Start/End.
type TimeBlock struct {
	ID         string        `bson:"id" json:"id"`
	ProviderID string        `bson:"providerId" json:"providerId"`
	StaffID    string        `bson:"staffId" json:"staffId"`
	Date       string        `bson:"date" json:"date"`
	Start      int           `bson:"start" json:"start"`
	End        int           `bson:"end" json:"end"`
	AllDay     bool          `bson:"allDay" json:"allDay"`
	Type       TimeBlockType `bson:"type" json:"type"`
	Reason     string        `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}
