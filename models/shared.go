package models

// Interval is a half-open [Start, End) window in minutes from midnight.
type Interval struct {
	Start int `bson:"start" json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End   int `bson:"end" json:"end"`     // minutes from midnight (e.g., 1020 for 5:00 PM)
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Contains reports whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return other.Start >= iv.Start && other.End <= iv.End
}

// Length returns the interval length in minutes.
func (iv Interval) Length() int {
	return iv.End - iv.Start
}

// BufferedInterval is a committed interval whose End has already been extended
// by the booked offering's buffer minutes.
type BufferedInterval struct {
	Interval  `bson:",inline"`
	BookingID string `bson:"bookingId" json:"bookingId"`
	Buffer    int    `bson:"buffer" json:"buffer"` // minutes appended after the raw booking end
}
