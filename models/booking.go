package models

import "time"

// Booking statuses. Cancelled and no-show bookings never constrain the
// slot calculator.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no_show"
)

// Booking represents a committed booking record.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	ProviderID    string    `bson:"providerId" json:"providerId"`
	StaffID       string    `bson:"staffId" json:"staffId"`
	OfferingID    string    `bson:"offeringId" json:"offeringId"`
	GroupID       string    `bson:"groupId,omitempty" json:"groupId,omitempty"` // set when part of a group booking
	CustomerName  string    `bson:"customerName" json:"customerName"`
	CustomerPhone string    `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	CustomerEmail string    `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	Date          string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start         int       `bson:"start" json:"start"` // minutes from midnight
	End           int       `bson:"end" json:"end"`     // raw end; offering buffer is applied at read time
	TravelBuffer  int       `bson:"travelBuffer,omitempty" json:"travelBuffer,omitempty"`
	TotalPrice    float64   `bson:"totalPrice" json:"totalPrice"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Active reports whether the booking still occupies its interval.
func (b *Booking) Active() bool {
	return b.Status != BookingCancelled && b.Status != BookingNoShow
}

// CreateBookingInput is the payload for creating a booking.
type CreateBookingInput struct {
	ProviderID    string `json:"providerId" binding:"required"`
	StaffID       string `json:"staffId" binding:"required"`
	OfferingID    string `json:"offeringId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	Date          string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Start         int    `json:"start"`                   // minutes from midnight
	GroupID       string `json:"groupId"`
}
