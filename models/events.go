package models

// Asynq task type names.
const (
	TaskBookingCreated  = "booking:created"
	TaskWaitlistScan    = "waitlist:scan"
	TaskWaitlistMatched = "waitlist:matched"
)

// BookingCreatedPayload announces a committed booking to the worker.
type BookingCreatedPayload struct {
	BookingID  string `json:"bookingId"`
	ProviderID string `json:"providerId"`
	StaffID    string `json:"staffId"`
	Date       string `json:"date"`
	Start      int    `json:"start"`
}

// WaitlistScanPayload asks the worker to look for fulfillable entries after
// capacity frees up on a staff/date pair.
type WaitlistScanPayload struct {
	ProviderID string `json:"providerId"`
	StaffID    string `json:"staffId"`
	Date       string `json:"date"`
}

// WaitlistMatchedPayload announces an advisory match for follow-up contact.
type WaitlistMatchedPayload struct {
	EntryID    string `json:"entryId"`
	ProviderID string `json:"providerId"`
	StaffID    string `json:"staffId"`
	Date       string `json:"date"`
	Start      int    `json:"start"`
}
