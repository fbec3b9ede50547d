// File: services/notify/notify.go
package notify

import (
	"context"

	"go.uber.org/zap"

	"bookwise/models"
	"bookwise/utils"
)

// Service is the delivery boundary. Transports (push, SMS, email) live
// outside this codebase; the scheduler only invokes the contract after a
// state transition.
type Service interface {
	SendBookingConfirmation(ctx context.Context, booking *models.Booking) error
	SendWaitlistMatch(ctx context.Context, match models.WaitlistMatchedPayload) error
}

// LogNotifier is the default implementation: it records the outbound intent
// and leaves delivery to the external collaborator wired in production.
type LogNotifier struct{}

func (n *LogNotifier) SendBookingConfirmation(ctx context.Context, booking *models.Booking) error {
	utils.GetLogger().Info("booking confirmation queued for delivery",
		zap.String("bookingId", booking.ID),
		zap.String("customer", booking.CustomerName),
		zap.String("date", booking.Date),
		zap.Int("start", booking.Start))
	return nil
}

func (n *LogNotifier) SendWaitlistMatch(ctx context.Context, match models.WaitlistMatchedPayload) error {
	utils.GetLogger().Info("waitlist match notification queued for delivery",
		zap.String("entryId", match.EntryID),
		zap.String("staffId", match.StaffID),
		zap.String("date", match.Date),
		zap.Int("start", match.Start))
	return nil
}
