// File: services/booking/events.go
package booking

import (
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"bookwise/models"
	"bookwise/utils"
)

// enqueue pushes a task to the background queue. Queue failures are logged
// and swallowed: events are side effects after the state transition, never a
// reason to fail the request.
func (s *DefaultBookingService) enqueue(taskType string, payload any) {
	if s.Queue == nil {
		return
	}
	logger := utils.GetLogger()

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal task payload", zap.String("type", taskType), zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(asynq.NewTask(taskType, data)); err != nil {
		logger.Error("failed to enqueue task", zap.String("type", taskType), zap.Error(err))
	}
}

func (s *DefaultBookingService) emitBookingCreated(b *models.Booking) {
	s.enqueue(models.TaskBookingCreated, models.BookingCreatedPayload{
		BookingID:  b.ID,
		ProviderID: b.ProviderID,
		StaffID:    b.StaffID,
		Date:       b.Date,
		Start:      b.Start,
	})
}

func (s *DefaultBookingService) emitWaitlistScan(providerID, staffID, date string) {
	s.enqueue(models.TaskWaitlistScan, models.WaitlistScanPayload{
		ProviderID: providerID,
		StaffID:    staffID,
		Date:       date,
	})
}
