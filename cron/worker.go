// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"bookwise/config"
	bookingRepo "bookwise/database/repository/booking"
	"bookwise/models"
	"bookwise/services/notify"
	waitlistSvc "bookwise/services/waitlist"
	"bookwise/utils"
)

// InitEventsWorker runs the background queue consumer. It reacts to
// committed bookings, scans the waitlist when capacity frees up, and fans
// advisory matches out to the notifier.
func InitEventsWorker(wl waitlistSvc.Service, bookings bookingRepo.BookingRepository, notifier notify.Service, queue *asynq.Client) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(models.TaskBookingCreated, handleBookingCreated(bookings, notifier))
	mux.HandleFunc(models.TaskWaitlistScan, handleWaitlistScan(wl, queue))
	mux.HandleFunc(models.TaskWaitlistMatched, handleWaitlistMatched(notifier))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting events worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("events worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("events worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingCreated(bookings bookingRepo.BookingRepository, notifier notify.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.BookingCreatedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid booking:created payload", zap.Error(err))
			return err
		}

		booking, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			// Likely cancelled between enqueue and processing; nothing to send.
			logger.Warn("booking gone before confirmation", zap.String("bookingId", p.BookingID), zap.Error(err))
			return nil
		}
		return notifier.SendBookingConfirmation(ctx, booking)
	}
}

func handleWaitlistScan(wl waitlistSvc.Service, queue *asynq.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.WaitlistScanPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid waitlist:scan payload", zap.Error(err))
			return err
		}

		matches, err := wl.FindMatches(ctx, p.ProviderID, waitlistSvc.MatchFilter{
			Date:    p.Date,
			StaffID: p.StaffID,
		})
		if err != nil {
			logger.Error("waitlist scan failed",
				zap.String("providerId", p.ProviderID), zap.String("date", p.Date), zap.Error(err))
			return err
		}

		for _, m := range matches {
			payload, err := json.Marshal(models.WaitlistMatchedPayload{
				EntryID:    m.Entry.ID,
				ProviderID: m.Entry.ProviderID,
				StaffID:    m.StaffID,
				Date:       m.Entry.PreferredDate,
				Start:      m.Slot.Start,
			})
			if err != nil {
				continue
			}
			if _, err := queue.EnqueueContext(ctx, asynq.NewTask(models.TaskWaitlistMatched, payload)); err != nil {
				logger.Error("failed to enqueue waitlist match", zap.String("entryId", m.Entry.ID), zap.Error(err))
			}
		}

		logger.Info("waitlist scan complete",
			zap.String("providerId", p.ProviderID), zap.String("date", p.Date), zap.Int("matches", len(matches)))
		return nil
	}
}

func handleWaitlistMatched(notifier notify.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.WaitlistMatchedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid waitlist:matched payload", zap.Error(err))
			return err
		}
		return notifier.SendWaitlistMatch(ctx, p)
	}
}
