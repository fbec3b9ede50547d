// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"bookwise/config"
	"bookwise/cron"
	"bookwise/database"
	bookingRepoPkg "bookwise/database/repository/booking"
	providerRepoPkg "bookwise/database/repository/provider"
	scheduleRepoPkg "bookwise/database/repository/schedule"
	waitlistRepoPkg "bookwise/database/repository/waitlist"
	"bookwise/handlers"
	"bookwise/routes"
	"bookwise/services/booking"
	"bookwise/services/notify"
	"bookwise/services/provider"
	"bookwise/services/schedule"
	"bookwise/services/scheduling"
	"bookwise/services/waitlist"
	"bookwise/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	schedRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	waitRepo := waitlistRepoPkg.NewMongoWaitlistRepo()

	// Background queue client.
	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queue.Close()

	// Services.
	loader := &scheduling.DefaultConstraintLoader{
		ProviderRepo: provRepo,
		ScheduleRepo: schedRepo,
		BookingRepo:  bookRepo,
	}
	availability := &scheduling.DefaultAvailabilityService{
		Loader: loader,
		Cache:  utils.GetCacheClient(),
		TTL:    time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
	}
	notifier := &notify.LogNotifier{}

	bookingService := &booking.DefaultBookingService{
		ProviderRepo: provRepo,
		BookingRepo:  bookRepo,
		Loader:       loader,
		Availability: availability,
		Queue:        queue,
	}
	waitlistService := &waitlist.DefaultWaitlistService{
		WaitlistRepo: waitRepo,
		ProviderRepo: provRepo,
		BookingRepo:  bookRepo,
		Loader:       loader,
		Availability: availability,
		Notifier:     notifier,
		Queue:        queue,
		SlotInterval: config.AppConfig.DefaultSlotInterval,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Repo:         schedRepo,
		Availability: availability,
	}
	providerService := &provider.DefaultProviderService{
		Repo: provRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProviderRepo: provRepo,

		GetAvailabilityHandler: handlers.GetAvailabilityHandler(availability, provRepo),

		CreateBookingHandler:     handlers.CreateBookingHandler(bookingService),
		RescheduleBookingHandler: handlers.RescheduleBookingHandler(bookingService),
		RescheduleGroupHandler:   handlers.RescheduleGroupHandler(bookingService),
		CancelBookingHandler:     handlers.CancelBookingHandler(bookingService),
		ListDayBookingsHandler:   handlers.ListDayBookingsHandler(bookingService),

		AddWaitlistEntryHandler:    handlers.AddWaitlistEntryHandler(waitlistService),
		ListWaitlistHandler:        handlers.ListWaitlistHandler(waitlistService),
		WaitlistMatchesHandler:     handlers.WaitlistMatchesHandler(waitlistService),
		QuickBookHandler:           handlers.QuickBookHandler(waitlistService),
		CancelWaitlistEntryHandler: handlers.CancelWaitlistEntryHandler(waitlistService),
		ContactWaitlistHandler:     handlers.ContactWaitlistHandler(waitlistService),

		SetWorkHoursHandler:        handlers.SetWorkHoursHandler(scheduleService),
		ListWorkHoursHandler:       handlers.ListWorkHoursHandler(scheduleService),
		AddShiftOverrideHandler:    handlers.AddShiftOverrideHandler(scheduleService),
		RemoveShiftOverrideHandler: handlers.RemoveShiftOverrideHandler(scheduleService),
		AddTimeBlockHandler:        handlers.AddTimeBlockHandler(scheduleService),
		RemoveTimeBlockHandler:     handlers.RemoveTimeBlockHandler(scheduleService),
		ListTimeBlocksHandler:      handlers.ListTimeBlocksHandler(scheduleService),

		RegisterProviderHandler:     handlers.RegisterProviderHandler(providerService),
		AuthenticateProviderHandler: handlers.AuthenticateProviderHandler(providerService),
		GetProviderHandler:          handlers.GetProviderHandler(providerService),
		RevokeProviderTokenHandler:  handlers.RevokeProviderTokenHandler(providerService),
		UpsertOfferingHandler:       handlers.UpsertOfferingHandler(providerService),
		UpsertStaffHandler:          handlers.UpsertStaffHandler(providerService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker and health monitor.
	cron.InitEventsWorker(waitlistService, bookRepo, notifier, queue)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
