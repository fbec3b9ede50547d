// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookwise/handlers"
	"bookwise/middleware"
	"bookwise/utils"
)

// RegisterAvailabilityRoutes registers the public slot query.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/availability", hb.GetAvailabilityHandler)
}

// RegisterBookingRoutes registers the booking write path.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Customers book without an account; staff surfaces require auth.
		api.POST("", hb.CreateBookingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.ProviderRepo))
		protected.PUT("/:id/reschedule", hb.RescheduleBookingHandler)
		protected.PUT("/group/:groupId/reschedule", hb.RescheduleGroupHandler)
		protected.DELETE("/:id", hb.CancelBookingHandler)
		protected.GET("/staff/:staffId", hb.ListDayBookingsHandler)
	}
}

// RegisterWaitlistRoutes registers waitlist endpoints.
func RegisterWaitlistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/waitlist")
	{
		api.POST("", hb.AddWaitlistEntryHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.ProviderRepo))
		protected.GET("/provider/:providerId", hb.ListWaitlistHandler)
		protected.GET("/provider/:providerId/matches", hb.WaitlistMatchesHandler)
		protected.POST("/:id/quick-book", hb.QuickBookHandler)
		protected.PUT("/:id/contact", hb.ContactWaitlistHandler)
		protected.DELETE("/:id", hb.CancelWaitlistEntryHandler)
	}
}

// RegisterScheduleRoutes registers schedule configuration endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	api.Use(middleware.JWTAuthMiddleware(hb.ProviderRepo))
	{
		api.PUT("/staff/:staffId/work-hours", hb.SetWorkHoursHandler)
		api.GET("/staff/:staffId/work-hours", hb.ListWorkHoursHandler)
		api.POST("/staff/:staffId/overrides", hb.AddShiftOverrideHandler)
		api.DELETE("/staff/:staffId/overrides/:id", hb.RemoveShiftOverrideHandler)
		api.POST("/staff/:staffId/blocks", hb.AddTimeBlockHandler)
		api.DELETE("/staff/:staffId/blocks/:id", hb.RemoveTimeBlockHandler)
		api.GET("/staff/:staffId/blocks", hb.ListTimeBlocksHandler)
	}
}

// RegisterProviderRoutes registers tenant account endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.RegisterProviderHandler)
		api.POST("/login", hb.AuthenticateProviderHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.ProviderRepo))
		protected.GET("/me", hb.GetProviderHandler)
		protected.DELETE("/revoke", hb.RevokeProviderTokenHandler)
		protected.PUT("/offerings", hb.UpsertOfferingHandler)
		protected.PUT("/staff", hb.UpsertStaffHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterWaitlistRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
}
