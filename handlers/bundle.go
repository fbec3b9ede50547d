// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"

	providerRepoPkg "bookwise/database/repository/provider"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ProviderRepo providerRepoPkg.ProviderRepository

	// Availability
	GetAvailabilityHandler gin.HandlerFunc

	// Bookings
	CreateBookingHandler     gin.HandlerFunc
	RescheduleBookingHandler gin.HandlerFunc
	RescheduleGroupHandler   gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	ListDayBookingsHandler   gin.HandlerFunc

	// Waitlist
	AddWaitlistEntryHandler    gin.HandlerFunc
	ListWaitlistHandler        gin.HandlerFunc
	WaitlistMatchesHandler     gin.HandlerFunc
	QuickBookHandler           gin.HandlerFunc
	CancelWaitlistEntryHandler gin.HandlerFunc
	ContactWaitlistHandler     gin.HandlerFunc

	// Schedule configuration
	SetWorkHoursHandler        gin.HandlerFunc
	ListWorkHoursHandler       gin.HandlerFunc
	AddShiftOverrideHandler    gin.HandlerFunc
	RemoveShiftOverrideHandler gin.HandlerFunc
	AddTimeBlockHandler        gin.HandlerFunc
	RemoveTimeBlockHandler     gin.HandlerFunc
	ListTimeBlocksHandler      gin.HandlerFunc

	// Provider account
	RegisterProviderHandler     gin.HandlerFunc
	AuthenticateProviderHandler gin.HandlerFunc
	GetProviderHandler          gin.HandlerFunc
	RevokeProviderTokenHandler  gin.HandlerFunc
	UpsertOfferingHandler       gin.HandlerFunc
	UpsertStaffHandler          gin.HandlerFunc
}
