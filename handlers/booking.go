// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookwise/models"
	bookingSvc "bookwise/services/booking"
	"bookwise/utils"
)

// CreateBookingHandler validates and books one appointment.
func CreateBookingHandler(svc bookingSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if _, err := utils.ParseDate(input.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}

		booking, err := svc.Create(c.Request.Context(), input)
		if err != nil {
			status, msg := bookingErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, booking)
	}
}

// RescheduleBookingHandler moves one booking to a new date/start.
func RescheduleBookingHandler(svc bookingSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Date  string `json:"date" binding:"required"`
			Start int    `json:"start"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if _, err := utils.ParseDate(input.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}

		booking, err := svc.Reschedule(c.Request.Context(), c.Param("id"), input.Date, input.Start)
		if err != nil {
			status, msg := bookingErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

// RescheduleGroupHandler moves a stacked booking group as one unit.
func RescheduleGroupHandler(svc bookingSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Date  string `json:"date" binding:"required"`
			Start int    `json:"start"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if _, err := utils.ParseDate(input.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}

		bookings, err := svc.RescheduleGroup(c.Request.Context(), c.Param("groupId"), input.Date, input.Start)
		if err != nil {
			status, msg := bookingErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

// CancelBookingHandler cancels one booking; repeated cancels are no-ops.
func CancelBookingHandler(svc bookingSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
			status, msg := bookingErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}

// ListDayBookingsHandler lists a staff member's bookings for one date.
func ListDayBookingsHandler(svc bookingSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if _, err := utils.ParseDate(date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing date, expected YYYY-MM-DD"})
			return
		}

		bookings, err := svc.ListForStaffDay(c.Request.Context(), c.Param("staffId"), date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": date, "bookings": bookings})
	}
}

func bookingErrStatus(err error) (int, string) {
	switch {
	case errors.Is(err, bookingSvc.ErrSlotUnavailable):
		return http.StatusConflict, err.Error()
	case errors.Is(err, bookingSvc.ErrUnknownOffering),
		errors.Is(err, bookingSvc.ErrUnknownStaff),
		errors.Is(err, bookingSvc.ErrEmptyGroup):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "booking operation failed"
	}
}
