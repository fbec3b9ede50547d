// File: handlers/waitlist.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookwise/models"
	waitlistSvc "bookwise/services/waitlist"
	"bookwise/utils"
)

// AddWaitlistEntryHandler enqueues a customer for a preferred date.
func AddWaitlistEntryHandler(svc waitlistSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var entry models.WaitlistEntry
		if err := c.ShouldBindJSON(&entry); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if entry.ProviderID == "" || entry.OfferingID == "" || entry.CustomerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "providerId, offeringId and customerName are required"})
			return
		}
		if _, err := utils.ParseDate(entry.PreferredDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preferredDate, expected YYYY-MM-DD"})
			return
		}

		if err := svc.Add(c.Request.Context(), &entry); err != nil {
			status, msg := waitlistErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

// ListWaitlistHandler lists a tenant's entries, optionally by status.
func ListWaitlistHandler(svc waitlistSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := svc.List(c.Request.Context(), c.Param("providerId"), c.Query("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list waitlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}

// WaitlistMatchesHandler runs a read-only matching pass and returns advisory
// entry/slot pairs. Nothing is reserved.
func WaitlistMatchesHandler(svc waitlistSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := waitlistSvc.MatchFilter{
			Date:    c.Query("date"),
			StaffID: c.Query("staffId"),
		}
		if filter.Date != "" {
			if _, err := utils.ParseDate(filter.Date); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
				return
			}
		}
		max, err := intQuery(c, "max", 0)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max"})
			return
		}
		filter.MaxMatches = max

		matches, err := svc.FindMatches(c.Request.Context(), c.Param("providerId"), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find matches"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"matches": matches})
	}
}

// QuickBookHandler converts one open entry into a booking at the time the
// operator just confirmed with the customer.
func QuickBookHandler(svc waitlistSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input waitlistSvc.QuickBookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if input.Date != "" {
			if _, err := utils.ParseDate(input.Date); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
				return
			}
		}

		booking, err := svc.QuickBook(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			status, msg := waitlistErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, booking)
	}
}

// CancelWaitlistEntryHandler removes an open entry from matching.
func CancelWaitlistEntryHandler(svc waitlistSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
			status, msg := waitlistErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}

// ContactWaitlistHandler marks a waiting entry as contacted.
func ContactWaitlistHandler(svc waitlistSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.MarkContacted(c.Request.Context(), c.Param("id")); err != nil {
			status, msg := waitlistErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "contacted"})
	}
}

func waitlistErrStatus(err error) (int, string) {
	switch {
	case errors.Is(err, waitlistSvc.ErrSlotTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, waitlistSvc.ErrNotOpen),
		errors.Is(err, waitlistSvc.ErrNoStaff),
		errors.Is(err, waitlistSvc.ErrUnknownOffering):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "waitlist operation failed"
	}
}
