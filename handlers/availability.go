// File: handlers/availability.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookwise/config"
	providerRepo "bookwise/database/repository/provider"
	"bookwise/models"
	"bookwise/services/scheduling"
	"bookwise/utils"
)

// GetAvailabilityHandler serves the day-slot query. Validation happens
// before the scheduler runs: a malformed date or numeric parameter is a 400,
// a missing or "any" staffId yields an empty slot list, and a constraint
// fetch failure is a 500.
func GetAvailabilityHandler(av scheduling.AvailabilityService, repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if _, err := utils.ParseDate(date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing date, expected YYYY-MM-DD"})
			return
		}

		staffID := c.Query("staffId")
		if staffID == "" || staffID == "any" {
			c.JSON(http.StatusOK, models.AvailabilityResponse{Date: date, Slots: []models.Slot{}})
			return
		}

		duration, err := intQuery(c, "duration", 0)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration"})
			return
		}
		travelBuffer, err := intQuery(c, "travelBuffer", 0)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid travelBuffer"})
			return
		}
		avoidGaps := c.Query("avoidGaps") == "true"

		// An offeringId substitutes for an explicit duration.
		if offeringID := c.Query("offeringId"); offeringID != "" && duration == 0 {
			prov, err := repo.GetByStaffID(c.Request.Context(), staffID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve staff member"})
				return
			}
			offering, ok := prov.OfferingByID(offeringID)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown offering"})
				return
			}
			duration = offering.DurationMinutes
			if offering.Mode == models.OfferingMobile && travelBuffer == 0 {
				travelBuffer = prov.MobileTravelBuffer
			}
		}
		if duration <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration or offeringId is required"})
			return
		}

		resp, err := av.DaySlots(c.Request.Context(), scheduling.AvailabilityQuery{
			StaffID:      staffID,
			Date:         date,
			Duration:     duration,
			SlotInterval: config.AppConfig.DefaultSlotInterval,
			TravelBuffer: travelBuffer,
			AvoidGaps:    avoidGaps,
		})
		if err != nil {
			utils.GetLogger().Error("availability computation failed",
				zap.String("staffId", staffID), zap.String("date", date), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
