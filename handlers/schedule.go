// File: handlers/schedule.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookwise/models"
	scheduleSvc "bookwise/services/schedule"
)

// SetWorkHoursHandler upserts one weekday of a staff member's weekly template.
func SetWorkHoursHandler(svc scheduleSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rule models.WorkHoursRule
		if err := c.ShouldBindJSON(&rule); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		rule.StaffID = c.Param("staffId")

		saved, err := svc.SetWorkHours(c.Request.Context(), &rule)
		if err != nil {
			status, msg := scheduleErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

// ListWorkHoursHandler returns the weekly template for a staff member.
func ListWorkHoursHandler(svc scheduleSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rules, err := svc.ListWorkHours(c.Request.Context(), c.Param("staffId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list work hours"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rules": rules})
	}
}

// AddShiftOverrideHandler records a date-specific shift.
func AddShiftOverrideHandler(svc scheduleSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ov models.ShiftOverride
		if err := c.ShouldBindJSON(&ov); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		ov.StaffID = c.Param("staffId")

		saved, err := svc.AddShiftOverride(c.Request.Context(), &ov)
		if err != nil {
			status, msg := scheduleErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}

// RemoveShiftOverrideHandler deletes one override.
func RemoveShiftOverrideHandler(svc scheduleSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveShiftOverride(c.Request.Context(), c.Param("staffId"), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove override"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "removed"})
	}
}

// AddTimeBlockHandler records an unavailable interval.
func AddTimeBlockHandler(svc scheduleSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var block models.TimeBlock
		if err := c.ShouldBindJSON(&block); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		block.StaffID = c.Param("staffId")

		saved, err := svc.AddTimeBlock(c.Request.Context(), &block)
		if err != nil {
			status, msg := scheduleErrStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}

// RemoveTimeBlockHandler deletes one time block.
func RemoveTimeBlockHandler(svc scheduleSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveTimeBlock(c.Request.Context(), c.Param("staffId"), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove time block"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "removed"})
	}
}

// ListTimeBlocksHandler lists a staff member's blocks, optionally per date.
func ListTimeBlocksHandler(svc scheduleSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		blocks, err := svc.ListTimeBlocks(c.Request.Context(), c.Param("staffId"), c.Query("date"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list time blocks"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"blocks": blocks})
	}
}

func scheduleErrStatus(err error) (int, string) {
	if errors.Is(err, scheduleSvc.ErrInvalidWindow) {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "schedule operation failed"
}
