// File: handlers/provider.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookwise/middleware"
	"bookwise/models"
	providerSvc "bookwise/services/provider"
)

// RegisterProviderHandler creates a new tenant account.
func RegisterProviderHandler(svc providerSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Provider
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if input.Email == "" || input.Security.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		p, err := svc.Register(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// AuthenticateProviderHandler verifies credentials and returns a token.
func AuthenticateProviderHandler(svc providerSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		p, token, err := svc.Authenticate(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, providerSvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"provider": p, "token": token})
	}
}

// GetProviderHandler returns the authenticated tenant's profile.
func GetProviderHandler(svc providerSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.GetByID(c.Request.Context(), middleware.ProviderID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// RevokeProviderTokenHandler ends the tenant's session.
func RevokeProviderTokenHandler(svc providerSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RevokeToken(c.Request.Context(), middleware.ProviderID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "revoked"})
	}
}

// UpsertOfferingHandler adds or updates one catalogue entry.
func UpsertOfferingHandler(svc providerSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var offering models.Offering
		if err := c.ShouldBindJSON(&offering); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		saved, err := svc.UpsertOffering(c.Request.Context(), middleware.ProviderID(c), offering)
		if err != nil {
			if errors.Is(err, providerSvc.ErrInvalidOffering) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save offering"})
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

// UpsertStaffHandler adds or updates one roster member.
func UpsertStaffHandler(svc providerSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var staff models.Staff
		if err := c.ShouldBindJSON(&staff); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		saved, err := svc.UpsertStaff(c.Request.Context(), middleware.ProviderID(c), staff)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save staff member"})
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}
