// File: services/provider/provider.go
package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	providerRepo "bookwise/database/repository/provider"
	"bookwise/models"
	"bookwise/utils"
)

var (
	// ErrInvalidCredentials covers both unknown email and bad password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidOffering is returned for an offering with no duration.
	ErrInvalidOffering = errors.New("offering duration must be positive")
)

// DefaultProviderService implements Service.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

// Register creates the tenant with a hashed password and sensible defaults.
func (s *DefaultProviderService) Register(ctx context.Context, p *models.Provider) (*models.Provider, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Security.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	p.ID = uuid.New().String()
	p.Security = models.Security{PasswordHash: string(hash)}
	p.Status = "active"
	if p.Timezone == "" {
		p.Timezone = "UTC"
	}
	if p.Offerings == nil {
		p.Offerings = []models.Offering{}
	}
	if p.Staff == nil {
		p.Staff = []models.Staff{}
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("provider registered",
		zap.String("providerId", p.ID), zap.String("email", p.Email))
	return p, nil
}

// GetByID returns the tenant document.
func (s *DefaultProviderService) GetByID(ctx context.Context, providerID string) (*models.Provider, error) {
	return s.Repo.GetByID(ctx, providerID)
}

// UpsertOffering validates and stores one catalogue entry.
func (s *DefaultProviderService) UpsertOffering(ctx context.Context, providerID string, offering models.Offering) (*models.Offering, error) {
	if offering.DurationMinutes <= 0 {
		return nil, ErrInvalidOffering
	}
	if offering.BufferMinutes < 0 {
		offering.BufferMinutes = 0
	}
	if offering.Mode == "" {
		offering.Mode = models.OfferingFixed
	}
	if offering.ID == "" {
		offering.ID = uuid.New().String()
	}

	if err := s.Repo.UpsertOffering(ctx, providerID, offering); err != nil {
		return nil, err
	}
	return &offering, nil
}

// UpsertStaff validates and stores one roster member.
func (s *DefaultProviderService) UpsertStaff(ctx context.Context, providerID string, staff models.Staff) (*models.Staff, error) {
	if staff.ID == "" {
		staff.ID = uuid.New().String()
		staff.Active = true
	}
	if staff.Role == "" {
		staff.Role = "member"
	}
	if staff.OfferingIDs == nil {
		staff.OfferingIDs = []string{}
	}

	if err := s.Repo.UpsertStaff(ctx, providerID, staff); err != nil {
		return nil, err
	}
	return &staff, nil
}
