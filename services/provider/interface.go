// File: services/provider/interface.go
package provider

import (
	"context"

	"bookwise/models"
)

// Service manages tenant accounts, their offering catalogue and staff roster.
type Service interface {
	Register(ctx context.Context, p *models.Provider) (*models.Provider, error)
	Authenticate(ctx context.Context, email, password string) (*models.Provider, string, error)
	RevokeToken(ctx context.Context, providerID string) error
	GetByID(ctx context.Context, providerID string) (*models.Provider, error)
	UpsertOffering(ctx context.Context, providerID string, offering models.Offering) (*models.Offering, error)
	UpsertStaff(ctx context.Context, providerID string, staff models.Staff) (*models.Staff, error)
}
