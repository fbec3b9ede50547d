// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bookwise/database"
	"bookwise/models"
)

// ProviderRepository persists tenant documents. Offerings and staff are
// embedded in the provider document, so staff/offering lookups resolve
// through the parent tenant.
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	GetByID(ctx context.Context, providerID string) (*models.Provider, error)
	GetByEmail(ctx context.Context, email string) (*models.Provider, error)
	GetByStaffID(ctx context.Context, staffID string) (*models.Provider, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Provider, error)
	Update(ctx context.Context, provider *models.Provider) error
	SetTokenHash(ctx context.Context, providerID, tokenHash string) error

	UpsertOffering(ctx context.Context, providerID string, offering models.Offering) error
	UpsertStaff(ctx context.Context, providerID string, staff models.Staff) error
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new MongoDB ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	return &mongoProviderRepo{coll: database.DB().Collection("providers")}
}
