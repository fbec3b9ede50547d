package providerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"bookwise/models"
)

func (repo *mongoProviderRepo) findOne(ctx context.Context, filter bson.M) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	if err := repo.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}
	return &provider, nil
}

func (repo *mongoProviderRepo) GetByID(ctx context.Context, providerID string) (*models.Provider, error) {
	return repo.findOne(ctx, bson.M{"id": providerID})
}

func (repo *mongoProviderRepo) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

// GetByStaffID resolves the tenant a staff member belongs to.
func (repo *mongoProviderRepo) GetByStaffID(ctx context.Context, staffID string) (*models.Provider, error) {
	return repo.findOne(ctx, bson.M{"staff.id": staffID})
}

func (repo *mongoProviderRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Provider, error) {
	return repo.findOne(ctx, bson.M{"security.tokenHash": tokenHash})
}
