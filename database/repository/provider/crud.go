package providerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"bookwise/models"
)

func (repo *mongoProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("error creating provider: %w", err)
	}
	return nil
}

func (repo *mongoProviderRepo) Update(ctx context.Context, provider *models.Provider) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	provider.UpdatedAt = time.Now()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": provider.ID}, bson.M{"$set": provider})
	if err != nil {
		return fmt.Errorf("error updating provider %s: %w", provider.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("provider %s not found", provider.ID)
	}
	return nil
}

func (repo *mongoProviderRepo) SetTokenHash(ctx context.Context, providerID, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"security.tokenHash": tokenHash, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": providerID}, update)
	if err != nil {
		return fmt.Errorf("error storing token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("provider %s not found", providerID)
	}
	return nil
}

// UpsertOffering replaces the offering with the same id, or appends it.
func (repo *mongoProviderRepo) UpsertOffering(ctx context.Context, providerID string, offering models.Offering) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": providerID, "offerings.id": offering.ID},
		bson.M{"$set": bson.M{"offerings.$": offering, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("error updating offering: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	_, err = repo.coll.UpdateOne(ctx,
		bson.M{"id": providerID},
		bson.M{"$push": bson.M{"offerings": offering}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("error appending offering: %w", err)
	}
	return nil
}

// UpsertStaff replaces the staff member with the same id, or appends them.
func (repo *mongoProviderRepo) UpsertStaff(ctx context.Context, providerID string, staff models.Staff) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": providerID, "staff.id": staff.ID},
		bson.M{"$set": bson.M{"staff.$": staff, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("error updating staff member: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	_, err = repo.coll.UpdateOne(ctx,
		bson.M{"id": providerID},
		bson.M{"$push": bson.M{"staff": staff}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("error appending staff member: %w", err)
	}
	return nil
}
