// File: services/waitlist/crud.go
package waitlist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookwise/models"
	"bookwise/utils"
)

// Add registers a new waiting entry.
func (s *DefaultWaitlistService) Add(ctx context.Context, entry *models.WaitlistEntry) error {
	provider, err := s.ProviderRepo.GetByID(ctx, entry.ProviderID)
	if err != nil {
		return fmt.Errorf("failed to load provider: %w", err)
	}
	if _, ok := provider.OfferingByID(entry.OfferingID); !ok {
		return ErrUnknownOffering
	}
	if entry.StaffID != "" {
		if _, ok := provider.StaffByID(entry.StaffID); !ok {
			return ErrNoStaff
		}
	}

	now := time.Now()
	entry.ID = uuid.New().String()
	entry.Status = models.WaitlistWaiting
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if err := s.WaitlistRepo.Create(ctx, entry); err != nil {
		return err
	}

	utils.GetLogger().Info("waitlist entry added",
		zap.String("entryId", entry.ID),
		zap.String("providerId", entry.ProviderID),
		zap.String("preferredDate", entry.PreferredDate))
	return nil
}

// List returns a provider's entries, optionally filtered by status.
func (s *DefaultWaitlistService) List(ctx context.Context, providerID, status string) ([]models.WaitlistEntry, error) {
	return s.WaitlistRepo.List(ctx, providerID, status)
}

// Cancel withdraws an open entry (customer self-removal or staff action).
func (s *DefaultWaitlistService) Cancel(ctx context.Context, entryID string) error {
	open := []string{models.WaitlistWaiting, models.WaitlistContacted}
	return s.WaitlistRepo.UpdateStatusFrom(ctx, entryID, models.WaitlistCancelled, open)
}

// MarkContacted records that the customer has been reached about a match.
func (s *DefaultWaitlistService) MarkContacted(ctx context.Context, entryID string) error {
	return s.WaitlistRepo.UpdateStatusFrom(ctx, entryID, models.WaitlistContacted,
		[]string{models.WaitlistWaiting})
}
