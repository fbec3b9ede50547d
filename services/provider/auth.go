// File: services/provider/auth.go
package provider

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bookwise/models"
	"bookwise/utils"
)

const tokenTTL = 72 * time.Hour

// Authenticate verifies credentials and issues a fresh JWT; the token's hash
// replaces any previous session, so older tokens stop resolving.
func (s *DefaultProviderService) Authenticate(ctx context.Context, email, password string) (*models.Provider, string, error) {
	p, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.Security.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(p.ID, p.Email, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	if err := s.Repo.SetTokenHash(ctx, p.ID, utils.HashToken(token)); err != nil {
		return nil, "", err
	}

	utils.GetLogger().Info("provider authenticated", zap.String("providerId", p.ID))
	return p, token, nil
}

// RevokeToken clears the stored token hash, ending the session.
func (s *DefaultProviderService) RevokeToken(ctx context.Context, providerID string) error {
	return s.Repo.SetTokenHash(ctx, providerID, "")
}
