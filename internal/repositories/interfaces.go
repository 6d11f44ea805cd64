package repositories

import (
	"context"

	"expense-tracker-web/internal/models"

	"github.com/google/uuid"
)

// CredentialRepositoryInterface defines the contract for the per-client credential store
type CredentialRepositoryInterface interface {
	Get(ctx context.Context, clientID uuid.UUID, key string) (*models.StoredCredential, error)
	Upsert(ctx context.Context, credential *models.StoredCredential) error
	Delete(ctx context.Context, clientID uuid.UUID, key string) error
}
