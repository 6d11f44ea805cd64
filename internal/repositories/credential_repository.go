package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker-web/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
)

// CredentialRepository handles database operations for stored credentials
type CredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) CredentialRepositoryInterface {
	return &CredentialRepository{
		db: db,
	}
}

// Get retrieves the credential stored under key for a client instance
func (r *CredentialRepository) Get(ctx context.Context, clientID uuid.UUID, key string) (*models.StoredCredential, error) {
	var credential models.StoredCredential

	err := r.db.WithContext(ctx).
		Where(&models.StoredCredential{ClientID: clientID, Key: key}).
		First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	return &credential, nil
}

// Upsert replaces whatever the client had stored under the same key
func (r *CredentialRepository) Upsert(ctx context.Context, credential *models.StoredCredential) error {
	if credential == nil {
		return errors.New("credential cannot be nil")
	}
	if credential.ClientID == uuid.Nil {
		return errors.New("credential client ID cannot be nil")
	}

	credential.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"ciphertext", "updated_at"}),
	}).Create(credential).Error
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	return nil
}

// Delete removes the credential; deleting an absent credential is not an error
func (r *CredentialRepository) Delete(ctx context.Context, clientID uuid.UUID, key string) error {
	err := r.db.WithContext(ctx).
		Where(&models.StoredCredential{ClientID: clientID, Key: key}).
		Delete(&models.StoredCredential{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	return nil
}
