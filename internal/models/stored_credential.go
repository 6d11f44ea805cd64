package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialKeyToken is the fixed key under which the bearer token is stored.
const CredentialKeyToken = "token"

// StoredCredential is one key-value entry of a client instance's store.
// The value is kept encrypted; (client_id, key) is unique, so a client holds
// at most one live token.
type StoredCredential struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_client_credentials_client_key" json:"client_id"`
	Key        string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_client_credentials_client_key" json:"key"`
	Ciphertext []byte    `gorm:"not null" json:"-"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (sc *StoredCredential) TableName() string {
	return "client_credentials"
}

func (sc *StoredCredential) BeforeCreate(tx *gorm.DB) error {
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	return nil
}
