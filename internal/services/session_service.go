package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/repositories"

	"github.com/google/uuid"
)

var ErrEmptyToken = errors.New("empty token")

// SessionService owns the single bearer credential of each client instance
type SessionService struct {
	repo    repositories.CredentialRepositoryInterface
	cipher  CredentialCipherInterface
	metrics MetricsRecorderInterface
	audit   *SessionLogger
}

func NewSessionService(
	repo repositories.CredentialRepositoryInterface,
	cipher CredentialCipherInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SessionServiceInterface {
	return &SessionService{
		repo:    repo,
		cipher:  cipher,
		metrics: metrics,
		audit:   NewSessionLogger(logger),
	}
}

func (s *SessionService) Check(ctx context.Context, clientID uuid.UUID) (models.SessionStatus, error) {
	if clientID == uuid.Nil {
		return models.SessionStatus{}, nil
	}

	credential, err := s.repo.Get(ctx, clientID, models.CredentialKeyToken)
	if err != nil {
		if errors.Is(err, repositories.ErrCredentialNotFound) {
			return models.SessionStatus{}, nil
		}
		return models.SessionStatus{}, fmt.Errorf("check session: %w", err)
	}

	token, err := s.cipher.Open(credential.Ciphertext)
	if err != nil {
		// unreadable after a key rotation; the client has to sign in again
		s.audit.LogCredentialDiscarded(ctx, clientID, err.Error())
		if delErr := s.repo.Delete(ctx, clientID, models.CredentialKeyToken); delErr != nil {
			return models.SessionStatus{}, fmt.Errorf("check session: %w", delErr)
		}
		return models.SessionStatus{}, nil
	}

	if len(token) == 0 {
		return models.SessionStatus{}, nil
	}

	return models.SessionStatus{Present: true, Token: string(token)}, nil
}

func (s *SessionService) Persist(ctx context.Context, clientID uuid.UUID, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	sealed, err := s.cipher.Seal([]byte(token))
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	err = s.repo.Upsert(ctx, &models.StoredCredential{
		ClientID:   clientID,
		Key:        models.CredentialKeyToken,
		Ciphertext: sealed,
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.metrics.IncrementCounter("session_event", map[string]string{"event_type": "persisted"})
	s.audit.LogSessionPersisted(ctx, clientID)
	return nil
}

func (s *SessionService) Clear(ctx context.Context, clientID uuid.UUID) error {
	if err := s.repo.Delete(ctx, clientID, models.CredentialKeyToken); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.metrics.IncrementCounter("session_event", map[string]string{"event_type": "cleared"})
	s.audit.LogSessionCleared(ctx, clientID)
	return nil
}
