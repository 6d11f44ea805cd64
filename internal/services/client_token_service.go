package services

import (
	"errors"
	"fmt"
	"time"

	"expense-tracker-web/internal/config"
	"expense-tracker-web/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeClient = "client"

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token is expired")
	ErrInvalidIssuer    = errors.New("invalid issuer")
	ErrInvalidTokenType = errors.New("invalid token type")
)

// ClientTokenService signs the cookie that identifies a client instance
type ClientTokenService struct {
	config.ClientTokenConfig
	ttl time.Duration
}

func NewClientTokenService(cfg *config.ClientTokenConfig, ttl time.Duration) ClientTokenServiceInterface {
	return &ClientTokenService{
		ClientTokenConfig: *cfg,
		ttl:               ttl,
	}
}

// Issue signs a cookie value for clientID
func (ts *ClientTokenService) Issue(clientID uuid.UUID) (string, time.Time, error) {
	if clientID == uuid.Nil {
		return "", time.Time{}, errors.New("client ID cannot be nil")
	}

	now := time.Now()
	expiresAt := now.Add(ts.ttl)

	claims := models.ClientClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.Issuer,
			Subject:   clientID.String(),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		TokenType: TokenTypeClient,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, err := token.SignedString(ts.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign client token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate verifies a cookie value and returns the client ID it names
func (ts *ClientTokenService) Validate(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.ClientClaims{}, ts.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.ClientClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	if claims.Issuer != ts.Issuer {
		return uuid.Nil, ErrInvalidIssuer
	}
	if claims.TokenType != TokenTypeClient {
		return uuid.Nil, ErrInvalidTokenType
	}

	clientID, err := uuid.Parse(claims.Subject)
	if err != nil || clientID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}

	return clientID, nil
}

func (ts *ClientTokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ts.PublicKey, nil
}
