package models

import "github.com/golang-jwt/jwt/v5"

// ClientClaims are the claims of the signed client-instance cookie. Subject
// carries the client ID.
type ClientClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
}
