package dto

// Auth Request DTOs
//
// Presence of each field is enforced by the remote API, which owns the
// account rules and answers with a message; only shape is checked here.

// RegisterRequest contains user registration data
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"max=100"`
	Email    string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Phone    string `json:"phone" form:"phone" validate:"omitempty,max=20"`
	Password string `json:"password" form:"password" validate:"max=128"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"omitempty,max=254"`
	Password string `json:"password" form:"password" validate:"max=128"`
}

// Auth Response DTOs

// TokenResponse is the register/login success body. Message is only set on
// error bodies.
type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the body of every mutation response and of most
// error responses.
type MessageResponse struct {
	Message string `json:"message"`
}
