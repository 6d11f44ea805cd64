package dto

import "expense-tracker-web/internal/models"

// Profile identifies the signed-in user.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileResponse is the body of GET /user/profile.
type ProfileResponse struct {
	Profile  Profile             `json:"profile"`
	Balances models.AmountSeries `json:"balances"`
	Summary  models.Summary      `json:"summary"`
}
