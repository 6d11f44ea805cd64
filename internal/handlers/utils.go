package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrMissingClient is returned when the client session middleware did not run
var ErrMissingClient = fmt.Errorf("missing client instance")

// Helper function to extract the client instance ID from context
// Returns ErrMissingClient if it is missing or invalid
func getClientIDFromContext(c echo.Context) (uuid.UUID, error) {
	clientIDValue := c.Get(ClientIDContextKey)
	if clientIDValue == nil {
		return uuid.UUID{}, ErrMissingClient
	}

	clientID, ok := clientIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrMissingClient
	}

	return clientID, nil
}
