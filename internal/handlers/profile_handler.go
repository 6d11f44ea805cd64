package handlers

import (
	"expense-tracker-web/internal/dto"
	"expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the profile view
type ProfileHandler struct {
	fetchService services.FetchServiceInterface
	viewService  services.ViewServiceInterface
}

func NewProfileHandler(fetchService services.FetchServiceInterface, viewService services.ViewServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		fetchService: fetchService,
		viewService:  viewService,
	}
}

type profilePage struct {
	pageData
	View    *dto.ProfileView
	Failure *models.Failure
}

// Profile fetches the profile, balances and summary once
// @Summary Profile
// @Tags Profile
// @Produce html,json
// @Success 200 {object} ViewResponse{data=dto.ProfileView} "Profile view"
// @Failure 401 {object} ViewResponse "Session missing or rejected; redirect_to=/login"
// @Failure 502 {object} ViewResponse "Finance API unreachable"
// @Router /profile [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidClient)
	}

	result := h.fetchService.Profile(c.Request().Context(), clientID)
	page := profilePage{pageData: newPageData(c, "Profile")}

	switch result.State {
	case models.StateDiscarded:
		return nil
	case models.StateSuccess:
		page.View = h.viewService.Profile(result.Payload)
		return SendView(c, "profile.html", page, page.View)
	default:
		if result.Failure.ClearsSession() {
			h.viewService.UnmountClient(clientID)
		}
		page.Failure = result.Failure
		return SendFetchFailure(c, "profile.html", page, result.Failure, result.Redirect)
	}
}
