package handlers

import (
	"log/slog"

	"expense-tracker-web/internal/dto"
	"expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the register and login views and the logout action
type AuthHandler struct {
	submitService  services.SubmitServiceInterface
	sessionService services.SessionServiceInterface
	viewService    services.ViewServiceInterface
	logger         *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(
	submitService services.SubmitServiceInterface,
	sessionService services.SessionServiceInterface,
	viewService services.ViewServiceInterface,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		submitService:  submitService,
		sessionService: sessionService,
		viewService:    viewService,
		logger:         logger,
	}
}

// authPage is the data of the register and login templates
type authPage struct {
	pageData
	Name      string
	Email     string
	Phone     string
	Message   string
	Failure   *models.Failure
	Succeeded bool
}

// RegisterPage renders the registration form
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return SendView(c, "register.html", authPage{pageData: newPageData(c, "Register")}, nil)
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return SendView(c, "login.html", authPage{pageData: newPageData(c, "Login")}, nil)
}

// Register submits the registration form
// @Summary Register
// @Description Registers with the finance API; on success the credential is stored for this client and the client is sent to the dashboard after a short delay
// @Tags Authentication
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 200 {object} ViewResponse "Registered; redirect_to=/dashboard"
// @Failure 409 {object} ViewResponse "Submission already in flight"
// @Failure 422 {object} ViewResponse "Rejected by the finance API"
// @Failure 502 {object} ViewResponse "Finance API unreachable"
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidClient)
	}

	result := h.submitService.Register(c.Request().Context(), clientID, req)
	if result.State == models.StateDiscarded {
		return nil
	}

	page := authPage{
		pageData:  newPageData(c, "Register"),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   result.DisplayMessage(),
		Failure:   result.Failure,
		Succeeded: result.Succeeded(),
	}
	return SendSubmitResult(c, "register.html", page, result)
}

// Login submits the login form
// @Summary Login
// @Description Logs in with the finance API; on success the credential is stored for this client and the client is sent to the dashboard after a short delay
// @Tags Authentication
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} ViewResponse "Logged in; redirect_to=/dashboard"
// @Failure 409 {object} ViewResponse "Submission already in flight"
// @Failure 422 {object} ViewResponse "Rejected by the finance API"
// @Failure 502 {object} ViewResponse "Finance API unreachable"
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidClient)
	}

	result := h.submitService.Login(c.Request().Context(), clientID, req)
	if result.State == models.StateDiscarded {
		return nil
	}

	page := authPage{
		pageData:  newPageData(c, "Login"),
		Email:     req.Email,
		Message:   result.DisplayMessage(),
		Failure:   result.Failure,
		Succeeded: result.Succeeded(),
	}
	return SendSubmitResult(c, "login.html", page, result)
}

// Logout clears this client's credential and mounted views
// @Summary Logout
// @Tags Authentication
// @Produce html,json
// @Success 303 "Redirect to /login"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Session store error"
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidClient)
	}

	if err := h.sessionService.Clear(c.Request().Context(), clientID); err != nil {
		h.logger.Error("Failed to clear session on logout",
			"trace_id", getTraceID(c),
			"client_id", clientID,
			"error", err,
		)
		return SendStoreError(c, err)
	}
	h.viewService.UnmountClient(clientID)

	return SendRedirect(c, &models.Redirect{To: services.LoginPath})
}
