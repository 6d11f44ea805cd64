package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"expense-tracker-web/internal/config"
	"expense-tracker-web/internal/handlers"
	"expense-tracker-web/internal/middleware"
	"expense-tracker-web/internal/services"
	"expense-tracker-web/web"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the wired services the router serves
type Dependencies struct {
	Config      *config.Config
	Store       handlers.HealthChecker
	Breaker     services.CircuitBreakerInterface
	Sessions    services.SessionServiceInterface
	Fetch       services.FetchServiceInterface
	Submit      services.SubmitServiceInterface
	Views       services.ViewServiceInterface
	Tokens      services.ClientTokenServiceInterface
	Metrics     services.MetricsRecorderInterface
	RateLimiter *middleware.RateLimiter
	Gatherer    prometheus.Gatherer
	Logger      *slog.Logger
}

// New builds the echo instance with every route and middleware
func New(deps Dependencies) (*echo.Echo, error) {
	renderer, err := handlers.NewTemplateRenderer(web.FS)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = renderer
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.Metrics, deps.Logger)

	// PanicRecovery stays outermost; RequestID must run before the logger
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(middleware.SecurityHeaders())
	if deps.RateLimiter != nil {
		e.Use(deps.RateLimiter.Middleware())
	}

	RegisterRoutes(e, deps)

	return e, nil
}

// RegisterRoutes wires every screen and action. Infrastructure endpoints
// skip the client cookie.
func RegisterRoutes(e *echo.Echo, deps Dependencies) {
	healthHandler := handlers.NewHealthCheckHandler(deps.Store, deps.Breaker)
	dashboardHandler := handlers.NewDashboardHandler()
	authHandler := handlers.NewAuthHandler(deps.Submit, deps.Sessions, deps.Views, deps.Logger)
	transactionHandler := handlers.NewTransactionHandler(deps.Fetch, deps.Submit, deps.Views, deps.Logger)
	profileHandler := handlers.NewProfileHandler(deps.Fetch, deps.Views)
	reportHandler := handlers.NewReportHandler(deps.Fetch, deps.Views)

	e.GET("/health", healthHandler.HealthCheck)
	if deps.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	client := middleware.ClientSession(deps.Tokens, deps.Config.Session, deps.Logger)
	guest := middleware.RedirectIfAuthenticated(deps.Sessions, deps.Logger)
	requireSession := middleware.RequireSession(deps.Sessions, deps.Logger)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, services.DashboardPath)
	})
	e.GET(services.DashboardPath, dashboardHandler.Dashboard, client)

	e.GET("/register", authHandler.RegisterPage, client, guest)
	e.POST("/register", authHandler.Register, client, guest)
	e.GET(services.LoginPath, authHandler.LoginPage, client, guest)
	e.POST(services.LoginPath, authHandler.Login, client, guest)
	e.POST("/logout", authHandler.Logout, client)

	e.GET("/profile", profileHandler.Profile, client, requireSession)
	e.GET("/reports", reportHandler.Report, client, requireSession)

	transactions := e.Group("/transactions", client, requireSession)
	transactions.GET("", transactionHandler.List)
	transactions.GET("/views/:id", transactionHandler.Refilter)
	transactions.POST("/add-money", transactionHandler.AddMoney)
	transactions.POST("/spend-money", transactionHandler.SpendMoney)
}
