package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vmorales/condoledger/internal/adapter/http/handler"
	"github.com/vmorales/condoledger/internal/adapter/http/middleware"
	"github.com/vmorales/condoledger/internal/domain"
	"github.com/vmorales/condoledger/internal/infrastructure/auth"
	"github.com/vmorales/condoledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	StatementHandler   *handler.StatementHandler
	MovementHandler    *handler.MovementHandler
	DelinquencyHandler *handler.DelinquencyHandler
	HealthHandler      *handler.HealthHandler
	JWTManager         *auth.JWTManager
	IdempotencyStore   usecase.IdempotencyStore
	RateLimiter        *middleware.RateLimiter
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Post("/auth/login", cfg.AuthHandler.Login)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			r.Get("/auth/me", cfg.AuthHandler.GetCurrentUser)

			// Residents consult their own unit
			r.With(middleware.RequireAnyRole(domain.RoleResident)).
				Get("/units/me/statement", cfg.StatementHandler.GetOwn)

			// Administration
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAnyRole(domain.RoleAdmin))

				r.Post("/users", cfg.AuthHandler.CreateUser)
				r.Get("/units/{unitID}/statement", cfg.StatementHandler.GetByUnit)
				r.Post("/movements/payments", cfg.MovementHandler.CreatePayment)
				r.Post("/movements/fines", cfg.MovementHandler.CreateFine)
				r.Post("/movements/dues", cfg.MovementHandler.CreateDues)
				r.Post("/delinquency/consolidate", cfg.DelinquencyHandler.Consolidate)
				r.Get("/delinquency", cfg.DelinquencyHandler.Board)
			})

			// Treasury operators share the treasury endpoint with admins
			r.With(middleware.RequireAnyRole(domain.RoleAdmin, domain.RoleTreasury)).
				Post("/movements/treasury", cfg.MovementHandler.CreateTreasury)
		})
	})

	return r
}
