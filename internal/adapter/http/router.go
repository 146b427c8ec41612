package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/bayufn/artha/internal/adapter/http/handler"
	"github.com/bayufn/artha/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	Logger             zerolog.Logger
	TransactionHandler *handler.TransactionHandler
	CatalogHandler     *handler.CatalogHandler
	ReportHandler      *handler.ReportHandler
	InsightHandler     *handler.InsightHandler
	StateHandler       *handler.StateHandler
	HealthHandler      *handler.HealthHandler
	ActivationGate     middleware.ActivationGate
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// The state snapshot and activation stay reachable while locked.
		r.Get("/state", cfg.StateHandler.Get)
		r.Post("/activate", cfg.StateHandler.Activate)

		r.Group(func(r chi.Router) {
			if cfg.ActivationGate != nil {
				activation := middleware.NewActivationMiddleware(cfg.ActivationGate)
				r.Use(activation.Wrap)
			}

			// Transactions
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/", cfg.TransactionHandler.Create)
				r.Get("/", cfg.TransactionHandler.List)
				r.Get("/{id}", cfg.TransactionHandler.Get)
				r.Put("/{id}", cfg.TransactionHandler.Update)
				r.Delete("/{id}", cfg.TransactionHandler.Delete)
			})

			// Reference entities
			r.Route("/wallets", func(r chi.Router) {
				r.Post("/", cfg.CatalogHandler.SaveWallet)
				r.Delete("/{id}", cfg.CatalogHandler.DeleteWallet)
			})
			r.Route("/goals", func(r chi.Router) {
				r.Post("/", cfg.CatalogHandler.SaveGoal)
				r.Delete("/{id}", cfg.CatalogHandler.DeleteGoal)
			})
			r.Route("/bills", func(r chi.Router) {
				r.Post("/", cfg.CatalogHandler.SaveBill)
				r.Delete("/{id}", cfg.CatalogHandler.DeleteBill)
			})
			r.Route("/debts", func(r chi.Router) {
				r.Post("/", cfg.CatalogHandler.SaveDebt)
				r.Delete("/{id}", cfg.CatalogHandler.DeleteDebt)
			})
			r.Route("/categories", func(r chi.Router) {
				r.Post("/", cfg.CatalogHandler.SaveCategory)
				r.Delete("/{id}", cfg.CatalogHandler.DeleteCategory)
			})
			r.Route("/budgets", func(r chi.Router) {
				r.Put("/", cfg.CatalogHandler.SetBudget)
				r.Delete("/{categoryId}", cfg.CatalogHandler.DeleteBudget)
			})

			// Notifications
			r.Route("/notifications", func(r chi.Router) {
				r.Post("/refresh", cfg.CatalogHandler.RefreshNotifications)
				r.Delete("/{id}", cfg.CatalogHandler.DismissNotification)
			})

			// Reports
			r.Route("/reports", func(r chi.Router) {
				r.Get("/summary", cfg.ReportHandler.Summary)
				r.Get("/breakdown", cfg.ReportHandler.Breakdown)
				r.Get("/allocation", cfg.ReportHandler.Allocation)
				r.Get("/monthly", cfg.ReportHandler.Monthly)
				r.Get("/budgets", cfg.ReportHandler.Budgets)
				r.Get("/wealth", cfg.ReportHandler.Wealth)
			})

			// Insights
			r.Get("/insights", cfg.InsightHandler.Get)
		})
	})

	return r
}
