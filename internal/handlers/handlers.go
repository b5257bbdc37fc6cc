package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/costeo/docs"
	"github.com/GlebRadaev/costeo/internal/config"
	balancehandlers "github.com/GlebRadaev/costeo/internal/handlers/balance"
	cronhandlers "github.com/GlebRadaev/costeo/internal/handlers/cron"
	webhookhandlers "github.com/GlebRadaev/costeo/internal/handlers/webhook"
	"github.com/GlebRadaev/costeo/internal/service"
	"github.com/GlebRadaev/costeo/pkg/auth"
	"github.com/GlebRadaev/costeo/pkg/clients"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type WebhookHandler interface {
	Redirect(w http.ResponseWriter, r *http.Request)
	Ingest(w http.ResponseWriter, r *http.Request)
}

type CronHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WebhookHandler WebhookHandler
	CronHandler    CronHandler
	BalanceHandler BalanceHandler

	jwtService auth.JWTServiceInterface
	cronSecret string
}

func New(s *service.Services, cfg *config.Config, client clients.HTTPClientI, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		WebhookHandler: webhookhandlers.New(s.ResolverService, s.IngestService, client, cfg.IngestURL),
		CronHandler:    cronhandlers.New(s.ScanService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		jwtService:     jwtService,
		cronSecret:     cfg.CronSecret,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/webhooks", func(r chi.Router) {
		// the handler answers 405 itself
		r.HandleFunc("/r", h.WebhookHandler.Redirect)
		r.HandleFunc("/r/{shortID}", h.WebhookHandler.Redirect)
		r.Post("/orders", h.WebhookHandler.Ingest)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.SharedSecretMiddleware(h.cronSecret))
		r.Get("/api/cron/scan", h.CronHandler.Scan)
		r.Post("/api/cron/scan", h.CronHandler.Scan)
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService))
		r.Get("/balance", h.BalanceHandler.GetBalance)
		r.Post("/withdrawals", h.BalanceHandler.Withdraw)
		r.Get("/withdrawals", h.BalanceHandler.GetWithdrawals)
	})

	return r
}
