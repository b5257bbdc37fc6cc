package service

import (
	"github.com/GlebRadaev/costeo/internal/config"
	"github.com/GlebRadaev/costeo/internal/handlers/balance"
	"github.com/GlebRadaev/costeo/internal/handlers/cron"
	"github.com/GlebRadaev/costeo/internal/handlers/webhook"
	"github.com/GlebRadaev/costeo/internal/metrics"
	"github.com/GlebRadaev/costeo/internal/repo"
	balanceservice "github.com/GlebRadaev/costeo/internal/service/balanceservice"
	ingestservice "github.com/GlebRadaev/costeo/internal/service/ingestservice"
	resolverservice "github.com/GlebRadaev/costeo/internal/service/resolverservice"
	scanservice "github.com/GlebRadaev/costeo/internal/service/scanservice"
)

// Notifier is satisfied by the dispatch gateway.
type Notifier interface {
	scanservice.Notifier
	ingestservice.Notifier
}

type Services struct {
	ResolverService webhook.Resolver
	IngestService   webhook.Ingester
	ScanService     cron.Service
	BalanceService  balance.Service
}

// New wires the services. cache may be nil.
func New(
	cfg *config.Config,
	repo *repo.Repositories,
	notifier Notifier,
	cache resolverservice.Cache,
	m *metrics.Metrics,
) *Services {
	return &Services{
		ResolverService: resolverservice.New(repo.StoreRepo, cache),
		IngestService:   ingestservice.New(repo.StoreRepo, repo.CosteoRepo, repo.OrderRepo, notifier, m),
		ScanService: scanservice.New(cfg.Scan,
			repo.SubscriptionRepo, repo.CommissionRepo, repo.UserRepo, repo.NotificationRepo, notifier, m),
		BalanceService: balanceservice.New(repo.BalanceRepo, repo.Withdrawal, cfg.RetentionDays),
	}
}
