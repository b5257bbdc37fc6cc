package service

import (
	"context"
	"testing"

	"github.com/GlebRadaev/costeo/internal/config"
	"github.com/GlebRadaev/costeo/internal/metrics"
	"github.com/GlebRadaev/costeo/internal/repo"
	"github.com/GlebRadaev/costeo/internal/service/balanceservice"
	"github.com/GlebRadaev/costeo/internal/service/ingestservice"
	"github.com/GlebRadaev/costeo/internal/service/resolverservice"
	"github.com/GlebRadaev/costeo/internal/service/scanservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type storeRepo struct {
	*resolverservice.MockRepo
	*ingestservice.MockStoreRepo
}

type notifier struct {
	*scanservice.MockNotifier
	sales *ingestservice.MockNotifier
}

func (n notifier) FireAbout(ctx context.Context, code, targetID, refersToUserID string, data map[string]string) {
	n.sales.FireAbout(ctx, code, targetID, refersToUserID, data)
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		StoreRepo:        storeRepo{resolverservice.NewMockRepo(ctrl), ingestservice.NewMockStoreRepo(ctrl)},
		CosteoRepo:       ingestservice.NewMockCosteoRepo(ctrl),
		OrderRepo:        ingestservice.NewMockOrderRepo(ctrl),
		SubscriptionRepo: scanservice.NewMockSubscriptionRepo(ctrl),
		CommissionRepo:   scanservice.NewMockCommissionRepo(ctrl),
		UserRepo:         scanservice.NewMockUserRepo(ctrl),
		NotificationRepo: scanservice.NewMockLedger(ctrl),
		BalanceRepo:      balanceservice.NewMockBalanceRepo(ctrl),
		Withdrawal:       balanceservice.NewMockWithdrawalRepo(ctrl),
	}
	cfg := &config.Config{RetentionDays: 15, Scan: config.Scan{Timezone: "UTC"}}

	services := New(cfg, repos, notifier{scanservice.NewMockNotifier(ctrl), ingestservice.NewMockNotifier(ctrl)}, nil, metrics.Registry("costeo"))

	assert.NotNil(t, services.ResolverService)
	assert.NotNil(t, services.IngestService)
	assert.NotNil(t, services.ScanService)
	assert.NotNil(t, services.BalanceService)
}
