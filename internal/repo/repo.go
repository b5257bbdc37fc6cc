package repo

import (
	"github.com/GlebRadaev/costeo/internal/pg"
	balancerepo "github.com/GlebRadaev/costeo/internal/repo/balance-repo"
	commissionrepo "github.com/GlebRadaev/costeo/internal/repo/commission-repo"
	costeorepo "github.com/GlebRadaev/costeo/internal/repo/costeo-repo"
	notificationrepo "github.com/GlebRadaev/costeo/internal/repo/notification-repo"
	orderrepo "github.com/GlebRadaev/costeo/internal/repo/order-repo"
	storerepo "github.com/GlebRadaev/costeo/internal/repo/store-repo"
	subscriptionrepo "github.com/GlebRadaev/costeo/internal/repo/subscription-repo"
	userrepo "github.com/GlebRadaev/costeo/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/costeo/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/costeo/internal/service/balanceservice"
	"github.com/GlebRadaev/costeo/internal/service/ingestservice"
	"github.com/GlebRadaev/costeo/internal/service/resolverservice"
	"github.com/GlebRadaev/costeo/internal/service/scanservice"
)

// StoreRepo serves both the short id resolver and ingestion.
type StoreRepo interface {
	resolverservice.Repo
	ingestservice.StoreRepo
}

type Repositories struct {
	StoreRepo        StoreRepo
	CosteoRepo       ingestservice.CosteoRepo
	OrderRepo        ingestservice.OrderRepo
	SubscriptionRepo scanservice.SubscriptionRepo
	CommissionRepo   scanservice.CommissionRepo
	UserRepo         scanservice.UserRepo
	NotificationRepo scanservice.Ledger
	BalanceRepo      balanceservice.BalanceRepo
	Withdrawal       balanceservice.WithdrawalRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		StoreRepo:        storerepo.New(conn),
		CosteoRepo:       costeorepo.New(conn),
		OrderRepo:        orderrepo.New(conn, txManager),
		SubscriptionRepo: subscriptionrepo.New(conn),
		CommissionRepo:   commissionrepo.New(conn),
		UserRepo:         userrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
		BalanceRepo:      balancerepo.New(conn, txManager),
		Withdrawal:       withdrawalrepo.New(conn),
	}
}
