package repo

import (
	"testing"

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
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &storerepo.Repository{}, repo.StoreRepo)
	assert.IsType(t, &costeorepo.Repository{}, repo.CosteoRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &subscriptionrepo.Repository{}, repo.SubscriptionRepo)
	assert.IsType(t, &commissionrepo.Repository{}, repo.CommissionRepo)
	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &notificationrepo.Repository{}, repo.NotificationRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.Withdrawal)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
