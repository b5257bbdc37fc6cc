package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	createQuery = "INSERT INTO retiros (user_id, monto, estado, creado_en) VALUES ($1, $2, $3, $4) RETURNING id"
	listQuery   = "SELECT id, user_id, monto, estado, creado_en FROM retiros WHERE user_id = $1 ORDER BY creado_en DESC"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_CreateWithdrawal(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name       string
		withdrawal *domain.Withdrawal
		mockSetup  func()
		expectErr  bool
		wantID     string
	}{
		{
			name:       "Withdrawal created",
			withdrawal: &domain.Withdrawal{UserID: "user-1", Amount: 50, Status: domain.WithdrawalPending, CreatedAt: now},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs("user-1", 50.0, domain.WithdrawalPending, now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("wd-1"))
			},
			wantID: "wd-1",
		},
		{
			name:       "Database error",
			withdrawal: &domain.Withdrawal{UserID: "user-1", Amount: 50, Status: domain.WithdrawalPending, CreatedAt: now},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs("user-1", 50.0, domain.WithdrawalPending, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateWithdrawal(context.Background(), tt.withdrawal)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, result.ID)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithdrawalsByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	columns := []string{"id", "user_id", "monto", "estado", "creado_en"}

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("wd-2", "user-1", 30.0, domain.WithdrawalApproved, now).
			AddRow("wd-1", "user-1", 20.0, domain.WithdrawalRejected, now.Add(-time.Hour)))

	result, err := repo.GetWithdrawalsByUserID(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.WithdrawalApproved, result[0].Status)
	assert.Equal(t, 20.0, result[1].Amount)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("user-2").
		WillReturnError(errors.New("database error"))

	_, err = repo.GetWithdrawalsByUserID(context.Background(), "user-2")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
