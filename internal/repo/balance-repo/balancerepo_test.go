package balancerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/GlebRadaev/costeo/internal/pg"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	creditsQuery = "SELECT id, user_id, monto, tipo, creado_en FROM creditos WHERE user_id = $1 ORDER BY creado_en ASC"
	lockQuery    = "SELECT pg_advisory_xact_lock(hashtext($1))"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func TestRepository_GetCredits(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Credit
	}{
		{
			name: "Credits found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(creditsQuery)).
					WithArgs("user-1").
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "monto", "tipo", "creado_en"}).
						AddRow("cr-1", "user-1", 100.0, "comision", createdAt))
			},
			result: []domain.Credit{{ID: "cr-1", UserID: "user-1", Amount: 100.0, Type: "comision", CreatedAt: createdAt}},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(creditsQuery)).
					WithArgs("user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetCredits(context.Background(), "user-1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_WithUserLock(t *testing.T) {
	repo, mock, tx := NewMock(t)

	t.Run("Runs fn after taking the lock", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta(lockQuery)).
				WithArgs("user-1").
				WillReturnResult(pgxmock.NewResult("SELECT", 1))
			return fn(ctx)
		})

		called := false
		err := repo.WithUserLock(context.Background(), "user-1", func(ctx context.Context) error {
			called = true
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("Lock failure skips fn", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta(lockQuery)).
				WithArgs("user-1").
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})

		called := false
		err := repo.WithUserLock(context.Background(), "user-1", func(ctx context.Context) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
