package costeorepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const findQuery = "SELECT id, tienda_id, producto_externo_id, nombre FROM costeos WHERE tienda_id = $1 AND producto_externo_id = $2 LIMIT 1"

func TestRepository_FindByExternalProduct(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	tests := []struct {
		name      string
		productID string
		mockSetup func()
		expectErr bool
		result    *domain.Costeo
	}{
		{
			name:      "Costeo found",
			productID: "P1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs("store-1", "P1").
					WillReturnRows(pgxmock.NewRows([]string{"id", "tienda_id", "producto_externo_id", "nombre"}).
						AddRow("costeo-1", "store-1", "P1", "Camiseta"))
			},
			result: &domain.Costeo{ID: "costeo-1", StoreID: "store-1", ExternalProductID: "P1", Name: "Camiseta"},
		},
		{
			name:      "Costeo not found",
			productID: "P9",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs("store-1", "P9").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:      "Database error",
			productID: "P1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs("store-1", "P1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByExternalProduct(context.Background(), "store-1", tt.productID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
