package costeorepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/GlebRadaev/costeo/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindByExternalProduct returns nil when the store has no costeo for the product.
func (r *Repository) FindByExternalProduct(ctx context.Context, storeID, productID string) (*domain.Costeo, error) {
	query := `
        SELECT id, tienda_id, producto_externo_id, nombre
        FROM costeos
        WHERE tienda_id = $1 AND producto_externo_id = $2
        LIMIT 1
    `
	var costeo domain.Costeo
	err := r.db.QueryRow(ctx, query, storeID, productID).Scan(&costeo.ID, &costeo.StoreID, &costeo.ExternalProductID, &costeo.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find costeo", zap.Error(err), zap.String("product_id", productID))
		return nil, err
	}
	return &costeo, nil
}
