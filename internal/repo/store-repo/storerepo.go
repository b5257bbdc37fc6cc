package storerepo

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

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	query := `
        SELECT id, user_id, nombre, webhook_short_id, credenciales IS NOT NULL
        FROM tiendas
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByShortID(ctx context.Context, shortID string) (*domain.Store, error) {
	query := `
        SELECT id, user_id, nombre, webhook_short_id, credenciales IS NOT NULL
        FROM tiendas
        WHERE webhook_short_id = $1
    `
	return r.findOne(ctx, query, shortID)
}

func (r *Repository) findOne(ctx context.Context, query string, arg string) (*domain.Store, error) {
	var store domain.Store
	err := r.db.QueryRow(ctx, query, arg).Scan(&store.ID, &store.UserID, &store.Name, &store.WebhookShortID, &store.HasCredentials)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find store", zap.Error(err))
		return nil, err
	}
	return &store, nil
}
