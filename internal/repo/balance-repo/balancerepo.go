package balancerepo

import (
	"context"

	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/GlebRadaev/costeo/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetCredits(ctx context.Context, userID string) ([]domain.Credit, error) {
	query := `
        SELECT id, user_id, monto, tipo, creado_en
        FROM creditos
        WHERE user_id = $1
        ORDER BY creado_en ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to get credits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var credits []domain.Credit
	for rows.Next() {
		var c domain.Credit
		if err := rows.Scan(&c.ID, &c.UserID, &c.Amount, &c.Type, &c.CreatedAt); err != nil {
			zap.L().Error("failed to scan credit row", zap.Error(err))
			return nil, err
		}
		credits = append(credits, c)
	}
	return credits, rows.Err()
}

// WithUserLock runs fn in a transaction holding an advisory lock on the user,
// so concurrent withdrawal requests see each other's rows.
func (r *Repository) WithUserLock(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	query := `SELECT pg_advisory_xact_lock(hashtext($1))`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, userID); err != nil {
			zap.L().Error("failed to lock user balance", zap.Error(err))
			return err
		}
		return fn(ctx)
	})
}
