package commissionrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/GlebRadaev/costeo/internal/pg"
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

// FindPendingExpiringBetween returns pending commissions expiring in [from, to).
func (r *Repository) FindPendingExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Commission, error) {
	query := `
        SELECT c.id, c.user_id, c.monto, c.fecha_expiracion, c.estado, u.nombre, u.email
        FROM comisiones c
        JOIN usuarios u ON u.id = c.user_id
        WHERE c.estado = $1 AND c.fecha_expiracion >= $2 AND c.fecha_expiracion < $3
        ORDER BY c.fecha_expiracion ASC
    `
	return r.find(ctx, query, domain.CommissionPending, from, to)
}

// FindPendingExpiredBy returns pending commissions whose expiry is at or before now.
func (r *Repository) FindPendingExpiredBy(ctx context.Context, now time.Time) ([]domain.Commission, error) {
	query := `
        SELECT c.id, c.user_id, c.monto, c.fecha_expiracion, c.estado, u.nombre, u.email
        FROM comisiones c
        JOIN usuarios u ON u.id = c.user_id
        WHERE c.estado = $1 AND c.fecha_expiracion <= $2
        ORDER BY c.fecha_expiracion ASC
    `
	return r.find(ctx, query, domain.CommissionPending, now)
}

// MarkExpired moves a pending commission to its terminal state. Rows that are
// no longer pending are left untouched.
func (r *Repository) MarkExpired(ctx context.Context, id string) error {
	query := `
        UPDATE comisiones
        SET estado = $1
        WHERE id = $2 AND estado = $3
    `
	_, err := r.db.Exec(ctx, query, domain.CommissionExpired, id, domain.CommissionPending)
	if err != nil {
		zap.L().Error("can't mark commission expired", zap.Error(err), zap.String("commission_id", id))
		return err
	}
	return nil
}

func (r *Repository) find(ctx context.Context, query string, args ...any) ([]domain.Commission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get commissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var commissions []domain.Commission
	for rows.Next() {
		var c domain.Commission
		if err := rows.Scan(&c.ID, &c.UserID, &c.Amount, &c.ExpiresAt, &c.Status, &c.UserName, &c.UserEmail); err != nil {
			zap.L().Error("can't scan commission row", zap.Error(err))
			return nil, err
		}
		commissions = append(commissions, c)
	}
	return commissions, rows.Err()
}
