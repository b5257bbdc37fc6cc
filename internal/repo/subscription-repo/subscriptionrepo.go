package subscriptionrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/GlebRadaev/costeo/internal/pg"
	"go.uber.org/zap"
)

const FreePlan = "free"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindExpiringBetween returns active paid subscriptions expiring in [from, to).
func (r *Repository) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.ExpiringSubscription, error) {
	query := `
        SELECT s.id, s.user_id, s.plan, s.fecha_expiracion, u.nombre, u.email
        FROM suscripciones s
        JOIN usuarios u ON u.id = s.user_id
        WHERE s.estado = 'activa' AND s.plan <> $1
            AND s.fecha_expiracion >= $2 AND s.fecha_expiracion < $3
        ORDER BY s.fecha_expiracion ASC
    `
	rows, err := r.db.Query(ctx, query, FreePlan, from, to)
	if err != nil {
		zap.L().Error("can't get expiring subscriptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []domain.ExpiringSubscription
	for rows.Next() {
		var s domain.ExpiringSubscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.Plan, &s.ExpiresAt, &s.UserName, &s.UserEmail); err != nil {
			zap.L().Error("can't scan subscription row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
