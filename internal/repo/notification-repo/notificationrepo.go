package notificationrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/costeo/internal/pg"
	"go.uber.org/zap"
)

const dayLayout = "2006-01-02"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Claim records that event was sent for entityID on day. It returns false when
// the triple was already claimed.
func (r *Repository) Claim(ctx context.Context, entityID, event string, day time.Time) (bool, error) {
	query := `
        INSERT INTO notificaciones_enviadas (entidad_id, evento, fecha)
        VALUES ($1, $2, $3)
        ON CONFLICT (entidad_id, evento, fecha) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, entityID, event, day.Format(dayLayout))
	if err != nil {
		zap.L().Error("can't claim notification", zap.Error(err), zap.String("entity_id", entityID), zap.String("event", event))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
