package userrepo

import (
	"context"

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

// FindReferralMilestones returns users whose referral count sits on a multiple
// of step strictly between zero and final.
func (repo *Repository) FindReferralMilestones(ctx context.Context, step, final int) ([]domain.User, error) {
	query := `
        SELECT id, nombre, email, plan, referidos_count
        FROM usuarios
        WHERE referidos_count > 0 AND referidos_count < $1 AND referidos_count % $2 = 0
        ORDER BY referidos_count DESC
    `
	rows, err := repo.db.Query(ctx, query, final, step)
	if err != nil {
		zap.L().Error("can't get referral milestones", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Plan, &u.ReferralCount); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
