package balanceservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/GlebRadaev/costeo/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

type BalanceRepo interface {
	GetCredits(ctx context.Context, userID string) ([]domain.Credit, error)
	WithUserLock(ctx context.Context, userID string, fn func(ctx context.Context) error) error
}
type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsByUserID(ctx context.Context, userID string) ([]domain.Withdrawal, error)
}

type Service struct {
	balanceRepo    BalanceRepo
	withdrawalRepo WithdrawalRepo
	retentionDays  int
	now            func() time.Time
}

func New(balanceRepo BalanceRepo, withdrawalRepo WithdrawalRepo, retentionDays int) *Service {
	return &Service{
		balanceRepo:    balanceRepo,
		withdrawalRepo: withdrawalRepo,
		retentionDays:  retentionDays,
		now:            time.Now,
	}
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// ComputeBalance splits credits at now minus the retention period. Credits
// created after the cutoff are pending. Withdrawals that were not rejected
// are netted out of the matured part, which never goes below zero.
func ComputeBalance(credits []domain.Credit, withdrawals []domain.Withdrawal, retentionDays int, now time.Time) domain.Balance {
	cutoff := now.Add(-time.Duration(retentionDays) * 24 * time.Hour)

	var b domain.Balance
	var matured float64
	for _, c := range credits {
		b.Total += c.Amount
		if c.CreatedAt.After(cutoff) {
			b.Pending += c.Amount
		} else {
			matured += c.Amount
		}
	}
	for _, w := range withdrawals {
		if counts(w.Status) {
			b.Withdrawn += w.Amount
		}
	}
	b.Available = math.Max(0, matured-b.Withdrawn)
	return b
}

func counts(status string) bool {
	switch status {
	case domain.WithdrawalPending, domain.WithdrawalApproved, domain.WithdrawalPaid:
		return true
	}
	return false
}

func (s *Service) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	credits, err := s.balanceRepo.GetCredits(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get credits", zap.Error(err))
		return nil, err
	}
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	balance := ComputeBalance(credits, withdrawals, s.retentionDays, s.now())
	return &balance, nil
}

// Withdraw records a pending withdrawal after checking it against the
// available balance under the user's lock.
func (s *Service) Withdraw(ctx context.Context, userID string, amount float64) (*domain.Withdrawal, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	var created *domain.Withdrawal
	err := s.balanceRepo.WithUserLock(ctx, userID, func(ctx context.Context) error {
		balance, err := s.GetBalance(ctx, userID)
		if err != nil {
			return err
		}
		if amount > balance.Available {
			return ErrInsufficientBalance
		}

		created, err = s.withdrawalRepo.CreateWithdrawal(ctx, &domain.Withdrawal{
			UserID:    userID,
			Amount:    amount,
			Status:    domain.WithdrawalPending,
			CreatedAt: s.now(),
		})
		if err != nil {
			zap.L().Error("failed to create withdrawal record", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
