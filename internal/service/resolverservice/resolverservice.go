package resolverservice

import (
	"context"
	"errors"
	"regexp"

	"github.com/GlebRadaev/costeo/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=resolverservice.go -destination=mock_resolverservice.go -package=resolverservice

type Repo interface {
	FindByShortID(ctx context.Context, shortID string) (*domain.Store, error)
}

// Cache memoizes short id lookups. Misses report ok == false.
type Cache interface {
	GetStoreID(ctx context.Context, shortID string) (storeID string, ok bool, err error)
	SetStoreID(ctx context.Context, shortID, storeID string) error
}

var (
	ErrShortIDRequired  = errors.New("short id is required")
	ErrShortIDMalformed = errors.New("short id is malformed")
	ErrStoreNotFound    = errors.New("store not found")
)

var shortIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{4,64}$`)

type Service struct {
	repo  Repo
	cache Cache
}

// New accepts a nil cache.
func New(repo Repo, cache Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

// Resolve maps a webhook short id to the owning store id.
func (s *Service) Resolve(ctx context.Context, shortID string) (string, error) {
	if shortID == "" {
		return "", ErrShortIDRequired
	}
	if !shortIDPattern.MatchString(shortID) {
		return "", ErrShortIDMalformed
	}

	if s.cache != nil {
		storeID, ok, err := s.cache.GetStoreID(ctx, shortID)
		if err != nil {
			zap.L().Warn("short id cache read failed", zap.Error(err))
		}
		if ok {
			return storeID, nil
		}
	}

	store, err := s.repo.FindByShortID(ctx, shortID)
	if err != nil {
		return "", err
	}
	if store == nil {
		zap.L().Warn("unknown webhook short id", zap.String("short_id", shortID))
		return "", ErrStoreNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetStoreID(ctx, shortID, store.ID); err != nil {
			zap.L().Warn("short id cache write failed", zap.Error(err))
		}
	}
	return store.ID, nil
}
