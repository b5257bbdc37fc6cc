package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/costeo/internal/cache"
	"github.com/GlebRadaev/costeo/internal/config"
	"github.com/GlebRadaev/costeo/internal/dispatch"
	"github.com/GlebRadaev/costeo/internal/handlers"
	"github.com/GlebRadaev/costeo/internal/metrics"
	"github.com/GlebRadaev/costeo/internal/pg"
	"github.com/GlebRadaev/costeo/internal/repo"
	"github.com/GlebRadaev/costeo/internal/service"
	"github.com/GlebRadaev/costeo/internal/service/resolverservice"
	"github.com/GlebRadaev/costeo/pkg/auth"
	"github.com/GlebRadaev/costeo/pkg/clients"
	"github.com/GlebRadaev/costeo/pkg/logger"
)

const metricsNamespace = "costeo"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	core *Core
	api  *handlers.Handlers

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

// Core is the wiring shared by the HTTP server and the operator CLI.
type Core struct {
	Pool     *pgxpool.Pool
	Repo     *repo.Repositories
	Services *service.Services
	Gateway  *dispatch.Gateway
	Client   clients.HTTPClientI
	JWT      auth.JWTServiceInterface

	cache *cache.Redis
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg, logger.ComponentServer)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	core, err := NewCore(ctx, cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.core = core
	a.api = handlers.New(core.Services, cfg, core.Client, core.JWT)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// NewCore connects to the store, runs migrations and builds every service.
func NewCore(ctx context.Context, cfg *config.Config) (*Core, error) {
	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	m := metrics.Registry(metricsNamespace)
	jwtService := auth.NewJWTService(cfg.ServiceSecret)
	client := clients.NewHTTPClient()

	core := &Core{
		Pool:    pool,
		Repo:    repo.New(conn, txManager),
		Gateway: dispatch.New(cfg, client, jwtService, m),
		Client:  client,
		JWT:     jwtService,
	}

	var shortIDCache resolverservice.Cache
	if cfg.RedisAddr != "" {
		core.cache = cache.New(cache.Config{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, TTL: cfg.ShortIDTTL})
		if err := core.cache.Ping(ctx); err != nil {
			zap.L().Warn("redis unavailable, short id lookups go to the store", zap.Error(err))
		}
		shortIDCache = core.cache
	}

	core.Services = service.New(cfg, core.Repo, core.Gateway, shortIDCache, m)
	return core, nil
}

// Close drains queued notifications before releasing connections.
func (c *Core) Close() {
	c.Gateway.Close()
	if c.cache != nil {
		if err := c.cache.Close(); err != nil {
			zap.L().Error("failed to close redis", zap.Error(err))
		}
	}
	c.Pool.Close()
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.core.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
