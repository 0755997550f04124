package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/visit-service/internal/application/visit"
	"github.com/baechuer/visit-service/internal/config"
	"github.com/baechuer/visit-service/internal/infrastructure/caching/memtable"
	rediscache "github.com/baechuer/visit-service/internal/infrastructure/caching/redis"
	"github.com/baechuer/visit-service/internal/infrastructure/db/postgres"
	rabbitpub "github.com/baechuer/visit-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/visit-service/internal/logger"
	"github.com/baechuer/visit-service/internal/seed"
	"github.com/baechuer/visit-service/internal/store"
	"github.com/baechuer/visit-service/internal/transport/http/handlers"
	"github.com/baechuer/visit-service/internal/transport/http/router"
)

// sysClock implements visit.Clock using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service
type App struct {
	Config  *config.Config
	Server  *http.Server
	Service *visit.Service
	Loader  *seed.Loader

	Publisher *rabbitpub.Publisher
	Redis     *rediscache.Client
	CityDB    *sql.DB
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("app init failed")
	}
	defer app.Close()

	app.Loader.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Str("tz", cfg.TimeZone).Msg("listening")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		zlog.Fatal().Err(err).Msg("server crashed")
	case <-ctx.Done():
	}

	zlog.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("server shutdown failed")
	}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// 1) Infrastructure
	var cache visit.Cache
	if cfg.RedisURL != "" {
		rc, err := rediscache.New(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		app.Redis = rc
		cache = rc
		zlog.Info().Msg("stats cache: redis")
	} else {
		cache = memtable.New(cfg.LocalCacheBytes)
		zlog.Info().Int("bytes", cfg.LocalCacheBytes).Msg("stats cache: local")
	}

	var pub visit.EventPublisher = visit.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Publisher = p
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	var cities seed.CitySource = seed.DemoCitySource{}
	if cfg.CityDatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.CityDatabaseURL)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.CityDB = db
		cities = postgres.New(db)
		zlog.Info().Msg("cities: postgres")
	}

	// 2) Application
	clock := sysClock{}
	svc := visit.New(
		store.NewEventStore(),
		store.NewCityDirectory(),
		clock,
		pub,
		cache,
		cfg.Location,
		cfg.CacheTTLStats,
		cfg.WizardTTL,
	)
	app.Service = svc

	gen := seed.NewGenerator(cfg.SeedRandomSeed, cfg.Location)
	app.Loader = seed.NewLoader(svc, cities, gen, clock, cfg.SeedEnabled)

	// 3) Transport
	h := router.Handlers{
		Events: handlers.NewEventsHandler(svc, clock),
		Cities: handlers.NewCitiesHandler(svc),
		Stats:  handlers.NewStatsHandler(svc),
		Wizard: handlers.NewWizardHandler(svc),
		Health: handlers.NewHealthHandler(app.Loader),
	}

	// 4) Server
	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(h, cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return app, nil
}

// Close releases the outbound connections.
func (a *App) Close() {
	if a.Publisher != nil {
		_ = a.Publisher.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.CityDB != nil {
		_ = a.CityDB.Close()
	}
}
