package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Allen-Pinto/Highway-Delite/internal/config"
	"github.com/Allen-Pinto/Highway-Delite/internal/handler"
	"github.com/Allen-Pinto/Highway-Delite/internal/lock"
	"github.com/Allen-Pinto/Highway-Delite/internal/middleware"
	"github.com/Allen-Pinto/Highway-Delite/internal/notification"
	"github.com/Allen-Pinto/Highway-Delite/internal/repository"
	"github.com/Allen-Pinto/Highway-Delite/internal/router"
	"github.com/Allen-Pinto/Highway-Delite/internal/service"
	"github.com/Allen-Pinto/Highway-Delite/internal/service/ports"
	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BookIt",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initRedis не валит старт: без Redis остается только уникальный индекс по ключу.
func (a *App) initRedis() error {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis addr is empty, idempotency lock disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		a.log.Warn("redis is unavailable, lock calls will fall through",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
			logger.String("addr", a.cfg.Redis.Addr),
		)
	}

	a.redis = client
	return nil
}

func (a *App) initServices() error {
	store := repository.NewStore(a.db)
	experienceRepo := repository.NewExperienceRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	promoRepo := repository.NewPromoRepo(a.db)

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	email := notification.NewEmailNotifier(notification.SMTPConfig{
		Host:     a.cfg.SMTP.Host,
		Port:     a.cfg.SMTP.Port,
		User:     a.cfg.SMTP.User,
		Password: a.cfg.SMTP.Password,
		From:     a.cfg.SMTP.From,
	}, a.log)

	var locker ports.IdempotencyLocker = lock.Noop{}
	if a.redis != nil {
		locker = lock.NewRedisLocker(a.redis, a.cfg.Redis.LockTTL)
	}

	experienceService := service.NewExperienceService(experienceRepo, a.log)
	promoService := service.NewPromoService(promoRepo, a.log)
	bookingService := service.NewBookingService(
		store,
		bookingRepo,
		locker,
		notification.Multi{email, tg},
		a.cfg.Booking.ReferenceAttempts,
		a.log,
	)

	h := handler.NewHandler(experienceService, bookingService, promoService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
