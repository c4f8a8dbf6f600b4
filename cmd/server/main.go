package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"borrowbank.backend/internal/config"
	"borrowbank.backend/internal/infrastructure/notification"
	"borrowbank.backend/internal/infrastructure/repositories"
	"borrowbank.backend/internal/interfaces/http/handlers"
	"borrowbank.backend/internal/interfaces/http/middleware"
	"borrowbank.backend/internal/usecases"
	"borrowbank.backend/pkg/jwt"
	"borrowbank.backend/pkg/logger"
	"borrowbank.backend/pkg/redis"
)

// Indirections for tests.
var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	newSessionStore = redis.NewSessionStore
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "redis initialized")

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "database not available, endpoints will return errors", zap.Error(err))
	}

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// The production dispatcher fails loudly until an SMS provider is
	// integrated; everywhere else codes go to the log.
	var dispatcher notification.Dispatcher
	if cfg.Server.IsProduction() {
		dispatcher = notification.NewUnsupportedDispatcher()
	} else {
		dispatcher = notification.NewConsoleDispatcher(cfg.Phone.SecretKey)
	}

	userRepo := repositories.NewUserRepository(db)
	borrowerRepo := repositories.NewBorrowerProfileRepository(db)
	businessRepo := repositories.NewBusinessRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	uow := repositories.NewUnitOfWork(db)

	rateCalculator := usecases.NewRateCalculator()
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	borrowerUsecase := usecases.NewBorrowerUsecase(userRepo, borrowerRepo, uow, dispatcher, cfg.Phone.SecretKey)
	businessUsecase := usecases.NewBusinessUsecase(businessRepo, loanRepo)
	loanUsecase := usecases.NewLoanUsecase(loanRepo, businessRepo, rateCalculator)
	homeUsecase := usecases.NewHomeUsecase(borrowerRepo, businessRepo, loanRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     handlers.NewAuthHandler(authUsecase),
		borrowerHandler: handlers.NewBorrowerHandler(borrowerUsecase),
		businessHandler: handlers.NewBusinessHandler(businessUsecase),
		loanHandler:     handlers.NewLoanHandler(loanUsecase),
		homeHandler:     handlers.NewHomeHandler(homeUsecase),
		authMiddleware:  middleware.Auth(jwtService, sessionStore),
		borrowerGuard:   middleware.RequireBorrower(borrowerRepo),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(context.Background(), "server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info(context.Background(), "shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	return nil
}
