package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"fleetops/internal/app"
	"fleetops/internal/auth"
	"fleetops/internal/config"
	"fleetops/internal/handler"
	"fleetops/internal/logger"
	internalRedis "fleetops/internal/redis"
	"fleetops/internal/repository/postgres"
	"fleetops/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database driver can be instrumented.
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize New Relic")
			nrApp = nil
		} else {
			log.Info().Str("app", cfg.NewRelic.AppName).Msg("New Relic enabled")
		}
	}

	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("connected to PostgreSQL")

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to Redis")

	server := wireServer(db, redisClient, nrApp, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config, log zerolog.Logger) *http.Server {
	// Redis stores.
	lockStore := internalRedis.NewLockStore(redisClient)
	cacheStore := internalRedis.NewCacheStore(redisClient)

	// Repositories.
	userRepo := postgres.NewUserRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	driverRepo := postgres.NewDriverRepository(db)
	tripRepo := postgres.NewTripRepository(db)
	maintenanceRepo := postgres.NewMaintenanceRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)

	// Services.
	tokenService := auth.NewTokenService(cfg.Auth.JWTSecret)
	authService := service.NewAuthService(userRepo, tokenService)
	dispatchService := service.NewDispatchService(db, tripRepo, vehicleRepo, driverRepo, lockStore, cacheStore)
	maintenanceService := service.NewMaintenanceService(db, maintenanceRepo, vehicleRepo, cacheStore)
	analyticsService := service.NewAnalyticsService(vehicleRepo, tripRepo, expenseRepo, cacheStore)

	// Handlers.
	authHandler := handler.NewAuthHandler(authService, log)
	vehicleHandler := handler.NewVehicleHandler(vehicleRepo, tripRepo)
	driverHandler := handler.NewDriverHandler(driverRepo)
	tripHandler := handler.NewTripHandler(dispatchService, log)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	expenseHandler := handler.NewExpenseHandler(expenseRepo, vehicleRepo, cacheStore)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	router := app.NewRouter(app.RouterDeps{
		AuthHandler:        authHandler,
		VehicleHandler:     vehicleHandler,
		DriverHandler:      driverHandler,
		TripHandler:        tripHandler,
		MaintenanceHandler: maintenanceHandler,
		ExpenseHandler:     expenseHandler,
		AnalyticsHandler:   analyticsHandler,
		TokenService:       tokenService,
		RedisClient:        redisClient,
		NewRelicApp:        nrApp,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
