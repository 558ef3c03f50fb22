package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/fintrellis/fx_engine_app/internal/adapters/audit"
	"github.com/fintrellis/fx_engine_app/internal/core/ports"
	portsrepo "github.com/fintrellis/fx_engine_app/internal/core/ports/repositories"
	"github.com/fintrellis/fx_engine_app/internal/core/services"
	"github.com/fintrellis/fx_engine_app/internal/handlers"
	"github.com/fintrellis/fx_engine_app/internal/middleware"
	"github.com/fintrellis/fx_engine_app/internal/platform/config"
	"github.com/fintrellis/fx_engine_app/internal/repositories/database/memory"
	"github.com/fintrellis/fx_engine_app/internal/repositories/database/pgsql"
	"github.com/fintrellis/fx_engine_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	recorder, recorderCleanup := buildAuditRecorder(cfg, logger)
	defer recorderCleanup()

	serviceContainer := services.NewServiceContainer(repos, recorder, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.Metrics(),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories wires the persistent store: PostgreSQL when PGSQL_URL is
// configured, otherwise independent in-memory stores.
func buildRepositories(cfg *config.Config, logger *slog.Logger) (*portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("PGSQL_URL not set; using in-memory stores")
		return &portsrepo.RepositoryProvider{
			ExchangeRate: memory.NewExchangeRateRepository(),
			Hedging:      memory.NewHedgingPositionRepository(),
		}, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	return &portsrepo.RepositoryProvider{
		ExchangeRate: pgsql.NewPgxExchangeRateRepository(dbPool),
		Hedging:      pgsql.NewPgxHedgingPositionRepository(dbPool),
	}, dbPool.Close, nil
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// buildAuditRecorder selects the audit sink: Kafka when brokers are
// configured, otherwise the structured log.
func buildAuditRecorder(cfg *config.Config, logger *slog.Logger) (ports.AuditRecorder, func()) {
	if len(cfg.AuditKafkaBrokers) > 0 {
		logger.Info("Audit events will be published to Kafka",
			slog.Any("brokers", cfg.AuditKafkaBrokers),
			slog.String("topic", cfg.AuditKafkaTopic),
		)
		recorder := audit.NewKafkaRecorder(cfg.AuditKafkaBrokers, cfg.AuditKafkaTopic)
		return recorder, func() {
			if err := recorder.Close(); err != nil {
				logger.Error("Error closing audit recorder", slog.String("error", err.Error()))
			}
		}
	}
	return audit.NewSlogRecorder(logger), func() {}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Actor")
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	return corsCfg
}
