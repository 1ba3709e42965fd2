package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogapi/docs"
	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/database/migration"
	handlers "blogapi/internal/http/handler"
	"blogapi/internal/http/middleware"
	"blogapi/internal/logging"
	"blogapi/internal/otel"
	"blogapi/internal/progress"
	"blogapi/internal/repository"
	"blogapi/internal/repository/memory"
	"blogapi/internal/repository/postgres"
	"blogapi/internal/repository/sqlite"
	"blogapi/internal/service"
	"blogapi/internal/storage"
)

// @title Blog API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.Location())

	if err := run(cfg, logger); err != nil {
		logger.Error("server_exit", "error", err.Error())
		os.Exit(1)
	}
}

// documentStore bundles the repositories and change feed of one store driver.
type documentStore struct {
	db         handlers.Pinger
	posts      repository.PostRepository
	categories repository.CategoryRepository
	feed       repository.ChangeFeed
	close      func()
}

func openDocumentStore(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*documentStore, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		broker := repository.NewBroker()
		logger.Warn("document_store_memory", "detail", "documents are lost on restart")
		return &documentStore{
			posts:      memory.NewPostMemory(broker, time.Now),
			categories: memory.NewCategoryMemory(broker),
			feed:       broker,
			close:      func() {},
		}, nil

	case config.StoreDriverPostgres:
		// Initialize PostgreSQL connection (with pooling via database/sql)
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		dsn, err := database.BuildPostgresDSN(cfg.Database)
		if err != nil {
			db.Close()
			return nil, err
		}
		feed, err := postgres.NewChangeFeed(dsn, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("start change feed: %w", err)
		}
		return &documentStore{
			db:         db,
			posts:      postgres.NewPostPostgres(db),
			categories: postgres.NewCategoryPostgres(db),
			feed:       feed,
			close: func() {
				feed.Close()
				db.Close()
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}

func openSettings(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*sql.DB, repository.SettingsRepository, error) {
	db, err := database.NewSQLite(cfg.Settings.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open settings store: %w", err)
	}
	if err := migration.EnsureSettings(ctx, db, logger); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate settings store: %w", err)
	}
	return db, sqlite.NewSettingsSQLite(db), nil
}

func run(cfg *config.AppConfig, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if missing := cfg.Project.Missing(); len(missing) > 0 {
		logger.Warn("project_config_incomplete",
			"missing", missing,
			"detail", "set these environment variables to reach the hosted backend",
		)
	}

	shutdownTracing, err := otel.Init(ctx, logger, cfg.Project.ProjectID)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Error("tracing_shutdown_failed", "error", err.Error())
		}
	}()

	store, err := openDocumentStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.close()

	settingsDB, settings, err := openSettings(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer settingsDB.Close()

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO, "http://"+cfg.AppHost+"/media")
	if err != nil {
		return fmt.Errorf("initialize object storage: %w", err)
	}

	postSvc := service.NewPostService(store.posts, store.feed)
	categorySvc := service.NewCategoryService(store.categories, store.feed)
	uploadSvc := service.NewUploadService(objStore)
	brandSvc := service.NewBrandService(
		settings,
		uploadSvc,
		service.DefaultLogoSources(settings, cfg.StaticDir, cfg.Brand.DefaultLogoPath),
		cfg.Brand.DefaultText,
		logger,
	)
	if _, err := brandSvc.Resolve(ctx); err != nil {
		logger.Warn("brand_resolve_failed", "error", err.Error())
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.BodyLimitMB << 20,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// Spans wrap the logger so access logs carry the trace id
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(logger))
	app.Use(metrics.Handler())

	if counter, ok := store.feed.(repository.SubscriberCounter); ok {
		if err := middleware.RegisterSubscriberGauges(reg, counter, repository.CollectionPosts, repository.CollectionCategories); err != nil {
			return fmt.Errorf("register subscriber metrics: %w", err)
		}
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	done := make(chan struct{})

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, handlers.Deps{
		DB:         store.db,
		Posts:      postSvc,
		Categories: categorySvc,
		Uploads:    uploadSvc,
		Brand:      brandSvc,
		Progress:   progress.NewTracker(cfg.Upload.ProgressEntries, cfg.Upload.ProgressTTL),
		Verifier:   auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Project.AuthDomain, cfg.Project.AppID),
		Project:    cfg.Project,
		Done:       done,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Brand assets and other public files; unmatched paths fall through to the 404 handler.
	app.Static("/", cfg.StaticDir)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_start", "addr", addr, "store_driver", cfg.StoreDriver)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		close(done)
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server_shutdown")
	close(done)
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
