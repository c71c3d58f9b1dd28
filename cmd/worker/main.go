package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	pgRepo "newsportal/internal/infra/adapter/persistence/postgres"
	sqliteRepo "newsportal/internal/infra/adapter/persistence/sqlite"
	"newsportal/internal/infra/db"
	"newsportal/internal/repository"
	workerPkg "newsportal/internal/infra/worker"
	"newsportal/internal/observability/logging"
	"newsportal/internal/observability/metrics"
	"newsportal/internal/observability/tracing"
	"newsportal/internal/resilience/circuitbreaker"
	"newsportal/internal/resilience/retry"
	"newsportal/pkg/config"

	adUC "newsportal/internal/usecase/ad"
	artUC "newsportal/internal/usecase/article"
	catUC "newsportal/internal/usecase/category"
	"newsportal/internal/usecase/inventory"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := tracing.InitProvider(config.GetEnvFloat("TRACE_SAMPLE_RATIO", 1.0))

	database, driver := initDatabase(ctx, logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	workerMetrics := workerPkg.NewWorkerMetrics()
	workerConfig := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("job_timeout", workerConfig.JobTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	dbBreaker := circuitbreaker.NewDBCircuitBreaker(database)
	refresher := newRefresher(database, driver, dbBreaker)

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger, dbBreaker.PingContext)
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	runCronWorker(ctx, logger, refresher, database, workerConfig, workerMetrics, healthServer)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracer shutdown failed", slog.Any("error", err))
	}
}

// initDatabase opens the database and waits until the API has applied
// migrations.
func initDatabase(ctx context.Context, logger *slog.Logger) (*sql.DB, db.Driver) {
	openCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	database, driver, err := db.Open(openCtx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}

	// マイグレーションは API 側で実行される
	const probe = "SELECT 1 FROM articles LIMIT 1"
	err = retry.WithBackoff(openCtx, retry.StartupConfig(), func() error {
		rows, err := database.QueryContext(openCtx, probe)
		if err != nil {
			return fmt.Errorf("%w: %v", retry.ErrTransient, err)
		}
		return rows.Close()
	})
	if err != nil {
		logger.Error("migrations did not complete in time", slog.Any("error", err))
		os.Exit(1)
	}
	return database, driver
}

// newRefresher wires the use case services the inventory job reads from.
func newRefresher(database *sql.DB, driver db.Driver, guard inventory.Guard) *inventory.Refresher {
	var (
		articles repository.ArticleRepository       = pgRepo.NewArticleRepo(database)
		cats     repository.CategoryRepository      = pgRepo.NewCategoryRepo(database)
		ads      repository.AdvertisementRepository = pgRepo.NewAdvertisementRepo(database)
	)
	if driver == db.DriverSQLite {
		articles = sqliteRepo.NewArticleRepo(database)
		cats = sqliteRepo.NewCategoryRepo(database)
		ads = sqliteRepo.NewAdvertisementRepo(database)
	}

	return &inventory.Refresher{
		Articles:   &artUC.Service{Repo: articles, Categories: cats},
		Categories: &catUC.Service{Repo: cats, Articles: articles},
		Ads:        &adUC.Service{Repo: ads},
		Guard:      guard,
	}
}

// runCronWorker refreshes once at startup, then on the configured schedule
// until ctx is cancelled.
func runCronWorker(
	ctx context.Context,
	logger *slog.Logger,
	refresher *inventory.Refresher,
	database *sql.DB,
	cfg workerPkg.WorkerConfig,
	m *workerPkg.WorkerMetrics,
	healthServer *workerPkg.HealthServer,
) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}

	cronLog := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	job := func() { runRefreshJob(ctx, logger, refresher, database, cfg, m) }
	if _, err := c.AddFunc(cfg.CronSchedule, job); err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}

	job()
	c.Start()
	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", loc.String()))

	<-ctx.Done()
	logger.Info("shutting down worker...")
	healthServer.SetReady(false)

	// 実行中のジョブの完了を待つ
	<-c.Stop().Done()
	logger.Info("worker stopped")
}

// runRefreshJob runs one inventory refresh and records its outcome.
func runRefreshJob(
	ctx context.Context,
	logger *slog.Logger,
	refresher *inventory.Refresher,
	database *sql.DB,
	cfg workerPkg.WorkerConfig,
	m *workerPkg.WorkerMetrics,
) {
	start := time.Now()
	jobCtx, cancel := context.WithTimeout(ctx, cfg.JobTimeout)
	defer cancel()

	stats := database.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)

	snap, err := refresher.Refresh(jobCtx)
	m.RecordJobDuration(time.Since(start).Seconds())
	if err != nil {
		logger.Error("inventory refresh failed", slog.Any("error", err))
		m.RecordJobRun("failure")
		return
	}

	m.RecordJobRun("success")
	m.RecordLastSuccess()
	logger.Info("inventory refreshed",
		slog.Int64("articles", snap.Articles()),
		slog.Int64("categories", snap.Categories),
		slog.Any("servable_ads", snap.ServableAds),
		slog.Duration("duration", time.Since(start)))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
