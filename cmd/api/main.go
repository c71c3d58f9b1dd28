package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newsportal/internal/common/pagination"
	secconfig "newsportal/internal/config"
	pgRepo "newsportal/internal/infra/adapter/persistence/postgres"
	sqliteRepo "newsportal/internal/infra/adapter/persistence/sqlite"
	"newsportal/internal/infra/db"
	"newsportal/internal/observability/logging"
	"newsportal/internal/observability/tracing"
	"newsportal/internal/repository"
	"newsportal/internal/resilience/circuitbreaker"
	"newsportal/pkg/config"

	adUC "newsportal/internal/usecase/ad"
	artUC "newsportal/internal/usecase/article"
	catUC "newsportal/internal/usecase/category"

	hhttp "newsportal/internal/handler/http"
	had "newsportal/internal/handler/http/ad"
	harticle "newsportal/internal/handler/http/article"
	hauth "newsportal/internal/handler/http/auth"
	hcategory "newsportal/internal/handler/http/category"
	"newsportal/internal/handler/http/middleware"
	"newsportal/internal/handler/http/requestid"
	authservice "newsportal/internal/service/auth"

	_ "newsportal/docs" // swagger docs
)

// @title           News Portal API
// @version         1.0
// @description     ニュースポータルの REST API
// @description     記事・カテゴリ・広告の管理と、公開記事の閲覧を提供します。

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

const staticPrefix = "/static/"

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	secCfg := loadSecurityConfig(logger)
	policy := hauth.NewPasswordPolicy(secCfg.GetMinPasswordLength(), secCfg.GetWeakPasswords())
	if err := hauth.CheckAccounts(policy, logger); err != nil {
		logger.Error("account configuration rejected", slog.Any("error", err))
		os.Exit(1)
	}
	validateJWTSecret(logger, secCfg)

	shutdownTracing := tracing.InitProvider(config.GetEnvFloat("TRACE_SAMPLE_RATIO", 1.0))

	database, driver := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	app := setupServer(logger, database, driver, secCfg, policy, version)

	runServer(logger, app, version, shutdownTracing)
}

// loadSecurityConfig reads SECURITY_CONFIG_PATH, falling back to built-in defaults.
func loadSecurityConfig(logger *slog.Logger) *secconfig.SecurityConfig {
	cfg, err := secconfig.LoadSecurityConfigFromEnv()
	if err != nil {
		logger.Error("failed to load security configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

func validateJWTSecret(logger *slog.Logger, secCfg *secconfig.SecurityConfig) {
	if err := secCfg.ValidateJWTSecret(os.Getenv("JWT_SECRET")); err != nil {
		logger.Error("JWT secret validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) (*sql.DB, db.Driver) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	database, driver, err := db.Open(ctx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database, driver); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database ready", slog.String("driver", string(driver)))
	return database, driver
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return config.GetEnvString("APP_VERSION", "dev")
}

// repositories groups the storage adapters for one driver.
type repositories struct {
	articles   repository.ArticleRepository
	categories repository.CategoryRepository
	ads        repository.AdvertisementRepository
	authors    repository.AuthorRepository
}

func newRepositories(database *sql.DB, driver db.Driver) repositories {
	if driver == db.DriverSQLite {
		return repositories{
			articles:   sqliteRepo.NewArticleRepo(database),
			categories: sqliteRepo.NewCategoryRepo(database),
			ads:        sqliteRepo.NewAdvertisementRepo(database),
			authors:    sqliteRepo.NewAuthorRepo(database),
		}
	}
	return repositories{
		articles:   pgRepo.NewArticleRepo(database),
		categories: pgRepo.NewCategoryRepo(database),
		ads:        pgRepo.NewAdvertisementRepo(database),
		authors:    pgRepo.NewAuthorRepo(database),
	}
}

// ServerComponents holds everything runServer starts and stops.
type ServerComponents struct {
	Handler         http.Handler
	AuthLimiter     *middleware.RateLimiter
	RateLimit       config.RateLimitConfig
	ImpressionQueue *adUC.ImpressionQueue
}

// setupServer wires repositories, services, routes and middleware.
func setupServer(
	logger *slog.Logger,
	database *sql.DB,
	driver db.Driver,
	secCfg *secconfig.SecurityConfig,
	policy hauth.PasswordPolicy,
	version string,
) *ServerComponents {
	repos := newRepositories(database, driver)
	paginationCfg := pagination.LoadFromEnv()

	impressions := adUC.NewImpressionQueue(repos.ads, logger,
		adUC.WithQueueSize(config.GetEnvInt("IMPRESSION_QUEUE_SIZE", 1024)),
		adUC.WithBreaker(circuitbreaker.New(circuitbreaker.ImpressionWriterConfig())),
	)

	artSvc := &artUC.Service{Repo: repos.articles, Categories: repos.categories, Pagination: paginationCfg}
	catSvc := &catUC.Service{Repo: repos.categories, Articles: repos.articles}
	adSvc := &adUC.Service{Repo: repos.ads, Impressions: impressions}

	authProvider := hauth.NewMultiUserAuthProvider(policy)
	authService := authservice.NewAuthService(authProvider, repos.authors)
	hauth.SetPublicEndpoints(secCfg.GetPublicEndpoints())

	proxyCfg, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		logger.Error("failed to load trusted proxy configuration", slog.Any("error", err))
		os.Exit(1)
	}
	ipExtractor := middleware.NewIPExtractor(proxyCfg)

	// レート制限: 認証エンドポイントのみ（既定 1 分間に 5 リクエスト）
	rateLimitCfg := config.LoadRateLimitConfig()
	var authLimiter *middleware.RateLimiter
	tokenHandler := http.Handler(hauth.TokenHandler(authService, secCfg.TokenTTL()))
	if rateLimitCfg.Enabled {
		authLimiter = middleware.NewRateLimiter("auth",
			rateLimitCfg.Requests, rateLimitCfg.Window, rateLimitCfg.Burst, ipExtractor)
		tokenHandler = authLimiter.Middleware()(tokenHandler)
		logger.Info("auth rate limiting enabled",
			slog.Int("requests", rateLimitCfg.Requests),
			slog.Duration("window", rateLimitCfg.Window),
			slog.Int("burst", rateLimitCfg.Burst),
			slog.Bool("trust_proxy", proxyCfg.Enabled))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	mux := http.NewServeMux()
	mux.Handle("POST /auth/token", tokenHandler)
	mux.Handle("GET /auth/me", hauth.Authz(http.HandlerFunc(hauth.MeHandler)))

	harticle.Register(mux, artSvc, paginationCfg, logger)
	hcategory.Register(mux, catSvc)
	had.Register(mux, adSvc)

	// ヘルスチェックエンドポイント（認証不要）
	cspCfg := config.LoadCSPConfig()
	health := &hhttp.HealthHandler{
		DB:              database,
		Version:         version,
		ImpressionQueue: impressions,
		CSPEnabled:      cspCfg.Enabled,
		CSPReportOnly:   cspCfg.ReportOnly,
	}
	if authLimiter != nil {
		health.RateLimiters = []hhttp.RateLimiterStats{authLimiter}
	}
	mux.Handle("/health", health)
	dbBreaker := circuitbreaker.NewDBCircuitBreaker(database)
	mux.Handle("/ready", &hhttp.ReadyHandler{Check: dbBreaker.PingContext})
	mux.Handle("/live", hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	// Swagger UI（認証不要）
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	servedPrefix := ""
	if dir := config.GetEnvString("STATIC_DIR", ""); dir != "" {
		mux.Handle("GET "+staticPrefix, http.StripPrefix(staticPrefix, http.FileServer(http.Dir(dir))))
		servedPrefix = staticPrefix
		logger.Info("serving static files", slog.String("dir", dir), slog.String("prefix", staticPrefix))
	}

	handler := applyMiddleware(logger, mux, middleware.NewCSPConfig(cspCfg, servedPrefix))

	return &ServerComponents{
		Handler:         handler,
		AuthLimiter:     authLimiter,
		RateLimit:       rateLimitCfg,
		ImpressionQueue: impressions,
	}
}

// applyMiddleware wraps the handler with middleware chain.
// Middleware order: CORS → Request ID → Tracing → Recovery → Logging → Input Validation → Timeout → CSP → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler, cspCfg middleware.CSPMiddlewareConfig) http.Handler {
	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if corsConfig.Enabled() {
		logger.Info("CORS enabled",
			slog.Any("allowed_origins", corsConfig.AllowedOrigins),
			slog.Any("allowed_methods", corsConfig.AllowedMethods),
			slog.Int("max_age", corsConfig.MaxAge))
	}

	if cspCfg.Enabled {
		logger.Info("CSP enabled", slog.Bool("report_only", cspCfg.ReportOnly))
	} else {
		logger.Warn("CSP is disabled")
	}

	timeout := config.GetEnvDuration("HTTP_HANDLER_TIMEOUT", 15*time.Second)

	// Apply in reverse order (innermost to outermost)
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = middleware.CSP(cspCfg)(chain)
	chain = hhttp.Timeout(timeout, logger)(chain)
	chain = hhttp.InputValidation(hhttp.LoadInputLimits())(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	if corsConfig.Enabled() {
		chain = middleware.CORS(corsConfig, logger)(chain)
	}

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(
	logger *slog.Logger,
	components *ServerComponents,
	version string,
	shutdownTracing func(context.Context) error,
) {
	// Create a context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.AuthLimiter != nil {
		go hhttp.StartRateLimitCleanup(ctx, components.AuthLimiter,
			components.RateLimit.CleanupInterval, components.RateLimit.IdleTTL)
	}

	addr := config.GetEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	// 未書き込みのインプレッションを排出してから DB を閉じる
	if err := components.ImpressionQueue.Close(shutdownCtx); err != nil {
		logger.Warn("impression queue not fully drained", slog.Any("error", err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracer shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
