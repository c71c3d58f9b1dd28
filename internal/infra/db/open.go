package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"newsportal/internal/resilience/retry"
)

// Driver names the storage backend selected by DB_DRIVER.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Valid reports whether d is a supported driver.
func (d Driver) Valid() bool {
	return d == DriverPostgres || d == DriverSQLite
}

// ParseDriver maps DB_DRIVER values to a Driver. Empty means postgres.
func ParseDriver(raw string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "postgres", "postgresql", "pgx":
		return DriverPostgres, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	}
	return "", fmt.Errorf("unsupported DB_DRIVER %q", raw)
}

// PoolConfig sizes the postgres connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig returns the pool sizing used when no DB_* override is set.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Open creates and configures a new connection pool for the driver named by
// DB_DRIVER and waits until the database answers a ping.
//
// Postgres reads DATABASE_URL. SQLite reads SQLITE_PATH (default
// "newsportal.db") and always uses a single connection with foreign keys on.
func Open(ctx context.Context) (*sql.DB, Driver, error) {
	driver, err := ParseDriver(os.Getenv("DB_DRIVER"))
	if err != nil {
		return nil, "", err
	}

	var db *sql.DB
	switch driver {
	case DriverSQLite:
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "newsportal.db"
		}
		db, err = OpenSQLite(path)
		if err != nil {
			return nil, "", err
		}
	default:
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, "", fmt.Errorf("DATABASE_URL not set")
		}
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, "", fmt.Errorf("open postgres: %w", err)
		}

		cfg := poolConfigFromEnv()
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

		slog.Info("database connection pool configured",
			slog.Int("max_open_conns", cfg.MaxOpenConns),
			slog.Int("max_idle_conns", cfg.MaxIdleConns),
			slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
			slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))
	}

	err = retry.WithBackoff(ctx, retry.StartupConfig(), func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return db.PingContext(pingCtx)
	})
	if err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database connection established successfully", slog.String("driver", string(driver)))
	return db, driver, nil
}

// OpenSQLite opens the SQLite database at path (":memory:" allowed).
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path != ":memory:" {
		dsn += "&_pragma=journal_mode(WAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time; also keeps ":memory:" on a single database
	db.SetMaxOpenConns(1)
	return db, nil
}

// poolConfigFromEnv applies DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS,
// DB_CONN_MAX_LIFETIME and DB_CONN_MAX_IDLE_TIME over the defaults.
// Non-positive or unparsable values are ignored.
func poolConfigFromEnv() PoolConfig {
	cfg := DefaultPoolConfig()
	cfg.MaxOpenConns = positiveEnv("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns, strconv.Atoi)
	cfg.MaxIdleConns = positiveEnv("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns, strconv.Atoi)
	cfg.ConnMaxLifetime = positiveEnv("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime, time.ParseDuration)
	cfg.ConnMaxIdleTime = positiveEnv("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime, time.ParseDuration)
	return cfg
}

func positiveEnv[T int | time.Duration](key string, def T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil || v <= 0 {
		slog.Warn("ignoring invalid pool setting", slog.String("key", key), slog.String("value", raw))
		return def
	}
	return v
}
