package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/sidepp-ar/docingest/gen/ent"
	"github.com/sidepp-ar/docingest/internal/common"
)

// Open creates a pgx pool, wraps it for Ent, and returns both.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "docingest"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, nil, err
	}

	// Wrap pool as *sql.DB for Ent
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	logger.Info("successfully connected to database")
	return client, pool, nil
}

// OpenSQLite opens an embedded SQLite database, in-memory unless a file DSN
// is given. Meant for local runs and smoke tests without Postgres.
func OpenSQLite(dsn string, logger *slog.Logger) (*ent.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dsn == "" {
		dsn = "file:docingest?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	}
	logger.Info("opening sqlite database", "dsn", dsn)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, err
	}
	// a shared-cache in-memory DB is dropped when its last conn closes
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	return ent.NewClient(ent.Driver(drv)), nil
}

// Migrate creates or updates the schema to match the Ent definitions.
func Migrate(ctx context.Context, client *ent.Client, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("running schema migration")
	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		return err
	}
	logger.Info("schema migration complete")
	return nil
}

// InitDatabase opens Postgres from cfg, or an in-memory SQLite database when
// inmem is set, runs migrations, and returns the client with a cleanup func.
func InitDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		client, err := OpenSQLite("", logger)
		if err != nil {
			return nil, nil, err
		}
		if err := Migrate(ctx, client, logger); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		cleanup := func() {
			if cerr := client.Close(); cerr != nil {
				logger.Error("failed to close ent client", "error", cerr)
			}
		}
		return client, cleanup, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	client, pool, err := Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := Migrate(ctx, client, logger); err != nil {
		Close(client, pool, logger)
		return nil, nil, err
	}
	cleanup := func() { Close(client, pool, logger) }
	return client, cleanup, nil
}

// Close closes the database connections gracefully
func Close(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("closing database connections")
	if pool != nil {
		pool.Close()
	}
	if entc != nil {
		err := entc.Close()
		if err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}
	logger.Info("database connections closed")
}

// HealthCheck pings using database/sql to catch DSN issues early.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return pool.Ping(ctx)
}
