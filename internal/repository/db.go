package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Config struct {
	Driver          string // sqlite | postgres
	DSN             string
	BusyTimeout     time.Duration
	MaxConns        int
	ConnMaxLifetime time.Duration
	DialTimeout     time.Duration
}

// DB is a pooled store handle. Every unit of work runs in its own
// transaction through WithTx or WithReadTx.
type DB struct {
	drv     *entsql.Driver
	pool    *pgxpool.Pool
	dialect string
	logger  *slog.Logger
}

// Open connects to SQLite (default) or Postgres and wraps the pool for the
// ent SQL builder.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}

	switch strings.ToLower(cfg.Driver) {
	case "", "sqlite", dialect.SQLite:
		dsn := SQLiteDSN(cfg.DSN, cfg.BusyTimeout)
		logger.Info("connecting to database", "driver", "sqlite", "dsn", dsn)
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			return nil, err
		}
		if cfg.MaxConns > 0 {
			db.SetMaxOpenConns(cfg.MaxConns)
		}
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		logger.Info("successfully connected to database")
		return &DB{drv: entsql.OpenDB(dialect.SQLite, db), dialect: dialect.SQLite, logger: logger}, nil

	case dialect.Postgres, "postgresql", "pgx":
		logger.Info("connecting to database", "driver", dialect.Postgres)
		pc, err := pgxpool.ParseConfig(cfg.DSN)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			return nil, err
		}
		if cfg.MaxConns > 0 {
			pc.MaxConns = int32(cfg.MaxConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			pc.MaxConnLifetime = cfg.ConnMaxLifetime
		}
		pc.ConnConfig.RuntimeParams["application_name"] = "invoice-orders"
		if cfg.BusyTimeout > 0 {
			pc.ConnConfig.RuntimeParams["lock_timeout"] = fmt.Sprintf("%dms", cfg.BusyTimeout.Milliseconds())
		}

		dctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
		pool, err := pgxpool.NewWithConfig(dctx, pc)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			return nil, err
		}

		// Wrap pool as *sql.DB for the ent driver
		db := stdlib.OpenDBFromPool(pool)
		logger.Info("successfully connected to database")
		return &DB{drv: entsql.OpenDB(dialect.Postgres, db), pool: pool, dialect: dialect.Postgres, logger: logger}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// SQLiteDSN turns a path (or an existing file: URI) into a modernc DSN with
// foreign keys, WAL and a busy timeout applied to every pooled connection.
func SQLiteDSN(path string, busy time.Duration) string {
	if busy <= 0 {
		busy = 20 * time.Second
	}
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	params := []string{
		"_pragma=foreign_keys(1)",
		"_pragma=journal_mode(WAL)",
		fmt.Sprintf("_pragma=busy_timeout(%d)", busy.Milliseconds()),
		"_txlock=immediate",
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// Dialect returns the ent dialect name in use.
func (d *DB) Dialect() string {
	return d.dialect
}

// WithTx runs fn inside a write transaction: commit on success, roll back on
// error or panic. The panic is re-raised after rollback. SQLite takes the
// write lock at BEGIN (_txlock=immediate).
func (d *DB) WithTx(ctx context.Context, fn func(tx dialect.Tx) error) error {
	return d.withTx(ctx, nil, fn)
}

// WithReadTx runs fn inside a read-only transaction. SQLite begins it
// deferred, so readers never wait on the write lock.
func (d *DB) WithReadTx(ctx context.Context, fn func(tx dialect.Tx) error) error {
	return d.withTx(ctx, &entsql.TxOptions{ReadOnly: true}, fn)
}

func (d *DB) withTx(ctx context.Context, opts *entsql.TxOptions, fn func(tx dialect.Tx) error) error {
	tx, err := d.drv.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// EnsureSchema creates both tables when missing. It is not a migration tool.
func (d *DB) EnsureSchema(ctx context.Context) error {
	stmts := sqliteSchema
	if d.dialect == dialect.Postgres {
		stmts = postgresSchema
	}
	err := d.WithTx(ctx, func(tx dialect.Tx) error {
		for _, stmt := range stmts {
			if err := tx.Exec(ctx, stmt, []any{}, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		d.logger.Error("db.schema.ensure_failed", "dialect", d.dialect, "error", err)
		return fmt.Errorf("ensure schema: %w", err)
	}
	d.logger.Info("db.schema.ready", "dialect", d.dialect)
	return nil
}

// Close closes the database connections gracefully
func Close(db *DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	logger.Info("closing database connections")
	if err := db.drv.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}
	if db.pool != nil {
		db.pool.Close()
	}
	logger.Info("database connections closed")
}

// HealthCheck pings the database, bounded by timeout when positive.
func HealthCheck(ctx context.Context, db *DB, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := db.drv.DB().PingContext(ctx); err != nil {
		return err
	}
	logger.Debug("database ping successful")
	return nil
}
