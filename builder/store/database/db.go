package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

type DatabaseDialect string

const (
	DialectPostgres DatabaseDialect = "pg"
	DialectSQLite   DatabaseDialect = "sqlite"
)

type DBConfig struct {
	Dialect DatabaseDialect
	DSN     string
	// 0 picks 1 for sqlite and leaves the driver default for pg
	MaxOpenConns int
	MaxIdleConns int
	// log every query when enabled, BUNDEBUG env overrides it
	Debug bool
}

// Operator carries the query entrypoint shared by all stores.
type Operator struct {
	Core *bun.DB
}

type DB struct {
	Operator
	BunDB *bun.DB
}

var defaultDB *DB

// InitDB opens the shared pool, creates the tables if needed and keeps the
// result as the default DB used by the store constructors.
func InitDB(ctx context.Context, config DBConfig) error {
	db, err := NewDB(ctx, config)
	if err != nil {
		return err
	}
	if err := createTables(ctx, db.BunDB); err != nil {
		_ = db.Close()
		return fmt.Errorf("creating tables: %w", err)
	}
	defaultDB = db
	return nil
}

func GetDB() *DB {
	return defaultDB
}

func NewDB(ctx context.Context, config DBConfig) (*DB, error) {
	var (
		sqlDB *sql.DB
		bunDB *bun.DB
		err   error
	)
	switch config.Dialect {
	case DialectPostgres:
		sqlDB = sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(config.DSN)))
		bunDB = bun.NewDB(sqlDB, pgdialect.New(), bun.WithDiscardUnknownColumns())
	case DialectSQLite:
		sqlDB, err = sql.Open(sqliteshim.ShimName, sqliteDSN(config.DSN))
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		bunDB = bun.NewDB(sqlDB, sqlitedialect.New(), bun.WithDiscardUnknownColumns())
	default:
		return nil, fmt.Errorf("unknown database dialect %q", config.Dialect)
	}

	maxOpen, maxIdle := poolLimits(config)
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		sqlDB.SetMaxIdleConns(maxIdle)
	}

	bunDB.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithEnabled(config.Debug),
		bundebug.WithVerbose(config.Debug),
		// BUNDEBUG=1 logs failed queries
		// BUNDEBUG=2 logs all queries
		bundebug.FromEnv("BUNDEBUG"),
	))

	if err := bunDB.PingContext(ctx); err != nil {
		_ = bunDB.Close()
		return nil, fmt.Errorf("pinging %s database: %w", config.Dialect, err)
	}
	slog.Debug("database connected", slog.String("dialect", string(config.Dialect)),
		slog.Int("max_open_conns", maxOpen))

	return &DB{
		Operator: Operator{Core: bunDB},
		BunDB:    bunDB,
	}, nil
}

func (db *DB) Close() error {
	return db.BunDB.Close()
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off for
// every new connection.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// poolLimits resolves unset limits. sqlite allows a single writer so it gets
// one connection, pg keeps whatever database/sql picks.
func poolLimits(config DBConfig) (maxOpen, maxIdle int) {
	maxOpen, maxIdle = config.MaxOpenConns, config.MaxIdleConns
	if config.Dialect != DialectSQLite {
		return maxOpen, maxIdle
	}
	if maxOpen <= 0 {
		maxOpen = 1
	}
	if maxIdle <= 0 {
		maxIdle = 1
	}
	return maxOpen, maxIdle
}
