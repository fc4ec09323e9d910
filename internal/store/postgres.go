package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"log/slog"

	"github.com/ecomdash/analytics-api/internal/dependency"
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"

	_ "github.com/lib/pq"
)

// Config defines configurations to connect database.
type Config struct {
	DSN                string `mapstructure:"dsn"`
	Host               string `mapstructure:"host"`
	Port               string `mapstructure:"port"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	Database           string `mapstructure:"database"`
	SSLMode            string `mapstructure:"sslmode"`
	Automigrate        bool   `mapstructure:"automigrate"`
	MaxOpenConnections int    `mapstructure:"max_open_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
}

// PostgresStore implements methods to access the dashboard's Postgres
// read-model. All access is read-only; the ETL owns writes and schema.
type PostgresStore struct {
	// db is used for executing queries
	db    dependency.DB
	close context.CancelFunc
}

// New connects to the database and returns a new PostgresStore. With
// cfg.Automigrate set it also provisions the ETL's table layout, which is
// meant for local development only.
func New(ctx context.Context, cfg Config) (*PostgresStore, error) {
	d, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("couldn't open database: %v", err)
	}

	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	d.SetConnMaxLifetime(2 * time.Minute)
	d.SetConnMaxIdleTime(30 * time.Second)

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := d.PingContext(pingCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Automigrate {
		slog.Default().InfoContext(ctx, "applying migrations")
		if err := Migrate(d.DB); err != nil {
			d.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	ctx, c := context.WithCancel(ctx)
	ss := &PostgresStore{
		db:    d,
		close: c,
	}

	go func() {
		<-ctx.Done()
		d.Close()
	}()

	return ss, nil
}

//go:embed sql
var fs embed.FS

// Migrate applies the embedded schema migrations.
func Migrate(db *sql.DB) error {
	m := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "sql",
	}
	n, err := migrate.Exec(db, "postgres", m, migrate.Up)
	if err != nil {
		return fmt.Errorf("exec migrations: %w", err)
	}
	slog.Default().Info("migrations applied", "count", n)
	return nil
}

// DB returns the underlying connection handle.
func (ps *PostgresStore) DB() dependency.DB {
	return ps.db
}

// Close releases the connection pool.
func (ps *PostgresStore) Close() {
	ps.close()
}
