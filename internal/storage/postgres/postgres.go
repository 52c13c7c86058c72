package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/aaravmahajanofficial/storefront/internal/utils"

	_ "github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS local_storage (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`

type Postgres struct {
	db *sql.DB
}

// New opens an instrumented connection pool and makes sure the
// local_storage table exists.
func New(cfg *config.Database) (*Postgres, error) {
	db, err := otelsql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := utils.WithDBTimeout(context.Background())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	p := NewWithDB(db)

	if err := p.InitSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("✅ Postgres storage ready", slog.String("host", cfg.Host), slog.String("database", cfg.Name))

	return p, nil
}

func NewWithDB(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) DB() *sql.DB {
	return p.db
}

func (p *Postgres) InitSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to execute schema creation: %w", err)
	}

	return nil
}

func (p *Postgres) Read(ctx context.Context, key string) ([]byte, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var value []byte

	query := `SELECT value::text FROM local_storage WHERE key = $1`

	err := p.db.QueryRowContext(dbCtx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, storage.Unavailable(ctx, "Failed to read "+key, err)
	}

	return value, nil
}

func (p *Postgres) Write(ctx context.Context, key string, value []byte) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO local_storage (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := p.db.ExecContext(dbCtx, query, key, string(value)); err != nil {
		return storage.Unavailable(ctx, "Failed to write "+key, err)
	}

	return nil
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := p.db.ExecContext(dbCtx, `DELETE FROM local_storage WHERE key = $1`, key); err != nil {
		return storage.Unavailable(ctx, "Failed to remove "+key, err)
	}

	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return appErrors.StorageUnavailableError("Database is unreachable").WithError(err)
	}

	return nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
