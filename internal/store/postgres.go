package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/reqtrackhq/reqtrack-api/internal/models"
)

// PostgresGateway persists the store blob and role flag as rows of a small
// key/value table. The blob stays a single unit: a save still rewrites the
// whole aggregate in one row.
type PostgresGateway struct {
	db      *sqlx.DB
	blobKey string
	roleKey string
	logger  *zap.Logger
}

// NewPostgresGateway constructs a postgres-backed gateway.
func NewPostgresGateway(db *sqlx.DB, blobKey, roleKey string, logger *zap.Logger) *PostgresGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresGateway{db: db, blobKey: blobKey, roleKey: roleKey, logger: logger}
}

// Migrate creates the backing table when missing.
func (g *PostgresGateway) Migrate(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS store_blobs (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`
	if _, err := g.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("migrate store_blobs: %w", err)
	}
	return nil
}

// Load fetches the blob row, reseeding on absence or parse failure.
func (g *PostgresGateway) Load(ctx context.Context) (*models.Store, error) {
	raw, err := g.get(ctx, g.blobKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return g.reseed(ctx)
		}
		return nil, err
	}

	s, err := decodeStore([]byte(raw))
	if err != nil {
		g.logger.Warn("store blob corrupt, reseeding", zap.String("key", g.blobKey), zap.Error(err))
		return g.reseed(ctx)
	}
	return s, nil
}

// Save rewrites the entire blob row.
func (g *PostgresGateway) Save(ctx context.Context, s *models.Store) error {
	raw, err := encodeStore(s)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	return g.put(ctx, g.blobKey, string(raw))
}

// LoadRole reads the session role flag; a missing row means requester mode.
func (g *PostgresGateway) LoadRole(ctx context.Context) (bool, error) {
	raw, err := g.get(ctx, g.roleKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return decodeRole(raw), nil
}

// SaveRole writes the session role flag row.
func (g *PostgresGateway) SaveRole(ctx context.Context, admin bool) error {
	return g.put(ctx, g.roleKey, encodeRole(admin))
}

// Reset discards the persisted blob and reinstalls the fixtures.
func (g *PostgresGateway) Reset(ctx context.Context) (*models.Store, error) {
	return g.reseed(ctx)
}

func (g *PostgresGateway) get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM store_blobs WHERE key = $1`
	var value string
	if err := g.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
		return "", fmt.Errorf("select store blob %s: %w", key, err)
	}
	return value, nil
}

func (g *PostgresGateway) put(ctx context.Context, key, value string) error {
	const query = `INSERT INTO store_blobs (key, value, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key)
DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := g.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert store blob %s: %w", key, err)
	}
	return nil
}

func (g *PostgresGateway) reseed(ctx context.Context) (*models.Store, error) {
	s := Seed()
	if err := g.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
