package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/reqtrackhq/reqtrack-api/internal/models"
)

// FileGateway persists the store blob as a JSON file on local disk. The role
// flag lives in a sibling file so the two logical entries stay independent.
type FileGateway struct {
	path   string
	logger *zap.Logger
}

// NewFileGateway constructs a file-backed gateway.
func NewFileGateway(path string, logger *zap.Logger) *FileGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileGateway{path: path, logger: logger}
}

// Load reads the blob, reseeding with fixture data when the file is absent
// or does not parse.
func (g *FileGateway) Load(ctx context.Context) (*models.Store, error) {
	raw, err := os.ReadFile(g.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read store file: %w", err)
		}
		return g.reseed(ctx)
	}

	s, err := decodeStore(raw)
	if err != nil {
		g.logger.Warn("store blob corrupt, reseeding", zap.String("path", g.path), zap.Error(err))
		return g.reseed(ctx)
	}
	return s, nil
}

// Save rewrites the entire blob.
func (g *FileGateway) Save(ctx context.Context, s *models.Store) error {
	raw, err := encodeStore(s)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if dir := filepath.Dir(g.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	if err := os.WriteFile(g.path, raw, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

// LoadRole reads the session role flag; absence means requester mode.
func (g *FileGateway) LoadRole(ctx context.Context) (bool, error) {
	raw, err := os.ReadFile(g.rolePath())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read role file: %w", err)
	}
	return decodeRole(string(raw)), nil
}

// SaveRole writes the session role flag.
func (g *FileGateway) SaveRole(ctx context.Context, admin bool) error {
	if dir := filepath.Dir(g.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	if err := os.WriteFile(g.rolePath(), []byte(encodeRole(admin)), 0o644); err != nil {
		return fmt.Errorf("write role file: %w", err)
	}
	return nil
}

// Reset discards the persisted blob and reinstalls the fixtures.
func (g *FileGateway) Reset(ctx context.Context) (*models.Store, error) {
	return g.reseed(ctx)
}

func (g *FileGateway) reseed(ctx context.Context) (*models.Store, error) {
	s := Seed()
	if err := g.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (g *FileGateway) rolePath() string {
	return g.path + ".role"
}
