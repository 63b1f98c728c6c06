package service

import (
	"context"

	"go.uber.org/zap"
)

type roleStore interface {
	LoadRole(ctx context.Context) (bool, error)
	SaveRole(ctx context.Context, admin bool) error
}

// SessionService reads and toggles the single shared role flag: admin mode
// versus requester mode for the current session. There are no users and no
// credentials; the flag is the whole access model.
type SessionService struct {
	gateway roleStore
	logger  *zap.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(gateway roleStore, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{gateway: gateway, logger: logger}
}

// IsAdmin reports whether the session is in admin mode.
func (s *SessionService) IsAdmin(ctx context.Context) (bool, error) {
	return s.gateway.LoadRole(ctx)
}

// SetAdmin switches the session between admin and requester mode.
func (s *SessionService) SetAdmin(ctx context.Context, admin bool) error {
	if err := s.gateway.SaveRole(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("session role changed", zap.Bool("admin", admin))
	return nil
}
