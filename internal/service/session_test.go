package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleStoreStub struct {
	admin bool
	err   error
}

func (s *roleStoreStub) LoadRole(ctx context.Context) (bool, error) {
	return s.admin, s.err
}

func (s *roleStoreStub) SaveRole(ctx context.Context, admin bool) error {
	if s.err != nil {
		return s.err
	}
	s.admin = admin
	return nil
}

func TestSessionServiceRoleRoundTrip(t *testing.T) {
	store := &roleStoreStub{}
	svc := NewSessionService(store, nil)
	ctx := context.Background()

	admin, err := svc.IsAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, admin)

	require.NoError(t, svc.SetAdmin(ctx, true))
	admin, err = svc.IsAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, admin)

	require.NoError(t, svc.SetAdmin(ctx, false))
	admin, err = svc.IsAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, admin)
}
