package store

import (
	"context"
	"time"

	"github.com/reqtrackhq/reqtrack-api/internal/models"
)

// CycleObserver receives timings for whole-store persistence cycles.
type CycleObserver interface {
	ObserveStoreCycle(op string, duration time.Duration)
}

// InstrumentedGateway decorates a Gateway with cycle timing.
type InstrumentedGateway struct {
	inner    Gateway
	observer CycleObserver
}

// NewInstrumentedGateway wraps the gateway; a nil observer passes through.
func NewInstrumentedGateway(inner Gateway, observer CycleObserver) Gateway {
	if observer == nil {
		return inner
	}
	return &InstrumentedGateway{inner: inner, observer: observer}
}

func (g *InstrumentedGateway) Load(ctx context.Context) (*models.Store, error) {
	start := time.Now()
	s, err := g.inner.Load(ctx)
	g.observer.ObserveStoreCycle("load", time.Since(start))
	return s, err
}

func (g *InstrumentedGateway) Save(ctx context.Context, s *models.Store) error {
	start := time.Now()
	err := g.inner.Save(ctx, s)
	g.observer.ObserveStoreCycle("save", time.Since(start))
	return err
}

func (g *InstrumentedGateway) LoadRole(ctx context.Context) (bool, error) {
	return g.inner.LoadRole(ctx)
}

func (g *InstrumentedGateway) SaveRole(ctx context.Context, admin bool) error {
	return g.inner.SaveRole(ctx, admin)
}

func (g *InstrumentedGateway) Reset(ctx context.Context) (*models.Store, error) {
	start := time.Now()
	s, err := g.inner.Reset(ctx)
	g.observer.ObserveStoreCycle("reset", time.Since(start))
	return s, err
}
