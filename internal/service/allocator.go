package service

import (
	"context"
	"fmt"
	"time"

	"github.com/reqtrackhq/reqtrack-api/internal/models"
)

type allocatorSequencer interface {
	NextSequence(ctx context.Context, prefix models.Kind, period string) (int, error)
}

// Allocator issues human-facing document numbers: PREFIXYY-MM.SEQ with a
// three-digit, zero-padded sequence scoped to the (prefix, period) counter.
type Allocator struct {
	repo allocatorSequencer
}

// NewAllocator constructs an Allocator.
func NewAllocator(repo allocatorSequencer) *Allocator {
	return &Allocator{repo: repo}
}

// PeriodKey derives the YY-MM counter scope from a reference date.
func PeriodKey(ref time.Time) string {
	return ref.Format("06-01")
}

// Allocate issues the next document number for the prefix and reference
// date. The counter increment persists immediately, so a number is consumed
// even when the document submission is later discarded.
func (a *Allocator) Allocate(ctx context.Context, prefix models.Kind, ref time.Time) (string, error) {
	period := PeriodKey(ref)
	seq, err := a.repo.NextSequence(ctx, prefix, period)
	if err != nil {
		return "", fmt.Errorf("next sequence %s %s: %w", prefix, period, err)
	}
	return fmt.Sprintf("%s%s.%03d", prefix, period, seq), nil
}
