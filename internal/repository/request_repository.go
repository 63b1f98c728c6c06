package repository

import (
	"context"
	"fmt"

	"github.com/reqtrackhq/reqtrack-api/internal/models"
	"github.com/reqtrackhq/reqtrack-api/internal/store"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
)

// RequestRepository runs collection operations over the store blob. Every
// mutating call is its own full load-mutate-save cycle; concurrent writers
// are last-writer-wins by design, acceptable only for a single active
// session.
type RequestRepository struct {
	gateway store.Gateway
}

// NewRequestRepository constructs the repository.
func NewRequestRepository(gateway store.Gateway) *RequestRepository {
	return &RequestRepository{gateway: gateway}
}

// List returns the documents of one kind, most recent first.
func (r *RequestRepository) List(ctx context.Context, kind models.Kind) ([]models.Request, error) {
	s, err := r.gateway.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	return *s.Collection(kind), nil
}

// FindByDocNo looks a document up by its number across both collections.
func (r *RequestRepository) FindByDocNo(ctx context.Context, docNo string) (*models.Request, error) {
	s, err := r.gateway.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	for _, kind := range []models.Kind{models.KindQR, models.KindPR} {
		coll := *s.Collection(kind)
		for i := range coll {
			if coll[i].DocNo == docNo {
				req := coll[i]
				return &req, nil
			}
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("document %s not found", docNo))
}

// Insert places a new document at the front of its collection. The document
// number must be unique within the collection.
func (r *RequestRepository) Insert(ctx context.Context, req *models.Request) error {
	s, err := r.gateway.Load(ctx)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	coll := s.Collection(req.Kind)
	for i := range *coll {
		if (*coll)[i].DocNo == req.DocNo {
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("document number %s already exists", req.DocNo))
		}
	}
	*coll = append([]models.Request{*req}, *coll...)
	if err := r.gateway.Save(ctx, s); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}

// Update replaces the stored document with the same docNo.
func (r *RequestRepository) Update(ctx context.Context, req *models.Request) error {
	s, err := r.gateway.Load(ctx)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	coll := s.Collection(req.Kind)
	for i := range *coll {
		if (*coll)[i].DocNo == req.DocNo {
			(*coll)[i] = *req
			if err := r.gateway.Save(ctx, s); err != nil {
				return fmt.Errorf("save store: %w", err)
			}
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("document %s not found", req.DocNo))
}

// NextSequence increments the (prefix, period) counter and persists the
// store immediately. This allocation cycle is distinct from the save of the
// document being created; sequence numbers are never reused even when the
// document is discarded.
func (r *RequestRepository) NextSequence(ctx context.Context, prefix models.Kind, period string) (int, error) {
	s, err := r.gateway.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load store: %w", err)
	}
	seq := s.NextSequence(prefix, period)
	if err := r.gateway.Save(ctx, s); err != nil {
		return 0, fmt.Errorf("save store: %w", err)
	}
	return seq, nil
}

// Reset discards persisted state and reinstalls the fixtures.
func (r *RequestRepository) Reset(ctx context.Context) error {
	if _, err := r.gateway.Reset(ctx); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	return nil
}
