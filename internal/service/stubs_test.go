package service

import (
	"context"
	"fmt"

	"github.com/reqtrackhq/reqtrack-api/internal/models"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
)

// repoStub is an in-memory stand-in for the request repository used across
// the service tests.
type repoStub struct {
	qr       []models.Request
	pr       []models.Request
	counters map[string]map[string]int

	insertErr error
	seqErr    error
	resets    int
}

func (s *repoStub) collection(kind models.Kind) *[]models.Request {
	if kind == models.KindPR {
		return &s.pr
	}
	return &s.qr
}

func (s *repoStub) List(ctx context.Context, kind models.Kind) ([]models.Request, error) {
	return *s.collection(kind), nil
}

func (s *repoStub) FindByDocNo(ctx context.Context, docNo string) (*models.Request, error) {
	for _, coll := range []*[]models.Request{&s.qr, &s.pr} {
		for i := range *coll {
			if (*coll)[i].DocNo == docNo {
				doc := (*coll)[i]
				return &doc, nil
			}
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("document %s not found", docNo))
}

func (s *repoStub) Insert(ctx context.Context, req *models.Request) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	coll := s.collection(req.Kind)
	*coll = append([]models.Request{*req}, *coll...)
	return nil
}

func (s *repoStub) Update(ctx context.Context, req *models.Request) error {
	coll := s.collection(req.Kind)
	for i := range *coll {
		if (*coll)[i].DocNo == req.DocNo {
			(*coll)[i] = *req
			return nil
		}
	}
	return appErrors.ErrNotFound
}

func (s *repoStub) NextSequence(ctx context.Context, prefix models.Kind, period string) (int, error) {
	if s.seqErr != nil {
		return 0, s.seqErr
	}
	if s.counters == nil {
		s.counters = map[string]map[string]int{}
	}
	if s.counters[string(prefix)] == nil {
		s.counters[string(prefix)] = map[string]int{}
	}
	s.counters[string(prefix)][period]++
	return s.counters[string(prefix)][period], nil
}

func (s *repoStub) Reset(ctx context.Context) error {
	s.qr = nil
	s.pr = nil
	s.counters = nil
	s.resets++
	return nil
}
