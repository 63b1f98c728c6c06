package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/reqtrackhq/reqtrack-api/internal/dto"
	"github.com/reqtrackhq/reqtrack-api/internal/models"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
	"github.com/reqtrackhq/reqtrack-api/pkg/ident"
)

type requestRepository interface {
	List(ctx context.Context, kind models.Kind) ([]models.Request, error)
	FindByDocNo(ctx context.Context, docNo string) (*models.Request, error)
	Insert(ctx context.Context, req *models.Request) error
	Reset(ctx context.Context) error
}

type docNoAllocator interface {
	Allocate(ctx context.Context, prefix models.Kind, ref time.Time) (string, error)
}

type requestFilter interface {
	Filter(requests []models.Request, query string) []models.Request
	CountHits(r models.Request, query string) int
}

// RequestService owns document submission, lookup and register listing.
type RequestService struct {
	repo      requestRepository
	allocator docNoAllocator
	search    requestFilter
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewRequestService constructs a RequestService.
func NewRequestService(repo requestRepository, allocator docNoAllocator, search requestFilter, validate *validator.Validate, logger *zap.Logger) *RequestService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{
		repo:      repo,
		allocator: allocator,
		search:    search,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Create validates and submits a new document. Validation is atomic: on any
// failure nothing has been persisted yet. The document number allocation is
// its own store cycle; the created document saves in a second cycle.
func (s *RequestService) Create(ctx context.Context, req dto.CreateRequestRequest) (*models.Request, error) {
	kind := models.Kind(req.Kind)
	if !kind.Valid() {
		return nil, appErrors.ErrInvalidKind
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission")
	}
	if kind == models.KindPR {
		for i, item := range req.Items {
			if item.Price <= 0 {
				return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("item %d: price must be greater than zero", i+1))
			}
		}
	}

	now := s.now().UTC()
	docDate := req.DocDate
	if docDate == "" {
		docDate = now.Format("2006-01-02")
	}
	ref := now
	if parsed, err := time.Parse("2006-01-02", docDate); err == nil {
		ref = parsed
	}

	docNo, err := s.allocator.Allocate(ctx, kind, ref)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to allocate document number")
	}

	doc := &models.Request{
		Kind:      kind,
		ID:        ident.RequestID(),
		DocNo:     docNo,
		DocDate:   docDate,
		Requester: req.Requester,
		Phone:     req.Phone,
		Status:    models.StatusSubmitted,
		EditToken: ident.EditToken(),
		CreatedAt: now,
		UpdatedAt: now,
		Items:     buildItems(kind, req.Items),
	}
	if kind == models.KindQR {
		doc.Project = req.Project
		doc.Urgency = req.Urgency
		doc.Note = req.Note
	} else {
		doc.Subject = req.Subject
		doc.ForJob = req.ForJob
		doc.Remark = req.Remark
		if req.Approvals != nil {
			doc.Approvals = &models.Approvals{
				PreparedBy: req.Approvals.PreparedBy,
				OrderedBy:  req.Approvals.OrderedBy,
				ApprovedBy: req.Approvals.ApprovedBy,
			}
		}
	}
	doc.EnsureBuckets()
	doc.Activity = []models.ActivityEntry{{
		At:     now,
		Actor:  req.Requester,
		Action: models.EventSubmit,
		Detail: docNo,
	}}

	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document submitted",
		zap.String("doc_no", docNo),
		zap.String("kind", string(kind)),
		zap.Int("items", len(doc.Items)),
	)
	return doc, nil
}

// Get looks a document up by number.
func (s *RequestService) Get(ctx context.Context, docNo string) (*models.Request, error) {
	return s.repo.FindByDocNo(ctx, docNo)
}

// List returns the register for one kind with the search filter applied.
func (s *RequestService) List(ctx context.Context, filter dto.ListFilter) ([]models.Request, error) {
	kind := models.Kind(filter.Kind)
	if !kind.Valid() {
		return nil, appErrors.ErrInvalidKind
	}
	requests, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	return s.search.Filter(requests, filter.Query), nil
}

// Hits reports the number of matching field groups within one document.
func (s *RequestService) Hits(ctx context.Context, docNo, query string) (*dto.HitsResponse, error) {
	doc, err := s.repo.FindByDocNo(ctx, docNo)
	if err != nil {
		return nil, err
	}
	return &dto.HitsResponse{
		DocNo: doc.DocNo,
		Query: query,
		Hits:  s.search.CountHits(*doc, query),
	}, nil
}

// Reset discards persisted state and reinstalls the fixture store.
func (s *RequestService) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return err
	}
	s.logger.Warn("store reset to fixtures")
	return nil
}

func buildItems(kind models.Kind, inputs []dto.ItemInput) []models.Item {
	items := make([]models.Item, 0, len(inputs))
	for i, in := range inputs {
		item := models.Item{
			LineNo: i + 1,
			Name:   in.Name,
			Model:  in.Model,
			Code:   in.Code,
			Qty:    in.Qty,
			Unit:   in.Unit,
			Detail: in.Detail,
			Remark: in.Remark,
			Photos: append([]string(nil), in.Photos...),
		}
		if kind == models.KindPR {
			item.Price = in.Price
			item.Total = in.Qty * in.Price
		}
		items = append(items, item)
	}
	return items
}
