package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/reqtrackhq/reqtrack-api/internal/dto"
	"github.com/reqtrackhq/reqtrack-api/internal/models"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
	"github.com/reqtrackhq/reqtrack-api/pkg/ident"
)

type workflowRepository interface {
	FindByDocNo(ctx context.Context, docNo string) (*models.Request, error)
	Update(ctx context.Context, req *models.Request) error
}

// WorkflowService applies domain events to documents: status transitions,
// attachment buckets and the shipping sub-record. Every applied event
// appends exactly one activity entry and refreshes updatedAt.
type WorkflowService struct {
	repo   workflowRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewWorkflowService constructs a WorkflowService.
func NewWorkflowService(repo workflowRepository, logger *zap.Logger) *WorkflowService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkflowService{repo: repo, logger: logger, now: time.Now}
}

// bucketEvents maps each attachment bucket to the activity tag its add
// records. Only the quotation and po buckets drive a status transition.
var bucketEvents = map[string]models.Event{
	models.BucketQuotation: models.EventAddQuotation,
	models.BucketPO:        models.EventAddPO,
	models.BucketShipping:  models.EventUpdateShipping,
	models.BucketReceipts:  models.EventAddReceipt,
}

// ApplyEvent advances a document by one domain event. SUBMIT only fires at
// creation and is rejected here. The transition table is deliberately
// permissive: ADD_PO and CLOSE fire from any current status.
func (s *WorkflowService) ApplyEvent(ctx context.Context, docNo string, req dto.ApplyEventRequest) (*models.Request, error) {
	event := models.Event(strings.ToUpper(req.Event))

	doc, err := s.repo.FindByDocNo(ctx, docNo)
	if err != nil {
		return nil, err
	}
	if err := checkEventKind(doc.Kind, event); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if next, changed := transition(doc, event); changed {
		doc.Status = next
	}
	doc.PrependActivity(now, s.actor(req.Actor, doc, event), event, req.Detail)

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	s.logger.Info("event applied",
		zap.String("doc_no", doc.DocNo),
		zap.String("event", string(event)),
		zap.String("status", string(doc.Status)),
	)
	return doc, nil
}

// AddAttachment records a filename in the named bucket, newest first, and
// fires the transition associated with the bucket. The attachment and its
// activity entry are recorded even when the status guard leaves the status
// unchanged.
func (s *WorkflowService) AddAttachment(ctx context.Context, docNo string, req dto.AddAttachmentRequest) (*models.Request, error) {
	doc, err := s.repo.FindByDocNo(ctx, docNo)
	if err != nil {
		return nil, err
	}
	if !doc.HasBucket(req.Bucket) {
		return nil, appErrors.Clone(appErrors.ErrInvalidBucket, fmt.Sprintf("bucket %q not available for %s documents", req.Bucket, doc.Kind))
	}

	now := s.now().UTC()
	uploader := req.Uploader
	if uploader == "" {
		uploader = "admin"
	}

	record := models.AttachmentRecord{
		ID:   ident.AttachmentID(),
		Name: req.Filename,
		By:   uploader,
		At:   now,
	}
	doc.EnsureBuckets()
	doc.Files[req.Bucket] = append([]models.AttachmentRecord{record}, doc.Files[req.Bucket]...)

	event := bucketEvents[req.Bucket]
	// Only the quotation and po buckets carry an associated transition;
	// shipping and receipts adds are attachment-only events.
	if req.Bucket == models.BucketQuotation || req.Bucket == models.BucketPO {
		if next, changed := transition(doc, event); changed {
			doc.Status = next
		}
	}
	doc.PrependActivity(now, uploader, event, req.Filename)

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	s.logger.Info("attachment added",
		zap.String("doc_no", doc.DocNo),
		zap.String("bucket", req.Bucket),
		zap.String("file", req.Filename),
	)
	return doc, nil
}

// RemoveAttachment deletes a record by id from the named bucket. The calling
// surface gates this on the admin role.
func (s *WorkflowService) RemoveAttachment(ctx context.Context, docNo, bucket, id string) (*models.Request, error) {
	doc, err := s.repo.FindByDocNo(ctx, docNo)
	if err != nil {
		return nil, err
	}
	if !doc.HasBucket(bucket) {
		return nil, appErrors.Clone(appErrors.ErrInvalidBucket, fmt.Sprintf("bucket %q not available for %s documents", bucket, doc.Kind))
	}

	records := doc.Files[bucket]
	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("attachment %s not found in bucket %s", id, bucket))
	}
	doc.Files[bucket] = append(records[:idx], records[idx+1:]...)
	doc.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateShipping replaces the QR shipping sub-record and moves the document
// to Shipping.
func (s *WorkflowService) UpdateShipping(ctx context.Context, docNo string, req dto.UpdateShippingRequest) (*models.Request, error) {
	doc, err := s.repo.FindByDocNo(ctx, docNo)
	if err != nil {
		return nil, err
	}
	if doc.Kind != models.KindQR {
		return nil, appErrors.Clone(appErrors.ErrInvalidEvent, "shipping updates apply to QR documents only")
	}

	now := s.now().UTC()
	doc.Shipping = &models.Shipping{
		ETD:      req.ETD,
		ETA:      req.ETA,
		Tracking: req.Tracking,
		Notes:    req.Notes,
	}
	doc.Status = models.StatusShipping
	doc.PrependActivity(now, s.actor(req.Actor, doc, models.EventUpdateShipping), models.EventUpdateShipping, shippingDetail(req))

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// transition returns the status an event yields, and whether the status
// changes at all. Guards follow the documented table: ADD_QUOTATION only
// moves Submitted documents; ADD_PO, UPDATE_SHIPPING and CLOSE are
// unguarded; ADD_RECEIPT never changes status.
func transition(doc *models.Request, event models.Event) (models.Status, bool) {
	switch event {
	case models.EventRequestEdit:
		return models.StatusEditRequested, true
	case models.EventAddQuotation:
		if doc.Kind == models.KindQR && doc.Status == models.StatusSubmitted {
			return models.StatusQuoted, true
		}
		return doc.Status, false
	case models.EventAddPO:
		if doc.Kind == models.KindQR {
			return models.StatusPOIssued, true
		}
		return doc.Status, false
	case models.EventUpdateShipping:
		if doc.Kind == models.KindQR {
			return models.StatusShipping, true
		}
		return doc.Status, false
	case models.EventClose:
		return models.StatusClosed, true
	default:
		return doc.Status, false
	}
}

func checkEventKind(kind models.Kind, event models.Event) error {
	switch event {
	case models.EventRequestEdit, models.EventClose:
		return nil
	case models.EventAddQuotation, models.EventAddPO, models.EventUpdateShipping:
		if kind != models.KindQR {
			return appErrors.Clone(appErrors.ErrInvalidEvent, fmt.Sprintf("%s applies to QR documents only", event))
		}
		return nil
	case models.EventAddReceipt:
		if kind != models.KindPR {
			return appErrors.Clone(appErrors.ErrInvalidEvent, "ADD_RECEIPT applies to PR documents only")
		}
		return nil
	case models.EventSubmit:
		return appErrors.Clone(appErrors.ErrInvalidEvent, "SUBMIT fires on creation only")
	default:
		return appErrors.Clone(appErrors.ErrInvalidEvent, fmt.Sprintf("unknown event %q", event))
	}
}

func (s *WorkflowService) actor(actor string, doc *models.Request, event models.Event) string {
	if actor != "" {
		return actor
	}
	if event == models.EventRequestEdit {
		return doc.Requester
	}
	return "admin"
}

func shippingDetail(req dto.UpdateShippingRequest) string {
	parts := make([]string, 0, 4)
	if req.ETD != "" {
		parts = append(parts, "ETD "+req.ETD)
	}
	if req.ETA != "" {
		parts = append(parts, "ETA "+req.ETA)
	}
	if req.Tracking != "" {
		parts = append(parts, "tracking "+req.Tracking)
	}
	if req.Notes != "" {
		parts = append(parts, req.Notes)
	}
	return strings.Join(parts, ", ")
}
