package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtrackhq/reqtrack-api/internal/dto"
	"github.com/reqtrackhq/reqtrack-api/internal/models"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
)

func newRequestService(repo *repoStub) *RequestService {
	svc := NewRequestService(repo, NewAllocator(repo), NewSearchService(), validator.New(), nil)
	svc.now = func() time.Time {
		return time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func validQRSubmission() dto.CreateRequestRequest {
	return dto.CreateRequestRequest{
		Kind:      "QR",
		DocDate:   "2026-01-15",
		Requester: "Somchai K.",
		Phone:     "081-555-0192",
		Project:   "Line 3 overhaul",
		Urgency:   "High",
		Items: []dto.ItemInput{
			{Name: "Hydraulic pump", Model: "HP-220", Qty: 2, Unit: "ea"},
			{Name: "Suction hose", Qty: 10, Unit: "m"},
		},
	}
}

func validPRSubmission() dto.CreateRequestRequest {
	return dto.CreateRequestRequest{
		Kind:      "PR",
		DocDate:   "2025-11-05",
		Requester: "Wanida T.",
		Phone:     "089-555-0077",
		Subject:   "Consumables restock",
		ForJob:    "JOB-118",
		Items: []dto.ItemInput{
			{Name: "Cutting disc", Qty: 50, Unit: "pc", Price: 18.5},
		},
	}
}

func TestRequestServiceCreateQR(t *testing.T) {
	repo := &repoStub{}
	svc := newRequestService(repo)

	doc, err := svc.Create(context.Background(), validQRSubmission())
	require.NoError(t, err)

	assert.Equal(t, "QR26-01.001", doc.DocNo)
	assert.Equal(t, models.StatusSubmitted, doc.Status)
	assert.Len(t, doc.ID, 12)
	assert.Len(t, doc.EditToken, 24)

	require.Len(t, doc.Items, 2)
	assert.Equal(t, 1, doc.Items[0].LineNo)
	assert.Equal(t, 2, doc.Items[1].LineNo)

	require.Len(t, doc.Activity, 1)
	assert.Equal(t, models.EventSubmit, doc.Activity[0].Action)
	assert.Equal(t, "Somchai K.", doc.Activity[0].Actor)

	assert.Contains(t, doc.Files, models.BucketQuotation)
	assert.Contains(t, doc.Files, models.BucketPO)
	assert.Contains(t, doc.Files, models.BucketShipping)
	assert.NotContains(t, doc.Files, models.BucketReceipts)

	require.Len(t, repo.qr, 1)
}

func TestRequestServiceCreatePRComputesTotals(t *testing.T) {
	repo := &repoStub{}
	svc := newRequestService(repo)

	doc, err := svc.Create(context.Background(), validPRSubmission())
	require.NoError(t, err)

	assert.Equal(t, "PR25-11.001", doc.DocNo)
	require.Len(t, doc.Items, 1)
	assert.InDelta(t, 925.0, doc.Items[0].Total, 0.0001)
	assert.Contains(t, doc.Files, models.BucketReceipts)
}

func TestRequestServiceCreateSequencesAdvance(t *testing.T) {
	repo := &repoStub{}
	svc := newRequestService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, validQRSubmission())
	require.NoError(t, err)
	second, err := svc.Create(ctx, validQRSubmission())
	require.NoError(t, err)

	assert.Equal(t, "QR26-01.001", first.DocNo)
	assert.Equal(t, "QR26-01.002", second.DocNo)
	assert.NotEqual(t, first.ID, second.ID)

	// Newest first in the collection.
	require.Len(t, repo.qr, 2)
	assert.Equal(t, "QR26-01.002", repo.qr[0].DocNo)
}

func TestRequestServiceCreateValidationIsAtomic(t *testing.T) {
	cases := map[string]func(*dto.CreateRequestRequest){
		"no items":          func(r *dto.CreateRequestRequest) { r.Items = nil },
		"missing requester": func(r *dto.CreateRequestRequest) { r.Requester = "" },
		"missing phone":     func(r *dto.CreateRequestRequest) { r.Phone = "" },
		"zero qty":          func(r *dto.CreateRequestRequest) { r.Items[0].Qty = 0 },
		"missing unit":      func(r *dto.CreateRequestRequest) { r.Items[0].Unit = "" },
		"missing item name": func(r *dto.CreateRequestRequest) { r.Items[0].Name = "" },
	}

	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &repoStub{}
			svc := newRequestService(repo)

			req := validQRSubmission()
			corrupt(&req)

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

			// Nothing persisted and no sequence consumed.
			assert.Empty(t, repo.qr)
			assert.Empty(t, repo.counters)
		})
	}
}

func TestRequestServiceCreatePRRequiresPrice(t *testing.T) {
	repo := &repoStub{}
	svc := newRequestService(repo)

	req := validPRSubmission()
	req.Items[0].Price = 0

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.pr)
}

func TestRequestServiceCreateRejectsUnknownKind(t *testing.T) {
	svc := newRequestService(&repoStub{})

	req := validQRSubmission()
	req.Kind = "ZZ"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidKind.Code, appErrors.FromError(err).Code)
}

func TestRequestServiceGetNotFound(t *testing.T) {
	svc := newRequestService(&repoStub{})

	_, err := svc.Get(context.Background(), "QR99-01.001")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRequestServiceListAppliesFilter(t *testing.T) {
	repo := &repoStub{}
	svc := newRequestService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, validQRSubmission())
	require.NoError(t, err)
	other := validQRSubmission()
	other.Project = "Compressor room"
	other.Items = []dto.ItemInput{{Name: "Air filter", Qty: 4, Unit: "pc"}}
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	all, err := svc.List(ctx, dto.ListFilter{Kind: "QR"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := svc.List(ctx, dto.ListFilter{Kind: "QR", Query: "PUMP"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "QR26-01.001", matched[0].DocNo)
}

func TestRequestServiceHits(t *testing.T) {
	repo := &repoStub{}
	svc := newRequestService(repo)
	ctx := context.Background()

	doc, err := svc.Create(ctx, validQRSubmission())
	require.NoError(t, err)

	hits, err := svc.Hits(ctx, doc.DocNo, "pump")
	require.NoError(t, err)
	assert.Equal(t, 1, hits.Hits)
	assert.Equal(t, doc.DocNo, hits.DocNo)
}

func TestRequestServiceReset(t *testing.T) {
	repo := &repoStub{}
	svc := newRequestService(repo)

	require.NoError(t, svc.Reset(context.Background()))
	assert.Equal(t, 1, repo.resets)
}
