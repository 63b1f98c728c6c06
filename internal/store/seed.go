package store

import (
	"time"

	"github.com/reqtrackhq/reqtrack-api/internal/models"
	"github.com/reqtrackhq/reqtrack-api/pkg/ident"
)

// Seed builds the fixture store installed when no persisted blob exists or
// the persisted blob fails to parse. It carries one document of each kind and
// counters already advanced past the fixture numbers so later allocations
// continue the sequences.
func Seed() *models.Store {
	s := models.NewStore()

	createdQR := time.Date(2026, time.January, 12, 9, 30, 0, 0, time.UTC)
	qr := models.Request{
		Kind:      models.KindQR,
		ID:        ident.RequestID(),
		DocNo:     "QR26-01.001",
		DocDate:   "2026-01-12",
		Requester: "Somchai K.",
		Phone:     "081-555-0192",
		Status:    models.StatusQuoted,
		EditToken: ident.EditToken(),
		CreatedAt: createdQR,
		UpdatedAt: createdQR,
		Project:   "Line 3 pump overhaul",
		Urgency:   "High",
		Note:      "Need vendor options before month end",
		Items: []models.Item{
			{
				LineNo: 1,
				Name:   "Hydraulic pump",
				Model:  "HP-220",
				Code:   "PMP-0042",
				Qty:    2,
				Unit:   "ea",
				Detail: "220V, 3-phase",
			},
			{
				LineNo: 2,
				Name:   "Suction hose",
				Model:  "SH-50",
				Qty:    10,
				Unit:   "m",
			},
		},
	}
	qr.EnsureBuckets()
	qr.Files[models.BucketQuotation] = []models.AttachmentRecord{
		{
			ID:   ident.AttachmentID(),
			Name: "acme-pump-quote.pdf",
			By:   "admin",
			At:   createdQR.Add(26 * time.Hour),
		},
	}
	qr.Activity = []models.ActivityEntry{
		{
			At:     createdQR.Add(26 * time.Hour),
			Actor:  "admin",
			Action: models.EventAddQuotation,
			Detail: "acme-pump-quote.pdf",
		},
		{
			At:     createdQR,
			Actor:  "Somchai K.",
			Action: models.EventSubmit,
			Detail: "QR26-01.001",
		},
	}
	qr.UpdatedAt = createdQR.Add(26 * time.Hour)

	createdPR := time.Date(2025, time.November, 5, 14, 0, 0, 0, time.UTC)
	pr := models.Request{
		Kind:      models.KindPR,
		ID:        ident.RequestID(),
		DocNo:     "PR25-11.001",
		DocDate:   "2025-11-05",
		Requester: "Wanida T.",
		Phone:     "089-555-0077",
		Status:    models.StatusSubmitted,
		EditToken: ident.EditToken(),
		CreatedAt: createdPR,
		UpdatedAt: createdPR,
		Subject:   "Workshop consumables restock",
		ForJob:    "JOB-2025-118",
		Remark:    "Reimbursable",
		Approvals: &models.Approvals{PreparedBy: "Wanida T."},
		Items: []models.Item{
			{
				LineNo: 1,
				Name:   "Cutting disc 4 inch",
				Code:   "CD-400",
				Qty:    50,
				Unit:   "pc",
				Price:  18.5,
				Total:  925,
			},
			{
				LineNo: 2,
				Name:   "Welding rod 2.6mm",
				Qty:    5,
				Unit:   "box",
				Price:  240,
				Total:  1200,
			},
		},
	}
	pr.EnsureBuckets()
	pr.Activity = []models.ActivityEntry{
		{
			At:     createdPR,
			Actor:  "Wanida T.",
			Action: models.EventSubmit,
			Detail: "PR25-11.001",
		},
	}

	s.QR = []models.Request{qr}
	s.PR = []models.Request{pr}
	s.Counters[string(models.KindQR)]["26-01"] = 1
	s.Counters[string(models.KindPR)]["25-11"] = 1

	return s
}
