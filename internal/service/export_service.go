package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/reqtrackhq/reqtrack-api/internal/dto"
	"github.com/reqtrackhq/reqtrack-api/internal/models"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
	"github.com/reqtrackhq/reqtrack-api/pkg/export"
)

type exportReader interface {
	FindByDocNo(ctx context.Context, docNo string) (*models.Request, error)
	List(ctx context.Context, kind models.Kind) ([]models.Request, error)
}

// Artifact is a rendered export ready to stream to the caller.
type Artifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders document printouts (PDF) and register listings
// (CSV).
type ExportService struct {
	repo   exportReader
	search requestFilter
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
}

// NewExportService constructs an ExportService.
func NewExportService(repo exportReader, search requestFilter) *ExportService {
	return &ExportService{
		repo:   repo,
		search: search,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
	}
}

// Document renders one document as a printable PDF.
func (s *ExportService) Document(ctx context.Context, docNo string) (*Artifact, error) {
	doc, err := s.repo.FindByDocNo(ctx, docNo)
	if err != nil {
		return nil, err
	}

	headers := []string{"#", "Name", "Model", "Code", "Qty", "Unit", "Detail"}
	if doc.Kind == models.KindPR {
		headers = []string{"#", "Name", "Code", "Qty", "Unit", "Price", "Total"}
	}
	rows := make([]map[string]string, 0, len(doc.Items))
	for _, item := range doc.Items {
		row := map[string]string{
			"#":    strconv.Itoa(item.LineNo),
			"Name": item.Name,
			"Code": item.Code,
			"Qty":  formatQty(item.Qty),
			"Unit": item.Unit,
		}
		if doc.Kind == models.KindPR {
			row["Price"] = fmt.Sprintf("%.2f", item.Price)
			row["Total"] = fmt.Sprintf("%.2f", item.Total)
		} else {
			row["Model"] = item.Model
			row["Detail"] = item.Detail
		}
		rows = append(rows, row)
	}

	fields := []export.KV{
		{Label: "Document No", Value: doc.DocNo},
		{Label: "Date", Value: doc.DocDate},
		{Label: "Requester", Value: doc.Requester},
		{Label: "Phone", Value: doc.Phone},
		{Label: "Status", Value: string(doc.Status)},
	}
	title := "Quotation Request"
	if doc.Kind == models.KindPR {
		title = "Purchase Requisition"
		fields = append(fields, export.KV{Label: "Subject", Value: doc.Subject}, export.KV{Label: "For Job", Value: doc.ForJob})
	} else {
		fields = append(fields, export.KV{Label: "Project", Value: doc.Project}, export.KV{Label: "Urgency", Value: doc.Urgency})
	}

	content, err := s.pdf.Render(export.Dataset{Headers: headers, Rows: rows}, title, fields)
	if err != nil {
		return nil, fmt.Errorf("render document pdf: %w", err)
	}
	return &Artifact{
		Filename:    fmt.Sprintf("%s-%s.pdf", doc.DocNo, uuid.NewString()[:8]),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// Register renders a filtered register listing as CSV.
func (s *ExportService) Register(ctx context.Context, filter dto.ListFilter) (*Artifact, error) {
	kind := models.Kind(filter.Kind)
	if !kind.Valid() {
		return nil, appErrors.ErrInvalidKind
	}
	requests, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	requests = s.search.Filter(requests, filter.Query)

	headers := []string{"DocNo", "Date", "Requester", "Phone", "Status", "Items"}
	rows := make([]map[string]string, 0, len(requests))
	for _, doc := range requests {
		rows = append(rows, map[string]string{
			"DocNo":     doc.DocNo,
			"Date":      doc.DocDate,
			"Requester": doc.Requester,
			"Phone":     doc.Phone,
			"Status":    string(doc.Status),
			"Items":     strconv.Itoa(len(doc.Items)),
		})
	}

	content, err := s.csv.Render(export.Dataset{Headers: headers, Rows: rows})
	if err != nil {
		return nil, fmt.Errorf("render register csv: %w", err)
	}
	return &Artifact{
		Filename:    fmt.Sprintf("register-%s-%s.csv", filter.Kind, uuid.NewString()[:8]),
		ContentType: "text/csv",
		Content:     content,
	}, nil
}

func formatQty(qty float64) string {
	return strconv.FormatFloat(qty, 'f', -1, 64)
}
