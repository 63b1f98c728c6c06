package service

import (
	"strings"

	"github.com/reqtrackhq/reqtrack-api/internal/models"
)

// SearchService performs case-insensitive substring matching across header
// fields, item fields, attachment filenames and item photo filenames.
type SearchService struct{}

// NewSearchService constructs a SearchService.
func NewSearchService() *SearchService {
	return &SearchService{}
}

// Filter returns the documents matching the query, order preserved. An empty
// query returns the input unchanged.
func (s *SearchService) Filter(requests []models.Request, query string) []models.Request {
	if query == "" {
		return requests
	}
	q := strings.ToLower(query)
	out := make([]models.Request, 0, len(requests))
	for _, r := range requests {
		if s.matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// CountHits counts the independently matching field groups within one
// document: the header counts at most once, each item once, and each photo
// and attachment filename once.
func (s *SearchService) CountHits(r models.Request, query string) int {
	if query == "" {
		return 0
	}
	q := strings.ToLower(query)
	hits := 0
	if strings.Contains(headerHaystack(r), q) {
		hits++
	}
	for _, item := range r.Items {
		if strings.Contains(itemHaystack(item), q) {
			hits++
		}
		for _, photo := range item.Photos {
			if strings.Contains(strings.ToLower(photo), q) {
				hits++
			}
		}
	}
	for _, records := range r.Files {
		for _, record := range records {
			if strings.Contains(strings.ToLower(record.Name), q) {
				hits++
			}
		}
	}
	return hits
}

func (s *SearchService) matches(r models.Request, q string) bool {
	if strings.Contains(headerHaystack(r), q) {
		return true
	}
	for _, item := range r.Items {
		if strings.Contains(itemHaystack(item), q) {
			return true
		}
		for _, photo := range item.Photos {
			if strings.Contains(strings.ToLower(photo), q) {
				return true
			}
		}
	}
	for _, records := range r.Files {
		for _, record := range records {
			if strings.Contains(strings.ToLower(record.Name), q) {
				return true
			}
		}
	}
	return false
}

func headerHaystack(r models.Request) string {
	fields := []string{r.DocNo, r.DocDate, r.Requester, r.Phone, string(r.Status)}
	if r.Kind == models.KindPR {
		fields = append(fields, r.Subject, r.Remark)
	} else {
		fields = append(fields, r.Project, r.Urgency, r.Note)
	}
	return strings.ToLower(strings.Join(fields, " "))
}

func itemHaystack(item models.Item) string {
	return strings.ToLower(strings.Join([]string{
		item.Name, item.Model, item.Code, item.Detail, item.Remark, item.Unit,
	}, " "))
}
