package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtrackhq/reqtrack-api/internal/models"
)

func searchFixtures() []models.Request {
	return []models.Request{
		{
			Kind:      models.KindQR,
			DocNo:     "QR26-01.001",
			DocDate:   "2026-01-12",
			Requester: "Somchai K.",
			Phone:     "081-555-0192",
			Status:    models.StatusSubmitted,
			Project:   "Line 3 overhaul",
			Items: []models.Item{
				{LineNo: 1, Name: "Hydraulic pump", Model: "HP-220", Qty: 2, Unit: "ea"},
				{LineNo: 2, Name: "Suction hose", Qty: 10, Unit: "m", Photos: []string{"hose-photo.jpg"}},
			},
			Files: map[string][]models.AttachmentRecord{
				models.BucketQuotation: {{ID: "a1", Name: "acme-quote.pdf"}},
			},
		},
		{
			Kind:      models.KindQR,
			DocNo:     "QR26-01.002",
			DocDate:   "2026-01-14",
			Requester: "Wanida T.",
			Phone:     "089-555-0077",
			Status:    models.StatusSubmitted,
			Project:   "Compressor room",
			Items: []models.Item{
				{LineNo: 1, Name: "Air filter", Qty: 4, Unit: "pc"},
			},
		},
	}
}

func TestSearchFilterIsCaseInsensitive(t *testing.T) {
	search := NewSearchService()

	matched := search.Filter(searchFixtures(), "PUMP")
	require.Len(t, matched, 1)
	assert.Equal(t, "QR26-01.001", matched[0].DocNo)
}

func TestSearchFilterEmptyQueryIsIdentity(t *testing.T) {
	search := NewSearchService()
	fixtures := searchFixtures()

	result := search.Filter(fixtures, "")
	assert.Equal(t, fixtures, result)
}

func TestSearchFilterMatchesAttachmentAndPhotoNames(t *testing.T) {
	search := NewSearchService()

	matched := search.Filter(searchFixtures(), "acme-quote")
	require.Len(t, matched, 1)
	assert.Equal(t, "QR26-01.001", matched[0].DocNo)

	matched = search.Filter(searchFixtures(), "hose-photo")
	require.Len(t, matched, 1)
	assert.Equal(t, "QR26-01.001", matched[0].DocNo)
}

func TestSearchFilterMatchesHeaderFields(t *testing.T) {
	search := NewSearchService()

	matched := search.Filter(searchFixtures(), "compressor")
	require.Len(t, matched, 1)
	assert.Equal(t, "QR26-01.002", matched[0].DocNo)

	matched = search.Filter(searchFixtures(), "somchai")
	require.Len(t, matched, 1)
	assert.Equal(t, "QR26-01.001", matched[0].DocNo)
}

func TestSearchFilterPreservesOrder(t *testing.T) {
	search := NewSearchService()

	matched := search.Filter(searchFixtures(), "qr26-01")
	require.Len(t, matched, 2)
	assert.Equal(t, "QR26-01.001", matched[0].DocNo)
	assert.Equal(t, "QR26-01.002", matched[1].DocNo)
}

func TestSearchCountHitsCountsFieldGroupsIndependently(t *testing.T) {
	search := NewSearchService()
	doc := searchFixtures()[0]

	// "hose" appears in one item and in one photo filename.
	assert.Equal(t, 2, search.CountHits(doc, "hose"))

	// Header only, counted once despite multiple header fields matching.
	assert.Equal(t, 1, search.CountHits(doc, "somchai"))

	// docNo matches the header group; items and files do not contain it.
	assert.Equal(t, 1, search.CountHits(doc, "QR26-01.001"))

	assert.Equal(t, 0, search.CountHits(doc, "missing-term"))
	assert.Equal(t, 0, search.CountHits(doc, ""))
}

func TestSearchCountHitsAttachmentNames(t *testing.T) {
	search := NewSearchService()
	doc := searchFixtures()[0]

	assert.Equal(t, 1, search.CountHits(doc, "acme"))
}
