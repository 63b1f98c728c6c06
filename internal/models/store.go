package models

// Store is the root aggregate: the per-prefix monotonic counters and the two
// document collections, both kept most-recent-first. Every docNo is unique
// within its collection and counter values never decrease.
type Store struct {
	Counters map[string]map[string]int `json:"counters"`
	QR       []Request                 `json:"qr"`
	PR       []Request                 `json:"pr"`
}

// NewStore returns an empty store with initialised counter maps.
func NewStore() *Store {
	return &Store{
		Counters: map[string]map[string]int{
			string(KindQR): {},
			string(KindPR): {},
		},
		QR: []Request{},
		PR: []Request{},
	}
}

// Collection returns a pointer to the slice backing the given kind.
func (s *Store) Collection(kind Kind) *[]Request {
	if kind == KindPR {
		return &s.PR
	}
	return &s.QR
}

// NextSequence increments and returns the counter for (prefix, period).
// Sequence numbers are never reused, even when the corresponding document is
// later discarded.
func (s *Store) NextSequence(prefix Kind, period string) int {
	if s.Counters == nil {
		s.Counters = map[string]map[string]int{}
	}
	byPeriod, ok := s.Counters[string(prefix)]
	if !ok {
		byPeriod = map[string]int{}
		s.Counters[string(prefix)] = byPeriod
	}
	byPeriod[period]++
	return byPeriod[period]
}
