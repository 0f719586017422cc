package viewstate

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Notifier receives user-facing toast messages.
type Notifier interface {
	Notify(message string)
}

// NotifyFunc adapts a function to Notifier.
type NotifyFunc func(message string)

func (f NotifyFunc) Notify(message string) { f(message) }

// SearchMessage is the acknowledgement shown when a search is submitted.
func SearchMessage(query string) string {
	return `Searching for "` + query + `"…`
}

// SearchFilter holds the header search query. Filtering is live; Submit
// only acknowledges.
type SearchFilter struct {
	query string
	sink  Notifier
	notifier
}

func NewSearchFilter(sink Notifier) *SearchFilter {
	return &SearchFilter{sink: sink}
}

// SetQuery replaces the query verbatim. Whitespace is not trimmed.
func (s *SearchFilter) SetQuery(q string) {
	if q == s.query {
		return
	}
	s.query = q
	s.notify()
}

func (s *SearchFilter) Query() string {
	return s.query
}

// Filtered applies the current query to cards.
func (s *SearchFilter) Filtered(cards []StatCard) []StatCard {
	return FilterCards(cards, s.query)
}

// Submit sends the acknowledgement toast for the current query.
func (s *SearchFilter) Submit() {
	if s.sink == nil {
		return
	}
	s.sink.Notify(SearchMessage(s.query))
}

// FilterCards keeps the cards whose title contains query, ignoring case,
// in their original order. An empty query keeps every card.
func FilterCards(cards []StatCard, query string) []StatCard {
	if query == "" {
		return slices.Clone(cards)
	}
	q := strings.ToLower(query)
	out := make([]StatCard, 0, len(cards))
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.Title), q) {
			out = append(out, c)
		}
	}
	return out
}

// ClosestTitle returns the card title nearest to query by edit distance,
// for the empty-result hint.
func ClosestTitle(cards []StatCard, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(cards) == 0 {
		return "", false
	}
	best, bestDist := "", -1
	for _, c := range cards {
		d := levenshtein.ComputeDistance(q, strings.ToLower(c.Title))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.Title, d
		}
	}
	return best, true
}
