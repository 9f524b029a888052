// README: Location service implements catalog fuzzy search and remote autocomplete.
package location

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hogicar/internal/amadeus"
)

const (
	// searchLimit caps catalog matches; suggestLimit caps remote results.
	searchLimit  = 20
	suggestLimit = 10

	// minSuggestQuery is the shortest query worth a remote round trip.
	minSuggestQuery = 2
)

// Remote is the optional airport/city lookup collaborator. A nil Remote
// means the integration is not configured and Suggest serves fallback data.
type Remote interface {
	Locations(ctx context.Context, keyword, subTypes string) ([]amadeus.Location, error)
}

type Service struct {
	remote Remote
	store  *Store
	log    *zap.Logger
}

func NewService(remote Remote, store *Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{remote: remote, store: store, log: log}
}

// Search filters the fixed catalog by normalized substring containment
// over every field. A blank query returns the whole catalog in order;
// otherwise matches keep catalog order and are capped at 20.
func (s *Service) Search(query string) []Record {
	if strings.TrimSpace(query) == "" {
		out := make([]Record, len(Catalog))
		copy(out, Catalog)
		return out
	}

	q := normalize(query)
	out := make([]Record, 0, searchLimit)
	for _, r := range Catalog {
		if normMatch(r, q) {
			out = append(out, r)
			if len(out) == searchLimit {
				break
			}
		}
	}
	return out
}

// Suggest resolves autocomplete suggestions through the remote lookup
// when it is configured and the query is long enough. Any remote fault
// degrades to the fixed default list; it is never surfaced to the caller.
func (s *Service) Suggest(ctx context.Context, query string) []Suggestion {
	query = strings.TrimSpace(query)
	if !s.remoteConfigured() || len(query) < minSuggestQuery {
		return DefaultSuggestions()
	}

	if cached, ok := s.store.GetSuggestions(ctx, query); ok {
		return cached
	}

	locs, err := s.remote.Locations(ctx, query, "AIRPORT,CITY")
	if err != nil {
		s.log.Warn("remote location lookup failed, serving defaults",
			zap.String("query", query), zap.Error(err))
		return DefaultSuggestions()
	}

	out := make([]Suggestion, 0, suggestLimit)
	for _, l := range locs {
		if l.IATACode == "" || l.CountryCode == "" {
			continue
		}
		out = append(out, Suggestion{
			Value: l.IATACode,
			Label: fmt.Sprintf("%s, %s (%s)", l.Name, l.CountryCode, l.IATACode),
			Type:  l.SubType,
		})
		if len(out) == suggestLimit {
			break
		}
	}

	s.store.PutSuggestions(ctx, query, out)
	return out
}

func (s *Service) remoteConfigured() bool {
	return s.remote != nil
}

func normMatch(r Record, q string) bool {
	return strings.Contains(normalize(r.Name), q) ||
		strings.Contains(normalize(r.Country), q) ||
		strings.Contains(normalize(r.Code), q) ||
		strings.Contains(normalize(r.Label), q) ||
		strings.Contains(normalize(r.Value), q)
}

// normalize lowercases and strips everything outside [a-z0-9] so that a
// query like "du." still matches "Dubai".
func normalize(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(s) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}
