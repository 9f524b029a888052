// README: Suggestion cache backed by Redis; nil-safe, faults are silent.
package location

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	suggestKeyPrefix = "location:suggest:"
	suggestTTL       = 10 * time.Minute
)

// Store caches successful remote suggestion lookups. A nil *Store (or a
// store without a Redis client) behaves as a permanent cache miss, and
// cache errors never affect the lookup result.
type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

func (s *Store) GetSuggestions(ctx context.Context, query string) ([]Suggestion, bool) {
	if s == nil || s.redis == nil {
		return nil, false
	}
	val, err := s.redis.Get(ctx, suggestKey(query)).Result()
	if err != nil {
		return nil, false
	}
	var out []Suggestion
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		return nil, false
	}
	return out, true
}

func (s *Store) PutSuggestions(ctx context.Context, query string, suggestions []Suggestion) {
	if s == nil || s.redis == nil {
		return
	}
	raw, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, suggestKey(query), raw, suggestTTL).Err()
}

func suggestKey(query string) string {
	return suggestKeyPrefix + normalize(query)
}
