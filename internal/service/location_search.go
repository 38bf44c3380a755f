package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bagmarket-api/internal/cache"
	"bagmarket-api/internal/models"

	"github.com/rs/zerolog"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 20
)

// LocationSearchAPI is the slice of the upstream client the text search needs.
type LocationSearchAPI interface {
	SearchLocations(ctx context.Context, query string, limit int) ([]models.LocationSearchResult, error)
}

// LocationSearch proxies the predictive location search, memoising responses
// so repeated keystroke bursts for the same query stay off the network.
type LocationSearch struct {
	api     LocationSearchAPI
	results *cache.Cache[[]models.LocationSearchResult]
	logger  zerolog.Logger
}

// NewLocationSearch creates a location search service whose memo entries
// expire after ttl.
func NewLocationSearch(api LocationSearchAPI, ttl time.Duration, logger zerolog.Logger) *LocationSearch {
	return &LocationSearch{
		api:     api,
		results: cache.New[[]models.LocationSearchResult](ttl),
		logger:  logger,
	}
}

// Search returns candidate locations for query. A blank query yields an empty
// result without an upstream call; limit is clamped to [1, 20] with a default
// of 10.
func (s *LocationSearch) Search(ctx context.Context, query string, limit int) ([]models.LocationSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.LocationSearchResult{}, nil
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	key := fmt.Sprintf("%d:%s", limit, query)
	if cached, ok := s.results.Get(key); ok {
		s.logger.Debug().Str("query", query).Msg("location search served from memo")
		return cached, nil
	}

	found, err := s.api.SearchLocations(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("service: location search: %w", err)
	}
	if found == nil {
		found = []models.LocationSearchResult{}
	}

	s.results.Set(key, found)
	return found, nil
}
