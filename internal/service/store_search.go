package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"bagmarket-api/internal/geo"
	"bagmarket-api/internal/models"

	"github.com/rs/zerolog"
)

// coordTolerance is roughly ten meters in decimal degrees. Two centers closer
// than this count as the same query.
const coordTolerance = 1e-4

// ErrSearchInFlight is returned when a store search is dropped because
// another one has not settled yet. Requests are dropped, not queued.
var ErrSearchInFlight = errors.New("service: store search already in flight")

// ErrInvalidCenter is returned for a center that fails coordinate validation.
var ErrInvalidCenter = errors.New("service: invalid search center")

// StoreAPI is the slice of the upstream client the store search needs.
type StoreAPI interface {
	StoresWithinBounds(ctx context.Context, bounds geo.BoundingBox, center geo.Point) ([]models.Store, error)
}

type storeQuery struct {
	center   geo.Point
	radiusKm float64
}

func (q storeQuery) matches(center geo.Point, radiusKm float64) bool {
	return math.Abs(q.center.Long-center.Long) < coordTolerance &&
		math.Abs(q.center.Lat-center.Lat) < coordTolerance &&
		q.radiusKm == radiusKm
}

// StoreSearch queries nearby stores with a cache-of-one over the last issued
// query, a single-slot in-flight guard, and a sequence-number check that
// keeps a stale response from overwriting a newer applied one.
type StoreSearch struct {
	api    StoreAPI
	logger zerolog.Logger

	mu         sync.Mutex
	inFlight   bool
	last       *storeQuery
	lastStores []models.Store
	nextSeq    uint64
	appliedSeq uint64
}

// NewStoreSearch creates a store search service.
func NewStoreSearch(api StoreAPI, logger zerolog.Logger) *StoreSearch {
	return &StoreSearch{api: api, logger: logger}
}

// FetchNearby returns the stores around center within radiusKm, converting
// the center and radius into the bounding box the backend expects. An
// identical consecutive query is answered from the last result without a new
// upstream call.
func (s *StoreSearch) FetchNearby(ctx context.Context, center geo.Point, radiusKm float64) ([]models.Store, error) {
	if !geo.ValidCoordinate(center.Lat, center.Long) {
		s.logger.Warn().
			Float64("lat", center.Lat).
			Float64("long", center.Long).
			Msg("skipping store search, invalid center")
		return nil, ErrInvalidCenter
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrSearchInFlight
	}
	if s.last != nil && s.last.matches(center, radiusKm) {
		stores := s.lastStores
		s.mu.Unlock()
		s.logger.Debug().Msg("skipping store search, same center and radius")
		return stores, nil
	}
	s.inFlight = true
	s.nextSeq++
	seq := s.nextSeq
	s.mu.Unlock()

	bounds := geo.BoundsFromCenter(center, radiusKm)
	stores, err := s.api.StoresWithinBounds(ctx, bounds, center)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		return nil, fmt.Errorf("service: store search: %w", err)
	}
	if seq < s.appliedSeq {
		// A newer response already applied; hand back its snapshot instead.
		s.logger.Debug().Uint64("seq", seq).Msg("discarding stale store search response")
		return s.lastStores, nil
	}

	s.appliedSeq = seq
	s.last = &storeQuery{center: center, radiusKm: radiusKm}
	s.lastStores = stores
	return stores, nil
}

// Invalidate drops the cache-of-one, forcing the next query upstream.
func (s *StoreSearch) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
	s.lastStores = nil
}
