package service

import (
	"context"
	"sync"
	"time"

	"bagmarket-api/internal/models"
	"bagmarket-api/internal/search"

	"github.com/rs/zerolog"
)

// DefaultTypeaheadDelay matches the input debounce of the location picker.
const DefaultTypeaheadDelay = 300 * time.Millisecond

// LocationSearcher is implemented by LocationSearch.
type LocationSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.LocationSearchResult, error)
}

// Typeahead drives an interactive location search box: input is debounced so
// only the last query of a burst hits the searcher, and every issued request
// carries a sequence number so a response that arrives after a newer one has
// been applied is discarded instead of clobbering it.
type Typeahead struct {
	searcher LocationSearcher
	debounce *search.Debouncer
	limit    int
	logger   zerolog.Logger

	// onResults receives the applied results; errors resolve to an empty list.
	onResults func(query string, results []models.LocationSearchResult)

	mu         sync.Mutex
	nextSeq    uint64
	appliedSeq uint64
}

// NewTypeahead creates a typeahead over searcher. onResults is invoked once
// per applied (non-stale) response.
func NewTypeahead(searcher LocationSearcher, limit int, delay time.Duration, logger zerolog.Logger,
	onResults func(query string, results []models.LocationSearchResult)) *Typeahead {
	if delay <= 0 {
		delay = DefaultTypeaheadDelay
	}
	if limit <= 0 {
		limit = 3
	}
	return &Typeahead{
		searcher:  searcher,
		debounce:  search.NewDebouncer(delay),
		limit:     limit,
		logger:    logger,
		onResults: onResults,
	}
}

// SetQuery registers new input. A blank query cancels any pending search and
// clears the results immediately.
func (t *Typeahead) SetQuery(ctx context.Context, query string) {
	if query == "" {
		t.debounce.Cancel()
		t.onResults(query, []models.LocationSearchResult{})
		return
	}

	t.debounce.Trigger(func() {
		t.run(ctx, query)
	})
}

// Close cancels any pending search.
func (t *Typeahead) Close() {
	t.debounce.Cancel()
}

func (t *Typeahead) run(ctx context.Context, query string) {
	t.mu.Lock()
	t.nextSeq++
	seq := t.nextSeq
	t.mu.Unlock()

	results, err := t.searcher.Search(ctx, query, t.limit)
	if err != nil {
		t.logger.Error().Err(err).Str("query", query).Msg("typeahead search failed")
		results = []models.LocationSearchResult{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if seq <= t.appliedSeq {
		t.logger.Debug().Uint64("seq", seq).Msg("discarding stale typeahead response")
		return
	}
	t.appliedSeq = seq
	t.onResults(query, results)
}
