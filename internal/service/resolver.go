package service

import (
	"context"
	"errors"
	"fmt"

	"bagmarket-api/internal/models"
	"bagmarket-api/internal/upstream"

	"github.com/rs/zerolog"
)

// LocationAPI is the slice of the upstream client the resolver needs.
type LocationAPI interface {
	GetUserLocation(ctx context.Context) (*models.LocationRecord, error)
	SaveUserLocation(ctx context.Context, rec models.LocationRecord) (*models.LocationRecord, error)
}

// LocationStore is the durable per-device location cache.
type LocationStore interface {
	Save(ctx context.Context, deviceID string, rec models.LocationRecord) error
	Load(ctx context.Context, deviceID string) (*models.LocationRecord, error)
}

// SavePolicy decides whether a non-guest remote save failure blocks the save
// operation once the local cache write has succeeded.
type SavePolicy string

const (
	// SavePolicyBlock reports the save as failed when the remote write fails.
	SavePolicyBlock SavePolicy = "block"
	// SavePolicyTolerate accepts the save on a successful cache write alone.
	SavePolicyTolerate SavePolicy = "tolerate"
)

// Resolver answers "where is the user" by trying the remote API, then the
// local cache, then a hardcoded default. Every branch ends in a usable record;
// resolution never blocks the caller on an error.
type Resolver struct {
	api    LocationAPI
	store  LocationStore
	policy SavePolicy
	logger zerolog.Logger
}

// NewResolver creates a resolver with the given save policy.
func NewResolver(api LocationAPI, store LocationStore, policy SavePolicy, logger zerolog.Logger) *Resolver {
	if policy == "" {
		policy = SavePolicyBlock
	}
	return &Resolver{api: api, store: store, policy: policy, logger: logger}
}

// resolveStrategy is one step of the fallback chain. A nil record with a nil
// error means "not found, try the next strategy"; an error is logged by the
// runner and likewise falls through.
type resolveStrategy struct {
	name string
	run  func(ctx context.Context, deviceID string) (*models.LocationRecord, error)
}

// Resolve runs the strategies strictly in order and returns the first record
// produced. The final strategy constructs the default record, so the chain
// has no give-up state.
func (s *Resolver) Resolve(ctx context.Context, deviceID string) models.LocationRecord {
	strategies := []resolveStrategy{
		{name: "remote", run: s.fromRemote},
		{name: "cache", run: s.fromCache},
		{name: "default", run: s.fromDefault},
	}

	for _, strat := range strategies {
		rec, err := strat.run(ctx, deviceID)
		if err != nil {
			s.logger.Warn().Err(err).Str("strategy", strat.name).Msg("location strategy failed, falling through")
			continue
		}
		if rec != nil {
			s.logger.Debug().Str("strategy", strat.name).Msg("location resolved")
			return *rec
		}
	}

	// The default strategy cannot miss; this only guards a future edit that
	// breaks that property.
	return models.DefaultLocation()
}

// fromRemote treats 404/401 (mapped to nil by the upstream client) as a clean
// miss. A successful fetch becomes the authoritative record and refreshes the
// cache; a failed refresh is diagnostic only.
func (s *Resolver) fromRemote(ctx context.Context, deviceID string) (*models.LocationRecord, error) {
	rec, err := s.api.GetUserLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: remote location fetch: %w", err)
	}
	if rec == nil {
		return nil, nil
	}

	if err := s.store.Save(ctx, deviceID, *rec); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache remote location")
	}
	return rec, nil
}

// fromCache returns the cached record as-is, without revalidating it against
// the server.
func (s *Resolver) fromCache(ctx context.Context, deviceID string) (*models.LocationRecord, error) {
	rec, err := s.store.Load(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("service: cache lookup: %w", err)
	}
	return rec, nil
}

func (s *Resolver) fromDefault(ctx context.Context, deviceID string) (*models.LocationRecord, error) {
	rec := models.DefaultLocation()
	if err := s.store.Save(ctx, deviceID, rec); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache default location")
	}
	return &rec, nil
}

// ErrCacheWrite marks the one fatal save-flow outcome: the local cache, the
// only state the rest of the app trusts, could not be written.
var ErrCacheWrite = errors.New("service: location cache write failed")

// SaveLocation persists an explicitly selected location. The remote write is
// best-effort: a guest 401 is an accepted outcome, and other remote failures
// block or pass according to the configured policy. The local cache write is
// unconditional and its failure is always fatal.
func (s *Resolver) SaveLocation(ctx context.Context, deviceID string, rec models.LocationRecord) error {
	var remoteErr error
	if _, err := s.api.SaveUserLocation(ctx, rec); err != nil {
		if errors.Is(err, upstream.ErrGuestSession) {
			s.logger.Debug().Msg("guest session, location saved locally only")
		} else {
			s.logger.Error().Err(err).Msg("remote location save failed")
			remoteErr = err
		}
	}

	if err := s.store.Save(ctx, deviceID, rec); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}

	if remoteErr != nil && s.policy == SavePolicyBlock {
		return fmt.Errorf("service: remote save failed: %w", remoteErr)
	}
	return nil
}
