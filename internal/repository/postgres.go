package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bagmarket-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// LocationCache persists one LocationRecord per device in PostgreSQL. The
// record is stored as a JSONB payload under the device key and overwritten
// whole on every save, last write wins.
type LocationCache struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewLocationCache creates a PostgreSQL-backed location cache.
func NewLocationCache(db *pgxpool.Pool, logger zerolog.Logger) *LocationCache {
	return &LocationCache{db: db, logger: logger}
}

// Save upserts the record for deviceID in a single statement. Write failures
// propagate; the caller decides whether they are fatal.
func (r *LocationCache) Save(ctx context.Context, deviceID string, rec models.LocationRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("repository: failed to encode location record: %w", err)
	}

	sql := `
		INSERT INTO location_cache (device_id, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (device_id) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = now()
	`

	if _, err := r.db.Exec(ctx, sql, deviceID, payload); err != nil {
		return fmt.Errorf("repository: failed to save location record: %w", err)
	}
	return nil
}

// Load returns the cached record for deviceID, or (nil, nil) when there is
// none. A payload that no longer deserializes is treated as a cache miss and
// only logged, never surfaced as an error.
func (r *LocationCache) Load(ctx context.Context, deviceID string) (*models.LocationRecord, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM location_cache WHERE device_id = $1`, deviceID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to load location record: %w", err)
	}

	var rec models.LocationRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		r.logger.Warn().Err(err).Str("device_id", deviceID).Msg("discarding undecodable cached location")
		return nil, nil
	}
	return &rec, nil
}
