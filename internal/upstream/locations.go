package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"bagmarket-api/internal/models"
)

// userLocationResponse mirrors the wire shape of GET/POST /user/location. The
// backend duplicates the coordinates at the top level and nests the geocoder
// metadata under "location".
type userLocationResponse struct {
	LocationID int     `json:"location_id"`
	Lat        float64 `json:"lat"`
	Long       float64 `json:"long"`
	Location   struct {
		Lat            float64        `json:"lat"`
		Long           float64        `json:"long"`
		PlaceID        string         `json:"place_id"`
		DisplayName    string         `json:"display_name"`
		Address        models.Address `json:"address"`
		LocationRadius float64        `json:"location_radius"`
	} `json:"location"`
}

func (r userLocationResponse) record() models.LocationRecord {
	return models.LocationRecord{
		Lat:         r.Lat,
		Long:        r.Long,
		PlaceID:     r.Location.PlaceID,
		DisplayName: r.Location.DisplayName,
		Address:     r.Location.Address,
		RadiusKm:    r.Location.LocationRadius,
	}
}

// GetUserLocation fetches the saved location of the current session. A 404
// (no location set) and a 401 (guest session) both return (nil, nil): they are
// expected outcomes, not errors.
func (c *Client) GetUserLocation(ctx context.Context) (*models.LocationRecord, error) {
	resp, err := c.get(ctx, "get user location", "/user/location", nil)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var payload userLocationResponse
		if err := decode(resp, "get user location", &payload); err != nil {
			return nil, err
		}
		rec := payload.record()
		return &rec, nil
	case http.StatusNotFound, http.StatusUnauthorized:
		discard(resp)
		return nil, nil
	default:
		discard(resp)
		return nil, statusError("get user location", resp.StatusCode)
	}
}

// SaveUserLocation persists the record remotely. A 401 returns ErrGuestSession
// so the caller can treat an unauthenticated save as a non-fatal outcome.
func (c *Client) SaveUserLocation(ctx context.Context, rec models.LocationRecord) (*models.LocationRecord, error) {
	resp, err := c.post(ctx, "save user location", "/user/location", rec)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		discard(resp)
		return nil, ErrGuestSession
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var payload userLocationResponse
		if err := decode(resp, "save user location", &payload); err != nil {
			return nil, err
		}
		saved := payload.record()
		return &saved, nil
	default:
		discard(resp)
		return nil, statusError("save user location", resp.StatusCode)
	}
}

// SearchLocations runs the predictive location search. Results are restricted
// to Argentina by the countrycodes parameter.
func (c *Client) SearchLocations(ctx context.Context, query string, limit int) ([]models.LocationSearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	params.Set("countrycodes", "ar")

	resp, err := c.get(ctx, "search locations", "/locations/search", params)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		discard(resp)
		return nil, statusError("search locations", resp.StatusCode)
	}

	var results []models.LocationSearchResult
	if err := decode(resp, "search locations", &results); err != nil {
		return nil, err
	}
	return results, nil
}
