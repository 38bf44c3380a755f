package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"bagmarket-api/internal/geo"
	"bagmarket-api/internal/models"
)

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StoresNearby queries the center+radius variant of GET /stores/nearby.
func (c *Client) StoresNearby(ctx context.Context, center geo.Point, radiusKm float64) ([]models.Store, error) {
	params := url.Values{}
	params.Set("lat", formatCoord(center.Lat))
	params.Set("long", formatCoord(center.Long))
	params.Set("radius", formatCoord(radiusKm))

	return c.fetchStores(ctx, params)
}

// StoresWithinBounds queries the bounding-box variant of GET /stores/nearby.
// The center is still sent so the backend can order results by distance.
func (c *Client) StoresWithinBounds(ctx context.Context, bounds geo.BoundingBox, center geo.Point) ([]models.Store, error) {
	params := url.Values{}
	params.Set("north", formatCoord(bounds.North))
	params.Set("south", formatCoord(bounds.South))
	params.Set("east", formatCoord(bounds.East))
	params.Set("west", formatCoord(bounds.West))
	params.Set("lat", formatCoord(center.Lat))
	params.Set("long", formatCoord(center.Long))

	return c.fetchStores(ctx, params)
}

func (c *Client) fetchStores(ctx context.Context, params url.Values) ([]models.Store, error) {
	resp, err := c.get(ctx, "stores nearby", "/stores/nearby", params)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		discard(resp)
		return nil, statusError("stores nearby", resp.StatusCode)
	}

	var stores []models.Store
	if err := decode(resp, "stores nearby", &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// StoreByID fetches a single store.
func (c *Client) StoreByID(ctx context.Context, id int) (*models.Store, error) {
	resp, err := c.get(ctx, "store by id", "/stores/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		discard(resp)
		return nil, statusError("store by id", resp.StatusCode)
	}

	var store models.Store
	if err := decode(resp, "store by id", &store); err != nil {
		return nil, err
	}
	return &store, nil
}
