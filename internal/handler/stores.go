package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"bagmarket-api/internal/geo"
	"bagmarket-api/internal/models"
	"bagmarket-api/internal/service"
	"bagmarket-api/internal/upstream"

	"github.com/gin-gonic/gin"
)

// StoreSearcher is implemented by service.StoreSearch.
type StoreSearcher interface {
	FetchNearby(ctx context.Context, center geo.Point, radiusKm float64) ([]models.Store, error)
}

// StoreFetcher is the store half of service.Listings.
type StoreFetcher interface {
	Store(ctx context.Context, id int) (*models.Store, error)
}

// StoresHandler handles store search and lookup requests
type StoresHandler struct {
	search   StoreSearcher
	listings StoreFetcher
}

// NewStoresHandler creates a new stores handler
func NewStoresHandler(search StoreSearcher, listings StoreFetcher) *StoresHandler {
	return &StoresHandler{search: search, listings: listings}
}

// Nearby handles GET /stores/nearby requests
// @Summary Search stores around a point
// @Description Returns stores inside the bounding box derived from the center and radius. Identical consecutive queries are answered from the previous result.
// @Tags stores
// @Produce json
// @Param lat query number true "Center latitude" minimum(-90) maximum(90)
// @Param long query number true "Center longitude" minimum(-180) maximum(180)
// @Param radius query number true "Search radius in kilometers" minimum(0)
// @Success 200 {array} models.Store
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /stores/nearby [get]
func (h *StoresHandler) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	long, err := strconv.ParseFloat(c.Query("long"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	radius, err := strconv.ParseFloat(c.Query("radius"), 64)
	if err != nil || radius <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "radius must be a positive number"})
		return
	}

	stores, err := h.search.FetchNearby(c.Request.Context(), geo.Point{Long: long, Lat: lat}, radius)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCenter):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		case errors.Is(err, service.ErrSearchInFlight):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "a store search is already in progress"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "store search failed"})
		}
		return
	}

	if stores == nil {
		stores = []models.Store{}
	}
	c.JSON(http.StatusOK, stores)
}

// ByID handles GET /stores/:id requests
// @Summary Fetch a store
// @Tags stores
// @Produce json
// @Param id path int true "Store id"
// @Success 200 {object} models.Store
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /stores/{id} [get]
func (h *StoresHandler) ByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
		return
	}

	store, err := h.listings.Store(c.Request.Context(), id)
	if err != nil {
		if isUpstreamNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch store"})
		return
	}

	c.JSON(http.StatusOK, store)
}

// isUpstreamNotFound reports whether the error wraps an upstream 404.
func isUpstreamNotFound(err error) bool {
	var ue *upstream.Error
	return errors.As(err, &ue) && ue.Status == http.StatusNotFound
}
