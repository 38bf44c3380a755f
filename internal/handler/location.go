package handler

import (
	"context"
	"errors"
	"net/http"

	"bagmarket-api/internal/geo"
	"bagmarket-api/internal/models"
	"bagmarket-api/internal/service"

	"github.com/gin-gonic/gin"
)

// deviceIDHeader identifies the calling device; its value keys the location
// cache. Without the header the handler falls back to a configured default,
// which gives a single-user deployment one shared cache slot.
const deviceIDHeader = "X-Device-ID"

// LocationResolver is implemented by service.Resolver.
type LocationResolver interface {
	Resolve(ctx context.Context, deviceID string) models.LocationRecord
	SaveLocation(ctx context.Context, deviceID string, rec models.LocationRecord) error
}

// LocationHandler handles current-location requests
type LocationHandler struct {
	resolver        LocationResolver
	defaultDeviceID string
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(resolver LocationResolver, defaultDeviceID string) *LocationHandler {
	if defaultDeviceID == "" {
		defaultDeviceID = "default"
	}
	return &LocationHandler{resolver: resolver, defaultDeviceID: defaultDeviceID}
}

func (h *LocationHandler) deviceID(c *gin.Context) string {
	if id := c.GetHeader(deviceIDHeader); id != "" {
		return id
	}
	return h.defaultDeviceID
}

// locationResponse pairs the resolved record with the zoom level matching its
// radius, so map clients can frame the viewport without extra math.
type locationResponse struct {
	Location models.LocationRecord `json:"location"`
	Zoom     int                   `json:"zoom"`
}

// Get handles GET /location requests
// @Summary Resolve the current location
// @Description Resolves the caller's location via remote API, local cache, then a default service area. Always answers 200 with a usable location.
// @Tags location
// @Produce json
// @Param X-Device-ID header string false "Device identifier keying the location cache"
// @Success 200 {object} handler.locationResponse
// @Router /location [get]
func (h *LocationHandler) Get(c *gin.Context) {
	rec := h.resolver.Resolve(c.Request.Context(), h.deviceID(c))

	radius := rec.RadiusKm
	if radius <= 0 {
		radius = 2
	}

	c.JSON(http.StatusOK, locationResponse{
		Location: rec,
		Zoom:     geo.ZoomForRadius(radius),
	})
}

// Save handles POST /location requests
// @Summary Save a selected location
// @Description Persists an explicitly selected location remotely (best effort) and in the local cache (mandatory).
// @Tags location
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "Device identifier keying the location cache"
// @Param location body models.LocationRecord true "Location to save"
// @Success 200 {object} handler.locationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /location [post]
func (h *LocationHandler) Save(c *gin.Context) {
	var rec models.LocationRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location payload"})
		return
	}

	if !geo.ValidCoordinate(rec.Lat, rec.Long) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	err := h.resolver.SaveLocation(c.Request.Context(), h.deviceID(c), rec)
	if err != nil {
		if errors.Is(err, service.ErrCacheWrite) {
			// The one fatal save outcome: nothing durable holds the location.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist location"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save location remotely"})
		return
	}

	radius := rec.RadiusKm
	if radius <= 0 {
		radius = 2
	}
	c.JSON(http.StatusOK, locationResponse{Location: rec, Zoom: geo.ZoomForRadius(radius)})
}
