package handler

import (
	"context"
	"net/http"
	"strconv"

	"bagmarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationSearcher is implemented by service.LocationSearch.
type LocationSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.LocationSearchResult, error)
}

// LocationSearchHandler handles predictive location search requests
type LocationSearchHandler struct {
	search LocationSearcher
}

// NewLocationSearchHandler creates a new location search handler
func NewLocationSearchHandler(search LocationSearcher) *LocationSearchHandler {
	return &LocationSearchHandler{search: search}
}

// Search handles GET /locations/search requests
// @Summary Search locations by text
// @Description Predictive address search, restricted to Argentina.
// @Tags locations
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum results (1-20, default 10)"
// @Success 200 {array} models.LocationSearchResult
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /locations/search [get]
func (h *LocationSearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
		limit = parsed
	}

	results, err := h.search.Search(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "location search failed"})
		return
	}

	c.JSON(http.StatusOK, results)
}
