package handler

import (
	"context"
	"net/http"
	"strconv"

	"bagmarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

// BagLister is the surprise-bag half of service.Listings.
type BagLister interface {
	SurpriseBags(ctx context.Context, neighbourhood string) ([]models.SurpriseBag, error)
	SurpriseBag(ctx context.Context, id int) (*models.SurpriseBag, error)
}

// BagsHandler handles surprise-bag listing requests
type BagsHandler struct {
	listings BagLister
}

// NewBagsHandler creates a new surprise-bags handler
func NewBagsHandler(listings BagLister) *BagsHandler {
	return &BagsHandler{listings: listings}
}

// List handles GET /surprise-bags requests
// @Summary List surprise bags
// @Tags surprise-bags
// @Produce json
// @Param neighbourhood query string false "Restrict listings to a neighbourhood"
// @Success 200 {array} models.SurpriseBag
// @Failure 502 {object} map[string]string
// @Router /surprise-bags [get]
func (h *BagsHandler) List(c *gin.Context) {
	bags, err := h.listings.SurpriseBags(c.Request.Context(), c.Query("neighbourhood"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch surprise bags"})
		return
	}

	c.JSON(http.StatusOK, bags)
}

// ByID handles GET /surprise-bags/:id requests
// @Summary Fetch a surprise bag
// @Tags surprise-bags
// @Produce json
// @Param id path int true "Surprise bag id"
// @Success 200 {object} models.SurpriseBag
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /surprise-bags/{id} [get]
func (h *BagsHandler) ByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid surprise bag id"})
		return
	}

	bag, err := h.listings.SurpriseBag(c.Request.Context(), id)
	if err != nil {
		if isUpstreamNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "surprise bag not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch surprise bag"})
		return
	}

	c.JSON(http.StatusOK, bag)
}
