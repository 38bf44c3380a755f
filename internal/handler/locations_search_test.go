package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bagmarket-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocationSearcher is a mock implementation of the LocationSearcher interface
type MockLocationSearcher struct {
	mock.Mock
}

func (m *MockLocationSearcher) Search(ctx context.Context, query string, limit int) ([]models.LocationSearchResult, error) {
	args := m.Called(ctx, query, limit)
	results, _ := args.Get(0).([]models.LocationSearchResult)
	return results, args.Error(1)
}

func searchRequest(query string) (*gin.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/locations/search?"+query, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestLocationSearchHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns matches for a valid query", func(t *testing.T) {
		search := new(MockLocationSearcher)
		search.On("Search", mock.Anything, "palermo", 0).
			Return([]models.LocationSearchResult{
				{PlaceID: "sr-1", DisplayName: "Palermo, Buenos Aires", Lat: -34.58, Long: -58.42},
			}, nil)

		handler := NewLocationSearchHandler(search)
		c, w := searchRequest("q=palermo")

		handler.Search(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var results []models.LocationSearchResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		require.Len(t, results, 1)
		assert.Equal(t, "Palermo, Buenos Aires", results[0].DisplayName)
		search.AssertExpectations(t)
	})

	t.Run("forwards an explicit limit", func(t *testing.T) {
		search := new(MockLocationSearcher)
		search.On("Search", mock.Anything, "recoleta", 5).
			Return([]models.LocationSearchResult{}, nil)

		handler := NewLocationSearchHandler(search)
		c, w := searchRequest("q=recoleta&limit=5")

		handler.Search(c)

		assert.Equal(t, http.StatusOK, w.Code)
		search.AssertExpectations(t)
	})

	t.Run("missing query parameter", func(t *testing.T) {
		handler := NewLocationSearchHandler(new(MockLocationSearcher))
		c, w := searchRequest("")

		handler.Search(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing required query parameter 'q'")
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		handler := NewLocationSearchHandler(new(MockLocationSearcher))
		c, w := searchRequest("q=palermo&limit=many")

		handler.Search(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		search := new(MockLocationSearcher)
		search.On("Search", mock.Anything, "palermo", 0).Return(nil, assert.AnError)

		handler := NewLocationSearchHandler(search)
		c, w := searchRequest("q=palermo")

		handler.Search(c)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		search.AssertExpectations(t)
	})
}
