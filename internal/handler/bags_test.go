package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bagmarket-api/internal/models"
	"bagmarket-api/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBagLister is a mock implementation of the BagLister interface
type MockBagLister struct {
	mock.Mock
}

func (m *MockBagLister) SurpriseBags(ctx context.Context, neighbourhood string) ([]models.SurpriseBag, error) {
	args := m.Called(ctx, neighbourhood)
	bags, _ := args.Get(0).([]models.SurpriseBag)
	return bags, args.Error(1)
}

func (m *MockBagLister) SurpriseBag(ctx context.Context, id int) (*models.SurpriseBag, error) {
	args := m.Called(ctx, id)
	bag, _ := args.Get(0).(*models.SurpriseBag)
	return bag, args.Error(1)
}

func TestBagsHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("scopes listings to the requested neighbourhood", func(t *testing.T) {
		listings := new(MockBagLister)
		listings.On("SurpriseBags", mock.Anything, "Palermo").
			Return([]models.SurpriseBag{{ID: 7, Title: "Bolsa sorpresa de panadería", Price: "3500.00"}}, nil)

		handler := NewBagsHandler(listings)

		req := httptest.NewRequest(http.MethodGet, "/surprise-bags?neighbourhood=Palermo", nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.List(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var bags []models.SurpriseBag
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bags))
		require.Len(t, bags, 1)
		assert.Equal(t, "Bolsa sorpresa de panadería", bags[0].Title)
		listings.AssertExpectations(t)
	})

	t.Run("upstream failure", func(t *testing.T) {
		listings := new(MockBagLister)
		listings.On("SurpriseBags", mock.Anything, "").Return(nil, assert.AnError)

		handler := NewBagsHandler(listings)

		req := httptest.NewRequest(http.MethodGet, "/surprise-bags", nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.List(c)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		listings.AssertExpectations(t)
	})
}

func TestBagsHandler_ByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		id             string
		mockBag        *models.SurpriseBag
		mockError      error
		skipFetch      bool
		expectedStatus int
	}{
		{
			name:           "found",
			id:             "7",
			mockBag:        &models.SurpriseBag{ID: 7, Title: "Bolsa sorpresa de panadería"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-numeric id",
			id:             "abc",
			skipFetch:      true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "upstream 404 maps to not found",
			id:             "99",
			mockError:      &upstream.Error{Type: upstream.ErrorRequest, Status: http.StatusNotFound, Op: "surprise bag by id"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "upstream failure",
			id:             "7",
			mockError:      assert.AnError,
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings := new(MockBagLister)
			if !tt.skipFetch {
				listings.On("SurpriseBag", mock.Anything, mock.Anything).Return(tt.mockBag, tt.mockError)
			}

			handler := NewBagsHandler(listings)

			req := httptest.NewRequest(http.MethodGet, "/surprise-bags/"+tt.id, nil)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			c.Params = gin.Params{{Key: "id", Value: tt.id}}

			handler.ByID(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			listings.AssertExpectations(t)
		})
	}
}
