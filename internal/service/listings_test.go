package service

import (
	"context"
	"testing"

	"bagmarket-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockListingAPI is a mock implementation of the ListingAPI interface
type MockListingAPI struct {
	mock.Mock
}

func (m *MockListingAPI) StoreByID(ctx context.Context, id int) (*models.Store, error) {
	args := m.Called(ctx, id)
	store, _ := args.Get(0).(*models.Store)
	return store, args.Error(1)
}

func (m *MockListingAPI) SurpriseBags(ctx context.Context, neighbourhood string) ([]models.SurpriseBag, error) {
	args := m.Called(ctx, neighbourhood)
	bags, _ := args.Get(0).([]models.SurpriseBag)
	return bags, args.Error(1)
}

func (m *MockListingAPI) SurpriseBagByID(ctx context.Context, id int) (*models.SurpriseBag, error) {
	args := m.Called(ctx, id)
	bag, _ := args.Get(0).(*models.SurpriseBag)
	return bag, args.Error(1)
}

func TestListings_Store(t *testing.T) {
	t.Run("invalid id is rejected without a call", func(t *testing.T) {
		api := new(MockListingAPI)
		svc := NewListings(api)

		_, err := svc.Store(context.Background(), 0)
		assert.Error(t, err)
		api.AssertNotCalled(t, "StoreByID")
	})

	t.Run("fetches by id", func(t *testing.T) {
		api := new(MockListingAPI)
		api.On("StoreByID", mock.Anything, 12).Return(&models.Store{ID: 12, StoreName: "Panadería La Esquina"}, nil)

		svc := NewListings(api)
		store, err := svc.Store(context.Background(), 12)
		require.NoError(t, err)
		assert.Equal(t, "Panadería La Esquina", store.StoreName)
		api.AssertExpectations(t)
	})
}

func TestListings_SurpriseBags(t *testing.T) {
	t.Run("scopes by neighbourhood", func(t *testing.T) {
		api := new(MockListingAPI)
		api.On("SurpriseBags", mock.Anything, "Palermo").
			Return([]models.SurpriseBag{{ID: 3, StoreID: 12, Title: "Bolsa sorpresa"}}, nil)

		svc := NewListings(api)
		bags, err := svc.SurpriseBags(context.Background(), "Palermo")
		require.NoError(t, err)
		require.Len(t, bags, 1)
		assert.Equal(t, "Bolsa sorpresa", bags[0].Title)
	})

	t.Run("nil upstream result becomes an empty slice", func(t *testing.T) {
		api := new(MockListingAPI)
		api.On("SurpriseBags", mock.Anything, "").Return(nil, nil)

		svc := NewListings(api)
		bags, err := svc.SurpriseBags(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, []models.SurpriseBag{}, bags)
	})

	t.Run("upstream error propagates", func(t *testing.T) {
		api := new(MockListingAPI)
		api.On("SurpriseBags", mock.Anything, "").Return(nil, assert.AnError)

		svc := NewListings(api)
		_, err := svc.SurpriseBags(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestListings_SurpriseBag(t *testing.T) {
	api := new(MockListingAPI)
	api.On("SurpriseBagByID", mock.Anything, 3).Return(&models.SurpriseBag{ID: 3, Title: "Bolsa sorpresa"}, nil)

	svc := NewListings(api)
	bag, err := svc.SurpriseBag(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, bag.ID)

	_, err = svc.SurpriseBag(context.Background(), -1)
	assert.Error(t, err)
}
