package service

import (
	"context"
	"fmt"

	"bagmarket-api/internal/models"
)

// ListingAPI is the slice of the upstream client the listings service needs.
type ListingAPI interface {
	StoreByID(ctx context.Context, id int) (*models.Store, error)
	SurpriseBags(ctx context.Context, neighbourhood string) ([]models.SurpriseBag, error)
	SurpriseBagByID(ctx context.Context, id int) (*models.SurpriseBag, error)
}

// Listings contains the business logic for store and surprise-bag lookups.
type Listings struct {
	api ListingAPI
}

// NewListings creates a listings service.
func NewListings(api ListingAPI) *Listings {
	return &Listings{api: api}
}

// Store fetches a single store by id.
func (s *Listings) Store(ctx context.Context, id int) (*models.Store, error) {
	if id <= 0 {
		return nil, fmt.Errorf("service: invalid store id: %d", id)
	}
	store, err := s.api.StoreByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch store: %w", err)
	}
	return store, nil
}

// SurpriseBags lists bags, optionally scoped to a neighbourhood so the feed
// matches the resolved location.
func (s *Listings) SurpriseBags(ctx context.Context, neighbourhood string) ([]models.SurpriseBag, error) {
	bags, err := s.api.SurpriseBags(ctx, neighbourhood)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch surprise bags: %w", err)
	}
	if bags == nil {
		bags = []models.SurpriseBag{}
	}
	return bags, nil
}

// SurpriseBag fetches a single listing by id.
func (s *Listings) SurpriseBag(ctx context.Context, id int) (*models.SurpriseBag, error) {
	if id <= 0 {
		return nil, fmt.Errorf("service: invalid surprise bag id: %d", id)
	}
	bag, err := s.api.SurpriseBagByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch surprise bag: %w", err)
	}
	return bag, nil
}
