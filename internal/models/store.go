package models

// Store is a participating merchant as returned by the nearby-search endpoint.
type Store struct {
	ID            int     `json:"id"`
	MerchantID    int     `json:"merchant_id,omitempty"`
	StoreName     string  `json:"store_name"`
	Address       string  `json:"address,omitempty"`
	City          string  `json:"city,omitempty"`
	Province      string  `json:"province,omitempty"`
	PostalCode    string  `json:"postal_code,omitempty"`
	Logo          string  `json:"logo,omitempty"`
	Category      string  `json:"category,omitempty"`
	Neighbourhood string  `json:"neighbourhood,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	Approved      bool    `json:"approved,omitempty"`
	// DistanceKm is only populated by the nearby endpoint.
	DistanceKm float64 `json:"distance,omitempty"`
}

// SurpriseBag is a discounted food listing sold by a store.
type SurpriseBag struct {
	ID                 int    `json:"id"`
	StoreID            int    `json:"store_id"`
	Category           string `json:"category"`
	Allergens          string `json:"allergens,omitempty"`
	Photo              string `json:"photo,omitempty"`
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	Price              string `json:"price"`
	OriginalPrice      string `json:"original_price"`
	DiscountPercentage string `json:"discount_percentage"`
	StarRating         string `json:"star_rating,omitempty"`
	BagsLeft           int    `json:"bags_left,omitempty"`
	PickupTimeWindow   string `json:"pickup_time_window,omitempty"`
	Store              *Store `json:"store,omitempty"`
}
