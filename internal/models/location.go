package models

// Address holds the semantic address components of a location. Every field is
// optional; the upstream geocoder omits the ones it cannot resolve.
type Address struct {
	Neighbourhood string `json:"neighbourhood,omitempty"`
	Suburb        string `json:"suburb,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	Country       string `json:"country,omitempty"`
}

// LocationRecord is the authoritative "where is the user" record. It is
// created by a successful remote fetch, an explicit save, or default fallback
// construction, and is only ever mutated by whole-record replacement.
type LocationRecord struct {
	Lat         float64 `json:"lat"`
	Long        float64 `json:"long"`
	PlaceID     string  `json:"place_id,omitempty"`
	DisplayName string  `json:"display_name,omitempty"`
	Address     Address `json:"address_components"`
	// RadiusKm carries the previously chosen search radius across sessions.
	RadiusKm float64 `json:"location_radius,omitempty"`
}

// LocationSearchResult is a single candidate returned by the predictive
// location search endpoint.
type LocationSearchResult struct {
	ID          string  `json:"id"`
	Lat         float64 `json:"lat"`
	Long        float64 `json:"long"`
	PlaceID     string  `json:"place_id,omitempty"`
	DisplayName string  `json:"display_name,omitempty"`
	Address     Address `json:"address"`
}

// Record converts a search result into a LocationRecord ready for saving.
func (r LocationSearchResult) Record() LocationRecord {
	return LocationRecord{
		Lat:         r.Lat,
		Long:        r.Long,
		PlaceID:     r.PlaceID,
		DisplayName: r.DisplayName,
		Address:     r.Address,
	}
}

// DefaultLocation returns the hardcoded fallback record used when neither the
// remote API nor the local cache can produce a location. The coordinates point
// at Palermo, Buenos Aires, the default service area.
func DefaultLocation() LocationRecord {
	return LocationRecord{
		Lat:         -34.5803362,
		Long:        -58.4245236,
		PlaceID:     "default_palermo",
		DisplayName: "Palermo, Buenos Aires, Argentina",
		Address: Address{
			Neighbourhood: "Palermo",
			City:          "Buenos Aires",
			State:         "Buenos Aires",
			Country:       "Argentina",
		},
	}
}
