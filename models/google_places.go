package models

// Shapes of the Google Places API (new v1 search plus the legacy details
// endpoint) as far as the backend reads them.

// GoogleSearchResponse is the body of places:searchNearby / places:searchText.
type GoogleSearchResponse struct {
	Places []GooglePlace `json:"places"`
}

type GooglePlace struct {
	ID               string             `json:"id"`
	DisplayName      *GoogleDisplayName `json:"displayName,omitempty"`
	Location         *GoogleLatLng      `json:"location,omitempty"`
	Types            []string           `json:"types,omitempty"`
	FormattedAddress string             `json:"formattedAddress,omitempty"`
	Rating           *float64           `json:"rating,omitempty"`
	UserRatingCount  *int               `json:"userRatingCount,omitempty"`
	PriceLevel       string             `json:"priceLevel,omitempty"`
}

type GoogleDisplayName struct {
	Text string `json:"text"`
}

type GoogleLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GoogleSearchNearbyRequest is the body sent to places:searchNearby.
type GoogleSearchNearbyRequest struct {
	IncludedTypes       []string                 `json:"includedTypes"`
	LocationRestriction GoogleLocationConstraint `json:"locationRestriction"`
	RankPreference      string                   `json:"rankPreference"`
	MaxResultCount      int                      `json:"maxResultCount"`
}

// GoogleSearchTextRequest is the body sent to places:searchText.
type GoogleSearchTextRequest struct {
	TextQuery      string                   `json:"textQuery"`
	LocationBias   GoogleLocationConstraint `json:"locationBias"`
	MaxResultCount int                      `json:"maxResultCount"`
}

type GoogleLocationConstraint struct {
	Circle GoogleCircle `json:"circle"`
}

type GoogleCircle struct {
	Center GoogleLatLng `json:"center"`
	Radius float64      `json:"radius"`
}

// GoogleDetailsResponse is the body of the legacy place/details endpoint.
type GoogleDetailsResponse struct {
	Result *GoogleDetailsResult `json:"result,omitempty"`
	Status string               `json:"status,omitempty"`
}

type GoogleDetailsResult struct {
	OpeningHours     *OpeningHours  `json:"opening_hours,omitempty"`
	Reviews          []GoogleReview `json:"reviews,omitempty"`
	Rating           *float64       `json:"rating,omitempty"`
	UserRatingsTotal *int           `json:"user_ratings_total,omitempty"`
	URL              string         `json:"url,omitempty"`
}

type GoogleReview struct {
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}
