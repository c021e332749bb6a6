package google

import (
	"net/url"

	"local-booster/api"
	"local-booster/models"
)

const searchFieldMask = "places.id,places.displayName,places.location,places.types," +
	"places.formattedAddress,places.rating,places.userRatingCount,places.priceLevel"

const detailsFields = "opening_hours,reviews,rating,user_ratings_total,url"

// GooglePlacesAPI is the backend's upstream search surface: the v1 nearby
// and text searches plus the legacy details endpoint.
type GooglePlacesAPI interface {
	SearchNearby(lat, lon float64, category string, radius float64) ([]models.GooglePlace, error)
	SearchText(lat, lon float64, query string, radius float64) ([]models.GooglePlace, error)
	PlaceDetails(placeID string) (*models.GoogleDetailsResult, error)
}

// GooglePlacesClient talks to the Places API v1 (search) and the legacy
// details endpoint through two embedded base URLs.
type GooglePlacesClient struct {
	searchClient  *api.HTTPClient
	detailsClient *api.HTTPClient
	apiKey        string
}

// NewGooglePlacesClient creates a new instance of GooglePlacesClient.
func NewGooglePlacesClient(searchClient, detailsClient *api.HTTPClient, apiKey string) *GooglePlacesClient {
	return &GooglePlacesClient{
		searchClient:  searchClient,
		detailsClient: detailsClient,
		apiKey:        apiKey,
	}
}

// SearchNearby runs the strict category search, ranked by distance.
func (c *GooglePlacesClient) SearchNearby(lat, lon float64, category string, radius float64) ([]models.GooglePlace, error) {
	body := models.GoogleSearchNearbyRequest{
		IncludedTypes: []string{category},
		LocationRestriction: models.GoogleLocationConstraint{
			Circle: models.GoogleCircle{
				Center: models.GoogleLatLng{Latitude: lat, Longitude: lon},
				Radius: radius,
			},
		},
		RankPreference: "DISTANCE",
		MaxResultCount: 20,
	}
	headers := map[string]string{
		"X-Goog-Api-Key":   c.apiKey,
		"X-Goog-FieldMask": searchFieldMask,
	}

	var response models.GoogleSearchResponse
	if err := c.searchClient.Request("POST", "/places:searchNearby", headers, body, &response); err != nil {
		return nil, err
	}
	return response.Places, nil
}

// SearchText runs the fuzzy text search that also finds stores whose
// category tagging is off. Underscored category names become words.
func (c *GooglePlacesClient) SearchText(lat, lon float64, query string, radius float64) ([]models.GooglePlace, error) {
	body := models.GoogleSearchTextRequest{
		TextQuery: spacedQuery(query),
		LocationBias: models.GoogleLocationConstraint{
			Circle: models.GoogleCircle{
				Center: models.GoogleLatLng{Latitude: lat, Longitude: lon},
				Radius: radius,
			},
		},
		MaxResultCount: 20,
	}
	headers := map[string]string{
		"X-Goog-Api-Key":   c.apiKey,
		"X-Goog-FieldMask": searchFieldMask,
	}

	var response models.GoogleSearchResponse
	if err := c.searchClient.Request("POST", "/places:searchText", headers, body, &response); err != nil {
		return nil, err
	}
	return response.Places, nil
}

// PlaceDetails fetches opening hours, reviews and the maps URL for one place.
func (c *GooglePlacesClient) PlaceDetails(placeID string) (*models.GoogleDetailsResult, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", detailsFields)
	q.Set("key", c.apiKey)
	q.Set("language", "de")

	var response models.GoogleDetailsResponse
	if err := c.detailsClient.Request("GET", "/details/json?"+q.Encode(), nil, nil, &response); err != nil {
		return nil, err
	}
	if response.Result == nil {
		return &models.GoogleDetailsResult{}, nil
	}
	return response.Result, nil
}

func spacedQuery(category string) string {
	out := make([]byte, len(category))
	for i := 0; i < len(category); i++ {
		if category[i] == '_' {
			out[i] = ' '
		} else {
			out[i] = category[i]
		}
	}
	return string(out)
}
