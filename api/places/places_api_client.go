package places

import (
	"net/url"
	"strconv"

	"local-booster/api"
	"local-booster/models"
)

// PlacesApiClient embeds the common HTTPClient
type PlacesApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewPlacesApiClient creates a new instance of PlacesApiClient
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient: httpClient,
	}
}

// GetPlaces retrieves nearby places for a query and decodes the envelope.
func (c *PlacesApiClient) GetPlaces(query string, location *models.LatLng) (*models.GetPlacesResponse, error) {
	q := url.Values{}
	q.Set("query", query)
	if location != nil {
		q.Set("lat", strconv.FormatFloat(location.Lat, 'f', -1, 64))
		q.Set("lon", strconv.FormatFloat(location.Lng, 'f', -1, 64))
	}

	var response models.GetPlacesResponse
	err := c.Request("GET", "/places?"+q.Encode(), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
