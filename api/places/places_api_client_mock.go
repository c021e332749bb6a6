package places

import (
	"log"

	"local-booster/models"
	"local-booster/util"
)

const GET_PLACES_RESPONSE_PATH = "./resources/get_places_response.json"

// PlacesApiClientMock embeds mocked logic for the places api client
type PlacesApiClientMock struct {
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{}
}

// GetPlaces retrieves a canned place list from the JSON fixture.
func (c *PlacesApiClientMock) GetPlaces(query string, location *models.LatLng) (*models.GetPlacesResponse, error) {
	response, err := util.ReadGetPlacesResponseFromJSON(GET_PLACES_RESPONSE_PATH)
	if err != nil {
		log.Println("Could not read get places response from json")
		return nil, err
	}
	return response, nil
}
