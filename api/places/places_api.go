package places

import "local-booster/models"

// PlacesAPI defines the interface the overlay uses to fetch nearby places
// for a shopping query. Location may be nil when resolution failed; the
// backend then falls back to its default coordinate.
type PlacesAPI interface {
	GetPlaces(query string, location *models.LatLng) (*models.GetPlacesResponse, error)
}
