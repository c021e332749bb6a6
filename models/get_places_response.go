package models

// GetPlacesResponse is the envelope returned by GET /v1/places and consumed
// by the overlay's places client.
type GetPlacesResponse struct {
	Success bool           `json:"success"`
	Data    *GetPlacesData `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type GetPlacesData struct {
	Places []Place `json:"places"`
}
