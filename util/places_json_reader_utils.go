package util

import (
	"encoding/json"
	"fmt"
	"os"

	"local-booster/models"
)

// ReadGetPlacesResponseFromJSON loads a GetPlacesResponse from JSON on disk.
func ReadGetPlacesResponseFromJSON(filePath string) (*models.GetPlacesResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.GetPlacesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetPlacesResponse: %w", err)
	}
	return &resp, nil
}

// ReadPlaceFromJSON loads a single Place from JSON on disk.
func ReadPlaceFromJSON(filePath string) (*models.Place, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var p models.Place
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Place: %w", err)
	}
	return &p, nil
}

// PrintGetPlacesResponsePartially prints key fields of GetPlacesResponse.
func PrintGetPlacesResponsePartially(resp *models.GetPlacesResponse) {
	fmt.Printf("Success: %v\n", resp.Success)
	if resp.Error != "" {
		fmt.Printf("Error: %s\n", resp.Error)
	}
	if resp.Data == nil {
		return
	}
	fmt.Printf("Places returned: %d\n", len(resp.Data.Places))
	if len(resp.Data.Places) > 0 {
		p := resp.Data.Places[0]
		fmt.Printf("First place: %s (%s) at %s\n", p.Name, p.DisplayType, p.Distance)
	}
}
