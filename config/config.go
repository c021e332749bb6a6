package config

import (
	"os"
	"path/filepath"
	"time"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Overlay config
const NAVIGATION_POLL_INTERVAL = 1000 * time.Millisecond
const HERO_DECORATION_A_THRESHOLD = 1
const HERO_DECORATION_B_THRESHOLD = 2

// Fallback map origin used when no user location could be resolved (Munich).
const FALLBACK_ORIGIN_LAT = 48.1486
const FALLBACK_ORIGIN_LON = 11.5686

// Places backend config
const SERVER_ADDRESS = ":8080"
const PLACES_ENDPOINT_BASE_V1 = "http://localhost:8080/v1"
const PLACES_SEARCH_RADIUS_METERS = 1500
const PLACES_CACHE_TTL = 48 * time.Hour
const PLACES_MIN_REVIEWS = 5
const PLACES_MAX_REVIEWS = 2500

// Google Places API
const GOOGLE_PLACES_ENDPOINT_BASE = "https://places.googleapis.com/v1"
const GOOGLE_PLACE_DETAILS_ENDPOINT_BASE = "https://maps.googleapis.com/maps/api/place"

// Gemini classifier
const GEMINI_MODEL = "gemini-2.5-flash"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GET_PLACES_RESPONSE_RESOURCE = "get_places_response.json"

// GoogleAPIKey reads the API key shared by the Places search and the Gemini
// classifier.
func GoogleAPIKey() string {
	return os.Getenv("GOOGLE_API_KEY")
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
