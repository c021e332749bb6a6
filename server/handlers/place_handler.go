package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"local-booster/config"
	"local-booster/models"
	services "local-booster/service"
)

const (
	QUERY_QUERY_ARG = "query"
	LAT_QUERY_ARG   = "lat"
	LON_QUERY_ARG   = "lon"
)

type PlaceHandler struct {
	classifier   services.StoreClassifier
	placeService *services.PlaceService
}

func NewPlaceHandler(classifier services.StoreClassifier, placeService *services.PlaceService) *PlaceHandler {
	return &PlaceHandler{
		classifier:   classifier,
		placeService: placeService,
	}
}

// GetPlaces handles GET /v1/places
func (h *PlaceHandler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	query, lat, lon, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Classify the query into a store category
	storeType, err := h.classifier.Classify(r.Context(), query)
	if err != nil {
		log.Println("Error classifying query:", err)
		storeType = models.StoreTypeGeneralStore
	}

	// 3) Run the nearby search
	places, err := h.placeService.GetNearbyPlaces(lat, lon, storeType, config.PLACES_SEARCH_RADIUS_METERS)
	if err != nil {
		log.Println("Error loading nearby places:", err)
		writeEnvelope(w, http.StatusInternalServerError, models.GetPlacesResponse{
			Success: false,
			Error:   "place search failed",
		})
		return
	}

	if places == nil {
		places = []models.Place{}
	}
	writeEnvelope(w, http.StatusOK, models.GetPlacesResponse{
		Success: true,
		Data:    &models.GetPlacesData{Places: places},
	})
}

// Ping handles GET /ping
func (h *PlaceHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func (h *PlaceHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	query string, lat, lon float64, ok bool,
) {
	query = vals.Get(QUERY_QUERY_ARG)
	if query == "" {
		writeEnvelope(w, http.StatusBadRequest, models.GetPlacesResponse{
			Success: false,
			Error:   "missing argument " + QUERY_QUERY_ARG,
		})
		return
	}

	// Missing coordinates fall back to the reference location.
	lat = config.FALLBACK_ORIGIN_LAT
	lon = config.FALLBACK_ORIGIN_LON

	var err error
	if v := vals.Get(LAT_QUERY_ARG); v != "" {
		lat, err = strconv.ParseFloat(v, 64)
		if err != nil {
			writeEnvelope(w, http.StatusBadRequest, models.GetPlacesResponse{
				Success: false,
				Error:   "invalid argument " + LAT_QUERY_ARG,
			})
			return
		}
	}
	if v := vals.Get(LON_QUERY_ARG); v != "" {
		lon, err = strconv.ParseFloat(v, 64)
		if err != nil {
			writeEnvelope(w, http.StatusBadRequest, models.GetPlacesResponse{
				Success: false,
				Error:   "invalid argument " + LON_QUERY_ARG,
			})
			return
		}
	}
	ok = true
	return
}

func writeEnvelope(w http.ResponseWriter, status int, resp models.GetPlacesResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println("Error encoding response:", err)
	}
}
