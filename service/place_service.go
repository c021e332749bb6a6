package services

import (
	"fmt"
	"log"
	"math"
	"strings"
	"unicode/utf8"

	"local-booster/api/google"
	"local-booster/config"
	redisdao "local-booster/dao/redis"
	"local-booster/models"
	"local-booster/ranker"
)

// blacklist drops big chains so only local stores surface.
var blacklist = map[string]struct{}{
	"lidl": {}, "aldi": {}, "mcdonald's": {}, "starbucks": {}, "subway": {},
	"kfc": {}, "burger": {}, "ikea": {}, "h&m": {}, "zara": {},
	"mediamarkt": {}, "saturn": {}, "dm": {}, "rossmann": {}, "edeka": {},
	"rewe": {}, "netto": {}, "decathlon": {}, "kaufland": {}, "penny": {},
	"norma": {}, "obi": {}, "bauhaus": {}, "toom": {},
}

// genericTypes never make a useful display type.
var genericTypes = map[string]struct{}{
	"point_of_interest": {},
	"establishment":     {},
}

// PlaceService builds the ranked, filtered place list the overlay renders.
type PlaceService struct {
	placeDao  *redisdao.RedisPlaceDAO
	googleAPI google.GooglePlacesAPI
}

// NewPlaceService constructs a new PlaceService with its dependencies.
func NewPlaceService(
	placeDao *redisdao.RedisPlaceDAO,
	googleAPI google.GooglePlacesAPI) *PlaceService {

	return &PlaceService{
		placeDao:  placeDao,
		googleAPI: googleAPI,
	}
}

// GetNearbyPlaces returns local stores of the given category around
// (lat, lon): cache lookup, hybrid strict+fuzzy search, blacklist and
// quality filtering, detail enrichment, distance sort, cache fill.
func (ps *PlaceService) GetNearbyPlaces(lat, lon float64, storeType models.StoreType, radius int) ([]models.Place, error) {
	cacheKey := redisdao.ResultKey(lat, lon, storeType, radius)
	if cached, err := ps.placeDao.GetCachedResult(cacheKey); err != nil {
		log.Printf("[PlaceService] cache read failed: %v", err)
	} else if cached != nil {
		log.Printf("[PlaceService] cache hit for %s", cacheKey)
		return cached, nil
	}

	log.Printf("[PlaceService] cache miss for %s, running hybrid search", cacheKey)
	merged := ps.hybridSearch(lat, lon, storeType, float64(radius))

	var places []models.Place
	for _, result := range merged {
		place, keep := ps.buildPlace(result, lat, lon, storeType, float64(radius))
		if !keep {
			continue
		}
		places = append(places, place)
	}

	places = ranker.SortByDistance(places)

	if err := ps.placeDao.SetCachedResult(cacheKey, places, config.PLACES_CACHE_TTL); err != nil {
		log.Printf("[PlaceService] failed to cache result: %v", err)
	}
	for _, p := range places {
		if err := ps.placeDao.UpsertPlace(p); err != nil {
			log.Printf("[PlaceService] failed to upsert place %q: %v", p.Name, err)
		}
	}

	return places, nil
}

// hybridSearch merges the strict category search with the fuzzy text
// search, deduplicated by place id. The fuzzy pass finds stores whose
// category tagging is off.
func (ps *PlaceService) hybridSearch(lat, lon float64, storeType models.StoreType, radius float64) []models.GooglePlace {
	nearby, err := ps.googleAPI.SearchNearby(lat, lon, string(storeType), radius)
	if err != nil {
		log.Printf("[PlaceService] nearby search failed: %v", err)
	}
	text, err := ps.googleAPI.SearchText(lat, lon, string(storeType), radius)
	if err != nil {
		log.Printf("[PlaceService] text search failed: %v", err)
	}
	log.Printf("[PlaceService] strict search found %d, fuzzy search found %d", len(nearby), len(text))

	seen := make(map[string]struct{})
	var merged []models.GooglePlace
	for _, p := range append(nearby, text...) {
		if p.ID == "" {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		merged = append(merged, p)
	}
	return merged
}

// buildPlace turns one raw search result into a Place, applying every
// filter. keep=false means the result was dropped.
func (ps *PlaceService) buildPlace(result models.GooglePlace, lat, lon float64, storeType models.StoreType, radius float64) (models.Place, bool) {
	name := "Unknown"
	if result.DisplayName != nil {
		name = result.DisplayName.Text
	}

	if isBlacklisted(name) {
		return models.Place{}, false
	}
	if result.Location == nil {
		return models.Place{}, false
	}

	details, err := ps.googleAPI.PlaceDetails(result.ID)
	if err != nil {
		log.Printf("[PlaceService] details fetch failed for %q: %v", name, err)
		details = &models.GoogleDetailsResult{}
	}

	// Quality gate: enough reviews to trust, few enough to stay local.
	reviews := 0
	if details.UserRatingsTotal != nil {
		reviews = *details.UserRatingsTotal
	}
	if reviews < config.PLACES_MIN_REVIEWS || reviews > config.PLACES_MAX_REVIEWS {
		return models.Place{}, false
	}

	distStr, distRaw := distanceMetrics(lat, lon, result.Location.Latitude, result.Location.Longitude)
	if distRaw > radius*1.5 {
		return models.Place{}, false
	}

	place := models.Place{
		Name:        name,
		Type:        string(storeType),
		DisplayType: displayType(result.Types, storeType),
		Lat:         result.Location.Latitude,
		Lon:         result.Location.Longitude,
		Distance:    distStr,
		DistanceRaw: &distRaw,
		Rating:      result.Rating,
		PriceLevel:  priceSymbol(result.PriceLevel),
		TopReview:   topReview(details.Reviews),
		Tags:        map[string]string{"vicinity": result.FormattedAddress},

		OpeningHours:  details.OpeningHours,
		GoogleMapsURL: details.URL,
	}
	place.UserRatingsTotal = &reviews
	return place, true
}

func isBlacklisted(name string) bool {
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if _, hit := blacklist[word]; hit {
			return true
		}
	}
	return false
}

// topReview picks the first substantial positive review, truncated to 400
// bytes at a rune boundary so multibyte text stays valid UTF-8.
func topReview(reviews []models.GoogleReview) string {
	for _, r := range reviews {
		if r.Rating >= 4 && len(r.Text) > 20 {
			if len(r.Text) > 400 {
				cut := 400
				for cut > 0 && !utf8.RuneStart(r.Text[cut]) {
					cut--
				}
				return r.Text[:cut] + "..."
			}
			return r.Text
		}
	}
	return ""
}

func priceSymbol(level string) string {
	switch level {
	case "PRICE_LEVEL_INEXPENSIVE":
		return "€"
	case "PRICE_LEVEL_MODERATE":
		return "€€"
	case "PRICE_LEVEL_EXPENSIVE":
		return "€€€"
	case "PRICE_LEVEL_VERY_EXPENSIVE":
		return "€€€€"
	}
	return ""
}

// displayType picks the first tag that says something beyond the searched
// category.
func displayType(rawTypes []string, storeType models.StoreType) string {
	for _, t := range rawTypes {
		if _, generic := genericTypes[t]; generic || t == string(storeType) {
			continue
		}
		return titleCase(strings.ReplaceAll(t, "_", " "))
	}
	return "Store"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// distanceMetrics returns the display string and raw meters between two
// coordinates (haversine).
func distanceMetrics(lat1, lon1, lat2, lon2 float64) (string, float64) {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	km := earthRadiusKm * c
	meters := km * 1000

	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Ceil(meters))), meters
	}
	return fmt.Sprintf("%.1f km", math.Ceil(km*10)/10), meters
}
