package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"local-booster/db"
	"local-booster/models"
)

const PLACES_GEO_KEY_V1 = "places_geo_v1"
const PLACES_GEO_MEMBER_FORMAT_V1 = "places_geo_member_v1:%s"

// PLACES_RESULT_KEY_FORMAT caches one hybrid-search result set per
// (location, store type, radius) tuple.
const PLACES_RESULT_KEY_FORMAT = "places_hybrid_v1:%.4f:%.4f:%s:%d"

// RedisPlaceDAO handles place caching using Redis.
type RedisPlaceDAO struct {
	client db.RedisClient
}

// NewRedisPlaceDAO initializes a RedisPlaceDAO with the Redis client.
func NewRedisPlaceDAO(client db.RedisClient) *RedisPlaceDAO {
	return &RedisPlaceDAO{client: client}
}

// ResultKey derives the cache key for a hybrid-search result set.
func ResultKey(lat, lon float64, storeType models.StoreType, radius int) string {
	return fmt.Sprintf(PLACES_RESULT_KEY_FORMAT, lat, lon, storeType, radius)
}

// SetCachedResult stores a finished result set with a TTL.
func (dao *RedisPlaceDAO) SetCachedResult(key string, places []models.Place, ttl time.Duration) error {
	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("failed to marshal cached result: %w", err)
	}
	if err := dao.client.SetWithTTL(key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set cached result in redis: %w", err)
	}
	return nil
}

// GetCachedResult retrieves a cached result set. A cache miss returns
// (nil, nil).
func (dao *RedisPlaceDAO) GetCachedResult(key string) ([]models.Place, error) {
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, nil
	}
	var places []models.Place
	if err := json.Unmarshal([]byte(str), &places); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result JSON: %w", err)
	}
	return places, nil
}

// UpsertPlace stores the place as a geolocation with the place's JSON data.
// Keyed by name since the fetch format carries no identifier.
func (dao *RedisPlaceDAO) UpsertPlace(p models.Place) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(PLACES_GEO_MEMBER_FORMAT_V1, p.Name)
	return dao.client.AddLocationWithJSON(ctx, PLACES_GEO_KEY_V1, memberKey, p.Lat, p.Lon, p)
}

// GetNearbyPlaces retrieves places within a given radius (in meters) from
// the geo index.
func (dao *RedisPlaceDAO) GetNearbyPlaces(lat, lon float64, radius float64) ([]models.Place, error) {
	placesJSON, err := dao.client.GetLocationsWithinRadius(PLACES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisPlaceDAO] failed to get places: %v", err)
	}

	places := make([]models.Place, len(placesJSON))
	for i, placeJSON := range placesJSON {
		if err := json.Unmarshal([]byte(placeJSON), &places[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal place JSON: %v", err)
		}
	}
	return places, nil
}

// DeleteCachedResult drops one cached result set.
func (dao *RedisPlaceDAO) DeleteCachedResult(key string) error {
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete cached result %s: %w", key, err)
	}
	log.Printf("[RedisPlaceDAO] Deleted cached result %s", key)
	return nil
}

// ListCachedResultKeys returns the keys of all cached result sets.
func (dao *RedisPlaceDAO) ListCachedResultKeys() ([]string, error) {
	keys, err := dao.client.Keys("places_hybrid_v1:*")
	if err != nil {
		return nil, fmt.Errorf("failed to list cached result keys: %w", err)
	}
	return keys, nil
}
