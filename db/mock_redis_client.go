package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MockRedisClient simulates a Redis client for testing purposes.
// TTLs are recorded but never enforced; tests inspect them directly.
type MockRedisClient struct {
	data    map[string]string
	ttls    map[string]time.Duration
	geoData map[string]map[string]GeoLoc
	subs    map[string][]chan string
	mu      sync.RWMutex
	context context.Context
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		ttls:    make(map[string]time.Duration),
		geoData: make(map[string]map[string]GeoLoc),
		subs:    make(map[string][]chan string),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// SetWithTTL stores a key-value pair and remembers its TTL.
func (m *MockRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// Incr increments the counter stored at key, starting from zero.
func (m *MockRedisClient) Incr(key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current := int64(0)
	if v, exists := m.data[key]; exists {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value at %s is not an integer: %v", key, err)
		}
		current = parsed
	}
	current++
	m.data[key] = strconv.FormatInt(current, 10)
	return current, nil
}

// Publish delivers the message to every mock subscriber of the channel.
func (m *MockRedisClient) Publish(channel, message string) error {
	m.mu.RLock()
	subs := append([]chan string(nil), m.subs[channel]...)
	m.mu.RUnlock()

	for _, ch := range subs {
		ch <- message
	}
	return nil
}

// Subscribe registers an unbounded-ish mock subscription channel.
func (m *MockRedisClient) Subscribe(channel string) (<-chan string, error) {
	ch := make(chan string, 16)
	m.mu.Lock()
	m.subs[channel] = append(m.subs[channel], ch)
	m.mu.Unlock()
	return ch, nil
}

// AddLocationWithJSON adds geolocation with JSON data in the mock Redis.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}

	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius retrieves JSON data for members within a given radius.
// Distance filtering uses a flat-earth approximation, close enough for the
// sub-kilometer ranges tests use.
func (m *MockRedisClient) GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	geoMembers, exists := m.geoData[key]
	if !exists {
		return nil, nil
	}

	var results []string
	for memberKey, loc := range geoMembers {
		dLat := (loc.Latitude - lat) * 111_000
		dLon := (loc.Longitude - lon) * 111_000 * math.Cos(lat*math.Pi/180)
		if math.Sqrt(dLat*dLat+dLon*dLon) > radius {
			continue
		}
		if data, ok := m.data[memberKey]; ok {
			results = append(results, data)
		}
	}
	return results, nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	return nil
}

func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Only prefix patterns ("foo:*") are supported, which is all the DAO uses.
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.ttls, key)
	return nil
}

// TTLFor reports the TTL recorded for key by SetWithTTL.
func (m *MockRedisClient) TTLFor(key string) (time.Duration, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ttl, ok := m.ttls[key]
	return ttl, ok
}
