package progression

import (
	"log"
	"strconv"

	"local-booster/db"
)

const EXPAND_COUNT_KEY = "lb:hero_expand_count"
const EXPAND_EVENTS_CHANNEL = "lb:hero_expand_events"

// RedisStore persists the expand counter in Redis. Increments go through
// INCR so concurrent documents cannot lose updates, and every increment is
// published so other subscribed documents can refresh their header tier.
type RedisStore struct {
	client db.RedisClient
}

func NewRedisStore(client db.RedisClient) *RedisStore {
	return &RedisStore{client: client}
}

// Read returns the persisted count. A missing key or an unreachable store
// reads as 0; the caller renders the base tier rather than failing.
func (s *RedisStore) Read() (int, error) {
	value, err := s.client.Get(EXPAND_COUNT_KEY)
	if err != nil {
		return 0, nil
	}
	count, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[ProgressionStore] non-integer count %q, treating as 0", value)
		return 0, nil
	}
	return count, nil
}

func (s *RedisStore) Increment() (int, error) {
	count, err := s.client.Incr(EXPAND_COUNT_KEY)
	if err != nil {
		return 0, err
	}
	if err := s.client.Publish(EXPAND_EVENTS_CHANNEL, strconv.FormatInt(count, 10)); err != nil {
		log.Printf("[ProgressionStore] failed to publish count change: %v", err)
	}
	return int(count), nil
}

func (s *RedisStore) Subscribe(callback func(int)) {
	messages, err := s.client.Subscribe(EXPAND_EVENTS_CHANNEL)
	if err != nil {
		log.Printf("[ProgressionStore] subscription unavailable: %v", err)
		return
	}
	go func() {
		for msg := range messages {
			count, err := strconv.Atoi(msg)
			if err != nil {
				continue
			}
			callback(count)
		}
	}()
}
