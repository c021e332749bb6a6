package progression

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-booster/db"
)

func TestRedisStore_ReadMissingKeyIsZero(t *testing.T) {
	store := NewRedisStore(db.NewMockRedisClient(context.Background()))

	count, err := store.Read()

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRedisStore_ReadNonIntegerIsZero(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	require.NoError(t, client.Set(EXPAND_COUNT_KEY, "garbage"))
	store := NewRedisStore(client)

	count, err := store.Read()

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRedisStore_IncrementPersistsAndPublishes(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	store := NewRedisStore(client)

	var mu sync.Mutex
	var seen []int
	store.Subscribe(func(count int) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, count)
	})

	count, err := store.Increment()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.Increment()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	stored, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	// Subscription delivery is asynchronous.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2}, seen)
}
