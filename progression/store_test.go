package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	assert.Equal(t, 0, TierFor(0))
	assert.Equal(t, 1, TierFor(1))
	assert.Equal(t, 2, TierFor(2))
	assert.Equal(t, 2, TierFor(17))
}

func TestMemoryStore_ReadAndIncrement(t *testing.T) {
	store := NewMemoryStore()

	count, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = store.Increment()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStore_SubscribersSeeEveryChange(t *testing.T) {
	store := NewMemoryStore()
	var seen []int
	store.Subscribe(func(count int) {
		seen = append(seen, count)
	})

	_, err := store.Increment()
	require.NoError(t, err)
	_, err = store.Increment()
	require.NoError(t, err)
	store.Set(7)

	assert.Equal(t, []int{1, 2, 7}, seen)
}

func TestMemoryStore_CallbackMayReadStore(t *testing.T) {
	store := NewMemoryStore()
	var fromCallback int
	store.Subscribe(func(count int) {
		fromCallback, _ = store.Read()
	})

	_, err := store.Increment()
	require.NoError(t, err)

	assert.Equal(t, 1, fromCallback)
}
