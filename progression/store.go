package progression

import "local-booster/config"

// Store persists the hero expand counter across navigations and reloads.
// Read failures must degrade to 0 (base tier), never block rendering.
// Subscribe callbacks fire when the persisted value changes, including
// changes made by another document sharing the store.
type Store interface {
	Read() (int, error)
	Increment() (int, error)
	Subscribe(callback func(count int))
}

// TierFor maps an expand count to the header decoration tier. Tier 0 is
// the base header, tier 1 unlocks decoration A, tier 2 decoration B.
func TierFor(count int) int {
	switch {
	case count >= config.HERO_DECORATION_B_THRESHOLD:
		return 2
	case count >= config.HERO_DECORATION_A_THRESHOLD:
		return 1
	default:
		return 0
	}
}
