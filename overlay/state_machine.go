package overlay

import (
	"log"
	"sync"
	"time"

	"local-booster/browser"
	"local-booster/models"
	"local-booster/progression"
)

// Locator resolves the user's location. It is an upstream collaborator
// that may fail; nil means unresolved and downstream consumers fall back
// to the fixed reference location.
type Locator interface {
	Locate() *models.LatLng
}

// FixedLocator always answers with the same location (possibly nil).
type FixedLocator struct {
	Loc *models.LatLng
}

func (l FixedLocator) Locate() *models.LatLng {
	return l.Loc
}

// StateMachine owns the overlay lifecycle: which fragments exist, which
// view is visible and what data they show. Every mutation goes through a
// method below and ends with a full render of the fragments from the
// state value, so rendering stays idempotent regardless of how often the
// same event is delivered.
type StateMachine struct {
	mu       sync.Mutex
	page     browser.Page
	store    progression.Store
	locator  Locator
	now      func() time.Time
	state    State
	selected int
	maxTier  int
}

// NewStateMachine reads the persisted expand count (failures read as 0)
// and subscribes for external count changes so the header decorations
// follow increments made by other documents.
func NewStateMachine(page browser.Page, store progression.Store, locator Locator, now func() time.Time) *StateMachine {
	if now == nil {
		now = time.Now
	}
	m := &StateMachine{
		page:     page,
		store:    store,
		locator:  locator,
		now:      now,
		selected: -1,
	}
	count, err := store.Read()
	if err != nil {
		count = 0
	}
	m.maxTier = progression.TierFor(count)
	store.Subscribe(m.onCountChange)
	return m
}

// onCountChange lifts the decoration tier. Unlocks are monotonic: a stale
// lower count arriving late never re-locks a decoration.
func (m *StateMachine) onCountChange(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tier := progression.TierFor(count)
	if tier <= m.maxTier {
		return
	}
	m.maxTier = tier
	m.page.Lock()
	defer m.page.Unlock()
	if header := browser.FindByID(m.page.Root(), HeaderFragmentID); header != nil {
		applyTier(header, tier)
	}
}

// Dismiss removes the fragments and resets the state. Idempotent when the
// overlay is already absent. The persisted expand count is untouched.
func (m *StateMachine) Dismiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Presence == PresenceAbsent {
		return
	}
	m.page.Lock()
	root := m.page.Root()
	browser.RemoveNode(browser.FindByID(root, HeaderFragmentID))
	browser.RemoveNode(browser.FindByID(root, HeroFragmentID))
	m.page.Unlock()
	m.state = State{}
	m.selected = -1
	log.Printf("[OverlayStateMachine] Overlay dismissed")
}

// EnsureLoading makes the fragments exist and puts their content into the
// loading state for a fresh navigation. Creation is keyed by fragment
// identity, not by tracked phase: a creation attempt while the fragments
// already exist in the document is a no-op, so reentrant invocation can
// never duplicate them. The user's expand/minimize choice survives
// navigations.
func (m *StateMachine) EnsureLoading() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.page.Lock()
	defer m.page.Unlock()

	root := m.page.Root()

	if browser.FindByID(root, HeaderFragmentID) == nil {
		anchor := browser.Body(root)
		if anchor == nil {
			anchor = root
		}
		browser.PrependChild(anchor, buildHeader(m.maxTier))
	}
	if browser.FindByID(root, HeroFragmentID) == nil {
		browser.PrependChild(heroAnchor(root), buildHero())
		log.Printf("[OverlayStateMachine] Fragments created")
	}

	m.state.Presence = PresencePresent
	m.state.Places = nil
	m.state.Loaded = false
	m.state.FetchFailed = false
	m.selected = -1
	m.renderLocked()
}

// ApplyPlaces merges a ranked place set into the current visual state.
// Both sub-views are re-rendered; the hidden one is kept current so a
// later toggle is a pure visibility flip. Data arriving after a dismissal
// is dropped.
func (m *StateMachine) ApplyPlaces(placeSet []models.Place, userLocation *models.LatLng) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Presence == PresenceAbsent {
		log.Printf("[OverlayStateMachine] Dropping data for dismissed overlay")
		return
	}
	m.state.Places = placeSet
	m.state.UserLocation = userLocation
	m.state.Loaded = true
	m.state.FetchFailed = false
	if len(placeSet) > 0 {
		m.selected = 0
	} else {
		m.selected = -1
	}
	m.page.Lock()
	defer m.page.Unlock()
	m.renderLocked()
}

// ApplyFetchFailure shows the non-blocking error line. No automatic retry;
// the next navigation is the only retry trigger.
func (m *StateMachine) ApplyFetchFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Presence == PresenceAbsent {
		return
	}
	m.state.Places = nil
	m.state.Loaded = false
	m.state.FetchFailed = true
	m.selected = -1
	m.page.Lock()
	defer m.page.Unlock()
	m.renderLocked()
}

// Expand switches to the detailed view. The persisted counter increments
// exactly once per minimized→expanded transition; a redundant expand while
// already expanded does nothing.
func (m *StateMachine) Expand() {
	m.mu.Lock()
	if m.state.Phase() != PhaseMinimized {
		m.mu.Unlock()
		return
	}
	m.state.Mode = ModeExpanded
	m.page.Lock()
	m.renderLocked()
	m.page.Unlock()
	m.mu.Unlock()

	// The store is incremented outside the lock: its subscribers call back
	// into onCountChange.
	count, err := m.store.Increment()
	if err != nil {
		log.Printf("[OverlayStateMachine] Failed to persist expand count: %v", err)
		return
	}
	m.onCountChange(count)
}

// Minimize switches back to the compact view. Never decrements the
// counter.
func (m *StateMachine) Minimize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Phase() != PhaseExpanded {
		return
	}
	m.state.Mode = ModeMinimized
	m.page.Lock()
	defer m.page.Unlock()
	m.renderLocked()
}

// SelectPlace recomputes the map destination for the chosen place without
// changing the visual mode. A missing user location is re-resolved on
// demand and cached on the state.
func (m *StateMachine) SelectPlace(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.state.Places) {
		return
	}
	if m.state.UserLocation == nil && m.locator != nil {
		m.state.UserLocation = m.locator.Locate()
	}
	m.selected = index
	m.page.Lock()
	defer m.page.Unlock()
	m.renderLocked()
}

// State returns a snapshot of the overlay state.
func (m *StateMachine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SelectedIndex returns the index of the place the map currently targets,
// -1 when none.
func (m *StateMachine) SelectedIndex() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selected
}

// renderLocked projects the state onto the fragments. The caller holds
// both the machine mutex and the page write lock.
func (m *StateMachine) renderLocked() {
	root := m.page.Root()
	if header := browser.FindByID(root, HeaderFragmentID); header != nil {
		applyTier(header, m.maxTier)
	}
	if hero := browser.FindByID(root, HeroFragmentID); hero != nil {
		renderHero(hero, m.state, m.selected, m.now())
	}
}
