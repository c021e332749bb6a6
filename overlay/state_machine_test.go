package overlay

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-booster/browser"
	"local-booster/models"
	"local-booster/progression"
)

const searchPage = `<html><head></head><body><div id="search"></div></body></html>`

var testNow = time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time {
	return testNow
}

func newTestMachine(t *testing.T) (*StateMachine, *browser.SimPage, *progression.MemoryStore) {
	t.Helper()
	page := browser.NewSimPage("https://www.google.com/search?q=usb+cable&tbm=shop", searchPage)
	store := progression.NewMemoryStore()
	machine := NewStateMachine(page, store, FixedLocator{Loc: &models.LatLng{Lat: 48.1, Lng: 11.5}}, fixedNow)
	return machine, page, store
}

func testPlaces() []models.Place {
	rating := 4.3
	total := 1874
	far := 1544.0
	near := 341.2
	return []models.Place{
		{
			Name: "Conrad Electronic", Distance: "350 m", DistanceRaw: &near,
			Lat: 48.1392, Lon: 11.5635,
			Rating: &rating, UserRatingsTotal: &total,
			OpeningHours: &models.OpeningHours{OpenNow: true},
		},
		{
			Name: "Elektro Huber", Distance: "1.6 km", DistanceRaw: &far,
			Lat: 48.1433, Lon: 11.5802,
		},
	}
}

func TestEnsureLoading_CreatesFragmentsExactlyOnce(t *testing.T) {
	machine, page, _ := newTestMachine(t)

	machine.EnsureLoading()
	machine.EnsureLoading()
	machine.EnsureLoading()

	root := page.Root()
	assert.Equal(t, 1, browser.CountByID(root, HeaderFragmentID))
	assert.Equal(t, 1, browser.CountByID(root, HeroFragmentID))
	assert.Equal(t, PhaseLoading, machine.State().Phase())
}

func TestEnsureLoading_ShowsLoadingText(t *testing.T) {
	machine, page, _ := newTestMachine(t)

	machine.EnsureLoading()

	minimized := browser.FindByID(page.Root(), MinimizedViewID)
	require.NotNil(t, minimized)
	assert.Contains(t, browser.Text(minimized), loadingText)
}

func TestEnsureLoading_InjectsHeroAboveResults(t *testing.T) {
	machine, page, _ := newTestMachine(t)

	machine.EnsureLoading()

	anchor := browser.FindByID(page.Root(), "search")
	require.NotNil(t, anchor)
	assert.NotNil(t, browser.FindByID(anchor, HeroFragmentID))
}

func TestApplyPlaces_RendersMinimizedRows(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()

	machine.ApplyPlaces(testPlaces(), &models.LatLng{Lat: 48.1, Lng: 11.5})

	assert.Equal(t, PhaseMinimized, machine.State().Phase())
	minimized := browser.FindByID(page.Root(), MinimizedViewID)
	text := browser.Text(minimized)
	assert.Contains(t, text, "Conrad Electronic")
	assert.Contains(t, text, "350 m")
	assert.Contains(t, text, "jetzt geöffnet")
}

func TestApplyPlaces_EmptyResultShowsEmptyLineNotLoading(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()

	machine.ApplyPlaces([]models.Place{}, &models.LatLng{Lat: 48.1, Lng: 11.5})

	assert.Equal(t, PhaseMinimized, machine.State().Phase())
	minimized := browser.FindByID(page.Root(), MinimizedViewID)
	text := browser.Text(minimized)
	assert.Contains(t, text, emptyResultText)
	assert.NotContains(t, text, loadingText)
}

func TestApplyPlaces_MinimizedViewCapsAtThreeRows(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()

	many := []models.Place{
		{Name: "one"}, {Name: "two"}, {Name: "three"}, {Name: "four"}, {Name: "five"},
	}
	machine.ApplyPlaces(many, nil)

	minimized := browser.FindByID(page.Root(), MinimizedViewID)
	text := browser.Text(minimized)
	assert.Contains(t, text, "three")
	assert.NotContains(t, text, "four")
}

func TestApplyPlaces_KeepsUserChosenMode(t *testing.T) {
	machine, _, _ := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)
	machine.Expand()

	// Fresh data for a new navigation must not collapse the panel.
	machine.ApplyPlaces(testPlaces(), nil)

	assert.Equal(t, PhaseExpanded, machine.State().Phase())
}

func TestApplyPlaces_AfterDismissalIsDropped(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()
	machine.Dismiss()

	machine.ApplyPlaces(testPlaces(), nil)

	assert.Equal(t, PhaseAbsent, machine.State().Phase())
	assert.Nil(t, browser.FindByID(page.Root(), HeroFragmentID))
}

func TestApplyFetchFailure_ShowsErrorLine(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()

	machine.ApplyFetchFailure()

	minimized := browser.FindByID(page.Root(), MinimizedViewID)
	assert.Contains(t, browser.Text(minimized), fetchErrorText)
}

func TestExpand_IncrementsCounterOncePerTransition(t *testing.T) {
	machine, _, store := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)

	machine.Expand()
	machine.Expand() // already expanded, must not double count

	count, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, PhaseExpanded, machine.State().Phase())
}

func TestExpand_EachMinimizedToExpandedCounts(t *testing.T) {
	machine, _, store := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)

	machine.Expand()
	machine.Minimize()
	machine.Expand()

	count, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestExpand_IgnoredWhileLoading(t *testing.T) {
	machine, _, store := newTestMachine(t)
	machine.EnsureLoading()

	machine.Expand()

	count, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, PhaseLoading, machine.State().Phase())
}

func TestExpand_FlipsViewVisibility(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)

	machine.Expand()

	minimized := browser.FindByID(page.Root(), MinimizedViewID)
	expanded := browser.FindByID(page.Root(), ExpandedViewID)
	minStyle, _ := browser.GetAttr(minimized, "style")
	expStyle, _ := browser.GetAttr(expanded, "style")
	assert.Equal(t, "display:none", minStyle)
	assert.Equal(t, "display:block", expStyle)

	machine.Minimize()
	minStyle, _ = browser.GetAttr(minimized, "style")
	assert.Equal(t, "display:block", minStyle)
}

func TestMinimize_IgnoredUnlessExpanded(t *testing.T) {
	machine, _, _ := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)

	machine.Minimize()

	assert.Equal(t, PhaseMinimized, machine.State().Phase())
}

func TestDecorations_UnlockAtThresholds(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)

	assertUnlocked := func(id string, want bool) {
		t.Helper()
		decoration := browser.FindByID(page.Root(), id)
		require.NotNil(t, decoration)
		v, _ := browser.GetAttr(decoration, "data-unlocked")
		assert.Equal(t, want, v == "true")
	}

	assertUnlocked(HeaderDecorationAID, false)
	assertUnlocked(HeaderDecorationBID, false)

	machine.Expand()
	assertUnlocked(HeaderDecorationAID, true)
	assertUnlocked(HeaderDecorationBID, false)

	machine.Minimize()
	machine.Expand()
	assertUnlocked(HeaderDecorationAID, true)
	assertUnlocked(HeaderDecorationBID, true)
}

func TestDecorations_BothStayInTreeWhileLocked(t *testing.T) {
	machine, page, _ := newTestMachine(t)

	machine.EnsureLoading()

	// Locked decorations keep their slot; only visibility changes later.
	assert.Equal(t, 1, browser.CountByID(page.Root(), HeaderDecorationAID))
	assert.Equal(t, 1, browser.CountByID(page.Root(), HeaderDecorationBID))
}

func TestDecorations_ExternalCountChangeLiftsTier(t *testing.T) {
	machine, page, store := newTestMachine(t)
	machine.EnsureLoading()

	store.Set(2)

	decoration := browser.FindByID(page.Root(), HeaderDecorationBID)
	v, _ := browser.GetAttr(decoration, "data-unlocked")
	assert.Equal(t, "true", v)
}

func TestDecorations_TierNeverDropsOnStaleCount(t *testing.T) {
	machine, page, store := newTestMachine(t)
	machine.EnsureLoading()
	store.Set(2)

	store.Set(0)

	decoration := browser.FindByID(page.Root(), HeaderDecorationBID)
	v, _ := browser.GetAttr(decoration, "data-unlocked")
	assert.Equal(t, "true", v)
}

func TestDismiss_RemovesFragmentsAndIsIdempotent(t *testing.T) {
	machine, page, store := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)
	machine.Expand()

	machine.Dismiss()
	machine.Dismiss()

	root := page.Root()
	assert.Nil(t, browser.FindByID(root, HeaderFragmentID))
	assert.Nil(t, browser.FindByID(root, HeroFragmentID))
	assert.Equal(t, PhaseAbsent, machine.State().Phase())

	// Dismissal never touches the persisted counter.
	count, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDismissThenEnsureLoading_RecreatesWithEarnedTier(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)
	machine.Expand()
	machine.Dismiss()

	machine.EnsureLoading()

	assert.Equal(t, 1, browser.CountByID(page.Root(), HeroFragmentID))
	decoration := browser.FindByID(page.Root(), HeaderDecorationAID)
	require.NotNil(t, decoration)
	v, _ := browser.GetAttr(decoration, "data-unlocked")
	assert.Equal(t, "true", v)
}

func TestSelectPlace_RetargetsMapWithoutModeChange(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), &models.LatLng{Lat: 48.1486, Lng: 11.5686})
	machine.Expand()

	machine.SelectPlace(1)

	assert.Equal(t, PhaseExpanded, machine.State().Phase())
	assert.Equal(t, 1, machine.SelectedIndex())

	mapPreview := browser.FindByID(page.Root(), MapFragmentID)
	require.NotNil(t, mapPreview)
	src, _ := browser.GetAttr(mapPreview, "data-src")
	assert.Contains(t, src, "daddr=48.143300,11.580200")
	assert.Contains(t, src, "dirflg=w")
}

func TestSelectPlace_ResolvesMissingLocationOnDemand(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)

	machine.SelectPlace(0)

	// The locator's fix is picked up lazily.
	require.NotNil(t, machine.State().UserLocation)
	mapPreview := browser.FindByID(page.Root(), MapFragmentID)
	src, _ := browser.GetAttr(mapPreview, "data-src")
	assert.True(t, strings.Contains(src, "saddr=48.100000,11.500000"), src)
}

func TestSelectPlace_OutOfRangeIgnored(t *testing.T) {
	machine, _, _ := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)

	machine.SelectPlace(-1)
	machine.SelectPlace(99)

	assert.Equal(t, 0, machine.SelectedIndex())
}

func TestExpandedView_EntryContent(t *testing.T) {
	machine, page, _ := newTestMachine(t)
	machine.EnsureLoading()
	machine.ApplyPlaces(testPlaces(), nil)
	machine.Expand()

	expanded := browser.FindByID(page.Root(), ExpandedViewID)
	text := browser.Text(expanded)
	assert.Contains(t, text, "4.3★ (1874)")
	assert.Contains(t, text, noRatingText) // second place has no rating
}
