package watcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"local-booster/browser"
)

const blankPage = "<html><head></head><body></body></html>"

func TestStart_RunsStartupCycleWithTokenZero(t *testing.T) {
	page := browser.NewSimPage("https://example.com/start", blankPage)
	var tokens []uint64
	w := NewNavigationWatcher(page, time.Hour, func(token uint64) {
		tokens = append(tokens, token)
	})

	w.Start()

	assert.Equal(t, []uint64{0}, tokens)
}

func TestPoll_MintsOneTokenPerChange(t *testing.T) {
	page := browser.NewSimPage("https://example.com/a", blankPage)
	var tokens []uint64
	w := NewNavigationWatcher(page, time.Hour, func(token uint64) {
		tokens = append(tokens, token)
	})
	w.Start()

	// No change: no cycle.
	w.Poll()
	assert.Equal(t, []uint64{0}, tokens)

	page.Navigate("https://example.com/b")
	w.Poll()
	// Same URL seen again: still no new cycle.
	w.Poll()

	page.Navigate("https://example.com/c")
	w.Poll()

	assert.Equal(t, []uint64{0, 1, 2}, tokens)
}

func TestPoll_SurvivesPanickingCycle(t *testing.T) {
	page := browser.NewSimPage("https://example.com/a", blankPage)
	calls := 0
	w := NewNavigationWatcher(page, time.Hour, func(token uint64) {
		calls++
		panic("cycle blew up")
	})
	w.Start()

	page.Navigate("https://example.com/b")

	assert.NotPanics(t, func() { w.Poll() })
	assert.Equal(t, 2, calls)
}
