package watcher

import (
	"log"
	"sync"
	"time"

	"local-booster/browser"
)

// NavigationWatcher detects in-page navigations by polling the page URL.
// The host environment's navigation events are unreliable for client-side
// route changes, so a fixed-interval poll trades up to one interval of
// latency for robustness. Each detected change mints the next navigation
// token and runs the cycle exactly once; one unconditional cycle runs at
// startup with token 0. The loop has no stop handle and survives any
// cycle failure.
type NavigationWatcher struct {
	page     browser.Page
	interval time.Duration
	cycle    func(token uint64)

	mu        sync.Mutex
	lastURL   string
	nextToken uint64
}

func NewNavigationWatcher(page browser.Page, interval time.Duration, cycle func(token uint64)) *NavigationWatcher {
	return &NavigationWatcher{
		page:     page,
		interval: interval,
		cycle:    cycle,
	}
}

// Start runs the startup cycle and launches the polling loop.
func (w *NavigationWatcher) Start() {
	w.mu.Lock()
	w.lastURL = w.page.URL()
	w.nextToken = 1
	w.mu.Unlock()

	log.Printf("[NavigationWatcher] Starting, polling every %v", w.interval)
	w.runCycle(0)

	go w.loop()
}

func (w *NavigationWatcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for range ticker.C {
		w.Poll()
	}
}

// Poll runs one comparison step. Exported so tests can drive the watcher
// without waiting on the ticker.
func (w *NavigationWatcher) Poll() {
	w.mu.Lock()
	current := w.page.URL()
	if current == w.lastURL {
		w.mu.Unlock()
		return
	}
	w.lastURL = current
	token := w.nextToken
	w.nextToken++
	w.mu.Unlock()

	log.Printf("[NavigationWatcher] Navigation detected (token %d): %s", token, current)
	w.runCycle(token)
}

// runCycle shields the loop from a failing cycle; the poll must keep
// running for the lifetime of the document.
func (w *NavigationWatcher) runCycle(token uint64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[NavigationWatcher] Cycle for token %d panicked: %v", token, r)
		}
	}()
	w.cycle(token)
}
