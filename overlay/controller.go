package overlay

import (
	"log"
	"net/url"

	"local-booster/browser"
	"local-booster/intent"
	"local-booster/models"
	"local-booster/orchestrator"
	"local-booster/ranker"
)

// Controller drives one overlay per page. Each navigation cycle it
// classifies the current document, advances the state machine and kicks
// off a place fetch whose result is applied only while still live.
type Controller struct {
	page         browser.Page
	machine      *StateMachine
	orchestrator *orchestrator.DataOrchestrator
	locator      Locator
}

func NewController(page browser.Page, machine *StateMachine, orch *orchestrator.DataOrchestrator, locator Locator) *Controller {
	return &Controller{
		page:         page,
		machine:      machine,
		orchestrator: orch,
		locator:      locator,
	}
}

// RunCycle handles one navigation token. The token is marked live before
// anything else so any fetch still in flight from an earlier navigation is
// superseded even when this cycle dismisses the overlay.
func (c *Controller) RunCycle(token uint64) {
	c.orchestrator.Begin(token)

	rawURL := c.page.URL()
	c.page.RLock()
	shopping := intent.Classify(rawURL, c.page.Root())
	c.page.RUnlock()
	if !shopping {
		c.machine.Dismiss()
		return
	}

	c.machine.EnsureLoading()

	query := searchQuery(rawURL)
	log.Printf("[Controller] Shopping intent on %q, fetching places for %q", rawURL, query)
	go c.fetchAndApply(query, token)
}

func (c *Controller) fetchAndApply(query string, token uint64) {
	var loc *models.LatLng
	if c.locator != nil {
		loc = c.locator.Locate()
	}
	placeSet, live := c.orchestrator.FetchPlaces(query, loc, token)
	if !live {
		return
	}
	if placeSet == nil {
		c.machine.ApplyFetchFailure()
		return
	}
	c.machine.ApplyPlaces(ranker.SortByDistance(placeSet), loc)
}

// searchQuery extracts the search terms from the page URL. Falls back to
// the path when no q parameter is present, and to the raw URL when it does
// not parse.
func searchQuery(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if q := u.Query().Get("q"); q != "" {
		return q
	}
	return u.Path
}
