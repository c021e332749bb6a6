package orchestrator

import (
	"log"
	"sync"

	"local-booster/api/places"
	"local-booster/models"
)

// DataOrchestrator issues one place fetch per navigation cycle and keeps
// track of which navigation token is live. Fetches are never aborted;
// results belonging to a superseded token are discarded when they resolve.
type DataOrchestrator struct {
	api places.PlacesAPI

	mu        sync.Mutex
	liveToken uint64
}

func NewDataOrchestrator(api places.PlacesAPI) *DataOrchestrator {
	return &DataOrchestrator{api: api}
}

// Begin marks token as the live navigation generation. At most one token
// is live at a time; Begin supersedes any earlier one.
func (o *DataOrchestrator) Begin(token uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.liveToken = token
}

// IsLive reports whether token is still the live generation.
func (o *DataOrchestrator) IsLive(token uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return token == o.liveToken
}

// FetchPlaces runs the fetch for the given navigation token. The liveness
// check happens at resolution time, after the transport returns: a slow
// response for a superseded navigation yields live=false and must be
// dropped by the caller. Transport failures and non-success envelopes
// resolve to a nil place list; the caller renders the error state and does
// not retry.
func (o *DataOrchestrator) FetchPlaces(query string, location *models.LatLng, token uint64) (placeSet []models.Place, live bool) {
	response, err := o.api.GetPlaces(query, location)

	if !o.IsLive(token) {
		// Expected race outcome, not an error.
		log.Printf("[DataOrchestrator] Dropping stale result for token %d", token)
		return nil, false
	}

	if err != nil {
		log.Printf("[DataOrchestrator] Fetch failed for token %d: %v", token, err)
		return nil, true
	}
	if !response.Success || response.Data == nil {
		log.Printf("[DataOrchestrator] Fetch unsuccessful for token %d: %s", token, response.Error)
		return nil, true
	}
	if response.Data.Places == nil {
		// An empty result is a valid resolution, distinct from a failure.
		return []models.Place{}, true
	}
	return response.Data.Places, true
}
