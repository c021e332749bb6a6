package overlay

import "local-booster/models"

// Presence says whether the overlay fragments exist in the document.
type Presence int

const (
	PresenceAbsent Presence = iota
	PresencePresent
)

// Mode is the user-facing view of the hero panel.
type Mode int

const (
	ModeMinimized Mode = iota
	ModeExpanded
)

// Phase is the derived lifecycle state of the overlay.
type Phase int

const (
	PhaseAbsent Phase = iota
	PhaseLoading
	PhaseMinimized
	PhaseExpanded
)

func (p Phase) String() string {
	switch p {
	case PhaseAbsent:
		return "absent"
	case PhaseLoading:
		return "loading"
	case PhaseMinimized:
		return "minimized"
	case PhaseExpanded:
		return "expanded"
	}
	return "unknown"
}

// State is the single source of truth for the overlay. It is owned by the
// StateMachine; navigation events, data arrival and user clicks are its
// only mutators. The DOM is a projection of this value, never the other
// way around.
type State struct {
	Presence     Presence
	Mode         Mode
	Places       []models.Place
	UserLocation *models.LatLng

	// Loaded marks a resolved fetch; an empty place list with Loaded set
	// is a legitimate empty result, not a pending load.
	Loaded bool

	// FetchFailed marks a resolved-but-failed fetch so the hero can show
	// the error line instead of the loading line.
	FetchFailed bool
}

// Phase derives the lifecycle phase from the state value.
func (s State) Phase() Phase {
	if s.Presence == PresenceAbsent {
		return PhaseAbsent
	}
	if !s.Loaded && !s.FetchFailed {
		return PhaseLoading
	}
	if s.Mode == ModeExpanded {
		return PhaseExpanded
	}
	return PhaseMinimized
}
