package overlay

import (
	"fmt"
	"time"

	"golang.org/x/net/html"

	"local-booster/browser"
	"local-booster/models"
	"local-booster/ranker"
)

// Fragment identifiers. Fixed and collision-resistant so repeated
// injection attempts are detectable and skippable.
const (
	HeaderFragmentID    = "local-booster-sticky-header"
	HeaderDecorationAID = "local-booster-header-decoration-a"
	HeaderDecorationBID = "local-booster-header-decoration-b"
	HeroFragmentID      = "local-booster-hero-panel"
	MinimizedViewID     = "local-booster-hero-minimized"
	ExpandedViewID      = "local-booster-hero-expanded"
	MapFragmentID       = "local-booster-map-preview"
)

// Localized UI strings.
const (
	headerText      = "Kauf bei Local Heroes!"
	loadingText     = "Lade lokale Geschäfte..."
	fetchErrorText  = "Lokale Geschäfte konnten gerade nicht geladen werden."
	emptyResultText = "Keine lokalen Geschäfte in der Nähe gefunden."
	noRatingText    = "keine Bewertung"
)

// resultsAnchorIDs are the candidate containers the hero panel is injected
// above; the document body is the fallback.
var resultsAnchorIDs = []string{"search", "rso", "res"}

// buildHeader constructs the sticky header fragment. Both decorations are
// always part of the tree and reserve their space; tier only flips their
// visibility, matching how the unlock must never reflow the header.
func buildHeader(tier int) *html.Node {
	header := browser.NewElement("div", "id", HeaderFragmentID)

	text := browser.NewElement("span", "class", "lb-header-text")
	text.AppendChild(browser.NewText(headerText))
	header.AppendChild(text)

	decorationA := browser.NewElement("span", "id", HeaderDecorationAID, "class", "lb-decoration")
	decorationB := browser.NewElement("span", "id", HeaderDecorationBID, "class", "lb-decoration")
	header.AppendChild(decorationA)
	header.AppendChild(decorationB)

	applyTier(header, tier)
	return header
}

// applyTier projects the decoration tier onto an existing header.
func applyTier(header *html.Node, tier int) {
	setUnlocked(browser.FindByID(header, HeaderDecorationAID), tier >= 1)
	setUnlocked(browser.FindByID(header, HeaderDecorationBID), tier >= 2)
}

func setUnlocked(decoration *html.Node, unlocked bool) {
	if decoration == nil {
		return
	}
	if unlocked {
		browser.SetAttr(decoration, "data-unlocked", "true")
		browser.SetAttr(decoration, "style", "visibility:visible")
	} else {
		browser.SetAttr(decoration, "data-unlocked", "false")
		browser.SetAttr(decoration, "style", "visibility:hidden")
	}
}

// buildHero constructs the hero panel skeleton: both sub-views exist from
// the start (one hidden) so a mode toggle is a visibility flip, not a
// re-computation. The map preview lives inside the expanded view.
func buildHero() *html.Node {
	hero := browser.NewElement("div", "id", HeroFragmentID)

	minimized := browser.NewElement("div", "id", MinimizedViewID)
	expanded := browser.NewElement("div", "id", ExpandedViewID, "style", "display:none")

	mapPreview := browser.NewElement("div", "id", MapFragmentID)
	expanded.AppendChild(mapPreview)

	hero.AppendChild(minimized)
	hero.AppendChild(expanded)
	return hero
}

// heroAnchor finds the node the hero panel is injected into.
func heroAnchor(root *html.Node) *html.Node {
	for _, id := range resultsAnchorIDs {
		if anchor := browser.FindByID(root, id); anchor != nil {
			return anchor
		}
	}
	if body := browser.Body(root); body != nil {
		return body
	}
	return root
}

// renderHero projects the state onto an existing hero fragment. Calling it
// twice with the same state yields identical content; all children are
// rebuilt from the state value, keyed by the stable view ids.
func renderHero(hero *html.Node, s State, selected int, now time.Time) {
	minimized := browser.FindByID(hero, MinimizedViewID)
	expanded := browser.FindByID(hero, ExpandedViewID)
	if minimized == nil || expanded == nil {
		return
	}

	renderMinimizedView(minimized, s, now)
	renderExpandedView(expanded, s, selected, now)

	if s.Mode == ModeExpanded {
		browser.SetAttr(minimized, "style", "display:none")
		browser.SetAttr(expanded, "style", "display:block")
	} else {
		browser.SetAttr(minimized, "style", "display:block")
		browser.SetAttr(expanded, "style", "display:none")
	}
}

func renderMinimizedView(view *html.Node, s State, now time.Time) {
	if len(s.Places) == 0 {
		line := browser.NewElement("div", "class", "lb-status-line")
		line.AppendChild(browser.NewText(statusLineText(s)))
		browser.ReplaceChildren(view, line)
		return
	}

	rows := make([]*html.Node, 0, 3)
	for i, p := range s.Places {
		if i == 3 {
			break
		}
		rows = append(rows, minimizedRow(p, now))
	}
	browser.ReplaceChildren(view, rows...)
}

// statusLineText picks the line shown when there are no rows to render:
// error, empty result or still loading.
func statusLineText(s State) string {
	switch {
	case s.FetchFailed:
		return fetchErrorText
	case s.Loaded:
		return emptyResultText
	}
	return loadingText
}

func minimizedRow(p models.Place, now time.Time) *html.Node {
	row := browser.NewElement("div", "class", "lb-place-row")
	row.AppendChild(browser.NewText(fmt.Sprintf("%s · %s · %s",
		p.Name, displayDistance(p), openStatus(p, now))))
	return row
}

func renderExpandedView(view *html.Node, s State, selected int, now time.Time) {
	mapPreview := browser.NewElement("div", "id", MapFragmentID,
		"data-src", mapSrc(s, selected))

	if len(s.Places) == 0 {
		line := browser.NewElement("div", "class", "lb-status-line")
		line.AppendChild(browser.NewText(statusLineText(s)))
		browser.ReplaceChildren(view, line, mapPreview)
		return
	}

	children := make([]*html.Node, 0, len(s.Places)+1)
	for i, p := range s.Places {
		children = append(children, expandedEntry(p, i == selected, now))
	}
	children = append(children, mapPreview)
	browser.ReplaceChildren(view, children...)
}

func expandedEntry(p models.Place, selected bool, now time.Time) *html.Node {
	entry := browser.NewElement("div", "class", "lb-place-entry")
	if selected {
		browser.SetAttr(entry, "data-selected", "true")
	}

	title := browser.NewElement("div", "class", "lb-place-title")
	title.AppendChild(browser.NewText(fmt.Sprintf("%s · %s", p.Name, displayDistance(p))))
	entry.AppendChild(title)

	meta := browser.NewElement("div", "class", "lb-place-meta")
	meta.AppendChild(browser.NewText(fmt.Sprintf("%s · %s · %s",
		ratingText(p), openStatus(p, now), ranker.TodaysHoursText(p.OpeningHours, now))))
	entry.AppendChild(meta)

	if p.TopReview != "" {
		review := browser.NewElement("div", "class", "lb-place-review")
		review.AppendChild(browser.NewText(p.TopReview))
		entry.AppendChild(review)
	}

	if p.GoogleMapsURL != "" {
		link := browser.NewElement("a", "class", "lb-place-link", "href", p.GoogleMapsURL)
		link.AppendChild(browser.NewText("Auf Karte zeigen"))
		entry.AppendChild(link)
	}

	return entry
}

func mapSrc(s State, selected int) string {
	if selected >= 0 && selected < len(s.Places) {
		p := s.Places[selected]
		return PreviewURL(s.UserLocation, &models.LatLng{Lat: p.Lat, Lng: p.Lon})
	}
	return PreviewURL(s.UserLocation, nil)
}

func displayDistance(p models.Place) string {
	if p.Distance != "" {
		return p.Distance
	}
	return "?"
}

func openStatus(p models.Place, now time.Time) string {
	if ranker.IsOpenNow(p.OpeningHours) {
		return "jetzt geöffnet"
	}
	return ranker.TimeUntilOpen(p.OpeningHours, now)
}

func ratingText(p models.Place) string {
	if p.Rating == nil {
		return noRatingText
	}
	if p.UserRatingsTotal != nil {
		return fmt.Sprintf("%.1f★ (%d)", *p.Rating, *p.UserRatingsTotal)
	}
	return fmt.Sprintf("%.1f★", *p.Rating)
}
