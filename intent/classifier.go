package intent

import (
	"log"
	"strings"

	"golang.org/x/net/html"

	"local-booster/browser"
)

// URL markers that flag a shopping results page.
var urlMarkers = []string{
	"tbm=shop",
	"udm=28",
	"/shopping",
}

// Phrases that flag sponsored product listings, checked against text
// nodes case-insensitively.
var sponsoredPhrases = []string{
	"sponsored products",
	"gesponserte produkte",
}

// selector is one fixed DOM probe: a class or an attribute known to mark
// shopping result widgets.
type selector struct {
	class string
	attr  string
}

var shoppingSelectors = []selector{
	{class: "commercial-unit-desktop-top"},
	{class: "sh-dgr__grid-result"},
	{class: "pla-unit"},
	{attr: "data-sh-sr"},
}

// Classify judges whether the page expresses shopping intent. It never
// mutates the tree and never panics: any internal failure classifies as
// false, so at worst no widget is shown. The result is recomputed on every
// navigation because the same path can serve different content after
// client-side routing.
func Classify(rawURL string, root *html.Node) (result bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[IntentClassifier] recovered during classification: %v", r)
			result = false
		}
	}()

	lowered := strings.ToLower(rawURL)
	for _, marker := range urlMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}

	if root == nil {
		return false
	}

	for _, phrase := range sponsoredPhrases {
		if browser.TextContains(root, phrase) {
			return true
		}
	}

	return matchesAnySelector(root)
}

func matchesAnySelector(root *html.Node) bool {
	matched := false
	browser.Walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		for _, s := range shoppingSelectors {
			if s.class != "" && browser.HasClass(n, s.class) {
				matched = true
				return false
			}
			if s.attr != "" {
				if _, ok := browser.GetAttr(n, s.attr); ok {
					matched = true
					return false
				}
			}
		}
		return true
	})
	return matched
}
