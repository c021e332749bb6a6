package browser

import (
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// Page is the host document the overlay operates on: a URL that changes
// with in-page navigation and a parsed HTML tree the overlay may inject
// fragments into. The real host environment lives outside this module;
// SimPage below stands in for it.
//
// The tree is shared between the poll goroutine and fetch goroutines.
// Root and any traversal or mutation of the tree it returns must happen
// while holding the page lock: Lock/Unlock for mutation, RLock/RUnlock
// for read-only walks. URL, Navigate and Load synchronize internally and
// must not be called with the lock held.
type Page interface {
	URL() string
	Root() *html.Node
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// SimPage is a mutable in-memory page. URL and document can be swapped to
// simulate single-page navigation; the document pointer stays stable across
// URL-only changes, exactly like a client-side route transition.
type SimPage struct {
	mu   sync.RWMutex
	url  string
	root *html.Node
}

// NewSimPage parses the given markup into a document. Malformed markup is
// tolerated the way browsers tolerate it (html.Parse always builds a tree).
func NewSimPage(url, markup string) *SimPage {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		// html.Parse only fails on reader errors; a strings.Reader has none.
		root = &html.Node{Type: html.DocumentNode}
	}
	return &SimPage{url: url, root: root}
}

func (p *SimPage) URL() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.url
}

// Root returns the document root. The caller must hold the page lock for
// this call and for as long as it touches the tree.
func (p *SimPage) Root() *html.Node {
	return p.root
}

func (p *SimPage) Lock()    { p.mu.Lock() }
func (p *SimPage) Unlock()  { p.mu.Unlock() }
func (p *SimPage) RLock()   { p.mu.RLock() }
func (p *SimPage) RUnlock() { p.mu.RUnlock() }

// Navigate changes the URL without touching the document, mimicking an
// in-page route change.
func (p *SimPage) Navigate(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.url = url
}

// Load replaces URL and document together, mimicking a full page load.
func (p *SimPage) Load(url, markup string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.url = url
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		root = &html.Node{Type: html.DocumentNode}
	}
	p.root = root
}
