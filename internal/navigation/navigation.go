// Package navigation tracks which dashboard page is shown.
package navigation

import (
	"errors"
	"sync"
)

// Page is a dashboard page name.
type Page string

// Dashboard pages.
const (
	PageHome     Page = "home"
	PageForecast Page = "forecast"
	PageAnalysis Page = "analysis"
	PageHealth   Page = "health"
	PageTravel   Page = "travel"
	PageNews     Page = "news"
	PageAbout    Page = "about"
)

// ErrUnknownPage is returned for pages the dashboard does not have.
var ErrUnknownPage = errors.New("unknown page")

var pages = map[Page]bool{
	PageHome:     true,
	PageForecast: true,
	PageAnalysis: true,
	PageHealth:   true,
	PageTravel:   true,
	PageNews:     true,
	PageAbout:    true,
}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	return pages[p]
}

// Navigator holds the current page, home at start.
type Navigator struct {
	mu      sync.RWMutex
	current Page
	changes int
}

// New creates new Navigator.
func New() *Navigator {
	return &Navigator{current: PageHome}
}

// Current returns the shown page.
func (n *Navigator) Current() Page {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.current
}

// Changes returns how many times the page was set.
func (n *Navigator) Changes() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.changes
}

// Go switches to page p.
func (n *Navigator) Go(p Page) error {
	if !p.Valid() {
		return ErrUnknownPage
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = p
	n.changes++

	return nil
}
