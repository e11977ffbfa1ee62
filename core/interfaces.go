// Package core defines the shared types and pipeline interfaces for rosterpipe.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Container is one legislator's summary card on the listing page, reduced to
// the text/HTML/link triple the record builder consumes.
type Container struct {
	HTML string
	Text string

	// First profile link inside the container, if any.
	HasProfileLink bool
	ProfileHref    string
	ProfileText    string
}

// Legislator is a single normalized roster entry. Field order is the
// JSON output order.
type Legislator struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Position string `json:"position"`
	Party    string `json:"party"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	URL      string `json:"url"`
}

// RosterMetadata describes where a roster came from.
type RosterMetadata struct {
	URL       string
	Site      string
	Title     string
	FetchedAt string // ISO8601
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// ContainerLocator splits a listing page into per-legislator containers,
// in document order.
type ContainerLocator interface {
	Containers(html string) ([]Container, error)
}

// Normalizer converts an HTML fragment into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a roster into a final output format.
type Renderer interface {
	Render(roster []Legislator, meta RosterMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".pdf").
	Extension() string
}
