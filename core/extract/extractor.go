// Package extract implements the ContainerLocator interface.
// It splits a member listing page into one container per legislator by:
//  1. Matching the configured container selectors (the page's grid columns)
//  2. Falling back to the grandparent of every profile link when no column matches
package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/gaurav-prasanna/rosterpipe/core"
	"github.com/gaurav-prasanna/rosterpipe/core/links"
)

// DefaultSelectors are the grid columns each legislator card sits in.
var DefaultSelectors = []string{"div.col-md-6", "div.col-lg-4", "div.col-sm-6"}

// ContainerExtractor locates legislator containers in a listing page.
type ContainerExtractor struct {
	selector       string
	profilePattern string

	// Logger receives diagnostics for containers that cannot be read.
	Logger *slog.Logger
}

// New creates a ContainerExtractor. Selectors are validated up front.
func New(selectors []string, profilePattern string) (*ContainerExtractor, error) {
	if len(selectors) == 0 {
		selectors = DefaultSelectors
	}
	if profilePattern == "" {
		profilePattern = links.DefaultProfilePattern
	}

	joined := strings.Join(selectors, ", ")
	if _, err := cascadia.ParseGroup(joined); err != nil {
		return nil, fmt.Errorf("invalid container selector %q: %w", joined, err)
	}

	return &ContainerExtractor{
		selector:       joined,
		profilePattern: profilePattern,
		Logger:         slog.Default(),
	}, nil
}

// Containers returns the containers found in html, in document order.
func (e *ContainerExtractor) Containers(html string) ([]core.Container, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	found := doc.Find(e.selector)
	if found.Length() == 0 {
		// Parent() deduplicates, so cards with two profile links appear once.
		found = e.profileLinks(doc.Selection).Parent().Parent()
	}

	containers := make([]core.Container, 0, found.Length())
	found.Each(func(i int, s *goquery.Selection) {
		c, err := e.container(s)
		if err != nil {
			e.Logger.Warn("failed to read container", "index", i, "err", err)
			return
		}
		containers = append(containers, c)
	})

	return containers, nil
}

func (e *ContainerExtractor) container(s *goquery.Selection) (core.Container, error) {
	inner, err := s.Html()
	if err != nil {
		return core.Container{}, fmt.Errorf("serializing container: %w", err)
	}

	c := core.Container{
		HTML: inner,
		Text: s.Text(),
	}

	link := e.profileLinks(s).First()
	if link.Length() == 0 {
		return c, nil
	}

	c.HasProfileLink = true
	c.ProfileHref = link.AttrOr("href", "")
	c.ProfileText = strings.TrimSpace(link.Text())
	return c, nil
}

// profileLinks returns the anchors under s whose href is a profile link.
func (e *ContainerExtractor) profileLinks(s *goquery.Selection) *goquery.Selection {
	return s.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return links.IsProfileLink(a.AttrOr("href", ""), e.profilePattern)
	})
}
