// Package site describes the legislative site a roster is scraped from.
// A profile can be loaded from YAML; unset keys keep the Alaska Senate defaults.
package site

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gaurav-prasanna/rosterpipe/core/extract"
	"github.com/gaurav-prasanna/rosterpipe/core/fields"
	"github.com/gaurav-prasanna/rosterpipe/core/links"
	"github.com/gaurav-prasanna/rosterpipe/core/output"
	"github.com/gaurav-prasanna/rosterpipe/core/roster"
	"gopkg.in/yaml.v3"
)

// Profile holds everything that is specific to one member listing page.
type Profile struct {
	Name               string       `yaml:"name"`
	ListingURL         string       `yaml:"listing_url"`
	Origin             string       `yaml:"origin"`
	Title              string       `yaml:"title"`
	ProfileLinkPattern string       `yaml:"profile_link_pattern"`
	ContainerSelectors []string     `yaml:"container_selectors"`
	EmailMarker        string       `yaml:"email_marker"`
	OutputBasename     string       `yaml:"output_basename"`
	Rules              fields.Rules `yaml:"rules"`
}

// Default returns the Alaska State Senate profile.
func Default() Profile {
	return Profile{
		Name:               "Alaska State Senate",
		ListingURL:         "https://akleg.gov/senate.php",
		Origin:             "http://www.akleg.gov",
		Title:              roster.DefaultTitle,
		ProfileLinkPattern: links.DefaultProfilePattern,
		ContainerSelectors: append([]string(nil), extract.DefaultSelectors...),
		EmailMarker:        roster.DefaultEmailMarker,
		OutputBasename:     output.DefaultBasename,
	}
}

// Load reads a YAML profile from path on top of the defaults.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading site profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML profile on top of the defaults and validates it.
func Parse(data []byte) (Profile, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing site profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the fields the pipeline cannot run without.
func (p Profile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(p.ProfileLinkPattern) == "" {
		errs = append(errs, errors.New("profile_link_pattern is required"))
	}
	if strings.TrimSpace(p.OutputBasename) == "" {
		errs = append(errs, errors.New("output_basename is required"))
	}
	if _, err := links.Origin(p.Origin); err != nil {
		errs = append(errs, fmt.Errorf("origin: %w", err))
	}
	if _, err := p.Locator(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid site profile: %w", errors.Join(errs...))
	}
	return nil
}

// Builder returns a record builder configured for this site.
func (p Profile) Builder() *roster.Builder {
	b := roster.NewBuilder(p.Origin)
	b.Title = p.Title
	b.EmailMarker = p.EmailMarker
	b.Rules = p.Rules
	return b
}

// Locator returns a container locator configured for this site.
func (p Profile) Locator() (*extract.ContainerExtractor, error) {
	return extract.New(p.ContainerSelectors, p.ProfileLinkPattern)
}
