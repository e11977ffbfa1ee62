// Package roster turns located containers into legislator records.
// It owns name cleaning, position and phone composition, and the
// deduplication of the final roster.
package roster

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/rosterpipe/core"
	"github.com/gaurav-prasanna/rosterpipe/core/fields"
	"github.com/gaurav-prasanna/rosterpipe/core/links"
)

const (
	// DefaultTitle is the role label for every member of the Alaska Senate.
	DefaultTitle = "Senator"
	// DefaultEmailMarker is the class Cloudflare puts on obfuscated addresses.
	DefaultEmailMarker = "email-protection"
	// EmailAvailable is the email value used when a container hides an address.
	EmailAvailable = "Available via website"

	minNameLength = 3
)

var (
	// ErrNoProfileLink means the container has no usable profile link.
	ErrNoProfileLink = errors.New("no profile link")
	// ErrNameTooShort means the cleaned name is shorter than three characters.
	ErrNameTooShort = errors.New("name too short")
)

// leadership lists the roles checked for the position suffix, highest
// priority first.
var leadership = []string{"Majority Leader", "Minority Leader", "Senate President"}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nameTitleRe  = regexp.MustCompile(`Majority Leader|Minority Leader|Senate President|President`)
)

// Builder builds one record per container.
type Builder struct {
	Origin      string
	Title       string
	EmailMarker string
	Rules       fields.Rules
}

// NewBuilder creates a Builder for the given site origin with the default
// title, email marker and field rules.
func NewBuilder(origin string) *Builder {
	return &Builder{
		Origin:      origin,
		Title:       DefaultTitle,
		EmailMarker: DefaultEmailMarker,
	}
}

// Build produces the record for c. It returns ErrNoProfileLink or
// ErrNameTooShort (possibly wrapped) when the container should be skipped.
func (b *Builder) Build(c core.Container) (core.Legislator, error) {
	if !c.HasProfileLink {
		return core.Legislator{}, ErrNoProfileLink
	}
	profileURL, err := links.Resolve(c.ProfileHref, b.Origin)
	if err != nil {
		return core.Legislator{}, fmt.Errorf("%w: %w", ErrNoProfileLink, err)
	}

	name := CleanName(c.ProfileText)
	if utf8.RuneCountInString(name) < minNameLength {
		return core.Legislator{}, fmt.Errorf("%w: %q", ErrNameTooShort, name)
	}

	values := b.Rules.Apply(c.Text)

	return core.Legislator{
		Name:     name,
		Title:    b.Title,
		Position: ComposePosition(values.District, c.Text),
		Party:    values.Party,
		Address:  strings.TrimSpace(values.City),
		Phone:    ComposePhone(values.Phone, values.TollFree),
		Email:    EmailIndicator(c.HTML, c.Text, b.EmailMarker),
		URL:      profileURL,
	}, nil
}

// CleanName collapses whitespace and strips leadership titles from a link
// text. CleanName(CleanName(s)) == CleanName(s).
func CleanName(raw string) string {
	name := collapse(raw)
	for {
		stripped := nameTitleRe.ReplaceAllString(name, "")
		if stripped == name {
			break
		}
		name = stripped
	}
	return collapse(name)
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// ComposePosition builds "District X", suffixed by the first leadership
// role found in text.
func ComposePosition(district, text string) string {
	var position string
	if district != "" {
		position = "District " + district
	}

	for _, role := range leadership {
		if !strings.Contains(text, role) {
			continue
		}
		if position == "" {
			return role
		}
		return position + " - " + role
	}
	return position
}

// ComposePhone combines the main and toll-free numbers.
func ComposePhone(phone, tollFree string) string {
	switch {
	case phone != "" && tollFree != "":
		return phone + " / " + tollFree + " (Toll-Free)"
	case tollFree != "":
		return tollFree + " (Toll-Free)"
	default:
		return phone
	}
}

// EmailIndicator reports whether the container exposes an email address.
// The site obfuscates addresses, so only presence is recorded.
func EmailIndicator(html, text, marker string) string {
	if marker != "" && strings.Contains(html, marker) {
		return EmailAvailable
	}
	if strings.Contains(strings.ToLower(text), "email") {
		return EmailAvailable
	}
	return ""
}
