// Package links matches legislator profile links and resolves them against
// the site origin.
package links

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultProfilePattern is the path fragment every member detail link carries.
const DefaultProfilePattern = "basis/Member/Detail"

// ErrEmptyHref is returned by Resolve for a blank href.
var ErrEmptyHref = errors.New("empty href")

// IsProfileLink reports whether href points at a member profile page.
func IsProfileLink(href, pattern string) bool {
	return pattern != "" && strings.Contains(href, pattern)
}

// Resolve returns href as an absolute URL. Absolute hrefs are returned
// unchanged; anything else is resolved against origin.
func Resolve(href, origin string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", ErrEmptyHref
	}

	base, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("parsing origin %q: %w", origin, err)
	}
	if !base.IsAbs() {
		return "", fmt.Errorf("origin %q is not absolute", origin)
	}

	parsed, err := url.Parse(href)
	if err != nil {
		// A malformed escape still names the profile page: prefix the origin.
		if hasScheme(href) {
			return href, nil
		}
		return strings.TrimRight(origin, "/") + "/" + strings.TrimLeft(href, "/"), nil
	}
	if parsed.IsAbs() {
		return href, nil
	}
	return base.ResolveReference(parsed).String(), nil
}

// hasScheme reports whether href starts with an http(s) scheme.
func hasScheme(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Origin returns scheme://host of rawURL.
func Origin(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%q has no scheme or host", rawURL)
	}
	return parsed.Scheme + "://" + parsed.Host, nil
}
