// Package fields pulls labeled values ("Party: Republican", "Phone: 907-...")
// out of a container's flattened text.
//
// Every rule is a single-capture pattern. A miss is not an error: it yields "".
package fields

import (
	"regexp"
	"strings"
)

// Default label patterns.
const (
	PartyPattern    = `Party:\s*([A-Za-z]+)`
	DistrictPattern = `District:\s*([A-Z])`
	CityPattern     = `City:\s*([^\n]+)`
	PhonePattern    = `Phone:\s*([0-9\-]+)`
	TollFreePattern = `Toll-Free:\s*([0-9\-]+)`
)

// stopLabels end a captured value early when the page flattens several
// labels onto one line.
var stopLabels = []string{"Party:", "District:", "Phone:"}

// Extract applies pattern to text and returns its first capture group,
// cut at end of line or at the next known label, and trimmed.
// It returns "" when the pattern does not match, does not compile, or has
// no capture group.
func Extract(text, pattern string) string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ""
	}
	return find(re, text)
}

func find(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(cutAtLabel(m[1]))
}

// cutAtLabel truncates value at the first newline or stop label.
func cutAtLabel(value string) string {
	if i := strings.IndexByte(value, '\n'); i >= 0 {
		value = value[:i]
	}
	end := len(value)
	for _, label := range stopLabels {
		if i := strings.Index(value, label); i >= 0 && i < end {
			end = i
		}
	}
	return value[:end]
}

var (
	partyRe    = regexp.MustCompile(PartyPattern)
	districtRe = regexp.MustCompile(DistrictPattern)
	cityRe     = regexp.MustCompile(CityPattern)
	phoneRe    = regexp.MustCompile(PhonePattern)
	tollFreeRe = regexp.MustCompile(TollFreePattern)
)

// Party returns the word after "Party:".
func Party(text string) string { return find(partyRe, text) }

// District returns the single uppercase letter after "District:".
func District(text string) string { return find(districtRe, text) }

// City returns the text after "City:" up to the next label or end of line.
func City(text string) string { return find(cityRe, text) }

// Phone returns the digits and hyphens after "Phone:".
func Phone(text string) string { return find(phoneRe, text) }

// TollFree returns the digits and hyphens after "Toll-Free:".
func TollFree(text string) string { return find(tollFreeRe, text) }

// Rules is a set of label patterns. A blank pattern uses the default rule.
type Rules struct {
	Party    string `yaml:"party"`
	District string `yaml:"district"`
	City     string `yaml:"city"`
	Phone    string `yaml:"phone"`
	TollFree string `yaml:"toll_free"`
}

// Values holds the raw field values found in one container.
type Values struct {
	Party    string
	District string
	City     string
	Phone    string
	TollFree string
}

// Apply runs every rule against text.
func (r Rules) Apply(text string) Values {
	return Values{
		Party:    apply(r.Party, Party, text),
		District: apply(r.District, District, text),
		City:     apply(r.City, City, text),
		Phone:    apply(r.Phone, Phone, text),
		TollFree: apply(r.TollFree, TollFree, text),
	}
}

func apply(pattern string, fallback func(string) string, text string) string {
	if pattern == "" {
		return fallback(text)
	}
	return Extract(text, pattern)
}
