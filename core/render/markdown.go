// Package render provides output renderers for the roster pipeline.
// This file implements the Markdown renderer: the roster is laid out as
// HTML and converted by the normalizer.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/gaurav-prasanna/rosterpipe/core"
)

// MarkdownRenderer writes a human-readable roster.
type MarkdownRenderer struct {
	normalizer core.Normalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(normalizer core.Normalizer) *MarkdownRenderer {
	return &MarkdownRenderer{normalizer: normalizer}
}

// Render lists every legislator with its non-empty fields.
func (r *MarkdownRenderer) Render(roster []core.Legislator, meta core.RosterMetadata) ([]byte, error) {
	markdown, err := r.normalizer.Normalize(rosterHTML(roster, meta))
	if err != nil {
		return nil, fmt.Errorf("normalizing roster: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func rosterHTML(roster []core.Legislator, meta core.RosterMetadata) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(heading(meta)))
	if meta.URL != "" {
		fmt.Fprintf(&b, "<p><em>Source: %s</em></p>", html.EscapeString(meta.URL))
	}
	fmt.Fprintf(&b, "<p>%d members</p>", len(roster))

	for _, l := range roster {
		fmt.Fprintf(&b, `<h2><a href="%s">%s</a></h2><ul>`,
			html.EscapeString(l.URL), html.EscapeString(l.Name))
		for _, f := range details(l) {
			fmt.Fprintf(&b, "<li><strong>%s:</strong> %s</li>",
				html.EscapeString(f.label), html.EscapeString(f.value))
		}
		b.WriteString("</ul>")
	}
	return b.String()
}

type detail struct {
	label string
	value string
}

// details returns the labeled fields worth printing, skipping blanks.
func details(l core.Legislator) []detail {
	all := []detail{
		{"Title", l.Title},
		{"Position", l.Position},
		{"Party", l.Party},
		{"City", l.Address},
		{"Phone", l.Phone},
		{"Email", l.Email},
	}
	out := all[:0]
	for _, d := range all {
		if d.value != "" {
			out = append(out, d)
		}
	}
	return out
}

func heading(meta core.RosterMetadata) string {
	switch {
	case meta.Site != "":
		return meta.Site
	case meta.Title != "":
		return meta.Title + " roster"
	default:
		return "Roster"
	}
}
