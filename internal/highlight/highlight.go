// Package highlight splits suggestion text around occurrences of a query so
// the matched parts can be emphasized.
package highlight

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Segment is a contiguous piece of a candidate string
type Segment struct {
	Text  string
	Match bool // true when Text is an occurrence of the query
}

// Matcher finds case-insensitive, literal occurrences of one query. Build
// it once per query and reuse it for every candidate.
type Matcher struct {
	re *regexp.Regexp // nil matches nothing
}

// NewMatcher compiles query. An empty query, or one that is not valid
// UTF-8, matches nothing.
func NewMatcher(query string) *Matcher {
	// An empty pattern would match between every rune
	if query == "" || !utf8.ValidString(query) {
		return &Matcher{}
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return &Matcher{}
	}
	return &Matcher{re: re}
}

// Split breaks candidate into segments around the query's occurrences.
// Concatenating the segment texts in order always yields candidate.
func (m *Matcher) Split(candidate string) []Segment {
	if m.re == nil {
		return []Segment{{Text: candidate}}
	}
	locs := m.re.FindAllStringIndex(candidate, -1)
	if len(locs) == 0 {
		return []Segment{{Text: candidate}}
	}

	segments := make([]Segment, 0, len(locs)*2+1)
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			segments = append(segments, Segment{Text: candidate[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: candidate[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(candidate) {
		segments = append(segments, Segment{Text: candidate[last:]})
	}

	return segments
}

// Render styles candidate for the terminal: matched segments use match,
// everything else uses base.
func (m *Matcher) Render(candidate string, base, match lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range m.Split(candidate) {
		if seg.Match {
			b.WriteString(match.Render(seg.Text))
		} else {
			b.WriteString(base.Render(seg.Text))
		}
	}
	return b.String()
}

// Split breaks candidate into segments around case-insensitive, literal
// occurrences of query
func Split(candidate, query string) []Segment {
	return NewMatcher(query).Split(candidate)
}

// Render is Split followed by styling, for a single candidate
func Render(candidate, query string, base, match lipgloss.Style) string {
	return NewMatcher(query).Render(candidate, base, match)
}

// Join concatenates segment texts
func Join(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}
