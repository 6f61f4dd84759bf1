package highlight

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCaseInsensitive(t *testing.T) {
	segs := Split("Apple", "app")

	require.Equal(t, []Segment{
		{Text: "App", Match: true},
		{Text: "le"},
	}, segs)
}

func TestSplitEmptyQuery(t *testing.T) {
	assert.Equal(t, []Segment{{Text: "Elderberry"}}, Split("Elderberry", ""))
	assert.Equal(t, []Segment{{Text: ""}}, Split("", ""))
}

func TestSplitNoMatch(t *testing.T) {
	assert.Equal(t, []Segment{{Text: "Cherry"}}, Split("Cherry", "xyz"))
}

func TestSplitMultipleMatches(t *testing.T) {
	segs := Split("Banana", "an")

	require.Equal(t, []Segment{
		{Text: "B"},
		{Text: "an", Match: true},
		{Text: "an", Match: true},
		{Text: "a"},
	}, segs)
}

func TestSplitWholeCandidate(t *testing.T) {
	assert.Equal(t, []Segment{{Text: "Fig", Match: true}}, Split("Fig", "FIG"))
}

func TestSplitTreatsMetacharactersLiterally(t *testing.T) {
	tests := []struct {
		candidate string
		query     string
		matched   []string
	}{
		{"a.b axb", ".", []string{"."}},
		{"c++ and c", "c++", []string{"c++"}},
		{"(x) x", "(x)", []string{"(x)"}},
		{"1*2 12", "*", []string{"*"}},
		{"[a] a", "[a]", []string{"[a]"}},
		{"$HOME ^start", "^", []string{"^"}},
		{"back\\slash", "\\", []string{"\\"}},
		{"a|b", "|", []string{"|"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var matched []string
			for _, seg := range Split(tt.candidate, tt.query) {
				if seg.Match {
					matched = append(matched, seg.Text)
				}
			}
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestSplitReconstructsCandidate(t *testing.T) {
	candidates := []string{"", "Apple", "Banana", "aaaa", "Grüße", "a.b.c", "MiXeD cAsE mixed", "日本語テキスト", "caf\xffe"}
	queries := []string{"", "a", "A", "an", "aa", ".", "mixed", "ü", "語", "zzz", "(", "a.b", "\xff", "e\xff"}

	for _, c := range candidates {
		for _, q := range queries {
			segs := Split(c, q)
			require.Equal(t, c, Join(segs), "candidate=%q query=%q", c, q)

			for _, seg := range segs {
				if seg.Match {
					assert.True(t, strings.EqualFold(seg.Text, q), "candidate=%q query=%q segment=%q", c, q, seg.Text)
				}
				if len(segs) > 1 {
					assert.NotEmpty(t, seg.Text, "candidate=%q query=%q", c, q)
				}
			}
		}
	}
}

func TestRenderKeepsText(t *testing.T) {
	plain := lipgloss.NewStyle()

	assert.Equal(t, "Banana", Render("Banana", "nan", plain, plain))
}

func TestInvalidUTF8QueryMatchesNothing(t *testing.T) {
	var segs []Segment
	require.NotPanics(t, func() { segs = Split("caf\xffe", "\xff") })

	assert.Equal(t, []Segment{{Text: "caf\xffe"}}, segs)
}

func TestMatcherReusedAcrossCandidates(t *testing.T) {
	m := NewMatcher("an")

	assert.Equal(t, []Segment{
		{Text: "B"},
		{Text: "an", Match: true},
		{Text: "an", Match: true},
		{Text: "a"},
	}, m.Split("Banana"))
	assert.Equal(t, []Segment{{Text: "Fig"}}, m.Split("Fig"))
	assert.Equal(t, Split("Mango", "AN"), NewMatcher("AN").Split("Mango"))
}
