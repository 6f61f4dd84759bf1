package typeahead

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"typeahead/internal/highlight"
)

const (
	clearGlyph  = "✕"
	activeGlyph = "▸ "
	loadingText = "Loading..."
	emptyText   = "No results found."
)

// Layout, relative to the origin:
//
//	row 0                 field, clear affordance in the last cell
//	row 1                 dropdown top border (or error line when closed)
//	rows 2..2+n-1         visible suggestions
//	row 2+n               dropdown bottom border

// View renders the field and, when open, the dropdown
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.fieldView())

	if m.open {
		b.WriteString("\n")
		b.WriteString(m.dropdownView())
	} else if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.MaxWidth(m.opts.Width).Render("lookup failed: " + m.err.Error()))
	}
	return b.String()
}

func (m *Model) fieldView() string {
	field := lipgloss.NewStyle().
		Width(m.opts.Width - 2).
		MaxWidth(m.opts.Width - 2).
		Render(m.input.View())

	if m.input.Value() == "" {
		return field + "  "
	}
	return field + " " + m.styles.Clear.Render(clearGlyph)
}

func (m *Model) innerWidth() int {
	return m.opts.Width - 2
}

func (m *Model) dropdownLines() []string {
	line := lipgloss.NewStyle().MaxWidth(m.innerWidth())

	if m.loading {
		return []string{line.Render(m.styles.Status.Render(loadingText))}
	}
	if len(m.suggestions) == 0 {
		return []string{line.Render(m.styles.Status.Render(emptyText))}
	}

	matcher := highlight.NewMatcher(m.input.Value())
	end := m.offset + m.visibleCount()
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		base, match, prefix := m.styles.Item, m.styles.Match, "  "
		if i == m.active {
			base, match, prefix = m.styles.ActiveItem, m.styles.ActiveMatch, activeGlyph
		}
		text := base.Render(prefix) + matcher.Render(m.suggestions[i], base, match)
		lines = append(lines, line.Render(text))
	}
	return lines
}

func (m *Model) visibleCount() int {
	n := len(m.suggestions) - m.offset
	if n > m.opts.MaxVisible {
		n = m.opts.MaxVisible
	}
	if n < 0 {
		return 0
	}
	return n
}

func (m *Model) dropdownView() string {
	return m.styles.Dropdown.
		Width(m.innerWidth()).
		Render(strings.Join(m.dropdownLines(), "\n"))
}

// dropdownHeight is the number of rows the dropdown occupies, borders included
func (m *Model) dropdownHeight() int {
	if !m.open {
		return 0
	}
	return len(m.dropdownLines()) + 2
}

// Height is the number of rows View renders
func (m *Model) Height() int {
	if m.open {
		return 1 + m.dropdownHeight()
	}
	if m.err != nil {
		return 2
	}
	return 1
}

type hitKind int

const (
	hitOutside hitKind = iota
	hitField
	hitClear
	hitDropdown
	hitItem
)

// hitTest maps a cell relative to the origin to a widget region. For
// hitItem the suggestion index is returned as well.
func (m *Model) hitTest(x, y int) (hitKind, int) {
	if x < 0 || x >= m.opts.Width || y < 0 {
		return hitOutside, -1
	}

	if y == 0 {
		if x >= m.opts.Width-2 && m.input.Value() != "" {
			return hitClear, -1
		}
		return hitField, -1
	}

	if !m.open || y >= 1+m.dropdownHeight() {
		return hitOutside, -1
	}

	row := y - 2
	if !m.loading && row >= 0 && row < m.visibleCount() && x > 0 && x < m.opts.Width-1 {
		return hitItem, m.offset + row
	}
	return hitDropdown, -1
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	kind, index := m.hitTest(msg.X-m.originX, msg.Y-m.originY)
	switch kind {
	case hitField:
		if !m.input.Focused() {
			return m.Focus()
		}
	case hitClear:
		return m.clear()
	case hitItem:
		return m.selectItem(m.suggestions[index], "mouse")
	case hitOutside:
		if m.open {
			log.Debug("pointer down outside, closing dropdown")
			m.closeDropdown()
		}
	}
	return nil
}
