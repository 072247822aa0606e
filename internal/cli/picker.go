package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/embygo/pkg/emby/index"
)

const pickerVisibleRows = 10

// pickerModel is a minimal fuzzy picker over an index: type to narrow,
// arrows to move, enter to choose.
type pickerModel struct {
	input   textinput.Model
	idx     *index.Index
	matches []index.Match
	cursor  int

	choice   index.Entry
	chosen   bool
	quitting bool
}

func newPickerModel(idx *index.Index) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "> "
	ti.Focus()

	m := pickerModel{input: ti, idx: idx}
	m.matches = allMatches(idx)
	return m
}

// allMatches lists every entry unfiltered, for the empty query.
func allMatches(idx *index.Index) []index.Match {
	matches := idx.Filter("")
	if matches != nil {
		return matches
	}
	// Filter returns nil for the empty query; show everything instead.
	out := make([]index.Match, 0, idx.Len())
	for _, entry := range idx.Entries() {
		out = append(out, index.Match{Entry: entry})
	}
	return out
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.matches) {
				m.choice = m.matches[m.cursor].Entry
				m.chosen = true
			}
			m.quitting = true
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		query := m.input.Value()
		if query == "" {
			m.matches = allMatches(m.idx)
		} else {
			m.matches = m.idx.Filter(query)
		}
		m.cursor = 0
	}
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	start := 0
	if m.cursor >= pickerVisibleRows {
		start = m.cursor - pickerVisibleRows + 1
	}
	end := min(start+pickerVisibleRows, len(m.matches))

	for i := start; i < end; i++ {
		match := m.matches[i]
		line := fmt.Sprintf("%-50s %s", truncate(match.Title, 50), match.Kind)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(" " + line + " "))
		} else {
			b.WriteString(subtitleStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(m.matches) == 0 {
		b.WriteString(dimStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: select  esc: cancel"))
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// runPicker shows the picker and returns the chosen entry, if any.
func runPicker(idx *index.Index) (index.Entry, bool, error) {
	final, err := tea.NewProgram(newPickerModel(idx)).Run()
	if err != nil {
		return index.Entry{}, false, err
	}
	m, ok := final.(pickerModel)
	if !ok || !m.chosen {
		return index.Entry{}, false, nil
	}
	return m.choice, true, nil
}
