package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bplog/internal/modules/measurement/domain"
	"bplog/internal/ui/theme"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "remove")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model lists candidate records and lets the user pick one.
type Model struct {
	records  []domain.Record
	cursor   int
	chosen   bool
	done     bool
	keys     keyMap
	help     help.Model
	question string
}

func NewModel(records []domain.Record) Model {
	question := "Several measurements match"
	if len(records) > 0 {
		question = fmt.Sprintf("%d measurements on %s, which one should be removed?", len(records), records[0].Date)
	}
	return Model{records: records, keys: defaultKeys(), help: help.New(), question: question}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Select):
		if len(m.records) > 0 {
			m.chosen = true
		}
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	b := strings.Builder{}
	b.WriteString(theme.Title.Render(m.question))
	b.WriteString("\n\n")
	for i, r := range m.records {
		line := fmt.Sprintf("%s  %s  %s", r.Time, r.Reading, r.Comment)
		if i == m.cursor {
			b.WriteString(theme.Cursor.Render("> " + line))
		} else {
			b.WriteString(theme.Muted.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the highlighted record once the user confirmed it.
func (m Model) Selected() (domain.Record, bool) {
	if !m.chosen || len(m.records) == 0 {
		return domain.Record{}, false
	}
	return m.records[m.cursor], true
}
