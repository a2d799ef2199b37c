package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bplog/internal/modules/measurement/domain"
)

func candidates() []domain.Record {
	return []domain.Record{
		{ID: 1, Date: "2024-03-01", Time: "07:00", Reading: domain.Reading{Systolic: 120, Diastolic: 80}},
		{ID: 2, Date: "2024-03-01", Time: "12:30", Reading: domain.Reading{Systolic: 130, Diastolic: 85}, Comment: "lunch"},
		{ID: 3, Date: "2024-03-01", Time: "21:15", Reading: domain.Reading{Systolic: 118, Diastolic: 76}},
	}
}

func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	j     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
)

func TestSelectMovesCursor(t *testing.T) {
	m, cmd := press(NewModel(candidates()), down, j, up, enter)
	if cmd == nil {
		t.Fatalf("enter should quit the program")
	}
	got, ok := m.Selected()
	if !ok || got.ID != 2 {
		t.Fatalf("expected record 2, got %+v ok=%v", got, ok)
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m, _ := press(NewModel(candidates()), up, down, down, down, down, enter)
	got, ok := m.Selected()
	if !ok || got.ID != 3 {
		t.Fatalf("expected last record, got %+v", got)
	}
}

func TestCancelSelectsNothing(t *testing.T) {
	m, cmd := press(NewModel(candidates()), down, esc)
	if cmd == nil {
		t.Fatalf("esc should quit the program")
	}
	if _, ok := m.Selected(); ok {
		t.Fatalf("cancel must not select a record")
	}
}

func TestViewListsCandidates(t *testing.T) {
	view := NewModel(candidates()).View()
	for _, want := range []string{"3 measurements on 2024-03-01", "130:85", "lunch", "21:15"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
