package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/age-of-polders/internal/game"
	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

func newTestModel(t *testing.T) runModel {
	t.Helper()
	return newRunModel(AppConfig{Version: "test"}, newTestConsole(t))
}

func press(t *testing.T, m runModel, msg tea.Msg) runModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(runModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRunModelArrowKeysMoveSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, runes("l"))
	if got := m.console.Run().Selected; got != (terrain.Coordinate{X: 2, Y: 1}) {
		t.Fatalf("expected selection (2,1), got %+v", got)
	}
}

func TestRunModelNumberKeysArmTools(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("5"))
	if got := m.console.Run().ActiveCommand; got != game.CommandDike {
		t.Fatalf("expected dike armed, got %s", got)
	}
}

func TestRunModelTypedCommandRuns(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes(":"))
	if !m.typing {
		t.Fatalf("expected the command line to open")
	}
	before := m.console.Run().Grid.TotalWater()
	m = press(t, m, runes("flood 30 30"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.typing {
		t.Fatalf("expected the command line to close")
	}
	if got := m.console.Run().Grid.TotalWater(); got != before+1 {
		t.Fatalf("expected typed flood to add a unit, got %d want %d", got, before+1)
	}
}

func TestRunModelEscapeCancelsTyping(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes(":"))
	m = press(t, m, runes("drain"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.typing || m.input != "" {
		t.Fatalf("expected escape to clear the command line")
	}
	if m.console.Run().Turn != 0 {
		t.Fatalf("expected no turn to pass")
	}
}

func TestRunModelMouseClickAppliesTool(t *testing.T) {
	m := newTestModel(t)
	before := m.console.Run().Grid.TotalWater()
	m = press(t, m, tea.MouseMsg{X: 30, Y: 30 + headerRows, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.console.Run().Selected; got != (terrain.Coordinate{X: 30, Y: 30}) {
		t.Fatalf("expected click to select (30,30), got %+v", got)
	}
	if got := m.console.Run().Grid.TotalWater(); got != before+1 {
		t.Fatalf("expected click to flood, got total water %d want %d", got, before+1)
	}
}

func TestRunModelQuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
