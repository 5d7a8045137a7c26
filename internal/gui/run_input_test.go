package gui

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/age-of-polders/internal/game"
	"github.com/appengine-ltd/age-of-polders/internal/terrain"
	legacyui "github.com/appengine-ltd/age-of-polders/internal/ui"
)

func testGameUI(t *testing.T) *gameUI {
	t.Helper()
	config := game.DefaultRunConfig()
	config.Layout = game.LayoutFixed
	config.Seed = 4242
	run, err := game.NewRunState(config, nil)
	if err != nil {
		t.Fatalf("new run state: %v", err)
	}
	return newGameUI(AppConfig{}, legacyui.NewConsole(run, t.TempDir()))
}

func TestSubmitRunInputQueuesAndExecutes(t *testing.T) {
	ui := testGameUI(t)
	before := ui.run().Grid.TotalWater()
	ui.runInput = "flood 30 30"
	ui.submitRunInput()
	if ui.runInput != "" {
		t.Fatalf("expected input to clear")
	}
	if ui.queue.Len() != 1 {
		t.Fatalf("expected one queued intent, got %d", ui.queue.Len())
	}

	ui.processIntentQueue()
	if got := ui.run().Grid.TotalWater(); got != before+1 {
		t.Fatalf("expected one more unit of water, got %d want %d", got, before+1)
	}
}

func TestSubmitRunInputEmptySetsStatus(t *testing.T) {
	ui := testGameUI(t)
	ui.runInput = "   "
	ui.submitRunInput()
	if ui.status != "Enter a command." {
		t.Fatalf("unexpected status %q", ui.status)
	}
	if ui.queue.Len() != 0 {
		t.Fatalf("expected nothing queued")
	}
}

func TestSubmitRunInputClarifyThenAnswer(t *testing.T) {
	ui := testGameUI(t)
	ui.runInput = "go"
	ui.submitRunInput()
	ui.processIntentQueue()
	if ui.console.Pending() == nil {
		t.Fatalf("expected a pending direction question")
	}
	if HotkeysEnabled(ui) {
		t.Fatalf("expected hotkeys off while a question is open")
	}

	ui.runInput = "2"
	ui.submitRunInput()
	ui.processIntentQueue()
	if got := ui.run().Selected; got != (terrain.Coordinate{X: 0, Y: 1}) {
		t.Fatalf("expected selection to move south, got %+v", got)
	}
	if !HotkeysEnabled(ui) {
		t.Fatalf("expected hotkeys back on")
	}
}

func TestClickCellSelectsAndApplies(t *testing.T) {
	ui := testGameUI(t)
	ui.run().ActiveCommand = game.CommandRaise
	before, _ := ui.run().Grid.HeightAt(30, 30)

	ui.clickCell(terrain.Coordinate{X: 30, Y: 30}, true)
	ui.processIntentQueue()

	after, _ := ui.run().Grid.HeightAt(30, 30)
	if after != before+1 {
		t.Fatalf("expected height %d, got %d", before+1, after)
	}

	ui.clickCell(terrain.Coordinate{X: 31, Y: 30}, false)
	ui.processIntentQueue()
	if ui.run().Selected != (terrain.Coordinate{X: 31, Y: 30}) {
		t.Fatalf("expected secondary click to select only")
	}
	if ui.run().Turn != 1 {
		t.Fatalf("expected one turn, got %d", ui.run().Turn)
	}
}

func TestQuitIntentStopsTheLoop(t *testing.T) {
	ui := testGameUI(t)
	ui.runInput = "quit"
	ui.submitRunInput()
	ui.processIntentQueue()
	if !ui.quit {
		t.Fatalf("expected quit")
	}
}

func TestHotkeyIntentsAreHandled(t *testing.T) {
	ui := testGameUI(t)
	for _, h := range runHotkeys {
		res := ui.console.Execute(h.intent())
		if strings.Contains(res.Message, "Unknown command") {
			t.Fatalf("hotkey %s produced %q", h.Label, res.Message)
		}
	}
	if toolHotkey("dike") != "F5" {
		t.Fatalf("expected F5 to arm the dike tool")
	}
}
