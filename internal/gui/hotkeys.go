package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/age-of-polders/internal/parser"
)

// hotkey binds a key to a command. Shifted letters keep plain letters free
// for the command line.
type hotkey struct {
	Key   int32
	Shift bool
	Label string
	Verb  string
	Args  []string
}

func (h hotkey) intent() parser.Intent {
	return parser.Intent{Kind: parser.Command, Verb: h.Verb, Args: h.Args, Confidence: 1}
}

var runHotkeys = []hotkey{
	{Key: rl.KeyUp, Label: "Up", Verb: "move", Args: []string{"north"}},
	{Key: rl.KeyDown, Label: "Down", Verb: "move", Args: []string{"south"}},
	{Key: rl.KeyLeft, Label: "Left", Verb: "move", Args: []string{"west"}},
	{Key: rl.KeyRight, Label: "Right", Verb: "move", Args: []string{"east"}},
	{Key: rl.KeyF1, Label: "F1", Verb: "use", Args: []string{"flood"}},
	{Key: rl.KeyF2, Label: "F2", Verb: "use", Args: []string{"drain"}},
	{Key: rl.KeyF3, Label: "F3", Verb: "use", Args: []string{"raise"}},
	{Key: rl.KeyF4, Label: "F4", Verb: "use", Args: []string{"lower"}},
	{Key: rl.KeyF5, Label: "F5", Verb: "use", Args: []string{"dike"}},
	{Key: rl.KeyPageUp, Label: "PgUp", Verb: "sea", Args: []string{"up"}},
	{Key: rl.KeyPageDown, Label: "PgDn", Verb: "sea", Args: []string{"down"}},
	{Key: rl.KeyR, Shift: true, Label: "Shift+R", Verb: "river"},
	{Key: rl.KeyI, Shift: true, Label: "Shift+I", Verb: "inspect"},
	{Key: rl.KeyP, Shift: true, Label: "Shift+P", Verb: "snapshot"},
	{Key: rl.KeyH, Shift: true, Label: "Shift+H", Verb: "help"},
}

// toolHotkey returns the label of the key that arms tool.
func toolHotkey(tool string) string {
	for _, h := range runHotkeys {
		if h.Verb == "use" && len(h.Args) == 1 && h.Args[0] == tool {
			return h.Label
		}
	}
	return ""
}

// pollHotkeys enqueues the intent of every bound key pressed this frame and
// reports whether any fired.
func pollHotkeys(sink CommandSink) bool {
	fired := false
	for _, h := range runHotkeys {
		pressed := rl.IsKeyPressed(h.Key) || rl.IsKeyPressedRepeat(h.Key)
		if h.Shift {
			pressed = ShiftKeyPressed(h.Key)
		}
		if !pressed {
			continue
		}
		sink.EnqueueIntent(h.intent())
		fired = true
	}
	return fired
}

func ShiftPressed() bool {
	return shiftDown()
}

func ShiftKeyPressed(key int32) bool {
	if ShiftPressed() && rl.IsKeyPressed(key) {
		return true
	}
	// Accept either key order: Shift then key, or key then Shift.
	if rl.IsKeyDown(key) && (rl.IsKeyPressed(rl.KeyLeftShift) || rl.IsKeyPressed(rl.KeyRightShift)) {
		return true
	}
	return false
}

// HotkeysEnabled is false while the player is typing or answering a
// question, so keys go to the command line instead.
func HotkeysEnabled(uiState *gameUI) bool {
	if uiState == nil {
		return true
	}
	if strings.TrimSpace(uiState.runInput) != "" {
		return false
	}
	if uiState.console != nil && uiState.console.Pending() != nil {
		return false
	}
	return true
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}
