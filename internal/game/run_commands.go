package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

// Command is a tile edit the player can arm and apply to the selection.
type Command string

const (
	CommandFlood Command = "flood"
	CommandDrain Command = "drain"
	CommandRaise Command = "raise"
	CommandLower Command = "lower"
	CommandDike  Command = "dike"
)

func Commands() []Command {
	return []Command{CommandFlood, CommandDrain, CommandRaise, CommandLower, CommandDike}
}

func ParseCommand(raw string) (Command, bool) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	for _, c := range Commands() {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

type RunCommandResult struct {
	Handled bool
	Changed bool
	Message string
}

const helpText = "Commands: flood|drain|raise|lower|dike [x y], use <flood|drain|raise|lower|dike>, apply, select <x> <y>, move <n|s|e|w> [steps], sea [up|down|<level>], river, inspect [x y], restart [seed]."

// ExecuteRunCommand runs one canonical command line against the session.
// Unknown verbs come back unhandled so callers can try their own commands.
func (s *RunState) ExecuteRunCommand(raw string) RunCommandResult {
	command := strings.TrimSpace(strings.ToLower(raw))
	if command == "" || s == nil || s.Grid == nil {
		return RunCommandResult{Handled: false}
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return RunCommandResult{Handled: false}
	}

	var res RunCommandResult
	switch fields[0] {
	case "commands", "help":
		return RunCommandResult{Handled: true, Message: helpText}
	case "flood", "drain", "raise", "lower", "dike":
		res = s.executeEditCommand(Command(fields[0]), fields[1:])
	case "use":
		res = s.executeUseCommand(fields[1:])
	case "apply":
		res = s.Apply()
	case "select":
		res = s.executeSelectCommand(fields[1:])
	case "move", "go":
		res = s.executeMoveCommand(fields[1:])
	case "sea":
		res = s.executeSeaCommand(fields[1:])
	case "river":
		res = s.FloodRiver()
	case "inspect", "look":
		res = s.executeInspectCommand(fields[1:])
	case "restart":
		res = s.executeRestartCommand(fields[1:])
	default:
		return RunCommandResult{Handled: false}
	}

	s.log().Debug("command executed", "command", command, "changed", res.Changed, "turn", s.Turn)
	return res
}

// Apply runs the active command on the selected tile.
func (s *RunState) Apply() RunCommandResult {
	return s.ApplyAt(s.ActiveCommand, s.Selected)
}

// ApplyAt runs a tile edit at pos. Every applied command costs a turn, even
// when the terrain refuses the edit.
func (s *RunState) ApplyAt(command Command, pos terrain.Coordinate) RunCommandResult {
	if !s.Grid.InBounds(pos.X, pos.Y) {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("(%d,%d) is off the map.", pos.X, pos.Y)}
	}

	var changed bool
	switch command {
	case CommandFlood:
		changed = s.Grid.Flood(pos.X, pos.Y)
	case CommandDrain:
		changed = s.Grid.Drain(pos.X, pos.Y)
	case CommandRaise:
		changed = s.Grid.IncreaseHeight(pos.X, pos.Y)
	case CommandLower:
		changed = s.Grid.LowerHeight(pos.X, pos.Y)
	case CommandDike:
		changed = s.Grid.BuildDike(pos.X, pos.Y)
	default:
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Unknown command %q.", command)}
	}
	s.Turn++

	s.log().Info("tile edited", "command", string(command), "x", pos.X, "y", pos.Y, "changed", changed, "turn", s.Turn)
	if !changed {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Nothing to %s at (%d,%d).", command, pos.X, pos.Y)}
	}
	return RunCommandResult{
		Handled: true,
		Changed: true,
		Message: fmt.Sprintf("%s at (%d,%d): %s", commandVerb(command), pos.X, pos.Y, s.describeCell(pos)),
	}
}

func commandVerb(command Command) string {
	switch command {
	case CommandFlood:
		return "Flooded"
	case CommandDrain:
		return "Drained"
	case CommandRaise:
		return "Raised"
	case CommandLower:
		return "Lowered"
	case CommandDike:
		return "Dike built"
	default:
		return string(command)
	}
}

func (s *RunState) describeCell(pos terrain.Coordinate) string {
	report, ok := s.Inspect(pos.X, pos.Y)
	if !ok {
		return "off the map"
	}
	return report.String()
}

func (r CellReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s height %d water %d level %d", r.Tile, r.Height, r.Water, r.Level)
	if r.Dike {
		b.WriteString(", diked")
	}
	if r.Connected {
		b.WriteString(", open to the sea")
	}
	if r.RiverSource {
		b.WriteString(", river source")
	}
	return b.String()
}

func (s *RunState) executeEditCommand(command Command, args []string) RunCommandResult {
	pos := s.Selected
	if len(args) > 0 {
		parsed, ok := parseCoordinate(args)
		if !ok {
			return RunCommandResult{Handled: true, Message: fmt.Sprintf("Usage: %s [x y]", command)}
		}
		pos = parsed
	}
	return s.ApplyAt(command, pos)
}

func (s *RunState) executeUseCommand(args []string) RunCommandResult {
	if len(args) != 1 {
		return RunCommandResult{Handled: true, Message: "Usage: use <flood|drain|raise|lower|dike>"}
	}
	command, ok := ParseCommand(args[0])
	if !ok {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Unknown command %q.", args[0])}
	}
	s.ActiveCommand = command
	return RunCommandResult{Handled: true, Message: fmt.Sprintf("Active command: %s.", command)}
}

func (s *RunState) executeSelectCommand(args []string) RunCommandResult {
	pos, ok := parseCoordinate(args)
	if !ok {
		return RunCommandResult{Handled: true, Message: "Usage: select <x> <y>"}
	}
	pos = s.Select(pos.X, pos.Y)
	return RunCommandResult{Handled: true, Message: fmt.Sprintf("Selected (%d,%d): %s", pos.X, pos.Y, s.describeCell(pos))}
}

func (s *RunState) executeMoveCommand(args []string) RunCommandResult {
	if len(args) < 1 || len(args) > 2 {
		return RunCommandResult{Handled: true, Message: "Usage: move <n|s|e|w> [steps]"}
	}
	dx, dy, ok := directionDelta(args[0])
	if !ok {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Unknown direction %q.", args[0])}
	}
	steps := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return RunCommandResult{Handled: true, Message: "Steps must be a positive number."}
		}
		steps = n
	}
	pos := s.MoveSelection(dx*steps, dy*steps)
	return RunCommandResult{Handled: true, Message: fmt.Sprintf("Selected (%d,%d): %s", pos.X, pos.Y, s.describeCell(pos))}
}

func directionDelta(raw string) (int, int, bool) {
	switch raw {
	case "n", "north", "up":
		return 0, -1, true
	case "s", "south", "down":
		return 0, 1, true
	case "e", "east", "right":
		return 1, 0, true
	case "w", "west", "left":
		return -1, 0, true
	default:
		return 0, 0, false
	}
}

func (s *RunState) executeSeaCommand(args []string) RunCommandResult {
	if len(args) == 0 {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Sea level %d, %d cells open to the sea.", s.SeaLevel, len(s.Grid.ConnectedToSea()))}
	}
	if len(args) > 1 {
		return RunCommandResult{Handled: true, Message: "Usage: sea [up|down|<level>]"}
	}
	target := s.SeaLevel
	switch args[0] {
	case "up", "raise", "+":
		target++
	case "down", "lower", "-":
		target--
	default:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return RunCommandResult{Handled: true, Message: "Usage: sea [up|down|<level>]"}
		}
		target = n
	}
	return s.SetSeaLevel(target)
}

// SetSeaLevel moves the sea to target, clamped to the height range, and
// re-runs the sea sweep.
func (s *RunState) SetSeaLevel(target int) RunCommandResult {
	result := s.Grid.RecalculateSeaLevel(target)
	s.SeaLevel = result.Target
	s.Turn++
	changed := result.Added > 0 || result.Removed > 0

	s.log().Info("sea level set", "target", result.Target, "connected", len(result.Connected), "added", result.Added, "removed", result.Removed, "turn", s.Turn)
	return RunCommandResult{
		Handled: true,
		Changed: changed,
		Message: fmt.Sprintf("Sea level %d: %d cells open to the sea, +%d/-%d water.", result.Target, len(result.Connected), result.Added, result.Removed),
	}
}

// FloodRiver pours one unit of water in at the river source.
func (s *RunState) FloodRiver() RunCommandResult {
	src := s.Grid.RiverSource()
	changed := s.Grid.FloodRiver()
	s.Turn++
	s.log().Info("river flooded", "x", src.X, "y", src.Y, "changed", changed, "turn", s.Turn)
	if !changed {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("The river source at (%d,%d) is full.", src.X, src.Y)}
	}
	return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("River flooded at (%d,%d).", src.X, src.Y)}
}

func (s *RunState) executeInspectCommand(args []string) RunCommandResult {
	pos := s.Selected
	if len(args) > 0 {
		parsed, ok := parseCoordinate(args)
		if !ok {
			return RunCommandResult{Handled: true, Message: "Usage: inspect [x y]"}
		}
		pos = parsed
	}
	report, ok := s.Inspect(pos.X, pos.Y)
	if !ok {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("(%d,%d) is off the map.", pos.X, pos.Y)}
	}
	return RunCommandResult{Handled: true, Message: fmt.Sprintf("(%d,%d): %s", pos.X, pos.Y, report)}
}

func (s *RunState) executeRestartCommand(args []string) RunCommandResult {
	var seed int64
	if len(args) > 1 {
		return RunCommandResult{Handled: true, Message: "Usage: restart [seed]"}
	}
	if len(args) == 1 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return RunCommandResult{Handled: true, Message: "Seed must be a whole number."}
		}
		seed = n
	}
	if err := s.Restart(seed); err != nil {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Restart failed: %v", err)}
	}
	return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("New %s map, seed %d.", s.Config.Layout, s.Config.Seed)}
}

func parseCoordinate(args []string) (terrain.Coordinate, bool) {
	if len(args) != 2 {
		return terrain.Coordinate{}, false
	}
	x, errX := strconv.Atoi(strings.TrimSuffix(args[0], ","))
	y, errY := strconv.Atoi(args[1])
	if errX != nil || errY != nil {
		return terrain.Coordinate{}, false
	}
	return terrain.Coordinate{X: x, Y: y}, true
}
