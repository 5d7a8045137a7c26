package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/age-of-polders/internal/game"
	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

type AppConfig struct {
	Version     string
	Commit      string
	BuildDate   string
	Run         game.RunConfig
	SnapshotDir string
	Logger      *slog.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	run, err := game.NewRunState(a.cfg.Run, a.cfg.Logger)
	if err != nil {
		return err
	}
	m := newRunModel(a.cfg, NewConsole(run, a.cfg.SnapshotDir))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// --- Styles (sea and clay) ---
var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E4DC")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#73828C"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A3B0B8"))
	toolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C87A3C")).Bold(true)
	inputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E4DC"))
)

const (
	headerRows = 2
	footerRows = 3
	maxInput   = 120
)

// toolKeys arms a tool from the number row.
var toolKeys = map[string]game.Command{
	"1": game.CommandFlood,
	"2": game.CommandDrain,
	"3": game.CommandRaise,
	"4": game.CommandLower,
	"5": game.CommandDike,
}

type runModel struct {
	cfg     AppConfig
	console *Console
	styles  *cellStyles

	width  int
	height int

	typing bool
	input  string
}

func newRunModel(cfg AppConfig, console *Console) runModel {
	return runModel{cfg: cfg, console: console, styles: newCellStyles()}
}

func (m runModel) Init() tea.Cmd {
	return nil
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m runModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case ":", "/":
		m.typing = true
		m.input = ""
		return m, nil
	case "up", "k":
		m.console.Do("move", "north")
	case "down", "j":
		m.console.Do("move", "south")
	case "left", "h":
		m.console.Do("move", "west")
	case "right", "l":
		m.console.Do("move", "east")
	case " ", "enter":
		m.console.Do("apply")
	case "+", "=":
		m.console.Do("sea", "up")
	case "-":
		m.console.Do("sea", "down")
	case "r":
		m.console.Do("river")
	case "i":
		m.console.Do("inspect")
	case "p":
		m.console.Do("snapshot")
	case "R":
		m.console.Do("restart")
	case "?":
		m.console.Do("help")
	default:
		if tool, ok := toolKeys[key]; ok {
			m.console.Do("use", string(tool))
		}
	}
	return m, nil
}

func (m runModel) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.typing = false
		m.input = ""
		return m, nil
	case tea.KeyEnter:
		line := m.input
		m.typing = false
		m.input = ""
		if strings.TrimSpace(line) == "" {
			return m, nil
		}
		if res := m.console.Submit(line); res.Quit {
			return m, tea.Quit
		}
		// Keep the prompt open while a question waits for an answer.
		m.typing = m.console.Pending() != nil
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeySpace:
		m.input = appendInput(m.input, " ")
		return m, nil
	case tea.KeyRunes:
		m.input = appendInput(m.input, string(msg.Runes))
		return m, nil
	}
	return m, nil
}

func appendInput(buf, s string) string {
	if len(buf)+len(s) > maxInput {
		return buf
	}
	return buf + s
}

func (m runModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	pos, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.console.Do("select", fmt.Sprint(pos.X), fmt.Sprint(pos.Y))
	if msg.Button == tea.MouseButtonLeft {
		m.console.Do("apply")
	}
	return m, nil
}

func (m runModel) window() mapWindow {
	run := m.console.Run()
	cols, rows := run.Grid.Width(), run.Grid.Height()
	if m.width > 0 {
		cols = m.width
	}
	if m.height > 0 {
		rows = m.height - headerRows - footerRows
	}
	return computeMapWindow(run.Grid.Width(), run.Grid.Height(), run.Selected.X, run.Selected.Y, cols, rows)
}

// cellAt maps a terminal position to the tile drawn there.
func (m runModel) cellAt(x, y int) (terrain.Coordinate, bool) {
	win := m.window()
	gx := win.StartX + x
	gy := win.StartY + y - headerRows
	if !win.contains(gx, gy) {
		return terrain.Coordinate{}, false
	}
	return terrain.Coordinate{X: gx, Y: gy}, true
}

func (m runModel) View() string {
	run := m.console.Run()

	var out strings.Builder
	title := titleStyle.Render("AGE OF POLDERS")
	if m.cfg.Version != "" {
		title += dimStyle.Render("  v" + m.cfg.Version)
	}
	out.WriteString(title + "\n")
	out.WriteString(infoStyle.Render(fmt.Sprintf("turn %d  sea %d  seed %d  ", run.Turn, run.SeaLevel, run.Config.Seed)))
	out.WriteString(toolStyle.Render("tool " + string(run.ActiveCommand)))
	out.WriteString(infoStyle.Render(fmt.Sprintf("  at (%d,%d)", run.Selected.X, run.Selected.Y)) + "\n")

	out.WriteString(renderMap(run.Grid, m.window(), run.Selected, m.styles) + "\n")

	out.WriteString(infoStyle.Render(m.console.LastMessage()) + "\n")
	if m.typing {
		out.WriteString(inputStyle.Render("> "+m.input+"_") + "\n")
	} else {
		out.WriteString(dimStyle.Render("arrows move, space apply, 1-5 tool, +/- sea, r river, i inspect, p snapshot, : command, q quit") + "\n")
	}
	return out.String()
}
