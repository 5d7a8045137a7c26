package gui

import (
	"fmt"
	"log/slog"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/age-of-polders/internal/game"
	"github.com/appengine-ltd/age-of-polders/internal/parser"
	"github.com/appengine-ltd/age-of-polders/internal/terrain"
	legacyui "github.com/appengine-ltd/age-of-polders/internal/ui"
	uitheme "github.com/appengine-ltd/age-of-polders/internal/ui/theme"
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

const maxRunInput = 120

type gameUI struct {
	cfg AppConfig

	width  int32
	height int32
	quit   bool

	console  *legacyui.Console
	queue    *intentQueue
	runInput string
	status   string

	// zoom is the number of cells across the wider side of the map view;
	// zero shows the whole grid.
	zoom int
	view mapView
}

func (a *App) Run() error {
	run, err := game.NewRunState(a.cfg.Run, a.cfg.Logger)
	if err != nil {
		return err
	}
	ui := newGameUI(a.cfg, legacyui.NewConsole(run, a.cfg.SnapshotDir))
	return ui.Run()
}

func newGameUI(cfg AppConfig, console *legacyui.Console) *gameUI {
	return &gameUI{
		cfg:     cfg,
		width:   1366,
		height:  768,
		console: console,
		queue:   newIntentQueue(64),
		status:  "F1-F5 pick a tool, click a tile to apply it. Type help for commands.",
	}
}

func (ui *gameUI) run() *game.RunState {
	return ui.console.Run()
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Age of Polders")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()

	for !ui.quit && !rl.WindowShouldClose() {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update()

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	shutdownTypography()
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update() {
	layout := runScreenLayout(ui.width, ui.height)
	run := ui.run()
	if view, ok := mapViewFor(run.Grid, mapArea(layout.MapRect), run.Selected, ui.zoom); ok {
		ui.view = view
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.runInput = ""
		ui.status = ""
	}

	if HotkeysEnabled(ui) && pollHotkeys(ui.queue) {
		// Drop the characters the hotkey produced.
		for rl.GetCharPressed() > 0 {
		}
	} else {
		captureTextInput(&ui.runInput, maxRunInput)
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		if strings.TrimSpace(ui.runInput) == "" && ui.console.Pending() == nil {
			ui.queue.EnqueueIntent(commandIntent("apply"))
		} else {
			ui.submitRunInput()
		}
	}

	ui.updateMouse(layout)
	ui.processIntentQueue()
}

func (ui *gameUI) updateMouse(layout runLayout) {
	mouse := rl.GetMousePosition()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && rl.CheckCollisionPointRec(mouse, layout.MapRect) {
		grid := ui.run().Grid
		ui.zoom = nextZoom(ui.zoom, max(grid.Width(), grid.Height()), wheel > 0)
	}

	left := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	right := rl.IsMouseButtonPressed(rl.MouseButtonRight)
	if !left && !right {
		return
	}
	for i, rect := range toolButtonRects(layout.SideRect) {
		if left && rl.CheckCollisionPointRec(mouse, rect) {
			ui.queue.EnqueueIntent(commandIntent("use", string(game.Commands()[i])))
			return
		}
	}
	pos, ok := ui.view.cellAt(mouse.X, mouse.Y)
	if !ok {
		return
	}
	ui.clickCell(pos, left)
}

// clickCell selects pos and, for a primary click, applies the armed tool.
func (ui *gameUI) clickCell(pos terrain.Coordinate, apply bool) {
	ui.queue.EnqueueIntent(commandIntent("select", fmt.Sprint(pos.X), fmt.Sprint(pos.Y)))
	if apply {
		ui.queue.EnqueueIntent(commandIntent("apply"))
	}
}

func commandIntent(verb string, args ...string) parser.Intent {
	return parser.Intent{Kind: parser.Command, Verb: verb, Args: args, Confidence: 1}
}

// nextZoom steps the view a quarter in or out. Zooming out past the whole
// grid returns to the full view.
func nextZoom(zoom, full int, in bool) int {
	if full <= 0 {
		return 0
	}
	if zoom <= 0 || zoom > full {
		zoom = full
	}
	if in {
		return max(minViewCells, zoom*3/4)
	}
	zoom = zoom*4/3 + 1
	if zoom >= full {
		return 0
	}
	return zoom
}

func (ui *gameUI) submitRunInput() {
	raw := strings.TrimSpace(ui.runInput)
	ui.runInput = ""
	if raw == "" {
		ui.status = "Enter a command."
		return
	}
	ui.queue.EnqueueIntent(ui.console.Parse(raw))
}

func (ui *gameUI) processIntentQueue() {
	for {
		intent, ok := ui.queue.Dequeue()
		if !ok {
			return
		}
		res := ui.console.Execute(intent)
		if res.Quit {
			ui.quit = true
			return
		}
		ui.status = ""
	}
}

func (ui *gameUI) draw() {
	run := ui.run()
	layout := runScreenLayout(ui.width, ui.height)

	uitheme.DrawPanel(layout.TopRect, uitheme.PanelLifted)
	title := "AGE OF POLDERS"
	drawText(title, int32(layout.TopRect.X+spaceM), int32(layout.TopRect.Y+spaceS), typeScale.Title, colorText)
	info := fmt.Sprintf("Turn %d   Sea level %d   Tool %s   Layout %s   Seed %d", run.Turn, run.SeaLevel, run.ActiveCommand, run.Config.Layout, run.Config.Seed)
	infoX := int32(layout.TopRect.X+spaceM) + measureText(title, typeScale.Title) + int32(spaceL)
	drawText(info, infoX, int32(layout.TopRect.Y+spaceS)+6, typeScale.Body, colorDim)
	if ui.cfg.Version != "" {
		DrawHintText("v"+ui.cfg.Version, infoX, int32(layout.TopRect.Y+spaceS)+6+textLineHeight(typeScale.Body))
	}

	DrawPanel(layout.MapRect, "Map", false)
	drawGridRegion(run.Grid, ui.view, run.Selected)
	DrawHintText(gridSummary(run.Grid)+"   wheel to zoom", int32(layout.MapRect.X+spaceM), int32(layout.MapRect.Y+layout.MapRect.Height)-int32(typeScale.Small)-4)

	ui.drawSidePanel(layout.SideRect)

	DrawPanel(layout.LogRect, "", false)
	drawRunMessageLog(layout.LogRect, ui.console.Messages())

	placeholder := "Type a command (flood 3 4, raise the sea, move north 2) or press Enter to apply"
	if q := ui.console.Pending(); q != nil {
		placeholder = "Answer with an option number or a new command"
	}
	DrawInputField(layout.InputRect, ui.runInput, placeholder, true)
	if strings.TrimSpace(ui.status) != "" {
		statusW := measureText(ui.status, typeScale.Small)
		drawText(ui.status, int32(layout.InputRect.X+layout.InputRect.Width-spaceM)-statusW, int32(layout.InputRect.Y-spaceS)-typeScale.Small, typeScale.Small, colorWarn)
	}
}

func toolButtonRects(side rl.Rectangle) []rl.Rectangle {
	tools := game.Commands()
	out := make([]rl.Rectangle, 0, len(tools))
	y := side.Y + 44
	for range tools {
		out = append(out, rl.NewRectangle(side.X+spaceM, y, side.Width-spaceM*2, uitheme.ButtonHeight))
		y += uitheme.ButtonHeight + spaceXS
	}
	return out
}

func (ui *gameUI) drawSidePanel(rect rl.Rectangle) {
	run := ui.run()
	DrawPanel(rect, "Tools", false)

	rects := toolButtonRects(rect)
	for i, tool := range game.Commands() {
		DrawToolButton(rects[i], tool == run.ActiveCommand, toolHotkey(string(tool)), string(tool))
	}

	x := int32(rect.X + spaceM)
	y := int32(rects[len(rects)-1].Y+rects[len(rects)-1].Height) + int32(spaceM)
	if report, ok := run.Inspect(run.Selected.X, run.Selected.Y); ok {
		drawText(fmt.Sprintf("Tile (%d,%d)", report.X, report.Y), x, y, typeScale.Body, colorAccent)
		y += textLineHeight(typeScale.Body)
		DrawLabelValue("Type", report.Tile.String(), x, y, colorText)
		y += textLineHeight(typeScale.Small)
		DrawLabelValue("Height", fmt.Sprint(report.Height), x, y, colorText)
		y += textLineHeight(typeScale.Small)
		DrawLabelValue("Water", fmt.Sprint(report.Water), x, y, colorText)
		y += textLineHeight(typeScale.Small)
		DrawLabelValue("Level", fmt.Sprint(report.Level), x, y, colorText)
		y += textLineHeight(typeScale.Small)
		open := "no"
		if report.Connected {
			open = "yes"
		}
		DrawLabelValue("Open sea", open, x, y, AppTheme.AccentWater)
		y += textLineHeight(typeScale.Small) + int32(spaceS)
	}

	if y+200 < int32(rect.Y+rect.Height) {
		y = drawMapLegend(x, y)
	}
	DrawHintText("PgUp/PgDn sea  Shift+R river  Shift+P snapshot", x, int32(rect.Y+rect.Height)-int32(typeScale.Small)-6)
}

func mapArea(rect rl.Rectangle) rl.Rectangle {
	return rl.NewRectangle(rect.X+10, rect.Y+44, rect.Width-20, rect.Height-44-float32(typeScale.Small)-12)
}

func wrapText(text string, size int32, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, 8)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measureText(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)
	return lines
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}

func clampInt(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
