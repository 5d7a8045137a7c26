package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/age-of-polders/internal/ui/theme"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	Divider       rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	AccentWater   rl.Color
	Selection     rl.Color
	Warning       rl.Color
	Danger        rl.Color
}

const (
	spaceXS = uitheme.PaddingXS
	spaceS  = uitheme.PaddingS
	spaceM  = uitheme.PaddingM
	spaceL  = uitheme.PaddingL
)

var AppTheme = Theme{
	Background:    uitheme.BG,
	Panel:         uitheme.Panel,
	PanelRaised:   uitheme.PanelRaised,
	Border:        uitheme.Border,
	Divider:       uitheme.Divider,
	TextPrimary:   uitheme.TextPrimary,
	TextSecondary: uitheme.TextSecondary,
	TextMuted:     uitheme.TextMuted,
	Accent:        uitheme.AccentClay,
	AccentWater:   uitheme.AccentTide,
	Selection:     uitheme.Selection,
	Warning:       uitheme.WarningAmber,
	Danger:        uitheme.Danger,
}

// Short aliases used by the draw code.
var (
	colorBG     = AppTheme.Background
	colorBorder = AppTheme.Border
	colorText   = AppTheme.TextPrimary
	colorDim    = AppTheme.TextSecondary
	colorMuted  = AppTheme.TextMuted
	colorAccent = AppTheme.Accent
	colorWarn   = AppTheme.Warning
)

// DrawPanel draws a themed panel. A non-empty title gets a header and a
// divider across the top of the panel.
func DrawPanel(rect rl.Rectangle, title string, focused bool) {
	variant := uitheme.PanelStandard
	if focused {
		variant = uitheme.PanelLifted
	}
	uitheme.DrawPanel(rect, variant)
	if title != "" {
		uitheme.DrawHeader(title, int32(rect.X+spaceM), int32(rect.Y+spaceS))
		dividerY := rect.Y + spaceS + float32(typeScale.Header) + 8
		uitheme.DrawDivider(rect.X+spaceM, dividerY, rect.X+rect.Width-spaceM, dividerY)
	}
}

func DrawToolButton(rect rl.Rectangle, selected bool, hotkey, label string) {
	state := uitheme.ButtonNormal
	if selected {
		state = uitheme.ButtonSelected
	}
	uitheme.DrawToolButton(rect, state, hotkey, label)
}

func DrawInputField(rect rl.Rectangle, text, placeholder string, focused bool) {
	uitheme.DrawInput(rect, text, placeholder, focused)
}

func DrawHintText(text string, x, y int32) {
	uitheme.DrawHintText(text, x, y)
}

func DrawLabelValue(label, value string, x, y int32, valueColor rl.Color) {
	drawText(label, x, y, typeScale.Small, AppTheme.TextSecondary)
	drawText(value, x+110, y, typeScale.Small, valueColor)
}
