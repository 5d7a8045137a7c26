package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(6)
	PaddingS  = float32(10)
	PaddingM  = float32(16)
	PaddingL  = float32(22)

	CornerRadius   = float32(0.08)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	ButtonHeight     = float32(40)
	InputHeight      = float32(44)
	SwatchSize       = int32(14)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelMuted
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border
	strokeWidth := BorderWidth

	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = mix(Border, AccentTide, 0.35)
		strokeWidth = 1.4
	case PanelMuted:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
}

// DrawToolButton draws a toolbar button with a hotkey hint on the left and
// the label centred.
func DrawToolButton(rect rl.Rectangle, state ButtonState, hotkey, label string) {
	fill := Panel
	stroke := Border
	text := TextPrimary
	strokeWidth := BorderWidth

	switch state {
	case ButtonSelected:
		fill = PanelRaised
		stroke = AccentClay
		strokeWidth = BorderWidthFocus
	case ButtonDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		text = DisabledText
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	size := Type.Body
	textY := int32(rect.Y + (rect.Height-float32(size))/2 - 1)
	if hotkey != "" {
		DrawText(hotkey, int32(rect.X+PaddingXS), textY+2, Type.Small, TextMuted)
	}
	if label == "" {
		return
	}
	labelW := MeasureText(label, size)
	DrawText(label, int32(rect.X+(rect.Width-float32(labelW))/2), textY, size, text)
}

// DrawInput renders the command line. The placeholder shows only while the
// buffer is empty.
func DrawInput(rect rl.Rectangle, text, placeholder string, focused bool) {
	stroke := Border
	if focused {
		stroke = AccentClay
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, PanelRaised)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, BorderWidth, stroke)

	y := int32(rect.Y + (rect.Height-float32(Type.Body))/2)
	x := int32(rect.X + PaddingM)
	if text == "" {
		DrawText(placeholder, x, y, Type.Body, TextMuted)
		return
	}
	line := "> " + text
	DrawText(line, x, y, Type.Body, TextPrimary)
	if focused {
		caretX := float32(x + MeasureText(line, Type.Body) + 2)
		drawLine(caretX, float32(y), caretX, float32(y+Type.Body), 2.0, AccentClay)
	}
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	DrawText(text, x, y, Type.Header, TextPrimary)
	lineW := max(int32(float32(MeasureText(text, Type.Header))*0.6), 44)
	drawLine(float32(x), float32(y+Type.Header+6), float32(x+lineW), float32(y+Type.Header+6), 2.0, AccentTide)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(Divider, 0.95))
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	DrawText(text, x, y, Type.Small, TextMuted)
}

// DrawSwatch draws one legend row: a filled square and its label.
func DrawSwatch(x, y int32, clr rl.Color, label string) {
	rl.DrawRectangle(x, y+2, SwatchSize, SwatchSize, clr)
	rl.DrawRectangleLines(x, y+2, SwatchSize, SwatchSize, rl.Fade(Border, 0.8))
	DrawText(label, x+SwatchSize+6, y, Type.Small, TextPrimary)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	t = min(max(t, 0), 1)
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
