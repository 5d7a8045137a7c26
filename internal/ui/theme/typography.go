package theme

import rl "github.com/gen2brain/raylib-go/raylib"

type Typography struct {
	Title      int32
	Header     int32
	Body       int32
	Small      int32
	Log        int32
	LineFactor float32
}

var Type = Typography{
	Title:      30,
	Header:     21,
	Body:       18,
	Small:      15,
	Log:        16,
	LineFactor: 1.4,
}

// TextDrawFunc renders text with caller-provided font handling.
type TextDrawFunc func(text string, x, y, fontSize int32, clr rl.Color)

// TextMeasureFunc reports text width in pixels for the active font.
type TextMeasureFunc func(text string, fontSize int32) int32

var (
	textDrawFn TextDrawFunc = func(text string, x, y, fontSize int32, clr rl.Color) {
		rl.DrawText(text, x, y, fontSize, clr)
	}
	textMeasureFn TextMeasureFunc = func(text string, fontSize int32) int32 {
		return rl.MeasureText(text, fontSize)
	}
)

// SetTextRenderer routes component text through the window's loaded font.
func SetTextRenderer(draw TextDrawFunc, measure TextMeasureFunc) {
	if draw != nil {
		textDrawFn = draw
	}
	if measure != nil {
		textMeasureFn = measure
	}
}

func DrawText(text string, x, y, fontSize int32, clr rl.Color) {
	textDrawFn(text, x, y, fontSize, clr)
}

func MeasureText(text string, fontSize int32) int32 {
	return textMeasureFn(text, fontSize)
}
