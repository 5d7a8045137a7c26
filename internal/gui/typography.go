package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/age-of-polders/internal/ui/theme"
)

type typographyScale struct {
	Title  int32
	Header int32
	Body   int32
	Small  int32
	Log    int32
}

type typographyState struct {
	base       rl.Font
	mono       rl.Font
	ownsBase   bool
	ownsMono   bool
	lineFactor float32
}

var (
	typeScale = typographyScale{
		Title:  uitheme.Type.Title,
		Header: uitheme.Type.Header,
		Body:   uitheme.Type.Body,
		Small:  uitheme.Type.Small,
		Log:    uitheme.Type.Log,
	}
	uiType = typographyState{lineFactor: uitheme.Type.LineFactor}
)

func initTypography() {
	uiType.base = rl.GetFontDefault()
	uiType.mono = uiType.base

	if f, ok := loadFontFromCandidates([]string{
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
	}, 36); ok {
		uiType.base = f
		uiType.ownsBase = true
	}
	// The message log and tile glyphs read better in a fixed-width face.
	if f, ok := loadFontFromCandidates([]string{
		filepath.Join("assets", "fonts", "JetBrainsMono-Regular.ttf"),
		filepath.Join("assets", "fonts", "IBMPlexMono-Regular.ttf"),
	}, 32); ok {
		uiType.mono = f
		uiType.ownsMono = true
	} else {
		uiType.mono = uiType.base
	}

	rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
	uitheme.SetTextRenderer(drawText, measureText)
}

func shutdownTypography() {
	if uiType.ownsMono && uiType.mono.Texture.ID != 0 {
		rl.UnloadFont(uiType.mono)
	}
	if uiType.ownsBase && uiType.base.Texture.ID != 0 {
		rl.UnloadFont(uiType.base)
	}
	uiType = typographyState{lineFactor: uitheme.Type.LineFactor}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	drawTextWith(uiType.base, text, x, y, fontSize, clr)
}

func drawMonoText(text string, x, y, fontSize int32, clr rl.Color) {
	drawTextWith(uiType.mono, text, x, y, fontSize, clr)
}

func drawTextWith(font rl.Font, text string, x, y, fontSize int32, clr rl.Color) {
	if font.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiType.base.Texture.ID == 0 {
		return rl.MeasureText(text, fontSize)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.base, text, float32(fontSize), 1).X)))
}

func textLineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * float64(uiType.lineFactor)))
}
