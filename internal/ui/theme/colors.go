package theme

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

// Harbour palette for the window chrome around the map.
var (
	BG            = rl.NewColor(0x10, 0x17, 0x1E, 255) // #10171E
	Panel         = rl.NewColor(0x18, 0x22, 0x2B, 255) // #18222B
	PanelRaised   = rl.NewColor(0x1F, 0x2C, 0x37, 255) // #1F2C37
	Border        = rl.NewColor(0x2C, 0x3D, 0x4A, 255) // #2C3D4A
	Divider       = rl.NewColor(0x24, 0x33, 0x3F, 255) // #24333F
	TextPrimary   = rl.NewColor(0xE6, 0xE4, 0xDC, 255) // #E6E4DC
	TextSecondary = rl.NewColor(0xA3, 0xB0, 0xB8, 255) // #A3B0B8
	TextMuted     = rl.NewColor(0x73, 0x82, 0x8C, 255) // #73828C
	AccentClay    = rl.NewColor(0xC8, 0x7A, 0x3C, 255) // #C87A3C
	AccentTide    = rl.NewColor(0x3A, 0x7C, 0xA5, 255) // #3A7CA5
	WarningAmber  = rl.NewColor(0xC1, 0x8B, 0x2F, 255) // #C18B2F
	Danger        = rl.NewColor(0xB8, 0x4A, 0x3A, 255) // #B84A3A
	Selection     = rl.NewColor(0xFF, 0x5A, 0x4E, 255) // #FF5A4E
	DisabledPanel = rl.NewColor(0x14, 0x1B, 0x22, 255)
	DisabledText  = TextMuted
)

// Terrain converts a tile palette entry to an opaque raylib color.
func Terrain(c terrain.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// CellColors returns the glyph and background colors of a cell.
func CellColors(cell terrain.Cell) (fg, bg rl.Color) {
	f, b := cell.Colors()
	return Terrain(f), Terrain(b)
}
