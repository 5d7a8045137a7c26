package terrain

import "fmt"

// RGB is a display color. The simulation only picks which entry applies.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

var (
	White       = RGB{R: 255, G: 255, B: 255}
	DarkBlue    = RGB{R: 0, G: 0, B: 139}
	BlueViolet  = RGB{R: 138, G: 43, B: 226}
	Blue        = RGB{R: 0, G: 0, B: 255}
	LightBlue   = RGB{R: 173, G: 216, B: 230}
	LightGreen  = RGB{R: 144, G: 238, B: 144}
	Green       = RGB{R: 0, G: 255, B: 0}
	DarkGreen   = RGB{R: 0, G: 100, B: 0}
	GreenYellow = RGB{R: 173, G: 255, B: 47}
	SaddleBrown = RGB{R: 139, G: 69, B: 19}
	Burlywood   = RGB{R: 222, G: 184, B: 135}
)

func (c Cell) Glyph() rune {
	switch c.TileType() {
	case TileWater:
		return '~'
	case TileDike:
		return '#'
	default:
		return ' '
	}
}

func (c Cell) Background() RGB {
	switch c.TileType() {
	case TileWater:
		switch c.height {
		case 1:
			return DarkBlue
		case 2:
			return BlueViolet
		case 3:
			return Blue
		default:
			return LightBlue
		}
	case TileDike:
		return SaddleBrown
	default:
		switch c.height {
		case 4:
			return LightGreen
		case 5:
			return Green
		case 6:
			return DarkGreen
		default:
			return GreenYellow
		}
	}
}

func (c Cell) Foreground() RGB {
	switch c.Background() {
	case LightGreen, Green, GreenYellow:
		return DarkGreen
	case DarkGreen:
		return LightGreen
	case SaddleBrown:
		return Burlywood
	default:
		return White
	}
}

// Colors returns the (foreground, background) pair for the cell.
func (c Cell) Colors() (RGB, RGB) {
	return c.Foreground(), c.Background()
}
