package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

type mapWindow struct {
	StartX int
	StartY int
	Cols   int
	Rows   int
}

// computeMapWindow fits a cols x rows view over the grid, centred on the
// selection and clamped to the grid edges.
func computeMapWindow(gridW, gridH, selX, selY, cols, rows int) mapWindow {
	if gridW <= 0 || gridH <= 0 {
		return mapWindow{}
	}
	cols = clampInt(cols, 1, gridW)
	rows = clampInt(rows, 1, gridH)
	return mapWindow{
		StartX: clampInt(selX-cols/2, 0, gridW-cols),
		StartY: clampInt(selY-rows/2, 0, gridH-rows),
		Cols:   cols,
		Rows:   rows,
	}
}

func (w mapWindow) contains(x, y int) bool {
	return x >= w.StartX && x < w.StartX+w.Cols && y >= w.StartY && y < w.StartY+w.Rows
}

type cellStyles struct {
	cache map[[2]terrain.RGB]lipgloss.Style
}

func newCellStyles() *cellStyles {
	return &cellStyles{cache: make(map[[2]terrain.RGB]lipgloss.Style)}
}

func (s *cellStyles) style(fg, bg terrain.RGB) lipgloss.Style {
	key := [2]terrain.RGB{fg, bg}
	if st, ok := s.cache[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	s.cache[key] = st
	return st
}

var cursorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#FF5A4E")).
	Bold(true)

// renderMap draws one terminal cell per tile inside the window. The selected
// tile is drawn in the cursor style.
func renderMap(grid *terrain.Grid, win mapWindow, selected terrain.Coordinate, styles *cellStyles) string {
	var b strings.Builder
	for y := win.StartY; y < win.StartY+win.Rows; y++ {
		if y > win.StartY {
			b.WriteByte('\n')
		}
		for x := win.StartX; x < win.StartX+win.Cols; x++ {
			cell, ok := grid.Cell(x, y)
			if !ok {
				b.WriteByte(' ')
				continue
			}
			glyph := string(cell.Glyph())
			if selected.X == x && selected.Y == y {
				if glyph == " " {
					glyph = "+"
				}
				b.WriteString(cursorStyle.Render(glyph))
				continue
			}
			fg, bg := cell.Colors()
			b.WriteString(styles.style(fg, bg).Render(glyph))
		}
	}
	return b.String()
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
