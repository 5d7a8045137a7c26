package ui

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

const DefaultSnapshotCellSize = 12

type SnapshotOptions struct {
	CellSize int
	Selected *terrain.Coordinate
}

// RenderSnapshot paints the grid one square per cell using the tile
// palette. Water gets a wave stroke and dikes a hatch once cells are large
// enough to show them.
func RenderSnapshot(grid *terrain.Grid, opts SnapshotOptions) image.Image {
	cs := max(opts.CellSize, 1)
	w, h := grid.Width(), grid.Height()
	dc := gg.NewContext(w*cs, h*cs)

	size := float64(cs)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell, _ := grid.Cell(x, y)
			fg, bg := cell.Colors()
			x0, y0 := float64(x*cs), float64(y*cs)

			dc.SetRGB255(int(bg.R), int(bg.G), int(bg.B))
			dc.DrawRectangle(x0, y0, size, size)
			dc.Fill()

			if cs < 4 {
				continue
			}
			dc.SetRGB255(int(fg.R), int(fg.G), int(fg.B))
			dc.SetLineWidth(math.Max(1, size/10))
			switch cell.TileType() {
			case terrain.TileWater:
				drawWave(dc, x0, y0, size)
			case terrain.TileDike:
				drawHatch(dc, x0, y0, size)
			}
		}
	}

	if opts.Selected != nil && grid.InBounds(opts.Selected.X, opts.Selected.Y) {
		dc.SetRGB255(255, 90, 78)
		dc.SetLineWidth(math.Max(1, size/6))
		dc.DrawRectangle(float64(opts.Selected.X*cs), float64(opts.Selected.Y*cs), size, size)
		dc.Stroke()
	}
	return dc.Image()
}

func drawWave(dc *gg.Context, x0, y0, size float64) {
	mid := y0 + size/2
	amp := size / 6
	steps := 8
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := x0 + size*0.15 + t*size*0.7
		py := mid + math.Sin(t*2*math.Pi)*amp
		if i == 0 {
			dc.MoveTo(px, py)
			continue
		}
		dc.LineTo(px, py)
	}
	dc.Stroke()
}

func drawHatch(dc *gg.Context, x0, y0, size float64) {
	for _, f := range []float64{0.25, 0.5, 0.75} {
		dc.DrawLine(x0, y0+size*f, x0+size*f, y0)
		dc.DrawLine(x0+size*f, y0+size, x0+size, y0+size*f)
	}
	dc.Stroke()
}

// WriteSnapshot renders the grid and saves it as a PNG at path.
func WriteSnapshot(grid *terrain.Grid, path string, opts SnapshotOptions) error {
	return gg.SavePNG(path, RenderSnapshot(grid, opts))
}
