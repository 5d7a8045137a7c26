package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
	uitheme "github.com/appengine-ltd/age-of-polders/internal/ui/theme"
)

const (
	runLayoutPadding = 16
	runLayoutGap     = 10
	sidePanelWidth   = 300
	minViewCells     = 8
	glyphMinCell     = 10
)

type runLayout struct {
	Outer     rl.Rectangle
	TopRect   rl.Rectangle
	MapRect   rl.Rectangle
	SideRect  rl.Rectangle
	LogRect   rl.Rectangle
	InputRect rl.Rectangle
}

func runScreenLayout(width, height int32) runLayout {
	outer := rl.NewRectangle(runLayoutPadding, runLayoutPadding, float32(width-runLayoutPadding*2), float32(height-runLayoutPadding*2))
	topH := float32(64)
	logH := float32(132)
	inputH := float32(uitheme.InputHeight)
	if outer.Height < 560 {
		logH = 96
	}
	gap := float32(runLayoutGap)
	middleTop := outer.Y + topH + gap
	inputTop := outer.Y + outer.Height - inputH
	logTop := inputTop - gap - logH
	if logTop-middleTop-gap < 160 {
		logTop = middleTop + gap + 160
		inputTop = logTop + logH + gap
	}
	sideW := float32(sidePanelWidth)
	if outer.Width < 900 {
		sideW = outer.Width * 0.3
	}
	mapW := outer.Width - sideW - gap
	middleH := logTop - middleTop - gap
	return runLayout{
		Outer:     outer,
		TopRect:   rl.NewRectangle(outer.X, outer.Y, outer.Width, topH),
		MapRect:   rl.NewRectangle(outer.X, middleTop, mapW, middleH),
		SideRect:  rl.NewRectangle(outer.X+mapW+gap, middleTop, sideW, middleH),
		LogRect:   rl.NewRectangle(outer.X, logTop, outer.Width, logH),
		InputRect: rl.NewRectangle(outer.X, inputTop, outer.Width, inputH),
	}
}

func drawRunMessageLog(rect rl.Rectangle, messages []string) {
	maxWidth := int32(rect.Width - spaceM*2)
	lineHeight := textLineHeight(typeScale.Log)
	maxLines := max(int((rect.Height-spaceS*2)/float32(lineHeight)), 1)
	flattened := make([]string, 0, maxLines)
	for i := len(messages) - 1; i >= 0 && len(flattened) < maxLines; i-- {
		lines := wrapText(messages[i], typeScale.Log, maxWidth)
		for j := len(lines) - 1; j >= 0 && len(flattened) < maxLines; j-- {
			flattened = append(flattened, lines[j])
		}
	}
	y := int32(rect.Y+rect.Height) - int32(spaceS)
	for _, line := range flattened {
		y -= lineHeight
		if y < int32(rect.Y+spaceXS) {
			break
		}
		drawMonoText(line, int32(rect.X+spaceM), y, typeScale.Log, colorText)
	}
}

type squareGridGeometry struct {
	OriginX  float32
	OriginY  float32
	CellSize float32
	Cols     int
	Rows     int
	DrawRect rl.Rectangle
}

func computeSquareGridGeometry(area rl.Rectangle, cols, rows int) (squareGridGeometry, bool) {
	if cols <= 0 || rows <= 0 || area.Width <= 1 || area.Height <= 1 {
		return squareGridGeometry{}, false
	}
	cellSize := float32(math.Min(float64(area.Width/float32(cols)), float64(area.Height/float32(rows))))
	if cellSize < 1 {
		cellSize = 1
	}
	drawWidth := cellSize * float32(cols)
	drawHeight := cellSize * float32(rows)
	originX := area.X + (area.Width-drawWidth)/2
	originY := area.Y + (area.Height-drawHeight)/2
	return squareGridGeometry{
		OriginX:  originX,
		OriginY:  originY,
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		DrawRect: rl.NewRectangle(originX, originY, drawWidth, drawHeight),
	}, true
}

// pick maps a screen point to a cell offset inside the geometry.
func (g squareGridGeometry) pick(px, py float32) (int, int, bool) {
	if g.CellSize <= 0 || px < g.OriginX || py < g.OriginY {
		return 0, 0, false
	}
	x := int((px - g.OriginX) / g.CellSize)
	y := int((py - g.OriginY) / g.CellSize)
	if x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
		return 0, 0, false
	}
	return x, y, true
}

// computeMapWindow fits a view of up to viewW x viewH cells around the
// selection, clamped to the grid.
func computeMapWindow(gridW, gridH, selX, selY, viewW, viewH int) (startX, startY, cols, rows int) {
	if gridW <= 0 || gridH <= 0 {
		return 0, 0, 0, 0
	}
	cols = clampInt(viewW, min(minViewCells, gridW), gridW)
	rows = clampInt(viewH, min(minViewCells, gridH), gridH)
	startX = clampInt(selX-cols/2, 0, max(0, gridW-cols))
	startY = clampInt(selY-rows/2, 0, max(0, gridH-rows))
	return startX, startY, cols, rows
}

type mapView struct {
	StartX int
	StartY int
	Geo    squareGridGeometry
}

func (v mapView) cellAt(px, py float32) (terrain.Coordinate, bool) {
	x, y, ok := v.Geo.pick(px, py)
	if !ok {
		return terrain.Coordinate{}, false
	}
	return terrain.Coordinate{X: v.StartX + x, Y: v.StartY + y}, true
}

// mapViewFor lays the zoomed window of the grid into area. zoom is the
// number of cells across the wider side; zero shows the whole grid.
func mapViewFor(grid *terrain.Grid, area rl.Rectangle, sel terrain.Coordinate, zoom int) (mapView, bool) {
	if grid == nil {
		return mapView{}, false
	}
	w, h := grid.Width(), grid.Height()
	viewW, viewH := w, h
	if zoom > 0 {
		viewW, viewH = zoom, zoom
		if area.Height > 0 && area.Width > area.Height {
			viewH = max(1, int(float32(zoom)*area.Height/area.Width))
		} else if area.Width > 0 {
			viewW = max(1, int(float32(zoom)*area.Width/area.Height))
		}
	}
	startX, startY, cols, rows := computeMapWindow(w, h, sel.X, sel.Y, viewW, viewH)
	geo, ok := computeSquareGridGeometry(area, cols, rows)
	if !ok {
		return mapView{}, false
	}
	return mapView{StartX: startX, StartY: startY, Geo: geo}, true
}

func drawGridRegion(grid *terrain.Grid, view mapView, sel terrain.Coordinate) {
	geo := view.Geo
	showGlyphs := geo.CellSize >= glyphMinCell
	glyphSize := int32(geo.CellSize * 0.8)
	for y := 0; y < geo.Rows; y++ {
		for x := 0; x < geo.Cols; x++ {
			cell, ok := grid.Cell(view.StartX+x, view.StartY+y)
			if !ok {
				continue
			}
			fg, bg := uitheme.CellColors(cell)
			x0 := int32(geo.OriginX + float32(x)*geo.CellSize)
			y0 := int32(geo.OriginY + float32(y)*geo.CellSize)
			x1 := int32(geo.OriginX + float32(x+1)*geo.CellSize)
			y1 := int32(geo.OriginY + float32(y+1)*geo.CellSize)
			rl.DrawRectangle(x0, y0, max(1, x1-x0), max(1, y1-y0), bg)
			if glyph := cell.Glyph(); showGlyphs && glyph != ' ' {
				s := string(glyph)
				gx := x0 + (x1-x0-rl.MeasureText(s, glyphSize))/2
				gy := y0 + (y1-y0-glyphSize)/2
				drawMonoText(s, gx, gy, glyphSize, fg)
			}
		}
	}
	rl.DrawRectangleLinesEx(geo.DrawRect, 1.0, rl.Fade(colorBorder, 0.8))

	if sel.X < view.StartX || sel.X >= view.StartX+geo.Cols || sel.Y < view.StartY || sel.Y >= view.StartY+geo.Rows {
		return
	}
	outline := rl.NewRectangle(
		geo.OriginX+float32(sel.X-view.StartX)*geo.CellSize,
		geo.OriginY+float32(sel.Y-view.StartY)*geo.CellSize,
		geo.CellSize, geo.CellSize,
	)
	rl.DrawRectangleLinesEx(outline, max(1, geo.CellSize*0.15), AppTheme.Selection)
}

type legendRow struct {
	Label string
	Color rl.Color
}

func legendCell(height, water int, dike bool) terrain.Cell {
	c := terrain.NewCell(height)
	c.AddWater(water)
	if dike {
		c.SetImprovement(terrain.ImprovementDike)
	}
	return c
}

func mapLegend() []legendRow {
	rows := []struct {
		label string
		cell  terrain.Cell
	}{
		{"Sea", legendCell(terrain.SeaLevel-1, 1, false)},
		{"Shallows", legendCell(terrain.SeaLevel, 1, false)},
		{"Flooded land", legendCell(terrain.SeaLevel+1, 1, false)},
		{"Low land", legendCell(terrain.SeaLevel, 0, false)},
		{"Land", legendCell(terrain.SeaLevel+1, 0, false)},
		{"High land", legendCell(terrain.MaxHeight, 0, false)},
		{"Dike", legendCell(terrain.SeaLevel+1, 0, true)},
	}
	out := make([]legendRow, 0, len(rows))
	for _, r := range rows {
		_, bg := uitheme.CellColors(r.cell)
		out = append(out, legendRow{Label: r.label, Color: bg})
	}
	return out
}

func drawMapLegend(x, y int32) int32 {
	drawText("Legend", x, y, typeScale.Body, colorAccent)
	y += textLineHeight(typeScale.Body)
	for _, row := range mapLegend() {
		uitheme.DrawSwatch(x, y, row.Color, row.Label)
		y += 20
	}
	return y
}

func gridSummary(grid *terrain.Grid) string {
	return fmt.Sprintf("Grid %dx%d  water %d  open %d", grid.Width(), grid.Height(), grid.TotalWater(), len(grid.ConnectedToSea()))
}
