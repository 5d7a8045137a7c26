package terrain

import (
	"errors"
	"log/slog"
	"slices"
)

var (
	ErrInvalidSize   = errors.New("terrain: grid width and height must be positive")
	ErrElevationSize = errors.New("terrain: elevation field does not match grid size")
	ErrRiverSource   = errors.New("terrain: river source out of bounds")
)

// SeaBoundary is the open-water cell every sea-level sweep starts from.
var SeaBoundary = Coordinate{X: 0, Y: 0}

// Grid owns the cells of one map for a whole session.
type Grid struct {
	width       int
	height      int
	cells       []Cell
	riverSource Coordinate
	connected   []int

	logger      *slog.Logger
	strictLevel bool
}

type Option func(*Grid)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Grid) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithStrictLevelConnectivity makes the sea-level sweep leave cells that are
// already exactly at the target out of the connected set, even when wet.
func WithStrictLevelConnectivity() Option {
	return func(g *Grid) {
		g.strictLevel = true
	}
}

// New builds a dry grid from a row-major elevation field. Heights outside
// [SeaBottom, MaxHeight] are clamped.
func New(width, height int, elevation []int, riverSource Coordinate, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if len(elevation) != width*height {
		return nil, ErrElevationSize
	}
	g := &Grid{
		width:       width,
		height:      height,
		cells:       make([]Cell, width*height),
		riverSource: riverSource,
		logger:      slog.Default(),
	}
	if !g.InBounds(riverSource.X, riverSource.Y) {
		return nil, ErrRiverSource
	}
	for i, h := range elevation {
		g.cells[i] = NewCell(h)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Grid) Width() int              { return g.width }
func (g *Grid) Height() int             { return g.height }
func (g *Grid) RiverSource() Coordinate { return g.riverSource }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its row-major index.
func (g *Grid) Index(x, y int) (int, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return y*g.width + x, true
}

func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.width, Y: idx / g.width}
}

func (g *Grid) Cell(x, y int) (Cell, bool) {
	idx, ok := g.Index(x, y)
	if !ok {
		return Cell{}, false
	}
	return g.cells[idx], true
}

func (g *Grid) WaterLevel(x, y int) (int, bool) {
	c, ok := g.Cell(x, y)
	return c.WaterLevel(), ok
}

func (g *Grid) HeightAt(x, y int) (int, bool) {
	c, ok := g.Cell(x, y)
	return c.Height(), ok
}

func (g *Grid) WaterAt(x, y int) (int, bool) {
	c, ok := g.Cell(x, y)
	return c.Water(), ok
}

func (g *Grid) TileType(x, y int) (TileType, bool) {
	c, ok := g.Cell(x, y)
	return c.TileType(), ok
}

// Colors returns the display (foreground, background) pair of a cell.
func (g *Grid) Colors(x, y int) (RGB, RGB, bool) {
	c, ok := g.Cell(x, y)
	if !ok {
		return RGB{}, RGB{}, false
	}
	fg, bg := c.Colors()
	return fg, bg, true
}

// ConnectedToSea returns the indices recorded by the last sea-level sweep in
// ascending order.
func (g *Grid) ConnectedToSea() []int {
	return slices.Clone(g.connected)
}

func (g *Grid) IsConnected(x, y int) bool {
	idx, ok := g.Index(x, y)
	if !ok {
		return false
	}
	_, found := slices.BinarySearch(g.connected, idx)
	return found
}

func (g *Grid) TotalWater() int {
	total := 0
	for _, c := range g.cells {
		total += c.water
	}
	return total
}

// IncreaseHeight raises a cell by one. It does not move any water. Unlike a
// plain clamped raise it is refused when the column is already full, so
// water never rises past MaxHeight.
func (g *Grid) IncreaseHeight(x, y int) bool {
	idx, ok := g.Index(x, y)
	if !ok {
		return false
	}
	c := &g.cells[idx]
	if c.water > 0 && c.WaterLevel() >= MaxHeight {
		return false
	}
	before := c.height
	c.IncreaseHeight()
	return c.height != before
}

// LowerHeight lowers a cell by one and lets water settle around it.
func (g *Grid) LowerHeight(x, y int) bool {
	idx, ok := g.Index(x, y)
	if !ok {
		return false
	}
	before := g.cells[idx].height
	g.cells[idx].LowerHeight()
	g.RecalculateWater(x, y)
	return g.cells[idx].height != before
}

// BuildDike improves a dry cell. Wet cells are left untouched.
func (g *Grid) BuildDike(x, y int) bool {
	idx, ok := g.Index(x, y)
	if !ok {
		return false
	}
	c := &g.cells[idx]
	if c.water > 0 || c.improvement == ImprovementDike {
		return false
	}
	c.SetImprovement(ImprovementDike)
	return true
}

// Flood pours one unit of water onto a cell and lets it spread.
func (g *Grid) Flood(x, y int) bool {
	idx, ok := g.Index(x, y)
	if !ok {
		return false
	}
	c := &g.cells[idx]
	if !c.exchangesWater() || c.WaterLevel() >= MaxHeight {
		return false
	}
	c.AddWater(1)
	g.RecalculateWater(x, y)
	return true
}

// Drain takes one unit of water off a cell. Whatever is left spreads as
// usual; a cell drained dry is not re-wetted by its neighbors.
func (g *Grid) Drain(x, y int) bool {
	idx, ok := g.Index(x, y)
	if !ok {
		return false
	}
	c := &g.cells[idx]
	if !c.exchangesWater() || c.water == 0 {
		return false
	}
	c.RemoveWater(1)
	if c.water > 0 {
		g.RecalculateWater(x, y)
	}
	return true
}

func (g *Grid) FloodRiver() bool {
	return g.Flood(g.riverSource.X, g.riverSource.Y)
}
