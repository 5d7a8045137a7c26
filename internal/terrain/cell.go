package terrain

const (
	SeaBottom = 1
	SeaLevel  = 3
	MaxHeight = 6
)

type TileType uint8

const (
	TileFlatland TileType = iota
	TileWater
	TileDike
)

func (t TileType) String() string {
	switch t {
	case TileWater:
		return "water"
	case TileDike:
		return "dike"
	default:
		return "flatland"
	}
}

type Improvement uint8

const (
	ImprovementNone Improvement = iota
	ImprovementDike
)

// Coordinate addresses a cell by column and row.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinate) neighbors() [4]Coordinate {
	return [4]Coordinate{
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X, Y: c.Y - 1},
	}
}

// Cell is one grid square. The zero value is not a valid cell; use NewCell.
type Cell struct {
	height      int
	water       int
	improvement Improvement
}

func NewCell(height int) Cell {
	return Cell{height: clamp(height, SeaBottom, MaxHeight)}
}

func (c Cell) Height() int              { return c.height }
func (c Cell) Water() int               { return c.water }
func (c Cell) Improvement() Improvement { return c.improvement }
func (c Cell) WaterLevel() int          { return c.height + c.water }

func (c Cell) TileType() TileType {
	switch {
	case c.water > 0:
		return TileWater
	case c.improvement == ImprovementDike:
		return TileDike
	default:
		return TileFlatland
	}
}

func (c *Cell) IncreaseHeight() {
	c.height = min(c.height+1, MaxHeight)
}

func (c *Cell) LowerHeight() {
	c.height = max(c.height-1, SeaBottom)
}

// AddWater never lets the column pass MaxHeight. The sea bottom is only
// levelled by the sea-level sweep, so it ignores local additions.
func (c *Cell) AddWater(amount int) {
	if c.height <= SeaBottom {
		return
	}
	c.water = clamp(c.water+amount, 0, MaxHeight-c.height)
}

func (c *Cell) RemoveWater(amount int) {
	if c.height <= SeaBottom {
		return
	}
	c.water = max(c.water-amount, 0)
}

func (c *Cell) SetImprovement(kind Improvement) {
	c.improvement = kind
}

// exchangesWater reports whether the local recalculation may take water
// from or give water to this cell. The sea bottom is left out because its
// water ops are no-ops; a unit moved into it would be lost.
func (c Cell) exchangesWater() bool {
	return c.improvement != ImprovementDike && c.height < MaxHeight && c.height > SeaBottom
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
