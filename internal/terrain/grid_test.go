package terrain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrors(t *testing.T) {
	cases := []struct {
		name      string
		w, h      int
		elevation []int
		river     Coordinate
		err       error
	}{
		{"ZeroWidth", 0, 2, nil, Coordinate{}, ErrInvalidSize},
		{"ShortField", 2, 2, []int{1, 2, 3}, Coordinate{}, ErrElevationSize},
		{"RiverOutside", 2, 1, []int{4, 4}, Coordinate{X: 2, Y: 0}, ErrRiverSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.w, tc.h, tc.elevation, tc.river)
			if !errors.Is(err, tc.err) {
				t.Errorf("New() error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestAccessorsOutOfBounds(t *testing.T) {
	g := newFilledGrid(t, 3, 2, 4, nil)

	_, ok := g.WaterLevel(-1, 0)
	assert.False(t, ok)
	_, ok = g.HeightAt(3, 0)
	assert.False(t, ok)
	_, ok = g.TileType(0, 2)
	assert.False(t, ok)
	_, _, ok = g.Colors(5, 5)
	assert.False(t, ok)

	level, ok := g.WaterLevel(2, 1)
	require.True(t, ok)
	assert.Equal(t, 4, level)
	assert.Equal(t, Coordinate{X: 2, Y: 1}, g.Coordinate(5))
}

func TestMutatorsOutOfBoundsAreNoOps(t *testing.T) {
	g := newFilledGrid(t, 3, 3, 4, nil)
	assert.False(t, g.IncreaseHeight(3, 0))
	assert.False(t, g.LowerHeight(0, -1))
	assert.False(t, g.BuildDike(-1, -1))
	assert.False(t, g.Flood(9, 9))
	assert.False(t, g.Drain(9, 9))
	for idx := range g.cells {
		assert.Equal(t, NewCell(4), g.cells[idx])
	}
}

func TestBuildDikeRequiresDryGround(t *testing.T) {
	g := newFilledGrid(t, 3, 1, 4, nil)
	g.cells[1].water = 1

	assert.False(t, g.BuildDike(1, 0))
	tile, _ := g.TileType(1, 0)
	assert.Equal(t, TileWater, tile)

	assert.True(t, g.BuildDike(0, 0))
	assert.False(t, g.BuildDike(0, 0))
	tile, _ = g.TileType(0, 0)
	assert.Equal(t, TileDike, tile)
}

func TestIncreaseHeightKeepsWaterAndRefusesFullColumn(t *testing.T) {
	g := newFilledGrid(t, 2, 1, 3, nil)
	g.cells[0].water = 1

	require.True(t, g.IncreaseHeight(0, 0))
	assert.Equal(t, 4, g.cells[0].height)
	assert.Equal(t, 1, g.cells[0].water)
	assert.Zero(t, g.cells[1].water, "raising land must not push water out")

	g.cells[0].water = MaxHeight - 4
	assert.False(t, g.IncreaseHeight(0, 0))
	assert.Equal(t, 4, g.cells[0].height)
	requireInvariants(t, g)
}

func TestIncreaseHeightRefusesFullColumn(t *testing.T) {
	g := newFilledGrid(t, 2, 1, 4, nil)
	g.cells[0].water = MaxHeight - 4

	assert.False(t, g.IncreaseHeight(0, 0))
	assert.Equal(t, 4, g.cells[0].height)
	assert.Equal(t, MaxHeight-4, g.cells[0].water)
	assert.Equal(t, MaxHeight, g.cells[0].WaterLevel())

	g.cells[0].water = MaxHeight - 5
	require.True(t, g.IncreaseHeight(0, 0), "a column with room left still rises")
	assert.Equal(t, MaxHeight, g.cells[0].WaterLevel())
	requireInvariants(t, g)
}

func TestLowerHeightAtSeaBottomIsNoOp(t *testing.T) {
	g := newFilledGrid(t, 1, 1, SeaBottom, nil)
	assert.False(t, g.LowerHeight(0, 0))
	assert.Equal(t, SeaBottom, g.cells[0].height)
}

func TestFloodAndDrainSkipDikes(t *testing.T) {
	g := newFilledGrid(t, 3, 1, 4, nil)
	require.True(t, g.BuildDike(1, 0))
	assert.False(t, g.Flood(1, 0))
	assert.False(t, g.Drain(1, 0))
	assert.Zero(t, g.TotalWater())
}

func TestFloodRiverUsesRiverSource(t *testing.T) {
	elevation := []int{4, 4, 4}
	g, err := New(3, 1, elevation, Coordinate{X: 2, Y: 0})
	require.NoError(t, err)

	require.True(t, g.FloodRiver())
	water, _ := g.WaterAt(0, 0)
	assert.Equal(t, 1, water, "the unit runs down the flat row away from the source")
	assert.Equal(t, 1, g.TotalWater())
}
