package terrain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeaLevelFillsCanalAndLake(t *testing.T) {
	canal := []Coordinate{{X: 23, Y: 19}, {X: 24, Y: 19}, {X: 25, Y: 19}}
	lake := []Coordinate{{X: 26, Y: 19}, {X: 26, Y: 18}, {X: 26, Y: 20}, {X: 27, Y: 19}}
	basin := append(append([]Coordinate{}, canal...), lake...)

	overrides := make(map[Coordinate]int)
	for _, c := range basin {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				overrides[Coordinate{X: c.X + dx, Y: c.Y + dy}] = MaxHeight
			}
		}
	}
	for _, c := range basin {
		overrides[c] = SeaLevel
	}
	var embankment []Coordinate
	for c, h := range overrides {
		if h == MaxHeight {
			embankment = append(embankment, c)
		}
	}
	g := newFilledGrid(t, 40, 30, SeaLevel+1, overrides)
	require.Zero(t, g.TotalWater())

	g.RecalculateSeaLevel(SeaLevel + 1)
	for _, c := range basin {
		water, _ := g.WaterAt(c.X, c.Y)
		assert.Equal(t, 1, water, "basin cell %v", c)
		assert.True(t, g.IsConnected(c.X, c.Y), "basin cell %v", c)
	}
	for _, c := range embankment {
		water, _ := g.WaterAt(c.X, c.Y)
		assert.Zero(t, water, "embankment cell %v", c)
	}

	g.RecalculateSeaLevel(SeaLevel)
	for _, c := range basin {
		water, _ := g.WaterAt(c.X, c.Y)
		assert.Zero(t, water, "basin cell %v", c)
		assert.False(t, g.IsConnected(c.X, c.Y), "basin cell %v", c)
	}
}

func TestSeaLevelIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 7))
	g := randomGrid(t, rng, 25, 18)
	for i := 0; i < 40; i++ {
		g.BuildDike(rng.IntN(g.width), rng.IntN(g.height))
	}
	for _, target := range []int{SeaLevel, SeaLevel + 2, SeaBottom + 1} {
		first := g.RecalculateSeaLevel(target)
		cells := append([]Cell(nil), g.cells...)

		second := g.RecalculateSeaLevel(target)
		assert.Equal(t, first.Connected, second.Connected, "target %d", target)
		assert.Equal(t, cells, g.cells, "target %d", target)
		assert.Zero(t, second.Added)
		assert.Zero(t, second.Removed)
	}
}

func TestDikeRingProtectsInterior(t *testing.T) {
	g := newFilledGrid(t, 10, 10, 2, nil)
	for x := 5; x <= 7; x++ {
		for y := 5; y <= 7; y++ {
			if x == 6 && y == 6 {
				continue
			}
			require.True(t, g.BuildDike(x, y))
		}
	}
	idx, _ := g.Index(6, 6)
	g.cells[idx].water = 1

	result := g.RecalculateSeaLevel(4)
	water, _ := g.WaterAt(6, 6)
	assert.Equal(t, 1, water, "interior keeps its own level")
	assert.False(t, g.IsConnected(6, 6))
	assert.NotContains(t, result.Connected, idx)

	water, _ = g.WaterAt(0, 0)
	assert.Equal(t, 2, water)
	assert.Contains(t, result.Connected, 0)
	water, _ = g.WaterAt(5, 5)
	assert.Zero(t, water, "dikes stay dry")
	requireInvariants(t, g)
}

func TestSeaLevelReachesSeaBottom(t *testing.T) {
	g := newFilledGrid(t, 4, 4, SeaBottom, nil)
	result := g.RecalculateSeaLevel(SeaLevel)
	assert.Len(t, result.Connected, 16)
	assert.Equal(t, 16*(SeaLevel-SeaBottom), result.Added)
	assert.Equal(t, 16*(SeaLevel-SeaBottom), g.TotalWater())
}

func TestLoweringSeaDisconnectsDrainedCells(t *testing.T) {
	g := newFilledGrid(t, 3, 3, 2, map[Coordinate]int{{X: 2, Y: 2}: SeaBottom})
	g.RecalculateSeaLevel(4)
	require.Len(t, g.ConnectedToSea(), 9)

	result := g.RecalculateSeaLevel(SeaBottom)
	assert.Equal(t, []int{}, result.Connected)
	assert.Zero(t, g.TotalWater())
}

func TestSeaLevelKeepsShallowColumnConnected(t *testing.T) {
	g := newFilledGrid(t, 2, 1, 2, map[Coordinate]int{{X: 1, Y: 0}: 5})
	g.RecalculateSeaLevel(5)

	result := g.RecalculateSeaLevel(3)
	assert.Equal(t, []int{0}, result.Connected)
	water, _ := g.WaterAt(0, 0)
	assert.Equal(t, 1, water)
	assert.Equal(t, 2, result.Removed)
}

func TestBoundaryDikeBlocksSweep(t *testing.T) {
	g := newFilledGrid(t, 3, 3, 2, nil)
	require.True(t, g.BuildDike(0, 0))

	result := g.RecalculateSeaLevel(4)
	assert.Empty(t, result.Connected)
	assert.Zero(t, g.TotalWater())
}

func TestSeaLevelTargetIsClamped(t *testing.T) {
	g := newFilledGrid(t, 2, 2, 2, nil)
	result := g.RecalculateSeaLevel(99)
	assert.Equal(t, MaxHeight, result.Target)
	requireInvariants(t, g)

	result = g.RecalculateSeaLevel(-5)
	assert.Equal(t, SeaBottom, result.Target)
}

func TestStrictLevelConnectivity(t *testing.T) {
	build := func(opts ...Option) *Grid {
		return newFilledGrid(t, 3, 1, 2, nil, opts...)
	}

	relaxed := build()
	first := relaxed.RecalculateSeaLevel(4)
	second := relaxed.RecalculateSeaLevel(4)
	assert.Equal(t, []int{0, 1, 2}, first.Connected)
	assert.Equal(t, first.Connected, second.Connected)

	strict := build(WithStrictLevelConnectivity())
	first = strict.RecalculateSeaLevel(4)
	second = strict.RecalculateSeaLevel(4)
	assert.Equal(t, []int{0, 1, 2}, first.Connected)
	assert.Empty(t, second.Connected, "cells already at the target are not recorded")
}
