package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newFilledGrid builds a w×h grid at height fill with per-cell overrides.
func newFilledGrid(t *testing.T, w, h, fill int, overrides map[Coordinate]int, opts ...Option) *Grid {
	t.Helper()
	elevation := make([]int, w*h)
	for i := range elevation {
		elevation[i] = fill
	}
	for c, height := range overrides {
		elevation[c.Y*w+c.X] = height
	}
	g, err := New(w, h, elevation, Coordinate{X: 0, Y: 0}, opts...)
	require.NoError(t, err)
	return g
}

func requireInvariants(t *testing.T, g *Grid) {
	t.Helper()
	for idx, c := range g.cells {
		pos := g.Coordinate(idx)
		require.GreaterOrEqual(t, c.height, SeaBottom, "height at %v", pos)
		require.LessOrEqual(t, c.height, MaxHeight, "height at %v", pos)
		require.GreaterOrEqual(t, c.water, 0, "water at %v", pos)
		require.LessOrEqual(t, c.WaterLevel(), MaxHeight, "level at %v", pos)
		if c.improvement == ImprovementDike {
			require.Zero(t, c.water, "dike at %v holds water", pos)
		}
	}
}
