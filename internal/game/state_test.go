package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

func newFixedRun(t *testing.T) *RunState {
	t.Helper()
	run, err := NewRunState(layoutConfig(LayoutFixed, 909), nil)
	require.NoError(t, err)
	return run
}

func TestNewRunStateResolvesSeedAndSession(t *testing.T) {
	config := DefaultRunConfig()
	run, err := NewRunState(config, nil)
	require.NoError(t, err)
	require.NotZero(t, run.Config.Seed)
	require.NotEqual(t, uuid.Nil, run.SessionID)
	require.Equal(t, CommandFlood, run.ActiveCommand)
	require.Equal(t, terrain.SeaLevel, run.SeaLevel)
	require.Zero(t, run.Turn)
	require.Equal(t, config.Width, run.Grid.Width())
	require.Equal(t, config.Height, run.Grid.Height())
}

func TestNewRunStateRejectsInvalidConfig(t *testing.T) {
	config := DefaultRunConfig()
	config.Width = 0
	_, err := NewRunState(config, nil)
	require.Error(t, err)
}

func TestSelectClampsToGrid(t *testing.T) {
	run := newFixedRun(t)
	require.Equal(t, terrain.Coordinate{X: 0, Y: 0}, run.Select(-5, -1))
	require.Equal(t, terrain.Coordinate{X: run.Grid.Width() - 1, Y: run.Grid.Height() - 1}, run.Select(1000, 1000))
	run.Select(3, 3)
	require.Equal(t, terrain.Coordinate{X: 4, Y: 2}, run.MoveSelection(1, -1))
}

func TestInspectReportsCell(t *testing.T) {
	run := newFixedRun(t)

	sea, ok := run.Inspect(0, 0)
	require.True(t, ok)
	require.Equal(t, terrain.TileWater, sea.Tile)
	require.Equal(t, seaBedHeight, sea.Height)
	require.Equal(t, 1, sea.Water)
	require.True(t, sea.Connected)

	src := run.Grid.RiverSource()
	river, ok := run.Inspect(src.X, src.Y)
	require.True(t, ok)
	require.True(t, river.RiverSource)
	require.True(t, river.Connected)

	_, ok = run.Inspect(-1, 0)
	require.False(t, ok)
}

func TestRestartKeepsLayoutAndResetsSession(t *testing.T) {
	run := newFixedRun(t)
	before := run.SessionID
	run.ExecuteRunCommand("flood 30 30")
	require.Equal(t, 1, run.Turn)

	require.NoError(t, run.Restart(5))
	require.NotEqual(t, before, run.SessionID)
	require.Equal(t, int64(5), run.Config.Seed)
	require.Equal(t, LayoutFixed, run.Config.Layout)
	require.Zero(t, run.Turn)
	water, _ := run.Grid.WaterAt(30, 30)
	require.Zero(t, water)
}
