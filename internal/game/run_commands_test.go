package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

func TestRunCommandHelpListsCommands(t *testing.T) {
	run := newFixedRun(t)
	res := run.ExecuteRunCommand("help")
	require.True(t, res.Handled)
	require.Contains(t, res.Message, "sea [up|down|<level>]")
}

func TestRunCommandUnknownIsNotHandled(t *testing.T) {
	run := newFixedRun(t)
	require.False(t, run.ExecuteRunCommand("forage berries").Handled)
	require.False(t, run.ExecuteRunCommand("   ").Handled)
}

func TestRunCommandFloodAndDrain(t *testing.T) {
	run := newFixedRun(t)
	before := run.Grid.TotalWater()

	res := run.ExecuteRunCommand("flood 30 30")
	require.True(t, res.Handled)
	require.True(t, res.Changed)
	require.Contains(t, res.Message, "Flooded at (30,30)")
	require.Equal(t, before+1, run.Grid.TotalWater())

	res = run.ExecuteRunCommand("drain 0 0")
	require.True(t, res.Changed)
	water, _ := run.Grid.WaterAt(0, 0)
	require.Zero(t, water)
	require.Equal(t, before, run.Grid.TotalWater())
	require.Equal(t, 2, run.Turn)
}

func TestRunCommandRefusedEditStillCostsTurn(t *testing.T) {
	run := newFixedRun(t)
	require.True(t, run.ExecuteRunCommand("dike 30 30").Changed)

	res := run.ExecuteRunCommand("flood 30 30")
	require.True(t, res.Handled)
	require.False(t, res.Changed)
	require.Contains(t, res.Message, "Nothing to flood")
	require.Equal(t, 2, run.Turn)

	tile, _ := run.Grid.TileType(30, 30)
	require.Equal(t, terrain.TileDike, tile)
}

func TestRunCommandUseAndApplyOnSelection(t *testing.T) {
	run := newFixedRun(t)
	run.ExecuteRunCommand("select 30 30")

	res := run.ExecuteRunCommand("use raise")
	require.True(t, res.Handled)
	require.Equal(t, CommandRaise, run.ActiveCommand)

	res = run.ExecuteRunCommand("apply")
	require.True(t, res.Changed)
	height, _ := run.Grid.HeightAt(30, 30)
	require.Equal(t, landHeight+1, height)

	run.ExecuteRunCommand("use lower")
	run.ExecuteRunCommand("apply")
	run.ExecuteRunCommand("apply")
	height, _ = run.Grid.HeightAt(30, 30)
	require.Equal(t, landHeight-1, height)
	require.Equal(t, 3, run.Turn)

	res = run.ExecuteRunCommand("use fly")
	require.Contains(t, res.Message, "Unknown command")
	require.Equal(t, CommandLower, run.ActiveCommand)
}

func TestRunCommandMoveSelection(t *testing.T) {
	run := newFixedRun(t)
	run.ExecuteRunCommand("select 5 5")
	run.ExecuteRunCommand("move e 3")
	run.ExecuteRunCommand("move n")
	require.Equal(t, terrain.Coordinate{X: 8, Y: 4}, run.Selected)

	res := run.ExecuteRunCommand("move sideways")
	require.Contains(t, res.Message, "Unknown direction")
	res = run.ExecuteRunCommand("move w 0")
	require.Contains(t, res.Message, "positive")
	require.Zero(t, run.Turn)
}

func TestRunCommandSeaUpFillsTheSea(t *testing.T) {
	run := newFixedRun(t)

	res := run.ExecuteRunCommand("sea up")
	require.True(t, res.Changed)
	require.Equal(t, terrain.SeaLevel+1, run.SeaLevel)
	water, _ := run.Grid.WaterAt(0, 0)
	require.Equal(t, 2, water)

	run.ExecuteRunCommand("sea down")
	require.Equal(t, terrain.SeaLevel, run.SeaLevel)
	water, _ = run.Grid.WaterAt(0, 0)
	require.Equal(t, 1, water)

	run.ExecuteRunCommand("sea 99")
	require.Equal(t, terrain.MaxHeight, run.SeaLevel)

	res = run.ExecuteRunCommand("sea")
	require.Contains(t, res.Message, "Sea level 6")
	require.Equal(t, 3, run.Turn)
}

func TestRunCommandRiverFloodsSource(t *testing.T) {
	run := newFixedRun(t)
	src := run.Grid.RiverSource()
	before := run.Grid.TotalWater()

	res := run.ExecuteRunCommand("river")
	require.True(t, res.Changed)
	require.Equal(t, before+1, run.Grid.TotalWater())
	water, _ := run.Grid.WaterAt(src.X, src.Y)
	require.Equal(t, 1, water, "the extra unit runs on downstream")
}

func TestRunCommandInspect(t *testing.T) {
	run := newFixedRun(t)
	res := run.ExecuteRunCommand("inspect 0 0")
	require.Contains(t, res.Message, "open to the sea")

	res = run.ExecuteRunCommand("inspect 500 0")
	require.Contains(t, res.Message, "off the map")

	res = run.ExecuteRunCommand("inspect nowhere")
	require.Contains(t, res.Message, "Usage")
}

func TestRunCommandEditOffMapIsRefused(t *testing.T) {
	run := newFixedRun(t)
	res := run.ExecuteRunCommand("flood -1 3")
	require.True(t, res.Handled)
	require.False(t, res.Changed)
	require.Zero(t, run.Turn)
}

func TestRunCommandRestartWithSeed(t *testing.T) {
	run := newFixedRun(t)
	res := run.ExecuteRunCommand("restart 77")
	require.True(t, res.Changed)
	require.Equal(t, int64(77), run.Config.Seed)

	res = run.ExecuteRunCommand("restart soon")
	require.Contains(t, res.Message, "whole number")
}
