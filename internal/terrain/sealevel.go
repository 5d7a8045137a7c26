package terrain

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// SeaLevelResult describes one sea-level sweep.
type SeaLevelResult struct {
	Target    int
	Connected []int
	Added     int
	Removed   int
}

// RecalculateSeaLevel walks every cell reachable from SeaBoundary through
// 4-neighbors and pushes its water level to target. Cells below the target
// are filled, cells above it are drained until level or dry. Dikes stop the
// walk, so water behind a closed dike ring keeps its level.
//
// The connected set is rebuilt from scratch: filled cells, and cells that
// still hold water at the target. By default a wet cell already exactly at
// the target is also counted, which the bare fill/drain rule would leave
// out; without it a second sweep at the same level reports an empty set.
// WithStrictLevelConnectivity restores the bare rule.
func (g *Grid) RecalculateSeaLevel(target int) SeaLevelResult {
	target = clamp(target, SeaBottom, MaxHeight)
	result := SeaLevelResult{Target: target}

	visited := make([]bool, len(g.cells))
	connected := mapset.New[int]()
	work := stack.New[Coordinate]()
	work.Push(SeaBoundary)

	for work.Size() > 0 {
		pos := work.Pop()
		idx, ok := g.Index(pos.X, pos.Y)
		if !ok {
			continue
		}
		if g.cells[idx].improvement == ImprovementDike {
			visited[idx] = true
			continue
		}
		if !visited[idx] {
			g.levelTo(idx, target, connected, &result)
			visited[idx] = true
		}
		for _, n := range pos.neighbors() {
			nIdx, ok := g.Index(n.X, n.Y)
			if ok && !visited[nIdx] {
				work.Push(n)
			}
		}
	}

	result.Connected = make([]int, 0, connected.Size())
	connected.Each(func(idx int) {
		result.Connected = append(result.Connected, idx)
	})
	slices.Sort(result.Connected)
	g.connected = slices.Clone(result.Connected)

	g.logger.Debug("sea level recalculated",
		"target", target,
		"connected", len(result.Connected),
		"added", result.Added,
		"removed", result.Removed,
	)
	return result
}

// levelTo sets water directly, unit by unit; the sea bottom is included.
func (g *Grid) levelTo(idx, target int, connected mapset.Set[int], result *SeaLevelResult) {
	c := &g.cells[idx]
	switch level := c.WaterLevel(); {
	case level < target:
		for c.WaterLevel() < target {
			c.water++
			result.Added++
		}
		connected.Put(idx)
	case level > target:
		for c.WaterLevel() > target && c.water > 0 {
			c.water--
			result.Removed++
		}
		if c.water > 0 {
			connected.Put(idx)
		}
	default:
		if c.water > 0 && !g.strictLevel {
			connected.Put(idx)
		}
	}
}
