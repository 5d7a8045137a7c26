package terrain

import "github.com/zyedidia/generic/queue"

// FlowReport summarises one local recalculation.
type FlowReport struct {
	Visited   int
	Transfers int
	Wetted    int
}

// RecalculateWater spreads water breadth-first from (x,y) after its height
// changed. Every cell is examined at most once per call. A wet cell above
// SeaLevel walks its unvisited neighbors from the lowest level up and hands
// each one a single unit, stopping at the first neighbor that sits higher
// than itself. Receivers are queued and spread in turn.
//
// If (x,y) is dry but borders a wet cell standing higher, it is wetted with
// one new unit instead and nothing else moves. That seed is the only water
// the call creates.
//
// Dikes, maxed-out land and the sea bottom never give or take water.
func (g *Grid) RecalculateWater(x, y int) FlowReport {
	var report FlowReport
	if !g.InBounds(x, y) {
		return report
	}
	visited := make([]bool, len(g.cells))
	pending := queue.New[Coordinate]()
	start := Coordinate{X: x, Y: y}
	if g.seedWetting(start) {
		report.Wetted++
		report.Visited++
	} else {
		pending.Enqueue(start)
	}

	for !pending.Empty() {
		pos := pending.Dequeue()
		idx, ok := g.Index(pos.X, pos.Y)
		if !ok || visited[idx] {
			continue
		}
		visited[idx] = true
		report.Visited++
		if !g.cells[idx].exchangesWater() {
			continue
		}
		report.Transfers += g.donate(pos, visited, pending)
	}

	g.logger.Debug("water recalculated",
		"x", x, "y", y,
		"visited", report.Visited,
		"transfers", report.Transfers,
		"wetted", report.Wetted,
	)
	return report
}

// donate gives one unit to each unvisited neighbor in ascending level order
// until the donor runs dry, drops to SeaLevel, or meets a higher neighbor.
func (g *Grid) donate(pos Coordinate, visited []bool, pending *queue.Queue[Coordinate]) int {
	idx, _ := g.Index(pos.X, pos.Y)
	donor := &g.cells[idx]

	frontier := newFrontier()
	for _, n := range pos.neighbors() {
		nIdx, ok := g.Index(n.X, n.Y)
		if !ok || visited[nIdx] || !g.acceptsWater(nIdx) {
			continue
		}
		frontier.Push(CellEntry{Coord: n, Level: g.cells[nIdx].WaterLevel()})
	}

	moved := 0
	for donor.water > 0 && donor.WaterLevel() > SeaLevel {
		low, ok := frontier.Pop()
		if !ok || low.Level > donor.WaterLevel() {
			break
		}
		nIdx, _ := g.Index(low.Coord.X, low.Coord.Y)
		donor.RemoveWater(1)
		g.cells[nIdx].AddWater(1)
		moved++
		pending.Enqueue(low.Coord)
	}
	return moved
}

// acceptsWater reports whether a neighbor can take a unit without the
// column clipping at MaxHeight.
func (g *Grid) acceptsWater(idx int) bool {
	c := g.cells[idx]
	return c.exchangesWater() && c.WaterLevel() < MaxHeight
}

// seedWetting puts one new unit on a dry cell that borders a wet cell
// standing above it.
func (g *Grid) seedWetting(pos Coordinate) bool {
	idx, ok := g.Index(pos.X, pos.Y)
	if !ok || g.cells[idx].water > 0 || !g.acceptsWater(idx) {
		return false
	}
	level := g.cells[idx].WaterLevel()
	for _, n := range pos.neighbors() {
		nIdx, ok := g.Index(n.X, n.Y)
		if !ok {
			continue
		}
		c := g.cells[nIdx]
		if c.exchangesWater() && c.water > 0 && c.WaterLevel() > level {
			g.cells[idx].AddWater(1)
			return true
		}
	}
	return false
}
