package terrain

import "github.com/zyedidia/generic/heap"

// CellEntry is a neighbor candidate ranked by its water level.
type CellEntry struct {
	Coord Coordinate
	Level int
}

// lessEntry orders by ascending level, then x, then y, so traversal is
// reproducible.
func lessEntry(a, b CellEntry) bool {
	if a.Level != b.Level {
		return a.Level < b.Level
	}
	if a.Coord.X != b.Coord.X {
		return a.Coord.X < b.Coord.X
	}
	return a.Coord.Y < b.Coord.Y
}

func newFrontier() *heap.Heap[CellEntry] {
	return heap.New[CellEntry](lessEntry)
}
