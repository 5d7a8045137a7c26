// Package terrain models the polder map: a dense row-major grid of cells that
// carry elevation, standing water and an optional dike.
//
// Two algorithms move water around:
//
//   - RecalculateWater spreads water locally after an edit, one unit at a
//     time, from each wet donor to its unvisited neighbors that sit at or
//     below its own level, lowest first.
//   - RecalculateSeaLevel sweeps every cell reachable from the open-water
//     boundary at (0,0) and pushes its water level to the new target. Dikes
//     are the only barrier to the sweep.
//
// Every operation saturates instead of failing: out-of-range coordinates,
// dikes on wet ground and edits past the height limits are silent no-ops.
// A Grid is not safe for concurrent use.
package terrain
