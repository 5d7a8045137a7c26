package game

import (
	"fmt"
	"log/slog"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

const (
	landHeight    = terrain.SeaLevel + 1
	seaBedHeight  = terrain.SeaLevel - 1
	fixedSeaRows  = 4
	fixedRiverCol = 10
)

// ElevationField is a row-major height map plus the river source a grid is
// built from.
type ElevationField struct {
	Width       int
	Height      int
	Heights     []int
	RiverSource terrain.Coordinate
}

func (f ElevationField) set(x, y, h int) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Heights[y*f.Width+x] = h
}

func newField(width, height, fill int) ElevationField {
	heights := make([]int, width*height)
	for i := range heights {
		heights[i] = fill
	}
	return ElevationField{Width: width, Height: height, Heights: heights}
}

// GenerateElevation builds the initial elevation for a resolved config.
func GenerateElevation(config RunConfig) (ElevationField, error) {
	switch config.Layout {
	case LayoutRandom:
		return randomElevation(config.Width, config.Height, config.Seed), nil
	case LayoutFixed:
		return fixedElevation(config.Width, config.Height), nil
	case LayoutNoise:
		return noiseElevation(config.Width, config.Height, config.Seed), nil
	default:
		return ElevationField{}, fmt.Errorf("invalid layout: %s", config.Layout)
	}
}

// GenerateGrid builds the terrain grid for a resolved config and fills it to
// the configured sea level.
func GenerateGrid(config RunConfig, logger *slog.Logger) (*terrain.Grid, error) {
	field, err := GenerateElevation(config)
	if err != nil {
		return nil, err
	}
	grid, err := terrain.New(field.Width, field.Height, field.Heights, field.RiverSource, terrain.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("build %s grid: %w", config.Layout, err)
	}
	grid.RecalculateSeaLevel(config.SeaLevel)
	return grid, nil
}

// randomElevation lays out raised land, a sea band of random depth along the
// top edge and a narrow river running from the coast to the bottom edge.
func randomElevation(width, height int, seed int64) ElevationField {
	rng := seededRNG(seed)
	field := newField(width, height, landHeight)

	coastRow := rangeInt(rng, 3, height/2-3)
	for y := 0; y < coastRow; y++ {
		for x := 0; x < width; x++ {
			field.set(x, y, seaBedHeight)
		}
	}

	riverCol := rangeInt(rng, 6, width/2-6)
	riverWidth := rangeInt(rng, 1, 3)
	for y := coastRow; y < height; y++ {
		for x := riverCol; x < riverCol+riverWidth; x++ {
			field.set(x, y, seaBedHeight)
		}
	}

	field.RiverSource = terrain.Coordinate{X: riverCol, Y: height - 1}
	return field
}

// fixedElevation is the reference polder: a sea band, a river and an
// embanked canal feeding a small lake in the middle of the map.
func fixedElevation(width, height int) ElevationField {
	field := newField(width, height, landHeight)
	for y := 0; y < fixedSeaRows; y++ {
		for x := 0; x < width; x++ {
			field.set(x, y, seaBedHeight)
		}
	}
	for y := fixedSeaRows; y < height; y++ {
		field.set(fixedRiverCol, y, seaBedHeight)
		field.set(fixedRiverCol+1, y, seaBedHeight)
	}

	cx, cy := width/2, height/2
	basin := []terrain.Coordinate{
		{X: cx - 3, Y: cy}, {X: cx - 2, Y: cy}, {X: cx - 1, Y: cy},
		{X: cx, Y: cy}, {X: cx, Y: cy - 1}, {X: cx, Y: cy + 1}, {X: cx + 1, Y: cy},
	}
	for _, c := range basin {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				field.set(c.X+dx, c.Y+dy, terrain.MaxHeight)
			}
		}
	}
	for _, c := range basin {
		field.set(c.X, c.Y, terrain.SeaLevel)
	}

	field.RiverSource = terrain.Coordinate{X: fixedRiverCol, Y: height - 1}
	return field
}

// noiseElevation quantises fractal simplex noise onto the height range and
// tilts it down towards the top edge so the sea boundary sits in open water.
func noiseElevation(width, height int, seed int64) ElevationField {
	noise := opensimplex.NewNormalized(seed)
	field := newField(width, height, landHeight)
	shore := math.Max(1, float64(height)/3)
	span := float64(terrain.MaxHeight - terrain.SeaBottom)

	lowest := terrain.MaxHeight + 1
	for y := 0; y < height; y++ {
		tilt := math.Min(1, float64(y)/shore)
		for x := 0; x < width; x++ {
			n := octaveNoise(noise, float64(x), float64(y), 4, 0.08, 0.5)
			v := 0.55*n + 0.45*tilt
			h := terrain.SeaBottom + int(math.Round(v*span))
			if y == 0 {
				h = min(h, seaBedHeight)
			}
			field.set(x, y, h)
			if y == height-1 && h < lowest {
				lowest = h
				field.RiverSource = terrain.Coordinate{X: x, Y: y}
			}
		}
	}
	return field
}

// octaveNoise layers several noise frequencies into one value in [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
