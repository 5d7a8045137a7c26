package game

import (
	"fmt"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

type Layout string

const (
	LayoutRandom Layout = "random"
	LayoutFixed  Layout = "fixed"
	LayoutNoise  Layout = "noise"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 50

	minWidth  = 16
	minHeight = 12
	maxSide   = 512
)

func Layouts() []Layout {
	return []Layout{LayoutRandom, LayoutFixed, LayoutNoise}
}

func ParseLayout(raw string) (Layout, error) {
	for _, layout := range Layouts() {
		if string(layout) == raw {
			return layout, nil
		}
	}
	return "", fmt.Errorf("unknown layout: %q", raw)
}

type RunConfig struct {
	Layout   Layout
	Width    int
	Height   int
	Seed     int64
	SeaLevel int
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Layout:   LayoutRandom,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		SeaLevel: terrain.SeaLevel,
	}
}

func (c RunConfig) Validate() error {
	switch c.Layout {
	case LayoutRandom, LayoutFixed, LayoutNoise:
	default:
		return fmt.Errorf("invalid layout: %s", c.Layout)
	}

	if c.Width < minWidth || c.Width > maxSide {
		return fmt.Errorf("width must be between %d and %d, got %d", minWidth, maxSide, c.Width)
	}
	if c.Height < minHeight || c.Height > maxSide {
		return fmt.Errorf("height must be between %d and %d, got %d", minHeight, maxSide, c.Height)
	}

	if c.SeaLevel < terrain.SeaBottom || c.SeaLevel > terrain.MaxHeight {
		return fmt.Errorf("sea level must be between %d and %d, got %d", terrain.SeaBottom, terrain.MaxHeight, c.SeaLevel)
	}

	return nil
}
