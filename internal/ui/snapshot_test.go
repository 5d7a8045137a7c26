package ui

import (
	"image/color"
	"testing"

	"github.com/appengine-ltd/age-of-polders/internal/game"
)

func TestRenderSnapshotSizeAndLandColor(t *testing.T) {
	c := newTestConsole(t)
	grid := c.Run().Grid
	img := RenderSnapshot(grid, SnapshotOptions{CellSize: 12})

	b := img.Bounds()
	if b.Dx() != grid.Width()*12 || b.Dy() != grid.Height()*12 {
		t.Fatalf("unexpected image size %dx%d", b.Dx(), b.Dy())
	}

	cell, _ := grid.Cell(30, 30)
	_, bg := cell.Colors()
	got := color.RGBAModel.Convert(img.At(30*12+6, 30*12+6)).(color.RGBA)
	want := color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}
	if got != want {
		t.Fatalf("expected land pixel %v, got %v", want, got)
	}
}

func TestRenderSnapshotClampsCellSize(t *testing.T) {
	config := game.DefaultRunConfig()
	config.Layout = game.LayoutFixed
	config.Seed = 3
	grid, err := game.GenerateGrid(config, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	img := RenderSnapshot(grid, SnapshotOptions{})
	if img.Bounds().Dx() != grid.Width() || img.Bounds().Dy() != grid.Height() {
		t.Fatalf("expected one pixel per cell, got %v", img.Bounds())
	}
}
