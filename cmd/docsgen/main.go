package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/age-of-polders/internal/game"
	"github.com/appengine-ltd/age-of-polders/internal/parser"
	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

// sampleSeed keeps the layout statistics stable between runs.
const sampleSeed = 1

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	layouts, err := generateLayoutsDoc()
	if err != nil {
		fatal(err)
	}
	files := []docFile{
		generatePaletteDoc(),
		generateCommandsDoc(),
		layouts,
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- [%s](./%s)\n", f.Title, f.Name)
	}
	return b.String()
}

func generatePaletteDoc() docFile {
	var b strings.Builder
	b.WriteString("# Tile Palette\n\n")
	b.WriteString("Source: `internal/terrain/palette.go` (`Cell.Glyph`, `Cell.Colors`).\n\n")
	fmt.Fprintf(&b, "Heights run from %d (sea bottom) to %d; the default sea level is %d.\n\n", terrain.SeaBottom, terrain.MaxHeight, terrain.SeaLevel)
	b.WriteString("| Tile | Height | Glyph | Foreground | Background |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")

	row := func(cell terrain.Cell) {
		fg, bg := cell.Colors()
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n", cell.TileType(), cell.Height(), glyphLabel(cell.Glyph()), fg.Hex(), bg.Hex())
	}
	for h := terrain.SeaBottom + 1; h < terrain.MaxHeight; h++ {
		c := terrain.NewCell(h)
		c.AddWater(1)
		row(c)
	}
	for h := terrain.SeaBottom; h <= terrain.MaxHeight; h++ {
		row(terrain.NewCell(h))
	}
	dike := terrain.NewCell(terrain.SeaLevel + 1)
	dike.SetImprovement(terrain.ImprovementDike)
	row(dike)

	return docFile{Name: "palette.md", Title: "Tile Palette", Content: b.String()}
}

func glyphLabel(r rune) string {
	if r == ' ' {
		return "(blank)"
	}
	return "`" + string(r) + "`"
}

func generateCommandsDoc() docFile {
	cmds := parser.DefaultRegistry().Commands()

	var b strings.Builder
	b.WriteString("# Commands\n\n")
	b.WriteString("Source: `internal/parser/registry.go` (`DefaultRegistry`).\n\n")
	fmt.Fprintf(&b, "Total commands: **%d**. Typos within a small edit distance resolve to the nearest command.\n\n", len(cmds))
	b.WriteString("| Command | Aliases | Arguments |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escape(c.Canonical), escape(strings.Join(c.Aliases, ", ")), escape(argUsage(c)))
	}
	return docFile{Name: "commands.md", Title: "Commands", Content: b.String()}
}

func argUsage(c parser.CommandDef) string {
	var usage string
	switch c.Args {
	case parser.ArgsCoordinate:
		usage = "x y"
	case parser.ArgsDirection:
		usage = "north|south|east|west [steps]"
	case parser.ArgsTool:
		tools := make([]string, 0, len(game.Commands()))
		for _, t := range game.Commands() {
			tools = append(tools, string(t))
		}
		usage = strings.Join(tools, "|")
	case parser.ArgsSea:
		usage = "up|down|level"
	case parser.ArgsSeed:
		usage = "seed"
	default:
		return "-"
	}
	if c.MinArgs == 0 {
		return "[" + usage + "]"
	}
	return usage
}

func generateLayoutsDoc() (docFile, error) {
	var b strings.Builder
	b.WriteString("# Map Layouts\n\n")
	b.WriteString("Source: `internal/game/mapgen.go` (`GenerateGrid`).\n\n")
	fmt.Fprintf(&b, "Statistics for the default %dx%d map with seed %d.\n\n", game.DefaultWidth, game.DefaultHeight, sampleSeed)
	b.WriteString("| Layout | River Source | Water Units | Cells Open to the Sea |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, layout := range game.Layouts() {
		config := game.DefaultRunConfig()
		config.Layout = layout
		config.Seed = sampleSeed
		grid, err := game.GenerateGrid(config, nil)
		if err != nil {
			return docFile{}, fmt.Errorf("generate %s: %w", layout, err)
		}
		src := grid.RiverSource()
		fmt.Fprintf(&b, "| %s | (%d,%d) | %d | %d |\n", layout, src.X, src.Y, grid.TotalWater(), len(grid.ConnectedToSea()))
	}
	return docFile{Name: "layouts.md", Title: "Map Layouts", Content: b.String()}, nil
}

func escape(v string) string {
	if strings.TrimSpace(v) == "" {
		return "&nbsp;"
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
