package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

type RunState struct {
	Config        RunConfig
	SessionID     uuid.UUID
	Grid          *terrain.Grid
	Selected      terrain.Coordinate
	ActiveCommand Command
	SeaLevel      int
	Turn          int

	root   *slog.Logger
	logger *slog.Logger
}

// NewRunState validates the config, resolves a zero seed from the clock and
// builds the session's grid already filled to the configured sea level.
func NewRunState(config RunConfig, logger *slog.Logger) (*RunState, error) {
	resolvedConfig := config

	if err := resolvedConfig.Validate(); err != nil {
		return nil, err
	}

	if resolvedConfig.Seed == 0 {
		resolvedConfig.Seed = time.Now().UnixNano()
	}

	if logger == nil {
		logger = slog.Default()
	}

	state := &RunState{
		Config:        resolvedConfig,
		SessionID:     uuid.New(),
		ActiveCommand: CommandFlood,
		SeaLevel:      resolvedConfig.SeaLevel,
		root:          logger,
	}
	state.logger = logger.With("session", state.SessionID.String())

	grid, err := GenerateGrid(resolvedConfig, state.logger)
	if err != nil {
		return nil, err
	}
	state.Grid = grid

	state.logger.Info("run started",
		"layout", resolvedConfig.Layout,
		"seed", resolvedConfig.Seed,
		"width", resolvedConfig.Width,
		"height", resolvedConfig.Height,
		"sea_level", resolvedConfig.SeaLevel,
	)
	return state, nil
}

// Restart replaces the session with a fresh map. A zero seed draws a new one
// from the clock; the layout and dimensions are kept.
func (s *RunState) Restart(seed int64) error {
	config := s.Config
	config.Seed = seed
	next, err := NewRunState(config, s.root)
	if err != nil {
		return err
	}
	*s = *next
	return nil
}

// Logger returns the session logger, tagged with the session id.
func (s *RunState) Logger() *slog.Logger {
	return s.log()
}

func (s *RunState) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

// Select moves the selection to (x, y), clamped into the grid.
func (s *RunState) Select(x, y int) terrain.Coordinate {
	if s == nil || s.Grid == nil {
		return terrain.Coordinate{}
	}
	s.Selected = terrain.Coordinate{
		X: min(max(x, 0), s.Grid.Width()-1),
		Y: min(max(y, 0), s.Grid.Height()-1),
	}
	return s.Selected
}

func (s *RunState) MoveSelection(dx, dy int) terrain.Coordinate {
	return s.Select(s.Selected.X+dx, s.Selected.Y+dy)
}

type CellReport struct {
	X           int
	Y           int
	Height      int
	Water       int
	Level       int
	Tile        terrain.TileType
	Dike        bool
	Connected   bool
	RiverSource bool
}

func (s *RunState) Inspect(x, y int) (CellReport, bool) {
	if s == nil || s.Grid == nil {
		return CellReport{}, false
	}
	cell, ok := s.Grid.Cell(x, y)
	if !ok {
		return CellReport{}, false
	}
	return CellReport{
		X:           x,
		Y:           y,
		Height:      cell.Height(),
		Water:       cell.Water(),
		Level:       cell.WaterLevel(),
		Tile:        cell.TileType(),
		Dike:        cell.Improvement() == terrain.ImprovementDike,
		Connected:   s.Grid.IsConnected(x, y),
		RiverSource: s.Grid.RiverSource() == terrain.Coordinate{X: x, Y: y},
	}, true
}
