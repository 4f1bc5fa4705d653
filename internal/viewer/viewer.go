// Package viewer runs the interactive terminal cave viewer.
package viewer

import (
	"context"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/randommarch/internal/telemetry"
	"github.com/samdwyer/randommarch/internal/ui"
	"github.com/samdwyer/randommarch/internal/world"
)

const helpText = "r regenerate  q quit"

// Viewer holds the interactive session state.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	logger   *log.Logger
	params   world.Params
	seeds    *rand.Rand // Seeds for regenerated caves, derived from the first seed
	grid     *world.Grid
	running  bool
}

// New creates a viewer on the terminal.
func New(params world.Params, palette ui.Palette, logger *log.Logger) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, params, palette, logger), nil
}

// NewWithScreen creates a viewer drawing to an existing screen.
func NewWithScreen(screen *ui.Screen, params world.Params, palette ui.Palette, logger *log.Logger) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		logger:   logger,
		params:   params,
		seeds:    rand.New(rand.NewSource(params.Seed)),
		running:  true,
	}
}

// Run generates the first cave and processes input until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	v.build(ctx)

	for v.running {
		v.render()
		v.handleInput(ctx)
	}

	v.screen.Close()
	return nil
}

// Grid returns the cave currently on screen.
func (v *Viewer) Grid() *world.Grid {
	return v.grid
}

// Seed returns the seed of the cave currently on screen.
func (v *Viewer) Seed() int64 {
	return v.params.Seed
}

// Regenerate drops the current cave and builds a new one from the next seed.
func (v *Viewer) Regenerate(ctx context.Context) {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.regenerate")
	defer span.End()

	previous := v.params.Seed
	v.grid = nil
	v.params.Seed = v.seeds.Int63()
	v.build(ctx)

	span.SetAttributes(
		attribute.Int64("viewer.previous_seed", previous),
		attribute.Int64("viewer.seed", v.params.Seed),
	)
}

// build generates a cave for the current params.
func (v *Viewer) build(ctx context.Context) {
	v.grid = world.Generate(ctx, v.params)
	stats := v.grid.Stats()
	v.logger.Info("cave generated",
		"seed", v.params.Seed,
		"width", v.grid.Width(),
		"height", v.grid.Height(),
		"floor", stats.Floor,
		"islands", stats.Island,
	)
}

func (v *Viewer) render() {
	v.renderer.Render(v.grid, ui.StatsLine(v.params.Seed, v.grid)+"  "+helpText)
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// Screen finalized
		v.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			v.Regenerate(ctx)
		}
	}
}
