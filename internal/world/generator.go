package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/randommarch/internal/telemetry"
)

// Params holds everything needed to reproduce a cave.
type Params struct {
	Width       int
	Height      int
	Seed        int64
	WalkerCount int
	Walker      WalkerParams
}

// DefaultParams returns the parameters used when no configuration is supplied.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Seed:        1,
		WalkerCount: 4,
		Walker: WalkerParams{
			Steps:                120,
			MaxStepLength:        2,
			BacktrackProbability: 0.2,
		},
	}
}

// Generate seeds a random source from params.Seed and builds a cave.
// Identical params always produce an identical grid.
func Generate(ctx context.Context, params Params) *Grid {
	rng := rand.New(rand.NewSource(params.Seed))
	return GenerateWith(ctx, params, rng)
}

// GenerateWith builds a cave using the given random source.
// Walkers run one after another against the same grid, each starting at the
// centre and each reclassifying edges and islands when it finishes.
func GenerateWith(ctx context.Context, params Params, rng Source) *Grid {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "cave.generate")
	defer span.End()

	startTime := time.Now()

	grid := NewGrid(params.Width, params.Height)
	for i := 0; i < params.WalkerCount; i++ {
		_, walkSpan := tracer.Start(ctx, "walker.walk")
		walker := NewWalker(params.Walker, grid.Width(), grid.Height())
		walker.Walk(grid, rng)
		walkSpan.SetAttributes(attribute.Int("walker.index", i))
		walkSpan.End()
	}

	stats := grid.Stats()
	span.SetAttributes(
		attribute.Int("cave.width", grid.Width()),
		attribute.Int("cave.height", grid.Height()),
		attribute.Int64("cave.seed", params.Seed),
		attribute.Int("cave.walkers", params.WalkerCount),
		attribute.Int("cave.floor_tiles", stats.Floor),
		attribute.Int("cave.edge_tiles", stats.Edge),
		attribute.Int("cave.island_tiles", stats.Island),
		attribute.Int64("cave.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return grid
}
