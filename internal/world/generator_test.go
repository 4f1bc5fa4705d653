package world

import (
	"context"
	"math/rand"
	"testing"
)

func TestGenerateReproducibility(t *testing.T) {
	ctx := context.Background()
	params := DefaultParams()
	params.Seed = 12345

	g1 := Generate(ctx, params)
	g2 := Generate(ctx, params)

	if !g1.Equal(g2) {
		t.Fatalf("Caves with the same params differ:\n%s\n\n%s", g1, g2)
	}
	if g1.Count(TileFloor) == 0 {
		t.Error("Expected the walkers to carve some floor")
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	p1 := DefaultParams()
	p1.Seed = 12345
	p2 := DefaultParams()
	p2.Seed = 54321

	if Generate(ctx, p1).Equal(Generate(ctx, p2)) {
		t.Error("Caves with different seeds should not be identical")
	}
}

func TestGenerateNoWalkers(t *testing.T) {
	params := DefaultParams()
	params.WalkerCount = 0

	g := Generate(context.Background(), params)

	s := g.Stats()
	if s.Floor != 0 || s.Edge != 0 || s.Island != 0 {
		t.Errorf("Expected an all-solid grid, got %+v", s)
	}
	if s.Solid != params.Width*params.Height {
		t.Errorf("Expected %d solid tiles, got %d", params.Width*params.Height, s.Solid)
	}
}

func TestGenerateWithMatchesManualWalkers(t *testing.T) {
	params := Params{
		Width:       30,
		Height:      16,
		WalkerCount: 3,
		Walker:      WalkerParams{Steps: 40, MaxStepLength: 3, BacktrackProbability: 0.25},
	}

	src1 := newSeededSource(7)
	got := GenerateWith(context.Background(), params, src1)

	// Same draws, same order: walkers one after another from the centre
	src2 := newSeededSource(7)
	want := NewGrid(params.Width, params.Height)
	for i := 0; i < params.WalkerCount; i++ {
		NewWalker(params.Walker, params.Width, params.Height).Walk(want, src2)
	}

	if !got.Equal(want) {
		t.Errorf("GenerateWith mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestGeneratedCaveInvariants(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 25; seed++ {
		params := DefaultParams()
		params.Width, params.Height = 40, 20
		params.Seed = seed
		g := Generate(ctx, params)

		// Every floor tile is bordered by floor, edge or island, never plain rock
		w, h := g.Dimensions()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !g.IsFloor(x, y) {
					continue
				}
				for _, n := range [][2]int{{x + 1, y}, {x - 1, y}, {x, y + 1}, {x, y - 1}} {
					if g.InBounds(n[0], n[1]) && g.IsSolid(n[0], n[1]) {
						t.Fatalf("seed %d: solid (%d,%d) next to floor (%d,%d)", seed, n[0], n[1], x, y)
					}
				}
			}
		}

		// Remaining rock reaches the border; islands never touch it
		reach := reachableFromBorder(g)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				switch g.Get(x, y) {
				case TileSolid, TileEdge:
					if !reach[y][x] {
						t.Fatalf("seed %d: enclosed rock at (%d,%d) was not marked island", seed, x, y)
					}
				case TileIsland:
					for _, n := range [][2]int{{x + 1, y}, {x - 1, y}, {x, y + 1}, {x, y - 1}} {
						if g.InBounds(n[0], n[1]) && reach[n[1]][n[0]] {
							t.Fatalf("seed %d: island (%d,%d) touches border-connected rock", seed, x, y)
						}
					}
				}
			}
		}

		// Post-processing is already settled
		settled := g.Clone()
		settled.DetectEdges()
		settled.IdentifyIslands()
		if !settled.Equal(g) {
			t.Fatalf("seed %d: rerunning the passes changed the cave", seed)
		}

		parsed, err := ParseGrid(g.String())
		if err != nil {
			t.Fatalf("seed %d: ParseGrid() failed: %v", seed, err)
		}
		if !parsed.Equal(g) {
			t.Fatalf("seed %d: text round trip changed the cave", seed)
		}
	}
}

func TestGenerateDegenerateSizes(t *testing.T) {
	ctx := context.Background()
	for _, size := range [][2]int{{0, 0}, {-4, 10}, {1, 1}, {2, 2}, {1, 9}, {3, 3}} {
		params := DefaultParams()
		params.Width, params.Height = size[0], size[1]

		g := Generate(ctx, params)
		if g.Count(TileIsland) != 0 && (size[0] < 3 || size[1] < 3) {
			t.Errorf("%dx%d: expected no islands on a grid that is all border", size[0], size[1])
		}
	}
}

func newSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
