package ports

import (
	"context"
	"time"

	"github.com/sharondrury/arrow-game/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	States   int
	Duration time.Duration
}

// Solver certifies that a board can be cleared within a bounded search.
// The ok result does not distinguish "proven unsolvable" from "budget
// exhausted"; callers only need found vs not.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid, maxStates int) (domain.Solution, Stats, bool)
}

// Generator produces a solvable level. It never fails: when the attempt
// budget runs out it returns a deterministic fallback board.
type Generator interface {
	Generate(ctx context.Context, seed int64, cfg domain.Config) (*domain.Level, Stats)
}

// Hinter suggests the next removable piece on a live board.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Move, bool)
}

// Validator checks structural invariants of a board (straight, contiguous,
// non-overlapping pieces with exactly one head each).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (bool, []domain.Move)
}
