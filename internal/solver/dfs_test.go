package solver

import (
	"context"
	"testing"
	"time"

	"github.com/sharondrury/arrow-game/internal/domain"
)

func TestDFSSolveChainedDependencies(t *testing.T) {
	g := domain.NewGrid(4, 4)
	piece(g, 1, domain.DirRight, 2, 1, 1)
	piece(g, 2, domain.DirUp, 1, 1, 3)
	piece(g, 3, domain.DirUp, 2, 2, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	sol, _, ok := NewDFSSolver().Solve(ctx, g, 0)
	if !ok {
		t.Fatal("expected solution for chained board")
	}
	replay(t, g, sol)
}

func TestDFSSolveMutualBlockNotFound(t *testing.T) {
	g := domain.NewGrid(2, 2)
	piece(g, 1, domain.DirRight, 1, 0, 0)
	piece(g, 2, domain.DirLeft, 1, 0, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if sol, _, ok := NewDFSSolver().Solve(ctx, g, 1000); ok {
		t.Fatalf("expected not-found, got %+v", sol)
	}
}

func TestDFSSolveRespectsCap(t *testing.T) {
	g := domain.NewGrid(4, 4)
	piece(g, 1, domain.DirRight, 1, 1, 1)
	piece(g, 2, domain.DirLeft, 1, 1, 2)
	piece(g, 3, domain.DirUp, 1, 0, 0)
	piece(g, 4, domain.DirUp, 1, 0, 3)
	piece(g, 5, domain.DirDown, 1, 3, 0)
	piece(g, 6, domain.DirDown, 1, 3, 3)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	cap := 5
	_, st, ok := NewDFSSolver().Solve(ctx, g, cap)
	if ok {
		t.Fatal("board is unsolvable")
	}
	if st.States > cap {
		t.Fatalf("visited %d states, cap was %d", st.States, cap)
	}
}
