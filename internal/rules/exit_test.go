package rules

import (
	"testing"

	"github.com/sharondrury/arrow-game/internal/domain"
)

func piece(g *domain.Grid, id int, dir domain.Direction, length, headR, headC int) {
	dr, dc := dir.Opposite().Delta()
	for i := 0; i < length; i++ {
		g.Set(headR+i*dr, headC+i*dc, domain.Cell{PieceID: id, Dir: dir, Length: length, Head: i == 0})
	}
}

func TestCanExitClearPath(t *testing.T) {
	// Single piece at (0,0) pointing right on a 2x2 board: (0,1) is empty,
	// then off-grid, so the path is clear.
	g := domain.NewGrid(2, 2)
	piece(g, 1, domain.DirRight, 1, 0, 0)
	if !CanExit(g, 0, 0) {
		t.Fatal("expected clear exit for lone piece")
	}
}

func TestCanExitBlockedByForeignPiece(t *testing.T) {
	// Two length-1 pieces facing each other block each other.
	g := domain.NewGrid(2, 2)
	piece(g, 1, domain.DirRight, 1, 0, 0)
	piece(g, 2, domain.DirLeft, 1, 0, 1)
	if CanExit(g, 0, 0) {
		t.Fatal("piece 1 should be blocked by piece 2")
	}
	if CanExit(g, 0, 1) {
		t.Fatal("piece 2 should be blocked by piece 1")
	}
}

func TestCanExitPassesOverOwnSegments(t *testing.T) {
	// Head on the left, tail in front of it: the walk crosses the piece's
	// own segment at (0,1) and that does not block.
	g := domain.NewGrid(1, 3)
	g.Set(0, 0, domain.Cell{PieceID: 1, Dir: domain.DirRight, Length: 2, Head: true})
	g.Set(0, 1, domain.Cell{PieceID: 1, Dir: domain.DirRight, Length: 2})
	if !CanExit(g, 0, 0) {
		t.Fatal("own segments must not block the exit path")
	}

	// A foreign piece beyond the tail still blocks.
	piece(g, 2, domain.DirDown, 1, 0, 2)
	if CanExit(g, 0, 0) {
		t.Fatal("foreign piece beyond own tail should block")
	}
}

func TestCanExitNonHeadQueries(t *testing.T) {
	g := domain.NewGrid(3, 3)
	piece(g, 1, domain.DirDown, 2, 2, 1) // head (2,1), tail (1,1)

	cases := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"head with clear path", 2, 1, true},
		{"tail segment", 1, 1, false},
		{"empty cell", 0, 0, false},
		{"out of bounds", 5, 5, false},
		{"negative coords", -1, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanExit(g, tc.row, tc.col); got != tc.want {
				t.Fatalf("CanExit(%d,%d) = %v, want %v", tc.row, tc.col, got, tc.want)
			}
		})
	}
}

func TestCanExitNilGrid(t *testing.T) {
	if CanExit(nil, 0, 0) {
		t.Fatal("nil grid must not be exitable")
	}
}

func TestExitableHeadsRowMajorOrder(t *testing.T) {
	g := domain.NewGrid(3, 3)
	piece(g, 1, domain.DirUp, 1, 0, 2)
	piece(g, 2, domain.DirDown, 1, 2, 0)
	piece(g, 3, domain.DirLeft, 1, 1, 0)

	heads := ExitableHeads(g)
	want := []domain.Move{{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}
	if len(heads) != len(want) {
		t.Fatalf("got %d heads, want %d", len(heads), len(want))
	}
	for i := range want {
		if heads[i] != want[i] {
			t.Fatalf("heads[%d] = %+v, want %+v", i, heads[i], want[i])
		}
	}
}
