package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func piece(g *Grid, id int, dir Direction, length, headR, headC int) {
	dr, dc := dir.Opposite().Delta()
	for i := 0; i < length; i++ {
		g.Set(headR+i*dr, headC+i*dc, Cell{PieceID: id, Dir: dir, Length: length, Head: i == 0})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	initial := NewGrid(3, 3)
	piece(initial, 1, DirRight, 2, 1, 2)
	piece(initial, 2, DirUp, 1, 2, 0)

	working := initial.Clone()
	working.RemovePiece(1)
	working.RemovePiece(2)
	if !working.Cleared() {
		t.Fatal("working copy should be cleared after removing both pieces")
	}

	// Playing on the clone must not touch the retained initial grid.
	if initial.Cleared() {
		t.Fatal("initial grid was mutated through the clone")
	}
	reset := initial.Clone()
	if diff := cmp.Diff(initial, reset); diff != "" {
		t.Fatalf("re-clone differs from initial (-want +got):\n%s", diff)
	}
}

func TestKeyMatchesOccupancy(t *testing.T) {
	a := NewGrid(2, 2)
	piece(a, 1, DirRight, 1, 0, 0)

	b := NewGrid(2, 2)
	// Same occupancy, different piece attributes: keys must match.
	b.Set(0, 0, Cell{PieceID: 1, Dir: DirDown, Length: 1, Head: true})
	if a.Key() != b.Key() {
		t.Fatalf("keys differ for identical occupancy: %q vs %q", a.Key(), b.Key())
	}

	c := NewGrid(2, 2)
	piece(c, 1, DirRight, 1, 0, 1)
	if a.Key() == c.Key() {
		t.Fatalf("keys collide for distinct occupancy: %q", a.Key())
	}

	if got, want := a.Key(), "1,0;0,0"; got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
}

func TestKeySeparatorsKeepIdsApart(t *testing.T) {
	// One piece with id 12 must not collide with pieces 1 and 2 side by side.
	a := NewGrid(1, 2)
	a.Set(0, 0, Cell{PieceID: 12, Dir: DirLeft, Length: 1, Head: true})

	b := NewGrid(1, 2)
	b.Set(0, 0, Cell{PieceID: 1, Dir: DirLeft, Length: 1, Head: true})
	b.Set(0, 1, Cell{PieceID: 2, Dir: DirRight, Length: 1, Head: true})

	if a.Key() == b.Key() {
		t.Fatalf("keys collide: %q", a.Key())
	}
}

func TestRemovePiece(t *testing.T) {
	g := NewGrid(3, 3)
	piece(g, 7, DirDown, 3, 2, 1)
	if n := g.RemovePiece(7); n != 3 {
		t.Fatalf("RemovePiece freed %d cells, want 3", n)
	}
	if !g.Cleared() {
		t.Fatal("grid not cleared after removing its only piece")
	}
	if n := g.RemovePiece(0); n != 0 {
		t.Fatalf("RemovePiece(0) freed %d cells, want 0", n)
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	if got := g.At(-1, 0); got.PieceID != 0 {
		t.Fatalf("At(-1,0) = %+v, want empty", got)
	}
	if got := g.At(0, 2); got.PieceID != 0 {
		t.Fatalf("At(0,2) = %+v, want empty", got)
	}
}
