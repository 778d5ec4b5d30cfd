// Package rules holds the exit predicate, the single source of truth for
// "can this piece leave the board now". Generation validation, hinting and
// the solver's move enumeration all go through it.
package rules

import "github.com/sharondrury/arrow-game/internal/domain"

// CanExit reports whether the piece headed at (row, col) can currently slide
// off the board. It is false when the cell does not hold a head segment.
// Starting one step beyond the head, the walk toward the edge must meet only
// empty cells or the piece's own segments; any foreign segment blocks the
// exit. Passing over the piece's own tail is fine.
func CanExit(g *domain.Grid, row, col int) bool {
	if g == nil {
		return false
	}
	head := g.At(row, col)
	if head.PieceID == 0 || !head.Head {
		return false
	}
	dr, dc := head.Dir.Delta()
	for r, c := row+dr, col+dc; g.InBounds(r, c); r, c = r+dr, c+dc {
		if cell := g.At(r, c); cell.PieceID != 0 && cell.PieceID != head.PieceID {
			return false
		}
	}
	return true
}

// ExitableHeads returns, in row-major order, every head cell whose piece can
// exit right now. The solver enumerates transitions from this list and the
// hinter takes its first element.
func ExitableHeads(g *domain.Grid) []domain.Move {
	if g == nil {
		return nil
	}
	var heads []domain.Move
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if cell := g.At(r, c); cell.Head && CanExit(g, r, c) {
				heads = append(heads, domain.Move{Row: r, Col: c})
			}
		}
	}
	return heads
}
