package domain

import (
	"strconv"
	"strings"
)

// Cell is one square of the board. PieceID 0 means empty; otherwise the cell
// is a segment of the piece with that id. Exactly one segment per piece has
// Head set; it is the segment whose forward path decides removability.
type Cell struct {
	PieceID int       `json:"pieceId"`
	Dir     Direction `json:"dir,omitempty"`
	Length  int       `json:"length,omitempty"`
	Head    bool      `json:"head,omitempty"`
}

// Grid is a rectangular board of cells, stored row-major: index = r*Cols + c.
// Dimensions are fixed for the grid's lifetime.
type Grid struct {
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Cells []Cell `json:"cells"`
}

// Move identifies the head cell of the piece removed at one step.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Solution is an ordered move sequence; applying it to the starting grid,
// removing the whole piece at each step, clears the board.
type Solution []Move

// Config is the generation parameter surface. Callers are expected to supply
// rows and cols in [2,12], density in [0,0.9] and max length in [1,4]; the
// engine does not clamp.
type Config struct {
	Rows        int     `json:"rows"`
	Cols        int     `json:"cols"`
	Density     float64 `json:"density"`
	MaxLength   int     `json:"maxLength"`
	MaxAttempts int     `json:"maxAttempts,omitempty"`
}

// Level is a published initial board. Board stays unmutated so the UI can
// reset; play happens on clones. Solution is the move sequence found while
// certifying the board during generation.
type Level struct {
	ID        string   `json:"id"`
	Seed      int64    `json:"seed"`
	Config    Config   `json:"config"`
	Board     Grid     `json:"board"`
	Solution  Solution `json:"solution,omitempty"`
	CreatedAt int64    `json:"createdAt"`
}

// NewGrid returns an all-empty grid of the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{Rows: rows, Cols: cols, Cells: make([]Cell, rows*cols)}
}

// InBounds reports whether (r, c) lies on the board.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// At returns the cell at (r, c), or an empty cell when out of bounds.
func (g *Grid) At(r, c int) Cell {
	if !g.InBounds(r, c) {
		return Cell{}
	}
	return g.Cells[r*g.Cols+c]
}

// Set writes the cell at (r, c); out-of-bounds writes are dropped.
func (g *Grid) Set(r, c int, cell Cell) {
	if g.InBounds(r, c) {
		g.Cells[r*g.Cols+c] = cell
	}
}

// Clone returns a deep copy. Search states and play boards are always clones;
// the initial grid is never mutated.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// Cleared reports whether every cell is empty, the solved terminal state.
func (g *Grid) Cleared() bool {
	for i := range g.Cells {
		if g.Cells[i].PieceID != 0 {
			return false
		}
	}
	return true
}

// RemovePiece clears every segment of the given piece and returns how many
// cells it freed.
func (g *Grid) RemovePiece(id int) int {
	if id == 0 {
		return 0
	}
	n := 0
	for i := range g.Cells {
		if g.Cells[i].PieceID == id {
			g.Cells[i] = Cell{}
			n++
		}
	}
	return n
}

// PieceCount returns the number of distinct pieces on the board.
func (g *Grid) PieceCount() int {
	seen := map[int]struct{}{}
	for i := range g.Cells {
		if id := g.Cells[i].PieceID; id != 0 {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// Key returns the canonical occupancy encoding: piece ids joined by commas,
// rows joined by semicolons. Two grids share a key iff every cell holds the
// same piece id in both. Piece attributes are irrelevant once ids match,
// since search states differ only by whole-piece removals.
func (g *Grid) Key() string {
	var b strings.Builder
	b.Grow(len(g.Cells) * 2)
	for r := 0; r < g.Rows; r++ {
		if r > 0 {
			b.WriteByte(';')
		}
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(g.Cells[r*g.Cols+c].PieceID))
		}
	}
	return b.String()
}
