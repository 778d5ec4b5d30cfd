package validator

import (
	"context"
	"sort"

	"github.com/sharondrury/arrow-game/internal/domain"
)

// FastValidator checks the structural invariants of a board: every piece is
// a straight, contiguous run aligned with its direction, of exactly Length
// cells with consistent attributes and exactly one head. Overlap cannot be
// represented (a cell holds one id), so these checks cover everything the
// generator promises.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate returns ok and, when not ok, the cells of each offending piece.
func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.Move) {
	if g == nil {
		return false, nil
	}
	pieces := map[int][]domain.Move{}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if id := g.At(r, c).PieceID; id != 0 {
				pieces[id] = append(pieces[id], domain.Move{Row: r, Col: c})
			}
		}
	}

	var conf []domain.Move
	for _, cells := range pieces {
		if !pieceOK(g, cells) {
			conf = append(conf, cells...)
		}
	}
	sort.Slice(conf, func(i, j int) bool {
		if conf[i].Row != conf[j].Row {
			return conf[i].Row < conf[j].Row
		}
		return conf[i].Col < conf[j].Col
	})
	return len(conf) == 0, conf
}

func pieceOK(g *domain.Grid, cells []domain.Move) bool {
	first := g.At(cells[0].Row, cells[0].Col)
	heads := 0
	for _, m := range cells {
		cell := g.At(m.Row, m.Col)
		if cell.Dir != first.Dir || cell.Length != first.Length {
			return false
		}
		if cell.Head {
			heads++
		}
	}
	if heads != 1 || len(cells) != first.Length {
		return false
	}

	// Straight and contiguous along the piece's axis.
	_, dc := first.Dir.Delta()
	horizontal := dc != 0
	sorted := make([]domain.Move, len(cells))
	copy(sorted, cells)
	sort.Slice(sorted, func(i, j int) bool {
		if horizontal {
			return sorted[i].Col < sorted[j].Col
		}
		return sorted[i].Row < sorted[j].Row
	})
	for i := 1; i < len(sorted); i++ {
		if horizontal {
			if sorted[i].Row != sorted[0].Row || sorted[i].Col != sorted[i-1].Col+1 {
				return false
			}
		} else {
			if sorted[i].Col != sorted[0].Col || sorted[i].Row != sorted[i-1].Row+1 {
				return false
			}
		}
	}
	return true
}
