package hint

import (
	"context"

	"github.com/sharondrury/arrow-game/internal/domain"
	"github.com/sharondrury/arrow-game/internal/rules"
)

// FirstExit implements a minimal Hinter: no search, just the first head in
// row-major order whose piece can exit right now.
type FirstExit struct{}

func NewFirstExit() *FirstExit { return &FirstExit{} }

// Hint returns the coordinate of the first exitable head, or ok=false when
// no move is currently available.
func (h *FirstExit) Hint(ctx context.Context, g *domain.Grid) (domain.Move, bool) {
	if g == nil || ctx.Err() != nil {
		return domain.Move{}, false
	}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if cell := g.At(r, c); cell.Head && rules.CanExit(g, r, c) {
				return domain.Move{Row: r, Col: c}, true
			}
		}
	}
	return domain.Move{}, false
}
