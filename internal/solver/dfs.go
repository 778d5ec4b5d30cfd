package solver

import (
	"context"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/sharondrury/arrow-game/internal/domain"
	"github.com/sharondrury/arrow-game/internal/ports"
	"github.com/sharondrury/arrow-game/internal/rules"
)

// DFSSolver is a depth-first alternative with the same bounded contract as
// BFSSolver. Its solutions are valid but carry no layer-order property; it
// tends to certify deep boards with fewer explored states.
type DFSSolver struct{}

func NewDFSSolver() *DFSSolver { return &DFSSolver{} }

func (s *DFSSolver) Solve(ctx context.Context, g *domain.Grid, maxStates int) (domain.Solution, ports.Stats, bool) {
	start := time.Now()
	if g == nil {
		return nil, ports.Stats{Duration: time.Since(start)}, false
	}
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	visited := mapset.New[string]()
	states := 0
	var path domain.Solution

	var dfs func(cur *domain.Grid) bool
	dfs = func(cur *domain.Grid) bool {
		if ctx.Err() != nil || states >= maxStates {
			return false
		}
		states++
		if cur.Cleared() {
			return true
		}
		for _, m := range rules.ExitableHeads(cur) {
			next := cur.Clone()
			next.RemovePiece(next.At(m.Row, m.Col).PieceID)
			key := next.Key()
			if visited.Has(key) {
				continue
			}
			visited.Put(key)
			path = append(path, m)
			if dfs(next) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}

	root := g.Clone()
	visited.Put(root.Key())
	if dfs(root) {
		out := make(domain.Solution, len(path))
		copy(out, path)
		return out, ports.Stats{States: states, Duration: time.Since(start)}, true
	}
	return nil, ports.Stats{States: states, Duration: time.Since(start)}, false
}
