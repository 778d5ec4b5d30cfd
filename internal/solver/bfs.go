package solver

import (
	"context"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/sharondrury/arrow-game/internal/domain"
	"github.com/sharondrury/arrow-game/internal/ports"
	"github.com/sharondrury/arrow-game/internal/rules"
)

// DefaultMaxStates is the exploration budget used when callers pass a
// non-positive cap.
const DefaultMaxStates = 20000

// BFSSolver explores whole-piece removals breadth-first. It is a bounded
// solvability certifier, not an exhaustive prover: once the dequeued-state
// counter exceeds the cap it reports not-found, the same answer as true
// unsolvability.
type BFSSolver struct{}

func NewBFSSolver() *BFSSolver { return &BFSSolver{} }

type node struct {
	grid *domain.Grid
	path domain.Solution
}

// Solve returns a move sequence clearing the board, or ok=false when the
// frontier empties or the state budget is exhausted. Identical occupancy
// patterns reached by different move orders are deduplicated by canonical
// key, which keeps independent-piece orderings from blowing up the frontier.
func (s *BFSSolver) Solve(ctx context.Context, g *domain.Grid, maxStates int) (domain.Solution, ports.Stats, bool) {
	start := time.Now()
	if g == nil {
		return nil, ports.Stats{Duration: time.Since(start)}, false
	}
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	root := g.Clone()
	visited := mapset.New[string]()
	visited.Put(root.Key())
	queue := []node{{grid: root}}
	states := 0

	for len(queue) > 0 {
		if ctx.Err() != nil {
			break
		}
		cur := queue[0]
		queue = queue[1:]
		states++
		if states > maxStates {
			break
		}
		if cur.grid.Cleared() {
			return cur.path, ports.Stats{States: states, Duration: time.Since(start)}, true
		}
		for _, m := range rules.ExitableHeads(cur.grid) {
			next := cur.grid.Clone()
			next.RemovePiece(next.At(m.Row, m.Col).PieceID)
			key := next.Key()
			if visited.Has(key) {
				continue
			}
			visited.Put(key)
			path := make(domain.Solution, len(cur.path)+1)
			copy(path, cur.path)
			path[len(cur.path)] = m
			queue = append(queue, node{grid: next, path: path})
		}
	}
	return nil, ports.Stats{States: states, Duration: time.Since(start)}, false
}
