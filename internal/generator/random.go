package generator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sharondrury/arrow-game/internal/domain"
	"github.com/sharondrury/arrow-game/internal/ports"
	"github.com/sharondrury/arrow-game/internal/rules"
)

var log = logrus.New()

// DefaultMaxAttempts bounds candidate construction when the config leaves
// MaxAttempts unset.
const DefaultMaxAttempts = 500

// RandomGenerator places pieces at random and keeps the first candidate the
// solver certifies. Placement is backtracking-free: a piece that does not fit
// is abandoned and the scan moves on, and only a whole board that fails
// certification is retried.
type RandomGenerator struct {
	Solver ports.Solver

	// MaxStates is the solver budget spent per candidate.
	MaxStates int

	mu     sync.Mutex
	nextID int
}

// NewRandomGenerator wires a generator that certifies candidates with the
// given solver.
func NewRandomGenerator(s ports.Solver) *RandomGenerator {
	return &RandomGenerator{Solver: s}
}

// Generate builds a solvable level for cfg, seeding the RNG with seed. It
// never fails: after the attempt budget (or a canceled ctx) it returns the
// deterministic fallback board. Calls are serialized so the piece-id counter
// stays monotonic across every attempt of every call.
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, cfg domain.Config) (*domain.Level, ports.Stats) {
	start := time.Now()
	g.mu.Lock()
	defer g.mu.Unlock()

	rng := rand.New(rand.NewSource(seed))
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	budget := g.MaxStates
	states := 0

	for attempt := 0; attempt < attempts; attempt++ {
		if ctx.Err() != nil {
			break
		}
		board := g.placePieces(rng, cfg)
		if board.PieceCount() == 0 {
			continue
		}
		// Necessary, not sufficient: a board with no exitable head cannot
		// be solvable, so skip the solver entirely.
		if len(rules.ExitableHeads(board)) == 0 {
			log.WithFields(logrus.Fields{
				"attempt": attempt, "pieces": board.PieceCount(),
			}).Debug("candidate has no exitable head")
			continue
		}
		sol, st, ok := g.Solver.Solve(ctx, board, budget)
		states += st.States
		if !ok {
			log.WithFields(logrus.Fields{
				"attempt": attempt, "states": st.States,
			}).Debug("candidate not certified")
			continue
		}
		return &domain.Level{
			ID:        uuid.New().String(),
			Seed:      seed,
			Config:    cfg,
			Board:     *board,
			Solution:  sol,
			CreatedAt: time.Now().UnixNano(),
		}, ports.Stats{States: states, Duration: time.Since(start)}
	}

	board, sol := g.fallback(cfg)
	return &domain.Level{
		ID:        uuid.New().String(),
		Seed:      seed,
		Config:    cfg,
		Board:     *board,
		Solution:  sol,
		CreatedAt: time.Now().UnixNano(),
	}, ports.Stats{States: states, Duration: time.Since(start)}
}

// placePieces builds one candidate board. Each still-empty cell becomes a
// head with probability cfg.Density; the tail extends opposite the sampled
// direction. A placement that runs off the board or into another piece is
// dropped without retrying the cell.
func (g *RandomGenerator) placePieces(rng *rand.Rand, cfg domain.Config) *domain.Grid {
	board := domain.NewGrid(cfg.Rows, cfg.Cols)
	maxLen := cfg.MaxLength
	if maxLen < 1 {
		maxLen = 1
	}
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			if board.At(r, c).PieceID != 0 {
				continue
			}
			if rng.Float64() >= cfg.Density {
				continue
			}
			dir := domain.Direction(rng.Intn(4))
			length := 1 + rng.Intn(maxLen)
			g.place(board, r, c, dir, length)
		}
	}
	return board
}

// place writes a piece with its head at (r, c), tail behind it. Returns
// false without touching the board if any required cell is unavailable.
func (g *RandomGenerator) place(board *domain.Grid, r, c int, dir domain.Direction, length int) bool {
	dr, dc := dir.Opposite().Delta()
	for i := 0; i < length; i++ {
		rr, cc := r+i*dr, c+i*dc
		if !board.InBounds(rr, cc) || board.At(rr, cc).PieceID != 0 {
			return false
		}
	}
	g.nextID++
	id := g.nextID
	for i := 0; i < length; i++ {
		board.Set(r+i*dr, c+i*dc, domain.Cell{
			PieceID: id,
			Dir:     dir,
			Length:  length,
			Head:    i == 0,
		})
	}
	return true
}

// fallback is the guaranteed-solvable board emitted when every attempt
// failed: one horizontal piece across (0,0) and (0,1) pointing right, head on
// the left cell, removable in a single move. With fewer than two columns it
// degrades to a lone single-cell piece.
func (g *RandomGenerator) fallback(cfg domain.Config) (*domain.Grid, domain.Solution) {
	rows, cols := cfg.Rows, cfg.Cols
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	board := domain.NewGrid(rows, cols)
	g.nextID++
	id := g.nextID
	if cols >= 2 {
		board.Set(0, 0, domain.Cell{PieceID: id, Dir: domain.DirRight, Length: 2, Head: true})
		board.Set(0, 1, domain.Cell{PieceID: id, Dir: domain.DirRight, Length: 2})
	} else {
		board.Set(0, 0, domain.Cell{PieceID: id, Dir: domain.DirRight, Length: 1, Head: true})
	}
	log.WithFields(logrus.Fields{"rows": rows, "cols": cols}).Debug("emitting fallback board")
	return board, domain.Solution{{Row: 0, Col: 0}}
}
