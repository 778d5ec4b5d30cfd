package usecase

import (
	"context"

	"github.com/sharondrury/arrow-game/internal/domain"
	"github.com/sharondrury/arrow-game/internal/ports"
	"github.com/sharondrury/arrow-game/internal/rules"
)

// Service aggregates the engine ports for the transport layer. Every
// operation is total: a missing dependency or malformed input yields the
// negative answer, never an error.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Hinter    ports.Hinter
	Validator ports.Validator
}

func NewService(s ports.Solver, g ports.Generator, h ports.Hinter, v ports.Validator) *Service {
	return &Service{Solver: s, Generator: g, Hinter: h, Validator: v}
}

func (u *Service) Solve(ctx context.Context, g *domain.Grid, maxStates int) (domain.Solution, ports.Stats, bool) {
	if u.Solver == nil {
		return nil, ports.Stats{}, false
	}
	return u.Solver.Solve(ctx, g, maxStates)
}

func (u *Service) Generate(ctx context.Context, seed int64, cfg domain.Config) (*domain.Level, ports.Stats) {
	if u.Generator == nil {
		return nil, ports.Stats{}
	}
	return u.Generator.Generate(ctx, seed, cfg)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid) (domain.Move, bool) {
	if u.Hinter == nil {
		return domain.Move{}, false
	}
	return u.Hinter.Hint(ctx, g)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.Move) {
	if u.Validator == nil {
		return false, nil
	}
	return u.Validator.Validate(ctx, g)
}

// CanExit answers the move-validation query for a live board.
func (u *Service) CanExit(g *domain.Grid, row, col int) bool {
	return rules.CanExit(g, row, col)
}
