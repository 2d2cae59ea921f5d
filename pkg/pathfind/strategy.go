package pathfind

import (
	"context"
	"sort"
	"strings"

	"github.com/matzehuels/smartedge/pkg/errors"
	"github.com/matzehuels/smartedge/pkg/grid"
)

// Result is the outcome of a successful search.
type Result struct {
	Full     []grid.Point // every cell from start to end inclusive
	Smoothed []grid.Point // direction changes of Full, endpoints kept
	Cost     float64      // total step cost of Full
	Expanded int          // cells taken off the open set
}

// Strategy finds a path between two cells of a grid. Implementations must
// not modify g and should stop with ctx's error once ctx is done.
type Strategy interface {
	FindPath(ctx context.Context, g *grid.Grid, start, end grid.Point) (Result, error)
}

// StrategyFunc adapts an ordinary function to the [Strategy] interface.
type StrategyFunc func(ctx context.Context, g *grid.Grid, start, end grid.Point) (Result, error)

// FindPath calls f(ctx, g, start, end).
func (f StrategyFunc) FindPath(ctx context.Context, g *grid.Grid, start, end grid.Point) (Result, error) {
	return f(ctx, g, start, end)
}

// Strategy names accepted by [Lookup].
const (
	NameDiagonal   = "astar"
	NameOrthogonal = "orthogonal"
)

var strategies = map[string]func() Strategy{
	NameDiagonal:   func() Strategy { return NewAStarDiagonal() },
	NameOrthogonal: func() Strategy { return NewAStarOrthogonal() },
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh strategy by name. Matching is case-insensitive and
// the empty name selects the diagonal A*.
func Lookup(name string) (Strategy, error) {
	if name == "" {
		return NewAStarDiagonal(), nil
	}
	if err := errors.ValidateName("path strategy", name, Names()); err != nil {
		return nil, err
	}
	return strategies[strings.ToLower(name)](), nil
}
