package pathfind

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/matzehuels/smartedge/pkg/errors"
	"github.com/matzehuels/smartedge/pkg/grid"
)

// fEpsilon is the tolerance under which two f-scores count as equal.
const fEpsilon = 1e-9

// ctxCheckInterval is how many expansions pass between context checks.
const ctxCheckInterval = 1024

// move is one unit step with its cost.
type move struct {
	dc, dr int
	cost   float64
}

// compass lists the eight moves in expansion order: N, NE, E, SE, S, SW, W, NW.
var compass = [8]move{
	{0, -1, 1},
	{1, -1, math.Sqrt2},
	{1, 0, 1},
	{1, 1, math.Sqrt2},
	{0, 1, 1},
	{-1, 1, math.Sqrt2},
	{-1, 0, 1},
	{-1, -1, math.Sqrt2},
}

// orthogonal lists the four compass moves in expansion order: N, E, S, W.
var orthogonal = [4]move{
	{0, -1, 1},
	{1, 0, 1},
	{0, 1, 1},
	{-1, 0, 1},
}

// AStar is a grid A* search. The zero value is not usable; construct one with
// [NewAStarDiagonal] or [NewAStarOrthogonal].
type AStar struct {
	moves     []move
	heuristic func(a, b grid.Point) float64

	// MaxExpanded bounds the number of cells taken off the open set. Zero
	// means the number of cells in the grid, which a correct search can
	// never exceed.
	MaxExpanded int
}

// NewAStarDiagonal returns the 8-directional A* with the octile heuristic.
func NewAStarDiagonal() *AStar {
	return &AStar{moves: compass[:], heuristic: Octile}
}

// NewAStarOrthogonal returns the 4-directional A* with the Manhattan
// heuristic.
func NewAStarOrthogonal() *AStar {
	return &AStar{moves: orthogonal[:], heuristic: Manhattan}
}

// Octile is the exact move cost between two cells on an empty 8-connected
// grid: max(dx,dy) + (√2−1)·min(dx,dy).
func Octile(a, b grid.Point) float64 {
	dx := math.Abs(float64(a.Col - b.Col))
	dy := math.Abs(float64(a.Row - b.Row))
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// Manhattan is the exact move cost between two cells on an empty
// 4-connected grid.
func Manhattan(a, b grid.Point) float64 {
	dx := math.Abs(float64(a.Col - b.Col))
	dy := math.Abs(float64(a.Row - b.Row))
	return dx + dy
}

// searchNode is a cell on the open or closed set.
type searchNode struct {
	p      grid.Point
	g, f   float64
	seq    int // discovery order, refreshed when g improves
	parent *searchNode
	closed bool
	index  int // position in the heap, -1 once popped
}

// openSet is a min-heap of nodes ordered by f-score, then discovery order.
type openSet []*searchNode

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if d := o[i].f - o[j].f; math.Abs(d) > fEpsilon {
		return d < 0
	}
	return o[i].seq < o[j].seq
}

func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *openSet) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*o)
	*o = append(*o, n)
}

func (o *openSet) Pop() any {
	old := *o
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*o = old[:last]
	return n
}

// FindPath runs the search from start to end. It returns an error with
// code NO_PATH_FOUND when the frontier empties before end is reached and
// INVALID_INPUT when either cell lies outside g. A done ctx stops the
// search with an error wrapping ctx.Err().
func (a *AStar) FindPath(ctx context.Context, g *grid.Grid, start, end grid.Point) (Result, error) {
	if !g.InBounds(start) {
		return Result{}, errors.New(errors.ErrCodeInvalidInput, "start cell %v outside %dx%d grid", start, g.Cols, g.Rows)
	}
	if !g.InBounds(end) {
		return Result{}, errors.New(errors.ErrCodeInvalidInput, "end cell %v outside %dx%d grid", end, g.Cols, g.Rows)
	}
	if start == end {
		path := []grid.Point{start}
		return Result{Full: path, Smoothed: path, Expanded: 1}, nil
	}

	limit := a.MaxExpanded
	if limit <= 0 {
		limit = g.Size()
	}

	nodes := make([]*searchNode, g.Size())
	idx := func(p grid.Point) int { return p.Row*g.Cols + p.Col }

	seq := 0
	open := &openSet{}
	root := &searchNode{p: start, f: a.heuristic(start, end), seq: seq}
	nodes[idx(start)] = root
	heap.Push(open, root)

	expanded := 0
	for open.Len() > 0 {
		if expanded%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Expanded: expanded}, fmt.Errorf("search stopped after %d cells: %w", expanded, err)
			}
		}
		current := heap.Pop(open).(*searchNode)
		current.closed = true
		expanded++

		if current.p == end {
			full := reconstruct(current)
			return Result{
				Full:     full,
				Smoothed: Simplify(full),
				Cost:     current.g,
				Expanded: expanded,
			}, nil
		}
		if expanded > limit {
			return Result{}, errors.New(errors.ErrCodeInternal, "search exceeded %d expanded cells", limit)
		}

		for _, m := range a.moves {
			next := grid.Point{Col: current.p.Col + m.dc, Row: current.p.Row + m.dr}
			if !g.IsFree(next) {
				continue
			}
			if m.dc != 0 && m.dr != 0 && !canCutCorner(g, current.p, m) {
				continue
			}

			n := nodes[idx(next)]
			if n != nil && n.closed {
				continue
			}
			tentative := current.g + m.cost
			if n == nil {
				seq++
				n = &searchNode{p: next, g: tentative, f: tentative + a.heuristic(next, end), seq: seq, parent: current}
				nodes[idx(next)] = n
				heap.Push(open, n)
				continue
			}
			if tentative < n.g-fEpsilon {
				seq++
				n.g = tentative
				n.f = tentative + a.heuristic(next, end)
				n.seq = seq
				n.parent = current
				heap.Fix(open, n.index)
			}
		}
	}

	return Result{}, errors.New(errors.ErrCodeNoPathFound, "no path from %v to %v after expanding %d cells", start, end, expanded)
}

// canCutCorner reports whether the diagonal move m from p is allowed: at
// least one of the two orthogonally adjacent cells must be free.
func canCutCorner(g *grid.Grid, p grid.Point, m move) bool {
	return g.IsFree(grid.Point{Col: p.Col + m.dc, Row: p.Row}) ||
		g.IsFree(grid.Point{Col: p.Col, Row: p.Row + m.dr})
}

func reconstruct(n *searchNode) []grid.Point {
	var path []grid.Point
	for ; n != nil; n = n.parent {
		path = append(path, n.p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
