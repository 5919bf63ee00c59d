package maze

import (
	"math/rand"
)

// Result summarizes one generation run.
type Result struct {
	Goal         Position // Goal is the farthest cell from the origin.
	GoalDistance int      // GoalDistance is the tree distance from the origin to Goal.
	Walls        []Wall   // Walls lists every opened wall pair in carving order.
	Visited      int      // Visited counts the cells claimed by the carve.
}

// Maze is a generated grid together with the seed that reproduces it.
type Maze struct {
	Grid   *Grid
	Seed   int64
	Result *Result
}

// New builds a grid from cfg and carves a maze in it. Events are reported to l,
// which may be nil.
func New(cfg Config, l Listener) (*Maze, error) {
	grid, err := NewGrid(cfg.Dimensions())
	if err != nil {
		return nil, err
	}

	seed := cfg.ResolveSeed()
	result, err := Generate(grid, NewRand(seed), l)
	if err != nil {
		return nil, err
	}

	return &Maze{Grid: grid, Seed: seed, Result: result}, nil
}

// step is a pending stack entry: a cell waiting to be claimed and the cell that pushed it.
type step struct {
	cell      Position
	parent    Position
	hasParent bool
}

// Generate carves a perfect maze in g and places the goal on the farthest cell.
// A grid that has already been generated is reset first. rng drives the
// neighbor order; a nil rng is seeded from the clock.
func Generate(g *Grid, rng *rand.Rand, l Listener) (*Result, error) {
	if rng == nil {
		rng = NewRand(Config{}.ResolveSeed())
	}
	if l == nil {
		l = ListenerFuncs{}
	}
	if !g.fresh() {
		g.Reset()
	}

	result := &Result{Walls: make([]Wall, 0, g.Size()-1)}
	if err := carve(g, rng, l, result); err != nil {
		return nil, err
	}

	goal, distance := Farthest(g)
	for c := range g.Cells() {
		c.Goal = false
	}
	g.cells[g.index(goal)].Goal = true
	result.Goal = goal
	result.GoalDistance = distance
	l.GoalPlaced(goal, distance)

	return result, nil
}

// carve runs the randomized depth-first construction from the origin.
// Every unvisited neighbor is pushed in shuffled order and only the first pop of
// a cell claims it; later pops of the same cell are discarded, which is where
// backtracking happens.
func carve(g *Grid, rng *rand.Rand, l Listener, result *Result) error {
	stack := []step{{cell: Origin}}

	for len(stack) > 0 {
		current := pop(&stack)
		cell := &g.cells[g.index(current.cell)]
		if cell.Visited {
			continue
		}

		cell.Visited = true
		result.Visited++
		l.CellVisited(current.cell)

		if current.hasParent {
			d, err := g.OpenWallBetween(current.parent, current.cell)
			if err != nil {
				return err
			}
			wall := Wall{From: current.parent, To: current.cell, Direction: d}
			result.Walls = append(result.Walls, wall)
			l.WallOpened(wall)
		}

		next := g.unvisitedNeighbors(current.cell)
		rng.Shuffle(len(next), func(i, j int) {
			next[i], next[j] = next[j], next[i]
		})
		for _, n := range next {
			stack = append(stack, step{cell: n, parent: current.cell, hasParent: true})
		}
	}

	return nil
}

// unvisitedNeighbors returns the neighbors of pos that have not been claimed yet.
func (g *Grid) unvisitedNeighbors(pos Position) []Position {
	neighbors := g.Neighbors(pos)
	unvisited := neighbors[:0]
	for _, n := range neighbors {
		if !g.cells[g.index(n)].Visited {
			unvisited = append(unvisited, n)
		}
	}
	return unvisited
}

// pop removes and returns the last element of a stack.
func pop[T any](s *[]T) T {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
