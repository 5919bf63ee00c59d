/*
Package maze carves perfect mazes inside three-dimensional grids.

A Grid owns a dense block of cells, each with six walls. Generate grows a
randomized depth-first spanning tree from the origin, opening one wall pair per
tree edge, then runs a breadth-first search over the open walls to place the
goal on the cell farthest from the origin. Progress is reported to a Listener
as CellVisited, WallOpened and GoalPlaced events.
*/
package maze

import (
	"errors"
	"fmt"
	"iter"
)

// Precondition errors. None of them occur under correct use of the package.
var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrOutOfBounds      = errors.New("position is out of the maze")
	ErrNotAdjacent      = errors.New("cells are not adjacent")
)

// MaxCells is the largest grid NewGrid allocates.
const MaxCells = 1 << 22

// Grid is a fixed-size width x height x depth block of cells.
type Grid struct {
	width  int
	height int
	depth  int
	cells  []Cell // cells is indexed by x + width*(y + height*z).
}

// NewGrid allocates a grid with every cell unvisited and every wall closed.
func NewGrid(width, height, depth int) (*Grid, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimension, width, height, depth)
	}
	// Divisions instead of the product, which can overflow.
	if width > MaxCells || height > MaxCells/width || depth > MaxCells/(width*height) {
		return nil, fmt.Errorf("%w: %dx%dx%d exceeds %d cells", ErrInvalidDimension, width, height, depth, MaxCells)
	}

	g := &Grid{
		width:  width,
		height: height,
		depth:  depth,
		cells:  make([]Cell, width*height*depth),
	}
	g.Reset()
	return g, nil
}

// Reset re-initializes every cell so the grid can be used for a new generation.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].reset(g.positionOf(i))
	}
}

// Width returns the number of cells along the x axis.
func (g *Grid) Width() int { return g.width }

// Height returns the number of cells along the y axis.
func (g *Grid) Height() int { return g.height }

// Depth returns the number of cells along the z axis.
func (g *Grid) Depth() int { return g.depth }

// Size returns the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBound reports whether pos addresses a cell of the grid.
func (g *Grid) InBound(pos Position) bool {
	return pos.X >= 0 && pos.X < g.width &&
		pos.Y >= 0 && pos.Y < g.height &&
		pos.Z >= 0 && pos.Z < g.depth
}

// Get returns the cell at pos.
func (g *Grid) Get(pos Position) (*Cell, error) {
	if !g.InBound(pos) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	return &g.cells[g.index(pos)], nil
}

// Cells yields every cell in storage order.
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// Neighbors returns the in-bound positions adjacent to pos, in Directions order.
// Directions that would leave the grid are omitted.
func (g *Grid) Neighbors(pos Position) []Position {
	neighbors := make([]Position, 0, directionCount)
	for _, d := range Directions {
		next := pos.Add(d.Delta())
		if g.InBound(next) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// DirectionBetween resolves which wall of a faces b.
func (g *Grid) DirectionBetween(a, b Position) (Direction, error) {
	if !g.InBound(a) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, a)
	}
	if !g.InBound(b) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, b)
	}

	d, ok := directionOf(b.Sub(a))
	if !ok {
		return 0, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}
	return d, nil
}

// OpenWallBetween clears the wall of a facing b and the matching wall of b
// facing a. It returns the direction from a to b.
func (g *Grid) OpenWallBetween(a, b Position) (Direction, error) {
	d, err := g.DirectionBetween(a, b)
	if err != nil {
		return 0, err
	}

	g.cells[g.index(a)].walls[d] = false
	g.cells[g.index(b)].walls[d.Opposite()] = false
	return d, nil
}

// IsOpen reports whether the wall of the cell at pos facing d has been opened.
// Walls on the grid boundary are never open.
func (g *Grid) IsOpen(pos Position, d Direction) bool {
	if !g.InBound(pos) || !d.Valid() || !g.InBound(pos.Add(d.Delta())) {
		return false
	}
	return !g.cells[g.index(pos)].walls[d]
}

// OpenNeighbors returns the adjacent positions reachable from pos through open walls.
func (g *Grid) OpenNeighbors(pos Position) []Position {
	neighbors := make([]Position, 0, directionCount)
	for _, d := range Directions {
		if g.IsOpen(pos, d) {
			neighbors = append(neighbors, pos.Add(d.Delta()))
		}
	}
	return neighbors
}

// Goal returns the position of the goal cell, if one has been placed.
func (g *Grid) Goal() (Position, bool) {
	for i := range g.cells {
		if g.cells[i].Goal {
			return g.cells[i].Pos, true
		}
	}
	return Position{}, false
}

// fresh reports whether no cell has been claimed yet.
func (g *Grid) fresh() bool {
	for i := range g.cells {
		if g.cells[i].Visited {
			return false
		}
	}
	return true
}

func (g *Grid) index(pos Position) int {
	return pos.X + g.width*(pos.Y+g.height*pos.Z)
}

func (g *Grid) positionOf(i int) Position {
	return Position{
		X: i % g.width,
		Y: (i / g.width) % g.height,
		Z: i / (g.width * g.height),
	}
}
