package maze

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"
)

// ErrNotPerfect is returned by IsPerfect when the open walls do not form a spanning tree.
var ErrNotPerfect = errors.New("maze is not perfect")

// positiveDirections visits each wall pair once, from the cell on its negative side.
var positiveDirections = [...]Direction{PosX, PosY, PosZ}

// IsPerfect checks that every cell is visited and that the open walls form a
// spanning tree: exactly Size()-1 edges, no cycle, every cell reachable from the origin.
func IsPerfect(g *Grid) error {
	elements := make([]*disjoint.Element, g.Size())
	for i := range elements {
		elements[i] = disjoint.NewElement()
	}

	edges := 0
	for c := range g.Cells() {
		if !c.Visited {
			return fmt.Errorf("%w: %s was never visited", ErrNotPerfect, c.Pos)
		}
		for _, d := range positiveDirections {
			if !g.IsOpen(c.Pos, d) {
				continue
			}
			a, b := elements[g.index(c.Pos)], elements[g.index(c.Pos.Add(d.Delta()))]
			if a.Find() == b.Find() {
				return fmt.Errorf("%w: wall %s of %s closes a cycle", ErrNotPerfect, d, c.Pos)
			}
			disjoint.Union(a, b)
			edges++
		}
	}

	if edges != g.Size()-1 {
		return fmt.Errorf("%w: %d open walls for %d cells", ErrNotPerfect, edges, g.Size())
	}

	if reached := Reachable(g, Origin).Size(); reached != g.Size() {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrNotPerfect, reached, g.Size())
	}
	return nil
}

// Reachable returns every position connected to start through open walls.
func Reachable(g *Grid, start Position) mapset.Set[Position] {
	reached := mapset.New[Position]()
	if !g.InBound(start) {
		return reached
	}

	stack := []Position{start}
	for len(stack) > 0 {
		pos := pop(&stack)
		if reached.Has(pos) {
			continue
		}
		reached.Put(pos)
		for _, n := range g.OpenNeighbors(pos) {
			if !reached.Has(n) {
				stack = append(stack, n)
			}
		}
	}
	return reached
}
