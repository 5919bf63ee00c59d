package maze

import "fmt"

// Position addresses a cell in the grid.
type Position struct {
	X int `json:"x"` // X is the column along the width axis.
	Y int `json:"y"` // Y is the layer along the height axis.
	Z int `json:"z"` // Z is the row along the depth axis.
}

// Add returns p shifted by delta.
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y, Z: p.Z + delta.Z}
}

// Sub returns the offset from other to p.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// String formats the position as "(x,y,z)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Origin is the entry cell every maze is grown from.
var Origin = Position{}

// Cell represents a single cell in a maze grid.
// It holds the six wall flags, the visitation state and the distance from the origin.
type Cell struct {
	Pos      Position             // Pos is the cell's coordinate in the grid.
	Visited  bool                 // Visited is set once generation claims the cell.
	Distance int                  // Distance is the tree distance from the origin, set by the farthest-cell search.
	Goal     bool                 // Goal marks the single farthest cell.
	walls    [directionCount]bool // walls[d] is true while the wall facing d is closed.
}

// HasWall reports whether the wall facing d is still closed.
func (c *Cell) HasWall(d Direction) bool {
	return c.walls[d]
}

// OpenDirections returns the directions whose walls have been opened.
func (c *Cell) OpenDirections() []Direction {
	var open []Direction
	for _, d := range Directions {
		if !c.walls[d] {
			open = append(open, d)
		}
	}
	return open
}

// reset closes every wall and clears the generation state.
func (c *Cell) reset(pos Position) {
	c.Pos = pos
	c.Visited = false
	c.Distance = 0
	c.Goal = false
	for i := range c.walls {
		c.walls[i] = true
	}
}
