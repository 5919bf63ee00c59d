package maze

import (
	"fmt"
	"strings"
)

// String renders the maze one y layer at a time, viewed from above.
//
// Each layer is drawn as an x by z ASCII grid. Inside a cell, "G" marks the
// goal, "X" an open passage both up and down, "^" up only and "v" down only.
func (g *Grid) String() string {
	var output strings.Builder

	for y := 0; y < g.height; y++ {
		fmt.Fprintf(&output, "layer y=%d\n", y)

		// Top boundary
		output.WriteString("+" + strings.Repeat("---+", g.width) + "\n")

		for z := 0; z < g.depth; z++ {
			// Cell rows
			cellRow := "|"
			for x := 0; x < g.width; x++ {
				pos := Position{X: x, Y: y, Z: z}
				cellRow += " " + g.marker(pos) + " "

				// Add +x wall or space
				if g.IsOpen(pos, PosX) {
					cellRow += " "
				} else {
					cellRow += "|"
				}
			}
			output.WriteString(cellRow + "\n")

			// Wall rows
			wallRow := "+"
			for x := 0; x < g.width; x++ {
				if g.IsOpen(Position{X: x, Y: y, Z: z}, PosZ) {
					wallRow += "   +"
				} else {
					wallRow += "---+"
				}
			}
			output.WriteString(wallRow + "\n")
		}
	}

	return output.String()
}

func (g *Grid) marker(pos Position) string {
	if g.cells[g.index(pos)].Goal {
		return "G"
	}

	up, down := g.IsOpen(pos, PosY), g.IsOpen(pos, NegY)
	switch {
	case up && down:
		return "X"
	case up:
		return "^"
	case down:
		return "v"
	default:
		return " "
	}
}
