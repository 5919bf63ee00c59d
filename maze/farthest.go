package maze

// Farthest runs a breadth-first search from the origin through open walls,
// records every reached cell's distance, and returns the farthest cell.
// On a tie the first cell discovered at the maximum distance wins.
func Farthest(g *Grid) (Position, int) {
	seen := make([]bool, g.Size())
	seen[g.index(Origin)] = true
	g.cells[g.index(Origin)].Distance = 0

	farthest, maxDistance := Origin, 0
	queue := []Position{Origin}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		distance := g.cells[g.index(pos)].Distance

		if distance > maxDistance {
			farthest, maxDistance = pos, distance
		}

		for _, n := range g.OpenNeighbors(pos) {
			i := g.index(n)
			if seen[i] {
				continue
			}
			seen[i] = true
			g.cells[i].Distance = distance + 1
			queue = append(queue, n)
		}
	}

	return farthest, maxDistance
}
