package maze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {-2, 3, 3}, {3, 3, -1}} {
			g, err := NewGrid(dims[0], dims[1], dims[2])
			assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
			assert.Nil(t, g)
		}
	})

	t.Run("rejects grids above MaxCells", func(t *testing.T) {
		for _, dims := range [][3]int{
			{math.MaxInt, 2, 1},
			{1 << 31, 1 << 31, 1 << 31},
			{MaxCells + 1, 1, 1},
			{1 << 11, 1 << 11, 2},
		} {
			g, err := NewGrid(dims[0], dims[1], dims[2])
			assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
			assert.Nil(t, g)
		}
	})

	t.Run("allocates every cell closed and unvisited", func(t *testing.T) {
		g, err := NewGrid(2, 3, 4)
		require.NoError(t, err)
		assert.Equal(t, 24, g.Size())

		seen := map[Position]bool{}
		for c := range g.Cells() {
			assert.False(t, c.Visited)
			assert.False(t, c.Goal)
			for _, d := range Directions {
				assert.True(t, c.HasWall(d), "%s wall %s", c.Pos, d)
			}
			assert.True(t, g.InBound(c.Pos))
			seen[c.Pos] = true
		}
		assert.Len(t, seen, 24)
	})
}

func TestGridGet(t *testing.T) {
	g, err := NewGrid(3, 2, 4)
	require.NoError(t, err)

	c, err := g.Get(Position{X: 2, Y: 1, Z: 3})
	require.NoError(t, err)
	assert.Equal(t, Position{X: 2, Y: 1, Z: 3}, c.Pos)

	for _, pos := range []Position{{X: 3}, {Y: 2}, {Z: 4}, {X: -1}, {Y: -1}, {Z: -1}} {
		_, err := g.Get(pos)
		assert.ErrorIs(t, err, ErrOutOfBounds, "pos %s", pos)
	}
}

func TestGridNeighbors(t *testing.T) {
	g, err := NewGrid(3, 3, 3)
	require.NoError(t, err)

	assert.Len(t, g.Neighbors(Origin), 3)
	assert.Len(t, g.Neighbors(Position{X: 1, Y: 1, Z: 1}), 6)
	assert.Len(t, g.Neighbors(Position{X: 1, Y: 0, Z: 0}), 4)
	assert.Equal(t,
		[]Position{{X: 2, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 2}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 2, Z: 1}, {X: 1, Y: 0, Z: 1}},
		g.Neighbors(Position{X: 1, Y: 1, Z: 1}),
	)

	single, err := NewGrid(1, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, single.Neighbors(Origin))
}

func TestOpenWallBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		dir  Direction
	}{
		{"plus x", Position{X: 0, Y: 1, Z: 1}, Position{X: 1, Y: 1, Z: 1}, PosX},
		{"minus x", Position{X: 1, Y: 1, Z: 1}, Position{X: 0, Y: 1, Z: 1}, NegX},
		{"plus y", Position{X: 1, Y: 0, Z: 1}, Position{X: 1, Y: 1, Z: 1}, PosY},
		{"minus y", Position{X: 1, Y: 1, Z: 1}, Position{X: 1, Y: 0, Z: 1}, NegY},
		{"plus z", Position{X: 1, Y: 1, Z: 0}, Position{X: 1, Y: 1, Z: 1}, PosZ},
		{"minus z", Position{X: 1, Y: 1, Z: 1}, Position{X: 1, Y: 1, Z: 0}, NegZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(2, 2, 2)
			require.NoError(t, err)

			d, err := g.OpenWallBetween(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.dir, d)

			a, _ := g.Get(tt.a)
			b, _ := g.Get(tt.b)
			assert.False(t, a.HasWall(tt.dir))
			assert.False(t, b.HasWall(tt.dir.Opposite()))
			assert.Equal(t, []Direction{tt.dir}, a.OpenDirections())
			assert.Equal(t, []Direction{tt.dir.Opposite()}, b.OpenDirections())
			assert.True(t, g.IsOpen(tt.a, tt.dir))
			assert.Equal(t, []Position{tt.b}, g.OpenNeighbors(tt.a))
		})
	}

	t.Run("rejects non-adjacent cells", func(t *testing.T) {
		g, err := NewGrid(3, 3, 3)
		require.NoError(t, err)

		for _, b := range []Position{Origin, {X: 1, Y: 1}, {X: 2}, {X: 1, Z: 1}, {X: 1, Y: 1, Z: 1}} {
			_, err := g.OpenWallBetween(Origin, b)
			assert.ErrorIs(t, err, ErrNotAdjacent, "b %s", b)
		}
		for c := range g.Cells() {
			assert.Empty(t, c.OpenDirections())
		}
	})

	t.Run("rejects out of bound cells", func(t *testing.T) {
		g, err := NewGrid(2, 2, 2)
		require.NoError(t, err)

		_, err = g.OpenWallBetween(Position{X: 1}, Position{X: 2})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = g.OpenWallBetween(Position{X: -1}, Origin)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
		assert.Equal(t, Position{}, d.Delta().Add(d.Opposite().Delta()))

		text, err := d.MarshalText()
		require.NoError(t, err)
		var parsed Direction
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, d, parsed)
	}

	assert.Equal(t, "-z", NegZ.String())
	assert.False(t, Direction(7).Valid())
	_, err := ParseDirection("up")
	assert.Error(t, err)
}
