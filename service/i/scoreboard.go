package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze3d/domain"
	"github.com/beka-birhanu/vinom-maze3d/maze"
	"github.com/google/uuid"
)

// ScoreStore keeps per-maze scoreboards.
type ScoreStore interface {
	// Join adds the player to the maze scoreboard with a zero score. Joining twice keeps the score.
	Join(ctx context.Context, mazeID, playerID uuid.UUID) error

	// Leave removes the player from the maze scoreboard.
	Leave(ctx context.Context, mazeID, playerID uuid.UUID) error

	// IsJoined reports whether the player is on the maze scoreboard.
	IsJoined(ctx context.Context, mazeID, playerID uuid.UUID) (bool, error)

	// ClaimFinish records the player as having reached the goal and credits
	// award(rank) points in the same step: either both are stored or neither is.
	// first is false, with zero points, when the player had already finished.
	// Players who are not on the scoreboard get dmn.ErrPlayerNotJoined.
	ClaimFinish(ctx context.Context, mazeID, playerID uuid.UUID, award func(rank int) int) (rank, points int, first bool, err error)

	// Standings returns the scoreboard ordered from highest score to lowest.
	Standings(ctx context.Context, mazeID uuid.UUID) ([]dmn.Standing, error)
}

// Scoreboard is the service that tracks runners of a maze.
type Scoreboard interface {
	Join(ctx context.Context, mazeID, playerID uuid.UUID) error
	Leave(ctx context.Context, mazeID, playerID uuid.UUID) error
	ReachGoal(ctx context.Context, mazeID, playerID uuid.UUID, pos maze.Position) (rank int, points int, err error)
	Standings(ctx context.Context, mazeID uuid.UUID) ([]dmn.Standing, error)
}

// MazeGenerator generates, stores and renders mazes.
type MazeGenerator interface {
	// Generate carves a maze for cfg, reporting events to l (which may be nil), and stores it.
	Generate(cfg maze.Config, l maze.Listener) (*dmn.MazeRecord, error)

	// ByID returns a stored maze.
	ByID(id uuid.UUID) (*dmn.MazeRecord, error)

	// Render returns the ASCII rendering of a stored maze.
	Render(id uuid.UUID) (string, error)

	// DefaultMultiplier is the size multiplier Generate applies when cfg carries none.
	DefaultMultiplier() float64
}
