package service

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/vinom-maze3d/domain"
	"github.com/beka-birhanu/vinom-maze3d/maze"
	"github.com/beka-birhanu/vinom-maze3d/service/i"
	"github.com/google/uuid"
)

// Scoreboard errors.
var (
	ErrNotGoal         = errors.New("position is not the maze goal")
	ErrPlayerNotJoined = dmn.ErrPlayerNotJoined
)

const (
	firstFinishPoints = 100 // Points for the first runner to reach the goal.
	finishPointStep   = 25  // Points lost per finishing place.
	minFinishPoints   = 10  // Floor for late finishers.
)

var _ i.Scoreboard = &Scoreboard{}

// Scoreboard tracks who is running each maze and who reached its goal.
type Scoreboard struct {
	store   i.ScoreStore
	mazes   i.MazeRepo
	players i.PlayerRepo
	logger  i.Logger
}

// NewScoreboard creates a Scoreboard over the given stores.
func NewScoreboard(store i.ScoreStore, mazes i.MazeRepo, players i.PlayerRepo, logger i.Logger) *Scoreboard {
	return &Scoreboard{
		store:   store,
		mazes:   mazes,
		players: players,
		logger:  logger,
	}
}

// Join puts the player on the scoreboard of an existing maze.
func (s *Scoreboard) Join(ctx context.Context, mazeID, playerID uuid.UUID) error {
	if _, err := s.mazes.ByID(mazeID); err != nil {
		return err
	}
	if err := s.store.Join(ctx, mazeID, playerID); err != nil {
		return err
	}
	s.logger.Info(fmt.Sprintf("Player %s joined maze %s", playerID, mazeID))
	return nil
}

// Leave takes the player off the maze scoreboard.
func (s *Scoreboard) Leave(ctx context.Context, mazeID, playerID uuid.UUID) error {
	if err := s.store.Leave(ctx, mazeID, playerID); err != nil {
		return err
	}
	s.logger.Info(fmt.Sprintf("Player %s left maze %s", playerID, mazeID))
	return nil
}

// ReachGoal records a joined player standing on pos. pos must be the maze goal.
// The first claim of each player awards points by finishing order; repeated
// claims return the original rank and zero points.
func (s *Scoreboard) ReachGoal(ctx context.Context, mazeID, playerID uuid.UUID, pos maze.Position) (int, int, error) {
	record, err := s.mazes.ByID(mazeID)
	if err != nil {
		return 0, 0, err
	}
	if pos != record.Goal {
		return 0, 0, ErrNotGoal
	}

	joined, err := s.store.IsJoined(ctx, mazeID, playerID)
	if err != nil {
		return 0, 0, err
	}
	if !joined {
		return 0, 0, ErrPlayerNotJoined
	}

	rank, points, first, err := s.store.ClaimFinish(ctx, mazeID, playerID, finishPoints)
	if err != nil {
		return 0, 0, err
	}
	if !first {
		return rank, 0, nil
	}
	s.creditFinish(playerID)

	s.logger.Info(fmt.Sprintf("Player %s reached the goal of maze %s in place %d (+%d)", playerID, mazeID, rank, points))
	return rank, points, nil
}

// Standings returns the maze scoreboard.
func (s *Scoreboard) Standings(ctx context.Context, mazeID uuid.UUID) ([]dmn.Standing, error) {
	return s.store.Standings(ctx, mazeID)
}

// creditFinish bumps the player's lifetime finish count. Failures are logged, not returned:
// the scoreboard already holds the result.
func (s *Scoreboard) creditFinish(playerID uuid.UUID) {
	player, err := s.players.ByID(playerID)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Crediting finish to player %s: %v", playerID, err))
		return
	}
	player.Finishes++
	if err := s.players.Save(player); err != nil {
		s.logger.Warn(fmt.Sprintf("Saving finish of player %s: %v", playerID, err))
	}
}

// finishPoints returns the points for finishing in the given place (1-based).
func finishPoints(rank int) int {
	return max(firstFinishPoints-(rank-1)*finishPointStep, minFinishPoints)
}
