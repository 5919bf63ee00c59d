package service

import (
	"context"
	"errors"
	"testing"

	dmn "github.com/beka-birhanu/vinom-maze3d/domain"
	"github.com/beka-birhanu/vinom-maze3d/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreboardFixture struct {
	board   *Scoreboard
	store   *memScoreStore
	players *memPlayerRepo
	record  *dmn.MazeRecord
}

func newScoreboardFixture(t *testing.T) scoreboardFixture {
	t.Helper()
	mazes, players, logger := newMemMazeRepo(), newMemPlayerRepo(), &captureLogger{}

	m, err := maze.New(maze.Config{Width: 3, Height: 3, Depth: 3, Seed: 5}, nil)
	require.NoError(t, err)
	record := dmn.NewMazeRecord(m, 1)
	require.NoError(t, mazes.Save(record))

	store := newMemScoreStore()
	return scoreboardFixture{
		board:   NewScoreboard(store, mazes, players, logger),
		store:   store,
		players: players,
		record:  record,
	}
}

func (f scoreboardFixture) addPlayer(t *testing.T) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, f.players.Save(&dmn.Player{ID: id, Username: "p" + id.String()[:8]}))
	return id
}

func TestScoreboardJoin(t *testing.T) {
	f := newScoreboardFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.board.Join(ctx, uuid.New(), uuid.New()), dmn.ErrMazeNotFound)

	player := f.addPlayer(t)
	require.NoError(t, f.board.Join(ctx, f.record.ID, player))

	standings, err := f.board.Standings(ctx, f.record.ID)
	require.NoError(t, err)
	require.Len(t, standings, 1)
	assert.Equal(t, player, standings[0].PlayerID)
	assert.Equal(t, 0, standings[0].Score)

	require.NoError(t, f.board.Leave(ctx, f.record.ID, player))
	standings, err = f.board.Standings(ctx, f.record.ID)
	require.NoError(t, err)
	assert.Empty(t, standings)
}

func TestScoreboardReachGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects positions other than the goal", func(t *testing.T) {
		f := newScoreboardFixture(t)
		player := f.addPlayer(t)
		require.NoError(t, f.board.Join(ctx, f.record.ID, player))

		wrong := maze.Origin
		if f.record.Goal == wrong {
			wrong = maze.Position{X: 1}
		}
		_, _, err := f.board.ReachGoal(ctx, f.record.ID, player, wrong)
		assert.ErrorIs(t, err, ErrNotGoal)
	})

	t.Run("requires joining first", func(t *testing.T) {
		f := newScoreboardFixture(t)
		_, _, err := f.board.ReachGoal(ctx, f.record.ID, f.addPlayer(t), f.record.Goal)
		assert.ErrorIs(t, err, ErrPlayerNotJoined)
	})

	t.Run("unknown maze", func(t *testing.T) {
		f := newScoreboardFixture(t)
		_, _, err := f.board.ReachGoal(ctx, uuid.New(), f.addPlayer(t), f.record.Goal)
		assert.ErrorIs(t, err, dmn.ErrMazeNotFound)
	})

	t.Run("awards points by finishing order", func(t *testing.T) {
		f := newScoreboardFixture(t)
		first, second := f.addPlayer(t), f.addPlayer(t)
		require.NoError(t, f.board.Join(ctx, f.record.ID, first))
		require.NoError(t, f.board.Join(ctx, f.record.ID, second))

		rank, points, err := f.board.ReachGoal(ctx, f.record.ID, first, f.record.Goal)
		require.NoError(t, err)
		assert.Equal(t, 1, rank)
		assert.Equal(t, 100, points)

		rank, points, err = f.board.ReachGoal(ctx, f.record.ID, second, f.record.Goal)
		require.NoError(t, err)
		assert.Equal(t, 2, rank)
		assert.Equal(t, 75, points)

		rank, points, err = f.board.ReachGoal(ctx, f.record.ID, first, f.record.Goal)
		require.NoError(t, err)
		assert.Equal(t, 1, rank)
		assert.Equal(t, 0, points)

		standings, err := f.board.Standings(ctx, f.record.ID)
		require.NoError(t, err)
		require.Len(t, standings, 2)
		assert.Equal(t, first, standings[0].PlayerID)
		assert.Equal(t, 100, standings[0].Score)
		assert.Equal(t, second, standings[1].PlayerID)

		p, err := f.players.ByID(first)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Finishes)
	})
}

func TestScoreboardFailedClaimKeepsPoints(t *testing.T) {
	ctx := context.Background()
	f := newScoreboardFixture(t)
	player := f.addPlayer(t)
	require.NoError(t, f.board.Join(ctx, f.record.ID, player))

	f.store.claimErr = errors.New("redis: connection reset")
	_, _, err := f.board.ReachGoal(ctx, f.record.ID, player, f.record.Goal)
	require.Error(t, err)

	p, err := f.players.ByID(player)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Finishes)

	rank, points, err := f.board.ReachGoal(ctx, f.record.ID, player, f.record.Goal)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	assert.Equal(t, 100, points)

	standings, err := f.board.Standings(ctx, f.record.ID)
	require.NoError(t, err)
	require.Len(t, standings, 1)
	assert.Equal(t, 100, standings[0].Score)
}

func TestScoreboardLeftPlayerIsNotReadded(t *testing.T) {
	ctx := context.Background()
	f := newScoreboardFixture(t)
	player := f.addPlayer(t)
	require.NoError(t, f.board.Join(ctx, f.record.ID, player))
	require.NoError(t, f.board.Leave(ctx, f.record.ID, player))

	_, _, _, err := f.store.ClaimFinish(ctx, f.record.ID, player, finishPoints)
	assert.ErrorIs(t, err, ErrPlayerNotJoined)

	_, _, err = f.board.ReachGoal(ctx, f.record.ID, player, f.record.Goal)
	assert.ErrorIs(t, err, ErrPlayerNotJoined)

	standings, err := f.board.Standings(ctx, f.record.ID)
	require.NoError(t, err)
	assert.Empty(t, standings)
}

func TestFinishPoints(t *testing.T) {
	assert.Equal(t, 100, finishPoints(1))
	assert.Equal(t, 50, finishPoints(3))
	assert.Equal(t, 25, finishPoints(4))
	assert.Equal(t, 10, finishPoints(5))
	assert.Equal(t, 10, finishPoints(40))
}
