// Package scoreboard keeps maze scoreboards in Redis sorted sets.
package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze3d/domain"
	"github.com/beka-birhanu/vinom-maze3d/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var _ i.ScoreStore = &RedisScoreStore{}

// RedisScoreStore keeps one sorted set of scores and one of finishing ranks per maze.
type RedisScoreStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisScoreStore initializes a RedisScoreStore with the provided Redis client and TTL.
func NewRedisScoreStore(client *redis.Client, ttlSeconds int) *RedisScoreStore {
	store := &RedisScoreStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store
}

func scoresKey(mazeID uuid.UUID) string {
	return "scoreboard:" + mazeID.String()
}

func finishersKey(mazeID uuid.UUID) string {
	return "finishers:" + mazeID.String()
}

// Join adds the player with a zero score unless already present.
func (s *RedisScoreStore) Join(ctx context.Context, mazeID, playerID uuid.UUID) error {
	key := scoresKey(mazeID)
	if err := s.client.ZAddNX(ctx, key, redis.Z{Score: 0, Member: playerID.String()}).Err(); err != nil {
		return err
	}
	s.expireIfUnset(ctx, key)
	return nil
}

// Leave removes the player from the scoreboard. Finishing ranks are kept.
func (s *RedisScoreStore) Leave(ctx context.Context, mazeID, playerID uuid.UUID) error {
	return s.client.ZRem(ctx, scoresKey(mazeID), playerID.String()).Err()
}

// IsJoined reports whether the player has a score entry.
func (s *RedisScoreStore) IsJoined(ctx context.Context, mazeID, playerID uuid.UUID) (bool, error) {
	err := s.client.ZScore(ctx, scoresKey(mazeID), playerID.String()).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ClaimFinish assigns the next finishing rank and credits its points under a
// distributed lock, so two runners reaching the goal together never share a
// place. The rank and the score are written in one MULTI/EXEC transaction.
func (s *RedisScoreStore) ClaimFinish(ctx context.Context, mazeID, playerID uuid.UUID, award func(rank int) int) (int, int, bool, error) {
	key := finishersKey(mazeID)
	member := playerID.String()

	mutex := s.locker.NewMutex(key + ":finish_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return 0, 0, false, fmt.Errorf("locking finishers of maze %s: %w", mazeID, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	rank, err := s.client.ZScore(ctx, key, member).Result()
	if err == nil {
		return int(rank), 0, false, nil
	}
	if !errors.Is(err, redis.Nil) {
		return 0, 0, false, err
	}

	joined, err := s.IsJoined(ctx, mazeID, playerID)
	if err != nil {
		return 0, 0, false, err
	}
	if !joined {
		return 0, 0, false, dmn.ErrPlayerNotJoined
	}

	count, err := s.client.ZCard(ctx, key).Result()
	if err != nil {
		return 0, 0, false, err
	}
	next := int(count) + 1
	points := award(next)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(next), Member: member})
		// XX keeps a player who left after the check above off the scoreboard.
		pipe.ZAddArgsIncr(ctx, scoresKey(mazeID), redis.ZAddArgs{
			XX:      true,
			Members: []redis.Z{{Score: float64(points), Member: member}},
		})
		return nil
	})
	if errors.Is(err, redis.Nil) {
		_ = s.client.ZRem(ctx, key, member).Err()
		return 0, 0, false, dmn.ErrPlayerNotJoined
	}
	if err != nil {
		return 0, 0, false, fmt.Errorf("claiming finish of maze %s: %w", mazeID, err)
	}
	s.expireIfUnset(ctx, key)

	return next, points, true, nil
}

// Standings returns every player from highest score to lowest.
func (s *RedisScoreStore) Standings(ctx context.Context, mazeID uuid.UUID) ([]dmn.Standing, error) {
	entries, err := s.client.ZRevRangeWithScores(ctx, scoresKey(mazeID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	standings := make([]dmn.Standing, 0, len(entries))
	for idx, e := range entries {
		member, ok := e.Member.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		standings = append(standings, dmn.Standing{PlayerID: id, Score: int(e.Score), Rank: idx + 1})
	}
	return standings, nil
}

// expireIfUnset sets the TTL only if the key has none yet.
func (s *RedisScoreStore) expireIfUnset(ctx context.Context, key string) {
	ttl, err := s.client.TTL(ctx, key).Result()
	if err == nil && ttl == -1 {
		_ = s.client.Expire(ctx, key, s.ttl).Err()
	}
}
