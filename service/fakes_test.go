package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze3d/domain"
	"github.com/google/uuid"
)

type memMazeRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*dmn.MazeRecord
	saveErr error
}

func newMemMazeRepo() *memMazeRepo {
	return &memMazeRepo{records: map[uuid.UUID]*dmn.MazeRecord{}}
}

func (r *memMazeRepo) Save(record *dmn.MazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[record.ID] = record
	return nil
}

func (r *memMazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return record, nil
}

type memPlayerRepo struct {
	mu      sync.Mutex
	players map[uuid.UUID]dmn.Player
}

func newMemPlayerRepo() *memPlayerRepo {
	return &memPlayerRepo{players: map[uuid.UUID]dmn.Player{}}
}

func (r *memPlayerRepo) Save(player *dmn.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[player.ID] = *player
	return nil
}

func (r *memPlayerRepo) ByID(id uuid.UUID) (*dmn.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return nil, dmn.ErrPlayerNotFound
	}
	return &p, nil
}

func (r *memPlayerRepo) ByUsername(username string) (*dmn.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.Username == username {
			return &p, nil
		}
	}
	return nil, dmn.ErrPlayerNotFound
}

type memScoreStore struct {
	mu        sync.Mutex
	scores    map[uuid.UUID]map[uuid.UUID]int
	finishers map[uuid.UUID][]uuid.UUID
	claimErr  error
}

func newMemScoreStore() *memScoreStore {
	return &memScoreStore{
		scores:    map[uuid.UUID]map[uuid.UUID]int{},
		finishers: map[uuid.UUID][]uuid.UUID{},
	}
}

func (s *memScoreStore) Join(_ context.Context, mazeID, playerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scores[mazeID] == nil {
		s.scores[mazeID] = map[uuid.UUID]int{}
	}
	if _, ok := s.scores[mazeID][playerID]; !ok {
		s.scores[mazeID][playerID] = 0
	}
	return nil
}

func (s *memScoreStore) Leave(_ context.Context, mazeID, playerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scores[mazeID], playerID)
	return nil
}

func (s *memScoreStore) IsJoined(_ context.Context, mazeID, playerID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.scores[mazeID][playerID]
	return ok, nil
}

// ClaimFinish fails with claimErr once, if set, without writing anything.
func (s *memScoreStore) ClaimFinish(_ context.Context, mazeID, playerID uuid.UUID, award func(int) int) (int, int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.claimErr; err != nil {
		s.claimErr = nil
		return 0, 0, false, err
	}
	for i, id := range s.finishers[mazeID] {
		if id == playerID {
			return i + 1, 0, false, nil
		}
	}
	if _, ok := s.scores[mazeID][playerID]; !ok {
		return 0, 0, false, dmn.ErrPlayerNotJoined
	}
	s.finishers[mazeID] = append(s.finishers[mazeID], playerID)
	rank := len(s.finishers[mazeID])
	points := award(rank)
	s.scores[mazeID][playerID] += points
	return rank, points, true, nil
}

func (s *memScoreStore) Standings(_ context.Context, mazeID uuid.UUID) ([]dmn.Standing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var standings []dmn.Standing
	for id, score := range s.scores[mazeID] {
		standings = append(standings, dmn.Standing{PlayerID: id, Score: score})
	}
	sort.Slice(standings, func(a, b int) bool { return standings[a].Score > standings[b].Score })
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings, nil
}

type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) Info(msg string)  { l.add("INFO " + msg) }
func (l *captureLogger) Warn(msg string)  { l.add("WARN " + msg) }
func (l *captureLogger) Error(msg string) { l.add("ERROR " + msg) }

func (l *captureLogger) add(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

type fakeTokenizer struct{}

func (fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	return "token-" + claims[ClaimUsername].(string), nil
}

func (fakeTokenizer) Decode(token string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
