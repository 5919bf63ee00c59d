package service

import (
	"fmt"

	dmn "github.com/beka-birhanu/vinom-maze3d/domain"
	"github.com/beka-birhanu/vinom-maze3d/maze"
	"github.com/beka-birhanu/vinom-maze3d/service/i"
	"github.com/google/uuid"
)

var _ i.MazeGenerator = &MazeService{}

// MazeService generates mazes and keeps them in a repository.
type MazeService struct {
	repo              i.MazeRepo
	logger            i.Logger
	defaultMultiplier float64
}

// MazeServiceConfig holds the dependencies of a MazeService.
type MazeServiceConfig struct {
	Repo   i.MazeRepo
	Logger i.Logger

	// DefaultMultiplier is applied to requests that do not carry their own size multiplier.
	DefaultMultiplier float64
}

// NewMazeService creates a MazeService.
func NewMazeService(cfg MazeServiceConfig) (*MazeService, error) {
	if cfg.Repo == nil || cfg.Logger == nil {
		return nil, fmt.Errorf("maze service: repo and logger are required")
	}
	if cfg.DefaultMultiplier < 0 {
		return nil, fmt.Errorf("maze service: negative size multiplier %v", cfg.DefaultMultiplier)
	}

	return &MazeService{
		repo:              cfg.Repo,
		logger:            cfg.Logger,
		defaultMultiplier: cfg.DefaultMultiplier,
	}, nil
}

// Generate carves a maze for cfg and stores it. The run completes before the
// record is saved, so callers never observe a partial maze.
func (s *MazeService) Generate(cfg maze.Config, l maze.Listener) (*dmn.MazeRecord, error) {
	if cfg.SizeMultiplier == 0 {
		cfg.SizeMultiplier = s.defaultMultiplier
	}

	m, err := maze.New(cfg, l)
	if err != nil {
		return nil, err
	}

	record := dmn.NewMazeRecord(m, cfg.SizeMultiplier)
	if err := s.repo.Save(record); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze %s: %v", record.ID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Generated maze %s %dx%dx%d seed=%d goal=%s distance=%d",
		record.ID, record.Width, record.Height, record.Depth, record.Seed, record.Goal, record.GoalDistance))
	return record, nil
}

// DefaultMultiplier returns the multiplier applied to configs without one.
func (s *MazeService) DefaultMultiplier() float64 {
	return s.defaultMultiplier
}

// ByID returns a stored maze.
func (s *MazeService) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(id)
}

// Render rebuilds a stored maze from its seed and renders it as ASCII.
func (s *MazeService) Render(id uuid.UUID) (string, error) {
	record, err := s.repo.ByID(id)
	if err != nil {
		return "", err
	}

	m, err := maze.New(record.Config(), nil)
	if err != nil {
		return "", err
	}
	return m.Grid.String(), nil
}
