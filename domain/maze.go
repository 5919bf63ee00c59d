// Package domain holds the records the services persist and exchange.
package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-maze3d/maze"
	"github.com/google/uuid"
)

// MazeRecord is a generated maze as stored and served.
type MazeRecord struct {
	ID             uuid.UUID     `bson:"_id" json:"id"`
	Width          int           `bson:"width" json:"width"`
	Height         int           `bson:"height" json:"height"`
	Depth          int           `bson:"depth" json:"depth"`
	Seed           int64         `bson:"seed" json:"seed"`
	SizeMultiplier float64       `bson:"sizeMultiplier" json:"size_multiplier"`
	Goal           maze.Position `bson:"goal" json:"goal"`
	GoalDistance   int           `bson:"goalDistance" json:"goal_distance"`
	Walls          []maze.Wall   `bson:"walls" json:"walls"`
	CreatedAt      time.Time     `bson:"createdAt" json:"created_at"`
}

// NewMazeRecord captures a generated maze under a new ID.
func NewMazeRecord(m *maze.Maze, sizeMultiplier float64) *MazeRecord {
	return &MazeRecord{
		ID:             uuid.New(),
		Width:          m.Grid.Width(),
		Height:         m.Grid.Height(),
		Depth:          m.Grid.Depth(),
		Seed:           m.Seed,
		SizeMultiplier: sizeMultiplier,
		Goal:           m.Result.Goal,
		GoalDistance:   m.Result.GoalDistance,
		Walls:          m.Result.Walls,
		CreatedAt:      time.Now().UTC(),
	}
}

// Config returns the generation config that reproduces the record's maze.
// The stored dimensions already include the size multiplier.
func (r *MazeRecord) Config() maze.Config {
	return maze.Config{Width: r.Width, Height: r.Height, Depth: r.Depth, Seed: r.Seed}
}

// Standing is one player's line on a maze scoreboard.
type Standing struct {
	PlayerID uuid.UUID `json:"player_id"`
	Score    int       `json:"score"`
	Rank     int       `json:"rank"`
}
