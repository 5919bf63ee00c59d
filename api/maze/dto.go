package mazeapi

import (
	"github.com/beka-birhanu/vinom-maze3d/maze"
	"github.com/google/uuid"
)

// GenerateRequest asks for a new maze. Seed 0 draws one from the clock and
// SizeMultiplier 0 uses the server default.
type GenerateRequest struct {
	Width          int     `json:"width" binding:"required,min=1"`
	Height         int     `json:"height" binding:"required,min=1"`
	Depth          int     `json:"depth" binding:"required,min=1"`
	Seed           int64   `json:"seed"`
	SizeMultiplier float64 `json:"size_multiplier" binding:"min=0"`
}

// Config converts the request into a generation config.
func (r GenerateRequest) Config() maze.Config {
	return maze.Config{
		Width:          r.Width,
		Height:         r.Height,
		Depth:          r.Depth,
		Seed:           r.Seed,
		SizeMultiplier: r.SizeMultiplier,
	}
}

// StreamQuery is the query string of a stream request.
type StreamQuery struct {
	Width  int   `form:"width" binding:"required,min=1"`
	Height int   `form:"height" binding:"required,min=1"`
	Depth  int   `form:"depth" binding:"required,min=1"`
	Seed   int64 `form:"seed"`
}

// Config converts the query into a generation config.
func (q StreamQuery) Config() maze.Config {
	return maze.Config{Width: q.Width, Height: q.Height, Depth: q.Depth, Seed: q.Seed}
}

// StreamDone is the last message of a stream, naming the stored maze.
type StreamDone struct {
	Type         string        `json:"type"`
	ID           uuid.UUID     `json:"id"`
	Seed         int64         `json:"seed"`
	Goal         maze.Position `json:"goal"`
	GoalDistance int           `json:"goal_distance"`
}

// GoalRequest reports the cell a player is standing on.
type GoalRequest struct {
	Position maze.Position `json:"position"`
}

// GoalResponse is the outcome of reaching the goal.
type GoalResponse struct {
	Rank   int `json:"rank"`
	Points int `json:"points"`
}
