package domain

import "errors"

// Errors shared by repositories, stores and services.
var (
	ErrMazeNotFound   = errors.New("maze not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrUsernameTaken  = errors.New("username conflict")

	ErrPlayerNotJoined = errors.New("player has not joined the maze")
)
