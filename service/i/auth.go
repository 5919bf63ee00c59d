package i

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze3d/domain"
)

// Authenticator registers players and signs them in.
type Authenticator interface {
	Register(username, password string) (*dmn.Player, error)
	SignIn(username, password string) (*dmn.Player, string, error)
}

// Tokenizer issues and verifies signed player tokens.
type Tokenizer interface {
	// Generate signs claims into a token that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode verifies a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
