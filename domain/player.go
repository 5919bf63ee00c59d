package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

// Player validation errors.
var (
	ErrUsernameTooShort = errors.New("username too short")
	ErrUsernameTooLong  = errors.New("username too long")
	ErrInvalidUsername  = errors.New("invalid username format")
	ErrWeakPassword     = errors.New("weak password")
)

// Username length bounds, in bytes. Only ASCII letters, digits and '_' are allowed.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 20
)

const (
	minPasswordScore = 3 // zxcvbn score, 0 (guessable) to 4 (strong)
	bcryptCost       = 12
)

// Player is a registered maze runner.
type Player struct {
	ID           uuid.UUID `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"passwordHash"`
	Finishes     int       `bson:"finishes"` // Finishes counts the mazes whose goal the player reached.
}

// PlayerConfig holds parameters for creating a Player from a plain password.
type PlayerConfig struct {
	ID            uuid.UUID
	Username      string
	PlainPassword string
}

// NewPlayer checks the username and password strength and stores only the bcrypt hash.
func NewPlayer(cfg PlayerConfig) (*Player, error) {
	if err := checkUsername(cfg.Username); err != nil {
		return nil, err
	}
	if score := zxcvbn.PasswordStrength(cfg.PlainPassword, []string{cfg.Username}).Score; score < minPasswordScore {
		return nil, fmt.Errorf("%w: score %d of 4", ErrWeakPassword, score)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.PlainPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	return &Player{ID: cfg.ID, Username: cfg.Username, PasswordHash: string(hash)}, nil
}

// VerifyPassword reports whether password matches the stored hash.
func (p *Player) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
}

func checkUsername(name string) error {
	switch {
	case len(name) < UsernameMinLen:
		return ErrUsernameTooShort
	case len(name) > UsernameMaxLen:
		return ErrUsernameTooLong
	}
	for _, r := range name {
		if !isUsernameRune(r) {
			return fmt.Errorf("%w: %q not allowed", ErrInvalidUsername, r)
		}
	}
	return nil
}

func isUsernameRune(r rune) bool {
	return r == '_' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
