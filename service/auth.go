package service

import (
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze3d/domain"
	"github.com/beka-birhanu/vinom-maze3d/service/i"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for any failed sign in.
var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenLifetime = 24 * time.Hour

var _ i.Authenticator = &Auth{}

// Auth registers players and issues their tokens.
type Auth struct {
	playerRepo i.PlayerRepo
	tokenizer  i.Tokenizer
}

// NewAuthService creates an Auth service.
func NewAuthService(pr i.PlayerRepo, t i.Tokenizer) (*Auth, error) {
	if pr == nil || t == nil {
		return nil, errors.New("auth service: player repo and tokenizer are required")
	}
	return &Auth{
		playerRepo: pr,
		tokenizer:  t,
	}, nil
}

// Register validates and stores a new player.
func (a *Auth) Register(username, password string) (*dmn.Player, error) {
	if _, err := a.playerRepo.ByUsername(username); err == nil {
		return nil, dmn.ErrUsernameTaken
	}

	player, err := dmn.NewPlayer(dmn.PlayerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return nil, err
	}

	if err := a.playerRepo.Save(player); err != nil {
		return nil, err
	}
	return player, nil
}

// SignIn checks the credentials and returns the player with a fresh token.
func (a *Auth) SignIn(username, password string) (*dmn.Player, string, error) {
	player, err := a.playerRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !player.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		ClaimPlayerID: player.ID.String(),
		ClaimUsername: player.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return player, token, nil
}

// Token claim keys.
const (
	ClaimPlayerID = "playerID"
	ClaimUsername = "username"
)
