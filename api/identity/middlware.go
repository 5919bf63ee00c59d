package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze3d/service"
	"github.com/beka-birhanu/vinom-maze3d/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextPlayerClaims is the key used to store player claims in the Gin context.
	ContextPlayerClaims = "playerClaims"
)

// ErrNoPlayer is returned when a request carries no usable player claim.
var ErrNoPlayer = errors.New("request is not signed in as a player")

// Authoriz rejects requests without a valid bearer token and stores the token
// claims in the context for the handlers behind it.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextPlayerClaims, claims)
		c.Next()
	}
}

// PlayerID returns the ID of the player the request was authorized as.
func PlayerID(c *gin.Context) (uuid.UUID, error) {
	value, ok := c.Get(ContextPlayerClaims)
	if !ok {
		return uuid.Nil, ErrNoPlayer
	}
	claims, ok := value.(map[string]interface{})
	if !ok {
		return uuid.Nil, ErrNoPlayer
	}
	raw, ok := claims[service.ClaimPlayerID].(string)
	if !ok {
		return uuid.Nil, ErrNoPlayer
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoPlayer
	}
	return id, nil
}
