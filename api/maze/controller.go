// Package mazeapi serves maze generation, lookup, streaming and scoreboards over HTTP.
package mazeapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-maze3d/api/identity"
	dmn "github.com/beka-birhanu/vinom-maze3d/domain"
	"github.com/beka-birhanu/vinom-maze3d/maze"
	"github.com/beka-birhanu/vinom-maze3d/service"
	"github.com/beka-birhanu/vinom-maze3d/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrTooLarge is returned for requests whose scaled dimensions exceed the server limit.
var ErrTooLarge = errors.New("maze dimension exceeds the server limit")

// Controller manages maze and scoreboard routes.
type Controller struct {
	mazes        i.MazeGenerator
	scoreboard   i.Scoreboard
	logger       i.Logger
	maxDimension int
}

// Config holds the dependencies of a Controller.
type Config struct {
	Mazes      i.MazeGenerator
	Scoreboard i.Scoreboard
	Logger     i.Logger

	// MaxDimension caps every scaled dimension of a request. Zero means no cap.
	MaxDimension int
}

// NewController creates a maze Controller.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Mazes == nil || cfg.Scoreboard == nil || cfg.Logger == nil {
		return nil, errors.New("maze controller: mazes, scoreboard and logger are required")
	}
	return &Controller{
		mazes:        cfg.Mazes,
		scoreboard:   cfg.Scoreboard,
		logger:       cfg.Logger,
		maxDimension: cfg.MaxDimension,
	}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.generate)
		mazes.GET("/stream", c.stream)
		mazes.GET("/:ID", c.byID)
		mazes.GET("/:ID/ascii", c.ascii)
	}
}

// RegisterProtected registers protected routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes/:ID")
	{
		mazes.POST("/players", c.join)
		mazes.DELETE("/players", c.leave)
		mazes.POST("/goal", c.reachGoal)
		mazes.GET("/scoreboard", c.standings)
	}
}

// generate carves and stores a new maze.
func (c *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := c.resolve(request.Config())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := c.mazes.Generate(cfg, nil)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// byID returns a stored maze.
func (c *Controller) byID(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	record, err := c.mazes.ByID(id)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// ascii returns the layer-by-layer text rendering of a stored maze.
func (c *Controller) ascii(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	text, err := c.mazes.Render(id)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.String(http.StatusOK, text)
}

// join puts the signed-in player on the maze scoreboard.
func (c *Controller) join(ctx *gin.Context) {
	mazeID, playerID, ok := mazeAndPlayer(ctx)
	if !ok {
		return
	}

	if err := c.scoreboard.Join(ctx, mazeID, playerID); err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// leave takes the signed-in player off the maze scoreboard.
func (c *Controller) leave(ctx *gin.Context) {
	mazeID, playerID, ok := mazeAndPlayer(ctx)
	if !ok {
		return
	}

	if err := c.scoreboard.Leave(ctx, mazeID, playerID); err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// reachGoal records the signed-in player standing on the goal cell.
func (c *Controller) reachGoal(ctx *gin.Context) {
	mazeID, playerID, ok := mazeAndPlayer(ctx)
	if !ok {
		return
	}

	var request GoalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rank, points, err := c.scoreboard.ReachGoal(ctx, mazeID, playerID, request.Position)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &GoalResponse{Rank: rank, Points: points})
}

// standings returns the maze scoreboard.
func (c *Controller) standings(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	standings, err := c.scoreboard.Standings(ctx, id)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"standings": standings})
}

// resolve fills in the server's default size multiplier and checks the scaled
// dimensions. The returned config is what gets generated.
func (c *Controller) resolve(cfg maze.Config) (maze.Config, error) {
	if cfg.SizeMultiplier == 0 {
		cfg.SizeMultiplier = c.mazes.DefaultMultiplier()
	}
	return cfg, c.checkSize(cfg)
}

// checkSize rejects configs that are invalid or larger than the server allows.
func (c *Controller) checkSize(cfg maze.Config) error {
	w, h, d := cfg.Dimensions()
	if w <= 0 || h <= 0 || d <= 0 {
		return fmt.Errorf("%w: %dx%dx%d", maze.ErrInvalidDimension, w, h, d)
	}
	if c.maxDimension > 0 && (w > c.maxDimension || h > c.maxDimension || d > c.maxDimension) {
		return fmt.Errorf("%w: %dx%dx%d, limit %d", ErrTooLarge, w, h, d, c.maxDimension)
	}
	return nil
}

// fail writes the status matching err. Unknown errors are logged and hidden.
func (c *Controller) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, maze.ErrInvalidDimension):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotGoal), errors.Is(err, service.ErrPlayerNotJoined):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.logger.Error(fmt.Sprintf("%s %s: %v", ctx.Request.Method, ctx.FullPath(), err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func mazeAndPlayer(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	id, ok := mazeID(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	playerID, err := identity.PlayerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return uuid.Nil, uuid.Nil, false
	}
	return id, playerID, true
}
