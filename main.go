package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze3d/api"
	api_i "github.com/beka-birhanu/vinom-maze3d/api/i"
	"github.com/beka-birhanu/vinom-maze3d/api/identity"
	joincodeapi "github.com/beka-birhanu/vinom-maze3d/api/joincode"
	mazeapi "github.com/beka-birhanu/vinom-maze3d/api/maze"
	"github.com/beka-birhanu/vinom-maze3d/config"
	logger "github.com/beka-birhanu/vinom-maze3d/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze3d/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze3d/infrastruture/scoreboard"
	"github.com/beka-birhanu/vinom-maze3d/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze3d/service"
	"github.com/beka-birhanu/vinom-maze3d/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	envs               config.Config
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	playerRepo         *repo.PlayerRepo
	mazeRepo           i.MazeRepo
	scoreStore         i.ScoreStore
	jwtTokenizer       i.Tokenizer
	authService        i.Authenticator
	mazeService        i.MazeGenerator
	scoreboardService  i.Scoreboard
	authController     api_i.Controller
	mazeController     api_i.Controller
	joincodeController *joincodeapi.Controller
	router             *api.Router
	appLogger          i.Logger
)

func newLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", envs.DBUser, envs.DBPassword, envs.DBHost, envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
		DB:       envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context) {
	playerRepo = repo.NewPlayerRepo(mongoClient, envs.DBName, "players")
	if err := playerRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating player indexes: %v", err))
		os.Exit(1)
	}
	mazeRepo = repo.NewMazeRepo(mongoClient, envs.DBName, "mazes")
	scoreStore = scoreboard.NewRedisScoreStore(redisClient, envs.ScoreboardTTL)
	appLogger.Info("Repositories initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initServices() {
	var err error
	authService, err = service.NewAuthService(playerRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(service.MazeServiceConfig{
		Repo:              mazeRepo,
		Logger:            newLogger("MAZE", config.ColorCyan),
		DefaultMultiplier: envs.MazeSizeMultiplier,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}

	scoreboardService = service.NewScoreboard(scoreStore, mazeRepo, playerRepo, newLogger("SCOREBOARD", config.ColorMagenta))
	appLogger.Info("Services initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	mazeController, err = mazeapi.NewController(mazeapi.Config{
		Mazes:        mazeService,
		Scoreboard:   scoreboardService,
		Logger:       newLogger("STREAM", config.ColorBlue),
		MaxDimension: envs.MazeMaxDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}

	joincodeController, err = joincodeapi.NewController(envs.HostIP, envs.RESTPort)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating join code controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Join code for %s:%d is %s", envs.HostIP, envs.RESTPort, joincodeController.Code()))
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController, joincodeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = newLogger("APP", config.ColorGreen)
	envs = config.Load()
	gin.SetMode(envs.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx)
	initJWTTokenizer()
	initServices()
	initControllers()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
