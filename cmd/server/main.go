package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/stagedraw/internal/common/uuid"
	"github.com/KirkDiggler/stagedraw/internal/display"
	"github.com/KirkDiggler/stagedraw/internal/handlers/httpapi"
	"github.com/KirkDiggler/stagedraw/internal/localstate"
	"github.com/KirkDiggler/stagedraw/internal/models"
	drawStateRepo "github.com/KirkDiggler/stagedraw/internal/repositories/drawstate"
	participantRepo "github.com/KirkDiggler/stagedraw/internal/repositories/participant"
	prizeRepo "github.com/KirkDiggler/stagedraw/internal/repositories/prize"
	winnerRepo "github.com/KirkDiggler/stagedraw/internal/repositories/winner"
	drawService "github.com/KirkDiggler/stagedraw/internal/services/draw"
	exportService "github.com/KirkDiggler/stagedraw/internal/services/export"
	"github.com/KirkDiggler/stagedraw/internal/shuffle"
)

func main() {
	// .env is optional; real deployments use the environment directly
	_ = godotenv.Load()

	if getEnv("LOG_FORMAT", "console") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	clock := clockwork.NewRealClock()

	// Initialize repositories
	participants, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create participant repository")
	}

	prizes, err := prizeRepo.NewRedis(&prizeRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create prize repository")
	}

	winners, err := winnerRepo.NewRedis(&winnerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create winner repository")
	}

	drawState, err := drawStateRepo.NewRedis(&drawStateRepo.Config{
		RedisClient: redisClient,
		Clock:       clock,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create draw state repository")
	}

	role := models.ControllerRole(getEnv("CONTROLLER_ROLE", string(models.RolePrimary)))

	local, err := localstate.New(&localstate.Config{
		Dir:  getEnv("LOCAL_STATE_DIR", ".stagedraw"),
		Role: role,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open local state store")
	}

	sampler := shuffle.New(&shuffle.Config{})
	uuidGen := uuid.New()

	// Initialize the draw service
	drawSvc, err := drawService.NewService(&drawService.Config{
		Role:             role,
		DefaultDrawCount: getEnvInt("DEFAULT_DRAW_COUNT", 1),
		SpinDwell:        getEnvDuration("SPIN_DWELL", 3500*time.Millisecond),
		SlowdownDwell:    getEnvDuration("SLOWDOWN_DWELL", 2*time.Second),
		RemovalDelay:     getEnvDuration("REMOVAL_DELAY", time.Second),
		DrawStateRepo:    drawState,
		ParticipantRepo:  participants,
		PrizeRepo:        prizes,
		WinnerRepo:       winners,
		Sampler:          sampler,
		Clock:            clock,
		UUIDGenerator:    uuidGen,
		LocalState:       local,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create draw service")
	}

	exportSvc, err := exportService.New(&exportService.Config{
		ParticipantRepo: participants,
		WinnerRepo:      winners,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create export service")
	}

	runCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// The display hub receives every rendered frame
	hub := httpapi.NewHub()

	renderer, err := display.New(&display.Config{
		Updates:  drawState.Subscribe(runCtx),
		Sampler:  shuffle.New(&shuffle.Config{}),
		Clock:    clock,
		OnChange: hub.Broadcast,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create display renderer")
	}

	handler, err := httpapi.New(&httpapi.Config{
		DrawService:     drawSvc,
		ExportService:   exportSvc,
		ParticipantRepo: participants,
		PrizeRepo:       prizes,
		WinnerRepo:      winners,
		Hub:             hub,
		UUIDGenerator:   uuidGen,
		Clock:           clock,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP handler")
	}

	go renderer.Run(runCtx)
	go drawSvc.RunHeartbeat(runCtx)

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: handler.Routes(),
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("role", string(role)).Msg("stagedraw listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down server")
	}

	log.Info().Msg("stagedraw has shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("ignoring invalid integer env var")
		return defaultValue
	}
	return parsed
}

// getEnvDuration gets a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("ignoring invalid duration env var")
		return defaultValue
	}
	return parsed
}
