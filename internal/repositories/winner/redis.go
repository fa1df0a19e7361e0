package winner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

const (
	// Key prefixes for Redis
	winnerKeyPrefix         = "winner:"
	winnersIndexKey         = "winners"
	sessionWinnersKeyPrefix = "session_winners:"
)

// ErrWinnerNotFound is returned when a winner record is not found
var ErrWinnerNotFound = errors.New("winner not found")

// Config holds configuration for the Redis winner repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed winner repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddWinners persists a batch of winner records in one pipeline, indexing
// each by win time and by draw session
func (r *redisRepository) AddWinners(ctx context.Context, input *AddWinnersInput) error {
	if input == nil || len(input.Winners) == 0 {
		return errors.New("input and winners cannot be empty")
	}

	pipe := r.client.Pipeline()
	for _, w := range input.Winners {
		if w == nil || w.ID == "" {
			return errors.New("winner ID cannot be empty")
		}
		if w.DrawSession == "" {
			return errors.New("winner draw session cannot be empty")
		}

		winnerJSON, err := json.Marshal(w)
		if err != nil {
			return fmt.Errorf("failed to marshal winner: %w", err)
		}

		pipe.Set(ctx, fmt.Sprintf("%s%s", winnerKeyPrefix, w.ID), winnerJSON, 0)
		pipe.ZAdd(ctx, winnersIndexKey, redis.Z{
			Score:  float64(w.WonAt.UnixNano()),
			Member: w.ID,
		})
		pipe.SAdd(ctx, fmt.Sprintf("%s%s", sessionWinnersKeyPrefix, w.DrawSession), w.ID)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add winners: %w", err)
	}

	return nil
}

// ListWinners retrieves all winners ordered by win time
func (r *redisRepository) ListWinners(ctx context.Context, input *ListWinnersInput) (*ListWinnersOutput, error) {
	ids, err := r.client.ZRange(ctx, winnersIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list winner IDs: %w", err)
	}

	winners, err := r.getWinners(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &ListWinnersOutput{
		Winners: winners,
	}, nil
}

// ListSessionWinners retrieves the winners persisted for one session. An
// empty result means the session has not been finalized.
func (r *redisRepository) ListSessionWinners(ctx context.Context, input *ListSessionWinnersInput) (*ListSessionWinnersOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, fmt.Sprintf("%s%s", sessionWinnersKeyPrefix, input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list session winner IDs: %w", err)
	}

	winners, err := r.getWinners(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &ListSessionWinnersOutput{
		Winners: winners,
	}, nil
}

// getWinners fetches a set of winner records by ID, skipping records that
// were deleted since the index was read
func (r *redisRepository) getWinners(ctx context.Context, ids []string) ([]*models.Winner, error) {
	if len(ids) == 0 {
		return []*models.Winner{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, pipe.Get(ctx, fmt.Sprintf("%s%s", winnerKeyPrefix, id)))
	}

	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get winners: %w", err)
	}

	winners := make([]*models.Winner, 0, len(ids))
	for _, cmd := range cmds {
		winnerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get winners: %w", err)
		}

		var w models.Winner
		if err := json.Unmarshal([]byte(winnerJSON), &w); err != nil {
			return nil, fmt.Errorf("failed to unmarshal winner: %w", err)
		}

		winners = append(winners, &w)
	}

	return winners, nil
}

// DeleteWinner removes a winner record from Redis
func (r *redisRepository) DeleteWinner(ctx context.Context, input *DeleteWinnerInput) error {
	if input == nil || input.WinnerID == "" {
		return errors.New("input and winner ID cannot be empty")
	}

	// Get the record first so its session index entry can be removed too
	winnerJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", winnerKeyPrefix, input.WinnerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrWinnerNotFound
		}
		return fmt.Errorf("failed to get winner: %w", err)
	}

	var w models.Winner
	if err := json.Unmarshal([]byte(winnerJSON), &w); err != nil {
		return fmt.Errorf("failed to unmarshal winner: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", winnerKeyPrefix, input.WinnerID))
	pipe.ZRem(ctx, winnersIndexKey, input.WinnerID)
	pipe.SRem(ctx, fmt.Sprintf("%s%s", sessionWinnersKeyPrefix, w.DrawSession), input.WinnerID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete winner: %w", err)
	}

	return nil
}
