package prize

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
	prizeKeyPrefix = "prize:"
	prizesIndexKey = "prizes"

	// How many optimistic-lock rounds DecrementRemaining makes before
	// giving up
	maxDecrementRetries = 5
)

var (
	// ErrPrizeNotFound is returned when a prize is not found
	ErrPrizeNotFound = errors.New("prize not found")

	// ErrDecrementConflict is returned when the quota was concurrently
	// modified too many times in a row
	ErrDecrementConflict = errors.New("prize quota modified concurrently")
)

// Config holds configuration for the Redis prize repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed prize repository
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

// SavePrize persists a prize to Redis
func (r *redisRepository) SavePrize(ctx context.Context, input *SavePrizeInput) error {
	if input == nil || input.Prize == nil {
		return errors.New("input and prize cannot be nil")
	}

	p := input.Prize
	if p.ID == "" {
		return errors.New("prize ID cannot be empty")
	}

	if p.RemainingQuota < 0 || p.RemainingQuota > p.Quota {
		return errors.New("remaining quota must be between zero and the quota")
	}

	prizeJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal prize: %w", err)
	}

	pipe := r.client.Pipeline()

	prizeKey := fmt.Sprintf("%s%s", prizeKeyPrefix, p.ID)
	pipe.Set(ctx, prizeKey, prizeJSON, 0)
	pipe.ZAdd(ctx, prizesIndexKey, redis.Z{
		Score:  float64(p.CreatedAt.UnixNano()),
		Member: p.ID,
	})

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save prize: %w", err)
	}

	return nil
}

// GetPrize retrieves a prize by ID from Redis
func (r *redisRepository) GetPrize(ctx context.Context, input *GetPrizeInput) (*models.Prize, error) {
	if input == nil || input.PrizeID == "" {
		return nil, errors.New("input and prize ID cannot be empty")
	}

	return r.getPrize(ctx, r.client, input.PrizeID)
}

// getPrize reads one prize using any client, including a transactional one
func (r *redisRepository) getPrize(ctx context.Context, c redis.Cmdable, prizeID string) (*models.Prize, error) {
	prizeKey := fmt.Sprintf("%s%s", prizeKeyPrefix, prizeID)
	prizeJSON, err := c.Get(ctx, prizeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPrizeNotFound
		}
		return nil, fmt.Errorf("failed to get prize: %w", err)
	}

	var p models.Prize
	if err := json.Unmarshal([]byte(prizeJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prize: %w", err)
	}

	return &p, nil
}

// ListPrizes retrieves all prizes ordered by creation time
func (r *redisRepository) ListPrizes(ctx context.Context, input *ListPrizesInput) (*ListPrizesOutput, error) {
	ids, err := r.client.ZRange(ctx, prizesIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list prize IDs: %w", err)
	}

	prizes := make([]*models.Prize, 0, len(ids))
	for _, id := range ids {
		p, err := r.getPrize(ctx, r.client, id)
		if err != nil {
			if errors.Is(err, ErrPrizeNotFound) {
				continue
			}
			return nil, err
		}
		prizes = append(prizes, p)
	}

	return &ListPrizesOutput{
		Prizes: prizes,
	}, nil
}

// DeletePrize removes a prize from Redis
func (r *redisRepository) DeletePrize(ctx context.Context, input *DeletePrizeInput) error {
	if input == nil || input.PrizeID == "" {
		return errors.New("input and prize ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", prizeKeyPrefix, input.PrizeID))
	pipe.ZRem(ctx, prizesIndexKey, input.PrizeID)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete prize: %w", err)
	}

	return nil
}

// DecrementRemaining atomically lowers a prize's remaining quota, clamping
// at zero. The read and write run under WATCH so a concurrent finalize
// cannot double-apply a decrement.
func (r *redisRepository) DecrementRemaining(ctx context.Context, input *DecrementRemainingInput) (*DecrementRemainingOutput, error) {
	if input == nil || input.PrizeID == "" {
		return nil, errors.New("input and prize ID cannot be empty")
	}

	if input.Count < 0 {
		return nil, errors.New("count cannot be negative")
	}

	prizeKey := fmt.Sprintf("%s%s", prizeKeyPrefix, input.PrizeID)

	var remaining int
	txn := func(tx *redis.Tx) error {
		p, err := r.getPrize(ctx, tx, input.PrizeID)
		if err != nil {
			return err
		}

		p.RemainingQuota -= input.Count
		if p.RemainingQuota < 0 {
			p.RemainingQuota = 0
		}
		remaining = p.RemainingQuota

		prizeJSON, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal prize: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, prizeKey, prizeJSON, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxDecrementRetries; i++ {
		err := r.client.Watch(ctx, txn, prizeKey)
		if err == nil {
			return &DecrementRemainingOutput{Remaining: remaining}, nil
		}
		if err == redis.TxFailedErr {
			// Another writer touched the prize, take another round
			continue
		}
		return nil, err
	}

	return nil, ErrDecrementConflict
}
