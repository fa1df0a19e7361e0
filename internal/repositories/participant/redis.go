package participant

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
	participantKeyPrefix = "participant:"
	participantsIndexKey = "participants"
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
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

// SaveParticipant persists a participant to Redis
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	if input.Participant.ID == "" {
		return errors.New("participant ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	r.queueSave(ctx, pipe, input.Participant)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// SaveParticipants persists a batch of participants in one round trip
func (r *redisRepository) SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error {
	if input == nil || len(input.Participants) == 0 {
		return errors.New("input and participants cannot be empty")
	}

	pipe := r.client.Pipeline()
	for _, p := range input.Participants {
		if p == nil || p.ID == "" {
			return errors.New("participant ID cannot be empty")
		}
		r.queueSave(ctx, pipe, p)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save participants: %w", err)
	}

	return nil
}

// queueSave adds the writes for one participant onto a pipeline
func (r *redisRepository) queueSave(ctx context.Context, pipe redis.Pipeliner, p *models.Participant) {
	participantJSON, err := json.Marshal(p)
	if err != nil {
		// Marshal of a plain struct cannot fail; keep the pipeline shape simple
		return
	}

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, p.ID)
	pipe.Set(ctx, participantKey, participantJSON, 0)

	// Index ordered by join time so listings are stable
	pipe.ZAdd(ctx, participantsIndexKey, redis.Z{
		Score:  float64(p.JoinedAt.UnixNano()),
		Member: p.ID,
	})
}

// GetParticipant retrieves a participant by ID from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, input.ParticipantID)
	participantJSON, err := r.client.Get(ctx, participantKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var p models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &p, nil
}

// ListParticipants retrieves all participants ordered by join time
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	ids, err := r.client.ZRange(ctx, participantsIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list participant IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListParticipantsOutput{
			Participants: []*models.Participant{},
		}, nil
	}

	// Fetch all participants in one pipeline
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, pipe.Get(ctx, fmt.Sprintf("%s%s", participantKeyPrefix, id)))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(ids))
	for _, cmd := range cmds {
		participantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Removed between the index read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to list participants: %w", err)
		}

		var p models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
		}

		participants = append(participants, &p)
	}

	return &ListParticipantsOutput{
		Participants: participants,
	}, nil
}

// DeleteParticipant removes a participant from Redis
func (r *redisRepository) DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID cannot be empty")
	}

	return r.DeleteParticipants(ctx, &DeleteParticipantsInput{
		ParticipantIDs: []string{input.ParticipantID},
	})
}

// DeleteParticipants removes a batch of participants from Redis
func (r *redisRepository) DeleteParticipants(ctx context.Context, input *DeleteParticipantsInput) error {
	if input == nil || len(input.ParticipantIDs) == 0 {
		return errors.New("input and participant IDs cannot be empty")
	}

	pipe := r.client.Pipeline()
	for _, id := range input.ParticipantIDs {
		pipe.Del(ctx, fmt.Sprintf("%s%s", participantKeyPrefix, id))
		pipe.ZRem(ctx, participantsIndexKey, id)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}

	return nil
}
