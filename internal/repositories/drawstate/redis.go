package drawstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

const (
	// Redis keys
	stateKey           = "drawstate:current"
	stateChannel       = "drawstate:events"
	leaseKey           = "drawstate:lease"
	finalizedKeyPrefix = "drawstate:finalized:"
	presenceKeyPrefix  = "drawstate:presence:"

	// Hash field names, matching the wire schema the display reads
	fieldSessionID            = "sessionId"
	fieldPhase                = "phase"
	fieldSelectedPrizeID      = "selectedPrizeId"
	fieldSelectedPrizeName    = "selectedPrizeName"
	fieldSelectedPrizeImage   = "selectedPrizeImage"
	fieldSelectedPrizeQuota   = "selectedPrizeQuota"
	fieldParticipantsSnapshot = "participantsSnapshot"
	fieldPredeterminedWinners = "predeterminedWinners"
	fieldCurrentWinners       = "currentWinners"
	fieldShouldStartSpinning  = "shouldStartSpinning"
	fieldShouldStartSlowdown  = "shouldStartSlowdown"
	fieldShowWinnerDisplay    = "showWinnerDisplay"
	fieldProcessedByOther     = "processedByOtherController"
	fieldControllerActive     = "controllerActive"
	fieldVersion              = "version"
	fieldLastUpdated          = "lastUpdated"

	// How many optimistic-lock rounds a publish makes before giving up
	maxPublishRetries = 5

	// Delay before a broken subscription reconnects
	reconnectDelay = time.Second
)

var (
	// ErrVersionConflict is returned when a compare-and-swap publish loses
	ErrVersionConflict = errors.New("draw state version conflict")

	// ErrLeaseHeld is returned when another controller holds the lease
	ErrLeaseHeld = errors.New("lease held by another controller")

	// ErrNoLease is returned when no lease is currently held
	ErrNoLease = errors.New("no lease held")

	// ErrPublishConflict is returned when the record was concurrently
	// modified too many times in a row
	ErrPublishConflict = errors.New("draw state modified concurrently")
)

// Config holds configuration for the Redis draw-state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock allows tests to use a fake clock. Defaults to the real clock.
	Clock clockwork.Clock

	// LeaseTTL is how long a lease lives without renewal
	LeaseTTL time.Duration

	// HeartbeatTTL is how long a presence key lives without refresh
	HeartbeatTTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client       *redis.Client
	clock        clockwork.Clock
	leaseTTL     time.Duration
	heartbeatTTL time.Duration
}

// NewRedis creates a new Redis-backed draw-state repository
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

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	leaseTTL := cfg.LeaseTTL
	if leaseTTL <= 0 {
		leaseTTL = defaultLeaseTTL
	}

	heartbeatTTL := cfg.HeartbeatTTL
	if heartbeatTTL <= 0 {
		heartbeatTTL = defaultHeartbeatTTL
	}

	return &redisRepository{
		client:       cfg.RedisClient,
		clock:        clock,
		leaseTTL:     leaseTTL,
		heartbeatTTL: heartbeatTTL,
	}, nil
}

// Get retrieves the current shared record, returning idle defaults when
// the record does not exist yet
func (r *redisRepository) Get(ctx context.Context) (*models.DrawSession, error) {
	return r.read(ctx, r.client)
}

// read loads the record using any client, including a transactional one
func (r *redisRepository) read(ctx context.Context, c redis.Cmdable) (*models.DrawSession, error) {
	fields, err := c.HGetAll(ctx, stateKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get draw state: %w", err)
	}

	if len(fields) == 0 {
		// Not found: recover with idle defaults
		return models.NewIdleSession("", r.clock.Now()), nil
	}

	return decodeSession(fields)
}

// Publish applies a partial update to the shared record under WATCH and
// notifies subscribers with the merged snapshot
func (r *redisRepository) Publish(ctx context.Context, input *PublishInput) (*models.DrawSession, error) {
	if input == nil || input.Patch == nil {
		return nil, errors.New("input and patch cannot be nil")
	}

	var merged *models.DrawSession
	txn := func(tx *redis.Tx) error {
		current, err := r.read(ctx, tx)
		if err != nil {
			return err
		}

		if input.ExpectedVersion >= 0 && current.Version != input.ExpectedVersion {
			return ErrVersionConflict
		}

		merged = applyPatch(current, input.Patch)
		merged.Version = current.Version + 1
		merged.LastUpdated = r.clock.Now()

		fields, err := encodePatch(input.Patch)
		if err != nil {
			return err
		}
		fields[fieldVersion] = strconv.FormatInt(merged.Version, 10)
		fields[fieldLastUpdated] = merged.LastUpdated.Format(time.RFC3339Nano)
		if input.Patch.SessionID != nil {
			fields[fieldSessionID] = *input.Patch.SessionID
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, stateKey, fields)
			return nil
		})
		return err
	}

	for i := 0; i < maxPublishRetries; i++ {
		err := r.client.Watch(ctx, txn, stateKey)
		if err == nil {
			r.notify(ctx, merged)
			return merged, nil
		}
		if err == redis.TxFailedErr {
			if input.ExpectedVersion >= 0 {
				// The caller asked for CAS; a concurrent write is a conflict
				return nil, ErrVersionConflict
			}
			continue
		}
		return nil, err
	}

	return nil, ErrPublishConflict
}

// Reset overwrites the record with idle defaults under a fresh session id
func (r *redisRepository) Reset(ctx context.Context, input *ResetInput) (*models.DrawSession, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	idle := models.DrawPhaseIdle
	return r.Publish(ctx, &PublishInput{
		ExpectedVersion: NoVersionCheck,
		Patch: &Patch{
			SessionID:            &input.SessionID,
			Phase:                &idle,
			SelectedPrizeID:      String(""),
			SelectedPrizeName:    String(""),
			SelectedPrizeImage:   String(""),
			SelectedPrizeQuota:   Int(0),
			ParticipantsSnapshot: []*models.Participant{},
			PredeterminedWinners: []*models.Winner{},
			CurrentWinners:       []*models.Winner{},
			ShouldStartSpinning:  Bool(false),
			ShouldStartSlowdown:  Bool(false),
			ShowWinnerDisplay:    Bool(false),

			ProcessedByOtherController: Bool(false),
			ControllerActive:           Bool(false),
		},
	})
}

// notify pushes a snapshot onto the pub/sub channel. Delivery is best
// effort; subscribers also poll via their initial Get on reconnect.
func (r *redisRepository) notify(ctx context.Context, session *models.DrawSession) {
	payload, err := json.Marshal(session)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal draw state notification")
		return
	}

	if err := r.client.Publish(ctx, stateChannel, payload).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to publish draw state notification")
	}
}

// Subscribe returns a lazy, infinite, restartable stream of snapshots
func (r *redisRepository) Subscribe(ctx context.Context) <-chan *models.DrawSession {
	updates := make(chan *models.DrawSession, 16)

	go func() {
		defer close(updates)

		for {
			if err := r.consume(ctx, updates); err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Warn().Err(err).Msg("draw state subscription interrupted, reconnecting")
			}

			select {
			case <-ctx.Done():
				return
			case <-r.clock.After(reconnectDelay):
			}
		}
	}()

	return updates
}

// consume runs one subscription session: emit the current snapshot, then
// relay notifications until the stream breaks
func (r *redisRepository) consume(ctx context.Context, updates chan<- *models.DrawSession) error {
	pubsub := r.client.Subscribe(ctx, stateChannel)
	defer pubsub.Close()

	// Late subscribers catch up from the current record first
	current, err := r.Get(ctx)
	if err != nil {
		return err
	}
	r.deliver(ctx, updates, current)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return errors.New("subscription channel closed")
			}

			var session models.DrawSession
			if err := json.Unmarshal([]byte(msg.Payload), &session); err != nil {
				log.Warn().Err(err).Msg("failed to unmarshal draw state notification")
				continue
			}

			r.deliver(ctx, updates, &session)
		}
	}
}

// deliver sends a snapshot without blocking; a slow consumer only needs
// the latest state, so stale snapshots are dropped
func (r *redisRepository) deliver(ctx context.Context, updates chan<- *models.DrawSession, session *models.DrawSession) {
	select {
	case updates <- session:
	case <-ctx.Done():
	default:
		log.Debug().Str("session_id", session.SessionID).Msg("dropping draw state snapshot for slow subscriber")
	}
}

// AcquireLease grants session ownership to one controller
func (r *redisRepository) AcquireLease(ctx context.Context, input *AcquireLeaseInput) (*models.Lease, error) {
	if input == nil || input.Owner == "" {
		return nil, errors.New("input and owner cannot be empty")
	}

	lease := &models.Lease{
		Owner:      input.Owner,
		SessionID:  input.SessionID,
		AcquiredAt: r.clock.Now(),
	}

	leaseJSON, err := json.Marshal(lease)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lease: %w", err)
	}

	ok, err := r.client.SetNX(ctx, leaseKey, leaseJSON, r.leaseTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lease: %w", err)
	}
	if ok {
		return lease, nil
	}

	// Already held: extending your own lease is fine, anyone else's is not
	holder, err := r.GetLease(ctx)
	if err != nil {
		if errors.Is(err, ErrNoLease) {
			// Expired between SETNX and GET, take another shot
			return r.AcquireLease(ctx, input)
		}
		return nil, err
	}

	if holder.Owner != input.Owner {
		return nil, ErrLeaseHeld
	}

	if err := r.client.Set(ctx, leaseKey, leaseJSON, r.leaseTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to extend lease: %w", err)
	}

	return lease, nil
}

// RenewLease extends a held lease without changing its session
func (r *redisRepository) RenewLease(ctx context.Context, input *RenewLeaseInput) error {
	if input == nil || input.Owner == "" {
		return errors.New("input and owner cannot be empty")
	}

	txn := func(tx *redis.Tx) error {
		holder, err := r.getLease(ctx, tx)
		if err != nil {
			return err
		}

		if holder.Owner != input.Owner {
			return ErrLeaseHeld
		}

		leaseJSON, err := json.Marshal(holder)
		if err != nil {
			return fmt.Errorf("failed to marshal lease: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, leaseKey, leaseJSON, r.leaseTTL)
			return nil
		})
		return err
	}

	return r.client.Watch(ctx, txn, leaseKey)
}

// ReleaseLease drops a held lease; releasing someone else's lease or a
// missing lease is a no-op
func (r *redisRepository) ReleaseLease(ctx context.Context, input *ReleaseLeaseInput) error {
	if input == nil || input.Owner == "" {
		return errors.New("input and owner cannot be empty")
	}

	txn := func(tx *redis.Tx) error {
		holder, err := r.getLease(ctx, tx)
		if err != nil {
			if errors.Is(err, ErrNoLease) {
				return nil
			}
			return err
		}

		if holder.Owner != input.Owner {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, leaseKey)
			return nil
		})
		return err
	}

	return r.client.Watch(ctx, txn, leaseKey)
}

// GetLease retrieves the current lease
func (r *redisRepository) GetLease(ctx context.Context) (*models.Lease, error) {
	return r.getLease(ctx, r.client)
}

func (r *redisRepository) getLease(ctx context.Context, c redis.Cmdable) (*models.Lease, error) {
	leaseJSON, err := c.Get(ctx, leaseKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoLease
		}
		return nil, fmt.Errorf("failed to get lease: %w", err)
	}

	var lease models.Lease
	if err := json.Unmarshal([]byte(leaseJSON), &lease); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lease: %w", err)
	}

	return &lease, nil
}

// MarkFinalized claims the one-shot finalize marker for a session
func (r *redisRepository) MarkFinalized(ctx context.Context, input *MarkFinalizedInput) (*MarkFinalizedOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", finalizedKeyPrefix, input.SessionID)
	first, err := r.client.SetNX(ctx, key, string(input.Owner), defaultMarkerTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to mark session finalized: %w", err)
	}

	return &MarkFinalizedOutput{First: first}, nil
}

// Heartbeat refreshes this controller's presence key
func (r *redisRepository) Heartbeat(ctx context.Context, input *HeartbeatInput) error {
	if input == nil || input.Role == "" {
		return errors.New("input and role cannot be empty")
	}

	key := fmt.Sprintf("%s%s", presenceKeyPrefix, input.Role)
	ts := strconv.FormatInt(r.clock.Now().UnixNano(), 10)
	if err := r.client.Set(ctx, key, ts, r.heartbeatTTL).Err(); err != nil {
		return fmt.Errorf("failed to heartbeat: %w", err)
	}

	return nil
}

// ActiveControllers reports which controller roles have a live heartbeat
func (r *redisRepository) ActiveControllers(ctx context.Context) ([]models.ControllerRole, error) {
	roles := []models.ControllerRole{models.RolePrimary, models.RoleVIP}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.IntCmd, 0, len(roles))
	for _, role := range roles {
		cmds = append(cmds, pipe.Exists(ctx, fmt.Sprintf("%s%s", presenceKeyPrefix, role)))
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check controller presence: %w", err)
	}

	active := make([]models.ControllerRole, 0, len(roles))
	for i, cmd := range cmds {
		if cmd.Val() > 0 {
			active = append(active, roles[i])
		}
	}

	return active, nil
}
