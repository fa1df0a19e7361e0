package draw

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/stagedraw/internal/common/backoff"
	"github.com/KirkDiggler/stagedraw/internal/common/uuid"
	"github.com/KirkDiggler/stagedraw/internal/localstate"
	"github.com/KirkDiggler/stagedraw/internal/models"
	drawStateRepo "github.com/KirkDiggler/stagedraw/internal/repositories/drawstate"
	participantRepo "github.com/KirkDiggler/stagedraw/internal/repositories/participant"
	prizeRepo "github.com/KirkDiggler/stagedraw/internal/repositories/prize"
	winnerRepo "github.com/KirkDiggler/stagedraw/internal/repositories/winner"
	"github.com/KirkDiggler/stagedraw/internal/shuffle"
)

// currentSession is this controller's in-flight session. The controller
// trusts these local values over re-reads of the shared record, which may
// lag its own writes.
type currentSession struct {
	sessionID string
	prizeID   string
	phase     models.DrawPhase
	winners   []*models.Winner
	snapshot  []*models.Participant
}

// service implements the Service interface
type service struct {
	config          *Config
	drawStateRepo   drawStateRepo.Repository
	participantRepo participantRepo.Repository
	prizeRepo       prizeRepo.Repository
	winnerRepo      winnerRepo.Repository
	sampler         *shuffle.Sampler
	clock           clockwork.Clock
	uuidGen         uuid.UUID
	localState      *localstate.Store

	mu  sync.Mutex
	cur *currentSession

	pendingMu sync.Mutex
	pending   *pendingTask

	retryCfg *backoff.Config
}

// NewService creates a new draw service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DrawStateRepo == nil {
		return nil, ErrNilDrawStateRepo
	}
	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}
	if cfg.PrizeRepo == nil {
		return nil, ErrNilPrizeRepo
	}
	if cfg.WinnerRepo == nil {
		return nil, ErrNilWinnerRepo
	}
	if cfg.Sampler == nil {
		return nil, ErrNilSampler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	// Set default values if not provided
	if cfg.Role == "" {
		cfg.Role = models.RolePrimary
	}
	if cfg.SpinDwell <= 0 {
		cfg.SpinDwell = 3500 * time.Millisecond
	}
	if cfg.SlowdownDwell <= 0 {
		cfg.SlowdownDwell = 2 * time.Second
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = 5 * time.Second
	}

	return &service{
		config:          cfg,
		drawStateRepo:   cfg.DrawStateRepo,
		participantRepo: cfg.ParticipantRepo,
		prizeRepo:       cfg.PrizeRepo,
		winnerRepo:      cfg.WinnerRepo,
		sampler:         cfg.Sampler,
		clock:           cfg.Clock,
		uuidGen:         cfg.UUIDGenerator,
		localState:      cfg.LocalState,
		retryCfg: &backoff.Config{
			MaxAttempts: 3,
			BaseDelay:   200 * time.Millisecond,
			MaxDelay:    2 * time.Second,
			Clock:       cfg.Clock,
		},
	}, nil
}

// SelectPrize sets or clears the globally selected prize
func (s *service) SelectPrize(ctx context.Context, input *SelectPrizeInput) (*SelectPrizeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	patch := &drawStateRepo.Patch{
		SelectedPrizeID:    drawStateRepo.String(""),
		SelectedPrizeName:  drawStateRepo.String(""),
		SelectedPrizeImage: drawStateRepo.String(""),
		SelectedPrizeQuota: drawStateRepo.Int(0),
	}

	if input.PrizeID != "" {
		p, err := s.prizeRepo.GetPrize(ctx, &prizeRepo.GetPrizeInput{PrizeID: input.PrizeID})
		if err != nil {
			return nil, err
		}

		if p.RemainingQuota <= 0 {
			return nil, ErrPrizeExhausted
		}

		patch.SelectedPrizeID = drawStateRepo.String(p.ID)
		patch.SelectedPrizeName = drawStateRepo.String(p.Name)
		patch.SelectedPrizeImage = drawStateRepo.String(p.Image)
		patch.SelectedPrizeQuota = drawStateRepo.Int(p.RemainingQuota)
	}

	session, err := s.drawStateRepo.Publish(ctx, &drawStateRepo.PublishInput{
		ExpectedVersion: drawStateRepo.NoVersionCheck,
		Patch:           patch,
	})
	if err != nil {
		return nil, err
	}

	return &SelectPrizeOutput{Session: session}, nil
}

// sessionBlocksCommit reports whether the shared record describes a
// session that must finish before a new commit may start. A revealed
// session blocks only until one controller has finalized it.
func sessionBlocksCommit(shared *models.DrawSession) bool {
	switch shared.Phase {
	case models.DrawPhaseCommitted, models.DrawPhaseSpinning, models.DrawPhaseSlowdown:
		return true
	case models.DrawPhaseRevealed:
		return !shared.ProcessedByOtherController
	default:
		return false
	}
}

// Commit starts a new session: freezes the pool, samples the winners and
// publishes the committed record without revealing anything
func (s *service) Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error) {
	if input == nil {
		input = &CommitInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Guard: never start over another unprocessed session
	shared, err := s.drawStateRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if sessionBlocksCommit(shared) {
		return nil, ErrSessionInProgress
	}

	// Resolve the prize and the draw count before any write
	prizeID := input.PrizeID
	if prizeID == "" {
		prizeID = shared.SelectedPrizeID
	}

	var selectedPrize *models.Prize
	if prizeID != "" {
		selectedPrize, err = s.prizeRepo.GetPrize(ctx, &prizeRepo.GetPrizeInput{PrizeID: prizeID})
		if err != nil {
			return nil, err
		}
		if selectedPrize.RemainingQuota <= 0 {
			return nil, ErrPrizeExhausted
		}
	} else if s.config.DefaultDrawCount <= 0 {
		return nil, ErrNoPrizeSelected
	}

	pool, err := s.eligiblePool(ctx)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	count := s.config.DefaultDrawCount
	if selectedPrize != nil {
		count = selectedPrize.RemainingQuota
	}
	if count > len(pool) {
		count = len(pool)
	}

	sessionID := s.uuidGen.NewUUID()

	// Take the lease before publishing; the other controller gets a
	// blocking error instead of a racing write
	if _, err := s.drawStateRepo.AcquireLease(ctx, &drawStateRepo.AcquireLeaseInput{
		Owner:     s.config.Role,
		SessionID: sessionID,
	}); err != nil {
		if errors.Is(err, drawStateRepo.ErrLeaseHeld) {
			return nil, ErrOtherControllerActive
		}
		return nil, err
	}

	// Choose the winners once; they are never recomputed
	now := s.clock.Now()
	picked := s.sampler.Pick(pool, count)
	winners := make([]*models.Winner, 0, len(picked))
	for _, p := range picked {
		w := &models.Winner{
			ID:            s.uuidGen.NewUUID(),
			ParticipantID: p.ID,
			Name:          p.Name,
			Tag:           p.Tag,
			Contact:       p.Contact,
			DrawSession:   sessionID,
			WonAt:         now,
		}
		if selectedPrize != nil {
			w.PrizeID = selectedPrize.ID
			w.PrizeName = selectedPrize.Name
		}
		winners = append(winners, w)
	}

	patch := &drawStateRepo.Patch{
		SessionID:            drawStateRepo.String(sessionID),
		Phase:                drawStateRepo.Phase(models.DrawPhaseCommitted),
		ParticipantsSnapshot: pool,
		PredeterminedWinners: winners,
		CurrentWinners:       []*models.Winner{},
		ShouldStartSpinning:  drawStateRepo.Bool(false),
		ShouldStartSlowdown:  drawStateRepo.Bool(false),
		ShowWinnerDisplay:    drawStateRepo.Bool(false),

		ProcessedByOtherController: drawStateRepo.Bool(false),
		ControllerActive:           drawStateRepo.Bool(true),
	}
	if selectedPrize != nil {
		patch.SelectedPrizeID = drawStateRepo.String(selectedPrize.ID)
		patch.SelectedPrizeName = drawStateRepo.String(selectedPrize.Name)
		patch.SelectedPrizeImage = drawStateRepo.String(selectedPrize.Image)
		patch.SelectedPrizeQuota = drawStateRepo.Int(selectedPrize.RemainingQuota)
	}

	// CAS against the guard read so a racing commit loses cleanly
	if _, err := s.drawStateRepo.Publish(ctx, &drawStateRepo.PublishInput{
		ExpectedVersion: shared.Version,
		Patch:           patch,
	}); err != nil {
		releaseErr := s.drawStateRepo.ReleaseLease(ctx, &drawStateRepo.ReleaseLeaseInput{Owner: s.config.Role})
		if releaseErr != nil {
			log.Warn().Err(releaseErr).Msg("failed to release lease after commit conflict")
		}
		if errors.Is(err, drawStateRepo.ErrVersionConflict) {
			return nil, ErrSessionInProgress
		}
		return nil, err
	}

	s.cur = &currentSession{
		sessionID: sessionID,
		prizeID:   prizeID,
		phase:     models.DrawPhaseCommitted,
		winners:   winners,
		snapshot:  pool,
	}

	if s.localState != nil {
		if err := s.localState.TrackSession(sessionID); err != nil {
			log.Warn().Err(err).Msg("failed to persist local session flag")
		}
	}

	log.Info().
		Str("session_id", sessionID).
		Str("prize_id", prizeID).
		Int("winner_count", len(winners)).
		Int("pool_size", len(pool)).
		Msg("committed draw session")

	return &CommitOutput{
		SessionID: sessionID,
		Winners:   winners,
	}, nil
}

// StartSpin signals the display to begin cycling names and schedules the
// slowdown after the spin dwell
func (s *service) StartSpin(ctx context.Context, input *StartSpinInput) (*StartSpinOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return nil, ErrNoActiveSession
	}

	if s.cur.phase != models.DrawPhaseCommitted {
		return nil, ErrInvalidPhase
	}

	session, err := s.drawStateRepo.Publish(ctx, &drawStateRepo.PublishInput{
		ExpectedVersion: drawStateRepo.NoVersionCheck,
		Patch: &drawStateRepo.Patch{
			Phase:               drawStateRepo.Phase(models.DrawPhaseSpinning),
			ShouldStartSpinning: drawStateRepo.Bool(true),
		},
	})
	if err != nil {
		return nil, err
	}

	s.cur.phase = models.DrawPhaseSpinning

	// The dwell is wall-clock, not acknowledgment-driven; the slowdown
	// always arrives even if the display lags
	sessionID := s.cur.sessionID
	s.schedule(sessionID, s.config.SpinDwell, func(taskCtx context.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, err := s.slowdown(taskCtx, sessionID); err != nil {
			// A timer that fired while an operator Stop was already
			// slowing this session down is stale, not a failure
			if errors.Is(err, ErrInvalidPhase) || errors.Is(err, ErrNoActiveSession) {
				log.Debug().Str("session_id", sessionID).Msg("scheduled slowdown superseded")
				return
			}
			log.Error().Err(err).Str("session_id", sessionID).Msg("scheduled slowdown failed")
		}
	})

	log.Info().Str("session_id", sessionID).Dur("spin_dwell", s.config.SpinDwell).Msg("spin started")

	return &StartSpinOutput{Session: session}, nil
}

// Stop cuts the spin short and moves straight to the slowdown
func (s *service) Stop(ctx context.Context, input *StopInput) (*StopOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return nil, ErrNoActiveSession
	}

	// Refuse before touching the pending timer: a stop on a session
	// already slowing down must leave the scheduled reveal alone
	if s.cur.phase != models.DrawPhaseSpinning {
		return nil, ErrInvalidPhase
	}

	s.cancelPending()

	session, err := s.slowdown(ctx, s.cur.sessionID)
	if err != nil {
		return nil, err
	}

	return &StopOutput{Session: session}, nil
}

// slowdown publishes the slowdown signal together with the unchanged
// predetermined winners and schedules the reveal. Caller holds s.mu.
func (s *service) slowdown(ctx context.Context, sessionID string) (*models.DrawSession, error) {
	if s.cur == nil || s.cur.sessionID != sessionID {
		return nil, ErrNoActiveSession
	}

	if s.cur.phase != models.DrawPhaseSpinning {
		return nil, ErrInvalidPhase
	}

	session, err := s.drawStateRepo.Publish(ctx, &drawStateRepo.PublishInput{
		ExpectedVersion: drawStateRepo.NoVersionCheck,
		Patch: &drawStateRepo.Patch{
			Phase:                drawStateRepo.Phase(models.DrawPhaseSlowdown),
			ShouldStartSpinning:  drawStateRepo.Bool(false),
			ShouldStartSlowdown:  drawStateRepo.Bool(true),
			PredeterminedWinners: s.cur.winners,
		},
	})
	if err != nil {
		return nil, err
	}

	s.cur.phase = models.DrawPhaseSlowdown

	s.schedule(sessionID, s.config.SlowdownDwell, func(taskCtx context.Context) {
		if _, err := s.Reveal(taskCtx, &RevealInput{}); err != nil {
			log.Error().Err(err).Str("session_id", sessionID).Msg("scheduled reveal failed")
		}
	})

	log.Info().Str("session_id", sessionID).Msg("slowdown signalled")

	return session, nil
}

// Reveal finalizes the session and publishes the revealed winners
func (s *service) Reveal(ctx context.Context, input *RevealInput) (*RevealOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return nil, ErrNoActiveSession
	}

	s.cancelPending()

	cur := s.cur
	finalizeOut, err := s.finalize(ctx, &FinalizeInput{
		SessionID: cur.sessionID,
		Winners:   cur.winners,
		PrizeID:   cur.prizeID,
	})
	if err != nil {
		// Keep the session so the operator can retry the reveal
		return nil, err
	}

	if _, err := s.drawStateRepo.Publish(ctx, &drawStateRepo.PublishInput{
		ExpectedVersion: drawStateRepo.NoVersionCheck,
		Patch: &drawStateRepo.Patch{
			Phase:               drawStateRepo.Phase(models.DrawPhaseRevealed),
			CurrentWinners:      cur.winners,
			ShouldStartSpinning: drawStateRepo.Bool(false),
			ShouldStartSlowdown: drawStateRepo.Bool(false),
			ShowWinnerDisplay:   drawStateRepo.Bool(true),

			ProcessedByOtherController: drawStateRepo.Bool(true),
			ControllerActive:           drawStateRepo.Bool(false),
		},
	}); err != nil {
		return nil, err
	}

	if err := s.drawStateRepo.ReleaseLease(ctx, &drawStateRepo.ReleaseLeaseInput{Owner: s.config.Role}); err != nil {
		log.Warn().Err(err).Msg("failed to release lease after reveal")
	}

	s.cur = nil

	log.Info().
		Str("session_id", cur.sessionID).
		Str("outcome", string(finalizeOut.Outcome)).
		Msg("winners revealed")

	return &RevealOutput{
		Outcome: finalizeOut.Outcome,
		Winners: cur.winners,
	}, nil
}

// Finalize idempotently persists winners and decrements the prize quota
func (s *service) Finalize(ctx context.Context, input *FinalizeInput) (*FinalizeOutput, error) {
	return s.finalize(ctx, input)
}

func (s *service) finalize(ctx context.Context, input *FinalizeInput) (*FinalizeOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	// Client-local advisory flag: this process already finalized
	if s.localState != nil && s.localState.IsProcessed(input.SessionID) {
		return &FinalizeOutput{Outcome: FinalizeOutcomeAlreadyProcessed, RemainingQuota: -1}, nil
	}

	// Shared advisory flag: the other controller already finalized
	if shared, err := s.drawStateRepo.Get(ctx); err == nil {
		if shared.SessionID == input.SessionID && shared.ProcessedByOtherController {
			s.rememberProcessed(input.SessionID)
			return &FinalizeOutput{Outcome: FinalizeOutcomeAlreadyProcessed, RemainingQuota: -1}, nil
		}
	}

	// The authoritative gate: exactly one controller claims the marker
	marked, err := s.drawStateRepo.MarkFinalized(ctx, &drawStateRepo.MarkFinalizedInput{
		SessionID: input.SessionID,
		Owner:     s.config.Role,
	})
	if err != nil {
		return nil, err
	}
	if !marked.First {
		s.rememberProcessed(input.SessionID)
		log.Info().Str("session_id", input.SessionID).Msg("finalize suppressed, session already processed")
		return &FinalizeOutput{Outcome: FinalizeOutcomeAlreadyProcessed, RemainingQuota: -1}, nil
	}

	// Persist only winners not already present, deduplicated by identity
	existing, err := s.winnerRepo.ListSessionWinners(ctx, &winnerRepo.ListSessionWinnersInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(existing.Winners))
	for _, w := range existing.Winners {
		seen[w.ParticipantID] = true
	}

	toAdd := make([]*models.Winner, 0, len(input.Winners))
	for _, w := range input.Winners {
		if w == nil || seen[w.ParticipantID] {
			continue
		}
		seen[w.ParticipantID] = true
		toAdd = append(toAdd, w)
	}

	if len(toAdd) > 0 {
		err = backoff.Retry(ctx, s.retryCfg, func(retryCtx context.Context) error {
			return s.winnerRepo.AddWinners(retryCtx, &winnerRepo.AddWinnersInput{Winners: toAdd})
		})
		if err != nil {
			return nil, err
		}
	}

	remaining := -1
	if input.PrizeID != "" && len(toAdd) > 0 {
		var decOut *prizeRepo.DecrementRemainingOutput
		err = backoff.Retry(ctx, s.retryCfg, func(retryCtx context.Context) error {
			var decErr error
			decOut, decErr = s.prizeRepo.DecrementRemaining(retryCtx, &prizeRepo.DecrementRemainingInput{
				PrizeID: input.PrizeID,
				Count:   len(toAdd),
			})
			return decErr
		})
		if err != nil {
			return nil, err
		}
		remaining = decOut.Remaining

		if remaining == 0 {
			// An exhausted prize deselects itself
			if _, err := s.drawStateRepo.Publish(ctx, &drawStateRepo.PublishInput{
				ExpectedVersion: drawStateRepo.NoVersionCheck,
				Patch: &drawStateRepo.Patch{
					SelectedPrizeID:    drawStateRepo.String(""),
					SelectedPrizeName:  drawStateRepo.String(""),
					SelectedPrizeImage: drawStateRepo.String(""),
					SelectedPrizeQuota: drawStateRepo.Int(0),
				},
			}); err != nil {
				log.Warn().Err(err).Str("prize_id", input.PrizeID).Msg("failed to deselect exhausted prize")
			}
		}
	}

	s.scheduleWinnerRemoval(toAdd)
	s.rememberProcessed(input.SessionID)

	log.Info().
		Str("session_id", input.SessionID).
		Int("winners_added", len(toAdd)).
		Int("remaining_quota", remaining).
		Msg("session finalized")

	return &FinalizeOutput{
		Outcome:        FinalizeOutcomeSuccess,
		WinnersAdded:   len(toAdd),
		RemainingQuota: remaining,
	}, nil
}

// scheduleWinnerRemoval drops winning participants from the pool after a
// settle delay. The removal is best effort and outside the finalize
// guarantee: a failure leaves winners persisted but still in the pool,
// which the eligibility filter already tolerates.
func (s *service) scheduleWinnerRemoval(winners []*models.Winner) {
	if len(winners) == 0 {
		return
	}

	ids := make([]string, 0, len(winners))
	for _, w := range winners {
		ids = append(ids, w.ParticipantID)
	}

	remove := func(ctx context.Context) {
		err := s.participantRepo.DeleteParticipants(ctx, &participantRepo.DeleteParticipantsInput{
			ParticipantIDs: ids,
		})
		if err != nil {
			log.Warn().Err(err).Strs("participant_ids", ids).Msg("pool cleanup failed after finalize")
		}
	}

	if s.config.RemovalDelay <= 0 {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()
		remove(ctx)
		return
	}

	go func() {
		<-s.clock.After(s.config.RemovalDelay)
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()
		remove(ctx)
	}()
}

// rememberProcessed records the local advisory flag for a session
func (s *service) rememberProcessed(sessionID string) {
	if s.localState == nil {
		return
	}
	if err := s.localState.MarkProcessed(sessionID); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist local processed flag")
	}
}

// Clear resets the shared record to idle defaults; persisted winners and
// quota decrements stay intact
func (s *service) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPending()

	session, err := s.drawStateRepo.Reset(ctx, &drawStateRepo.ResetInput{
		SessionID: s.uuidGen.NewUUID(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.drawStateRepo.ReleaseLease(ctx, &drawStateRepo.ReleaseLeaseInput{Owner: s.config.Role}); err != nil {
		log.Warn().Err(err).Msg("failed to release lease on clear")
	}

	s.cur = nil

	log.Info().Str("session_id", session.SessionID).Msg("draw state cleared")

	return &ClearOutput{Session: session}, nil
}

// EligiblePool returns the participants still eligible to win
func (s *service) EligiblePool(ctx context.Context, input *EligiblePoolInput) (*EligiblePoolOutput, error) {
	pool, err := s.eligiblePool(ctx)
	if err != nil {
		return nil, err
	}

	return &EligiblePoolOutput{Participants: pool}, nil
}

// eligiblePool filters the live pool down to participants who have never
// been persisted as winners, matched by participant id
func (s *service) eligiblePool(ctx context.Context) ([]*models.Participant, error) {
	participants, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{})
	if err != nil {
		return nil, err
	}

	winners, err := s.winnerRepo.ListWinners(ctx, &winnerRepo.ListWinnersInput{})
	if err != nil {
		return nil, err
	}

	won := make(map[string]bool, len(winners.Winners))
	for _, w := range winners.Winners {
		won[w.ParticipantID] = true
	}

	pool := make([]*models.Participant, 0, len(participants.Participants))
	for _, p := range participants.Participants {
		if !won[p.ID] {
			pool = append(pool, p)
		}
	}

	return pool, nil
}

// Status reports the shared record, controller presence and lease owner
func (s *service) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	session, err := s.drawStateRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.drawStateRepo.ActiveControllers(ctx)
	if err != nil {
		return nil, err
	}

	var owner models.ControllerRole
	lease, err := s.drawStateRepo.GetLease(ctx)
	if err == nil {
		owner = lease.Owner
	} else if !errors.Is(err, drawStateRepo.ErrNoLease) {
		return nil, err
	}

	return &StatusOutput{
		Session:           session,
		ActiveControllers: active,
		LeaseOwner:        owner,
	}, nil
}

// RunHeartbeat maintains this controller's presence and lease until the
// context is cancelled
func (s *service) RunHeartbeat(ctx context.Context) {
	ticker := s.clock.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	s.beat(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.beat(ctx)
		}
	}
}

func (s *service) beat(ctx context.Context) {
	if err := s.drawStateRepo.Heartbeat(ctx, &drawStateRepo.HeartbeatInput{Role: s.config.Role}); err != nil {
		log.Warn().Err(err).Msg("heartbeat failed")
	}

	s.mu.Lock()
	inFlight := s.cur != nil
	s.mu.Unlock()

	if inFlight {
		err := s.drawStateRepo.RenewLease(ctx, &drawStateRepo.RenewLeaseInput{Owner: s.config.Role})
		if err != nil && !errors.Is(err, drawStateRepo.ErrNoLease) {
			log.Warn().Err(err).Msg("lease renewal failed")
		}
	}
}
