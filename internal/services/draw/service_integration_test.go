package draw

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/stagedraw/internal/common/uuid"
	"github.com/KirkDiggler/stagedraw/internal/localstate"
	"github.com/KirkDiggler/stagedraw/internal/models"
	drawStateRepo "github.com/KirkDiggler/stagedraw/internal/repositories/drawstate"
	participantRepo "github.com/KirkDiggler/stagedraw/internal/repositories/participant"
	prizeRepo "github.com/KirkDiggler/stagedraw/internal/repositories/prize"
	winnerRepo "github.com/KirkDiggler/stagedraw/internal/repositories/winner"
	"github.com/KirkDiggler/stagedraw/internal/shuffle"
)

// DrawLifecycleTestSuite drives the service against real repositories on
// a miniredis, the way two controllers and a display share one record in
// production
type DrawLifecycleTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client

	drawState    drawStateRepo.Repository
	participants participantRepo.Repository
	prizes       prizeRepo.Repository
	winners      winnerRepo.Repository

	primary Service
	vip     Service

	ctx     context.Context
	testNow time.Time
}

func (s *DrawLifecycleTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.drawState, err = drawStateRepo.NewRedis(&drawStateRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	s.participants, err = participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	s.prizes, err = prizeRepo.NewRedis(&prizeRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	s.winners, err = winnerRepo.NewRedis(&winnerRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	s.primary = s.newController(models.RolePrimary, 1)
	s.vip = s.newController(models.RoleVIP, 2)

	s.ctx = context.Background()
	s.testNow = time.Date(2026, 8, 1, 19, 0, 0, 0, time.UTC)
}

func (s *DrawLifecycleTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestDrawLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(DrawLifecycleTestSuite))
}

// newController builds a service instance the way cmd/server wires one,
// with dwells long enough that no scheduled transition fires mid-test
func (s *DrawLifecycleTestSuite) newController(role models.ControllerRole, seed int64) Service {
	localState, err := localstate.New(&localstate.Config{
		Dir:  s.T().TempDir(),
		Role: role,
	})
	s.Require().NoError(err)

	svc, err := NewService(&Config{
		Role:            role,
		SpinDwell:       time.Hour,
		SlowdownDwell:   time.Hour,
		DrawStateRepo:   s.drawState,
		ParticipantRepo: s.participants,
		PrizeRepo:       s.prizes,
		WinnerRepo:      s.winners,
		Sampler:         shuffle.New(&shuffle.Config{Seed: seed}),
		Clock:           clockwork.NewRealClock(),
		UUIDGenerator:   uuid.New(),
		LocalState:      localState,
	})
	s.Require().NoError(err)

	return svc
}

func (s *DrawLifecycleTestSuite) seedPool(count int) {
	batch := make([]*models.Participant, 0, count)
	for i := 0; i < count; i++ {
		batch = append(batch, &models.Participant{
			ID:       fmt.Sprintf("p-%d", i),
			Name:     fmt.Sprintf("Participant %d", i),
			Tag:      fmt.Sprintf("EMP-%04d", i),
			JoinedAt: s.testNow.Add(time.Duration(i) * time.Second),
		})
	}

	err := s.participants.SaveParticipants(s.ctx, &participantRepo.SaveParticipantsInput{
		Participants: batch,
	})
	s.Require().NoError(err)
}

func (s *DrawLifecycleTestSuite) seedPrize(quota int) *models.Prize {
	p := &models.Prize{
		ID:             "test-prize-id",
		Name:           "Grand Prize",
		Quota:          quota,
		RemainingQuota: quota,
		CreatedAt:      s.testNow,
	}

	err := s.prizes.SavePrize(s.ctx, &prizeRepo.SavePrizeInput{Prize: p})
	s.Require().NoError(err)

	return p
}

func (s *DrawLifecycleTestSuite) TestFullDrawLifecycle() {
	s.seedPool(12)
	s.seedPrize(3)

	_, err := s.primary.SelectPrize(s.ctx, &SelectPrizeInput{PrizeID: "test-prize-id"})
	s.Require().NoError(err)

	// Commit freezes the pool and the winners without disclosing them
	committed, err := s.primary.Commit(s.ctx, &CommitInput{})
	s.Require().NoError(err)
	s.Require().Len(committed.Winners, 3)

	shared, err := s.drawState.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.DrawPhaseCommitted, shared.Phase)
	s.Len(shared.ParticipantsSnapshot, 12)
	s.Len(shared.PredeterminedWinners, 3)
	s.Empty(shared.CurrentWinners)
	s.False(shared.ShowWinnerDisplay)

	// Spin, then cut it short
	_, err = s.primary.StartSpin(s.ctx, &StartSpinInput{})
	s.Require().NoError(err)

	shared, err = s.drawState.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.DrawPhaseSpinning, shared.Phase)
	s.True(shared.ShouldStartSpinning)

	stopped, err := s.primary.Stop(s.ctx, &StopInput{})
	s.Require().NoError(err)
	s.Equal(models.DrawPhaseSlowdown, stopped.Session.Phase)
	s.True(stopped.Session.ShouldStartSlowdown)

	// The slowdown carries the same winners committed earlier
	s.Require().Len(stopped.Session.PredeterminedWinners, 3)
	for i, w := range stopped.Session.PredeterminedWinners {
		s.Equal(committed.Winners[i].ParticipantID, w.ParticipantID)
	}

	revealed, err := s.primary.Reveal(s.ctx, &RevealInput{})
	s.Require().NoError(err)
	s.Equal(FinalizeOutcomeSuccess, revealed.Outcome)
	s.Len(revealed.Winners, 3)

	// Winners persisted exactly once
	allWinners, err := s.winners.ListWinners(s.ctx, &winnerRepo.ListWinnersInput{})
	s.Require().NoError(err)
	s.Len(allWinners.Winners, 3)

	// Quota fully consumed, and the empty prize deselected itself
	p, err := s.prizes.GetPrize(s.ctx, &prizeRepo.GetPrizeInput{PrizeID: "test-prize-id"})
	s.Require().NoError(err)
	s.Equal(0, p.RemainingQuota)
	s.Equal(3, p.Quota)

	shared, err = s.drawState.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.DrawPhaseRevealed, shared.Phase)
	s.True(shared.ShowWinnerDisplay)
	s.True(shared.ProcessedByOtherController)
	s.Len(shared.CurrentWinners, 3)
	s.Equal("", shared.SelectedPrizeID)

	// Winners left the pool
	pool, err := s.primary.EligiblePool(s.ctx, &EligiblePoolInput{})
	s.Require().NoError(err)
	s.Len(pool.Participants, 9)

	// The lease is free again
	_, err = s.drawState.GetLease(s.ctx)
	s.Require().ErrorIs(err, drawStateRepo.ErrNoLease)
}

func (s *DrawLifecycleTestSuite) TestFinalizeIdempotentAcrossControllers() {
	s.seedPool(12)
	s.seedPrize(3)

	committed, err := s.primary.Commit(s.ctx, &CommitInput{PrizeID: "test-prize-id"})
	s.Require().NoError(err)

	revealed, err := s.primary.Reveal(s.ctx, &RevealInput{})
	s.Require().NoError(err)
	s.Equal(FinalizeOutcomeSuccess, revealed.Outcome)

	// The other controller finalizing the same session must be a no-op
	out, err := s.vip.Finalize(s.ctx, &FinalizeInput{
		SessionID: committed.SessionID,
		Winners:   committed.Winners,
		PrizeID:   "test-prize-id",
	})
	s.Require().NoError(err)
	s.Equal(FinalizeOutcomeAlreadyProcessed, out.Outcome)
	s.Equal(0, out.WinnersAdded)

	allWinners, err := s.winners.ListWinners(s.ctx, &winnerRepo.ListWinnersInput{})
	s.Require().NoError(err)
	s.Len(allWinners.Winners, 3)

	p, err := s.prizes.GetPrize(s.ctx, &prizeRepo.GetPrizeInput{PrizeID: "test-prize-id"})
	s.Require().NoError(err)
	s.Equal(0, p.RemainingQuota)
}

func (s *DrawLifecycleTestSuite) TestCommitArbitrationBetweenControllers() {
	s.seedPool(12)
	s.seedPrize(3)

	_, err := s.primary.Commit(s.ctx, &CommitInput{PrizeID: "test-prize-id"})
	s.Require().NoError(err)

	// The second controller loses regardless of how close the race was
	_, err = s.vip.Commit(s.ctx, &CommitInput{PrizeID: "test-prize-id"})
	s.Require().ErrorIs(err, ErrSessionInProgress)
}

func (s *DrawLifecycleTestSuite) TestCommitBlockedByForeignLease() {
	s.seedPool(12)
	s.seedPrize(3)

	// The record still reads idle, but the lease is out
	_, err := s.drawState.AcquireLease(s.ctx, &drawStateRepo.AcquireLeaseInput{
		Owner:     models.RolePrimary,
		SessionID: "external-session",
	})
	s.Require().NoError(err)

	_, err = s.vip.Commit(s.ctx, &CommitInput{PrizeID: "test-prize-id"})
	s.Require().ErrorIs(err, ErrOtherControllerActive)
}

func (s *DrawLifecycleTestSuite) TestClearPreservesPersistedRecords() {
	s.seedPool(12)
	s.seedPrize(3)

	_, err := s.primary.Commit(s.ctx, &CommitInput{PrizeID: "test-prize-id"})
	s.Require().NoError(err)

	_, err = s.primary.Reveal(s.ctx, &RevealInput{})
	s.Require().NoError(err)

	cleared, err := s.primary.Clear(s.ctx, &ClearInput{})
	s.Require().NoError(err)
	s.Equal(models.DrawPhaseIdle, cleared.Session.Phase)
	s.Empty(cleared.Session.CurrentWinners)

	// Clearing the stage never touches the books
	allWinners, err := s.winners.ListWinners(s.ctx, &winnerRepo.ListWinnersInput{})
	s.Require().NoError(err)
	s.Len(allWinners.Winners, 3)

	p, err := s.prizes.GetPrize(s.ctx, &prizeRepo.GetPrizeInput{PrizeID: "test-prize-id"})
	s.Require().NoError(err)
	s.Equal(0, p.RemainingQuota)
}

func (s *DrawLifecycleTestSuite) TestPastWinnersNeverDrawAgain() {
	s.seedPool(12)
	first := s.seedPrize(2)

	committed, err := s.primary.Commit(s.ctx, &CommitInput{PrizeID: first.ID})
	s.Require().NoError(err)

	_, err = s.primary.Reveal(s.ctx, &RevealInput{})
	s.Require().NoError(err)

	firstRound := map[string]bool{}
	for _, w := range committed.Winners {
		firstRound[w.ParticipantID] = true
	}

	// A second prize, a second session
	second := &models.Prize{
		ID:             "second-prize-id",
		Name:           "Second Prize",
		Quota:          4,
		RemainingQuota: 4,
		CreatedAt:      s.testNow.Add(time.Minute),
	}
	s.Require().NoError(s.prizes.SavePrize(s.ctx, &prizeRepo.SavePrizeInput{Prize: second}))

	committed2, err := s.primary.Commit(s.ctx, &CommitInput{PrizeID: second.ID})
	s.Require().NoError(err)
	s.Require().Len(committed2.Winners, 4)

	for _, w := range committed2.Winners {
		s.False(firstRound[w.ParticipantID], "identity %s won twice", w.ParticipantID)
	}
}

func (s *DrawLifecycleTestSuite) TestFinalizeRaceBetweenControllers() {
	s.seedPool(12)
	s.seedPrize(3)

	committed, err := s.primary.Commit(s.ctx, &CommitInput{PrizeID: "test-prize-id"})
	s.Require().NoError(err)

	input := &FinalizeInput{
		SessionID: committed.SessionID,
		Winners:   committed.Winners,
		PrizeID:   "test-prize-id",
	}

	type result struct {
		outcome FinalizeOutcome
		err     error
	}

	// Both controllers race the same finalize; the marker decides
	start := make(chan struct{})
	results := make(chan result, 2)
	var wg sync.WaitGroup
	for _, svc := range []Service{s.primary, s.vip} {
		wg.Add(1)
		go func(svc Service) {
			defer wg.Done()
			<-start
			out, err := svc.Finalize(s.ctx, input)
			if err != nil {
				results <- result{err: err}
				return
			}
			results <- result{outcome: out.Outcome}
		}(svc)
	}
	close(start)
	wg.Wait()
	close(results)

	var successes, noops int
	for r := range results {
		s.Require().NoError(r.err)
		switch r.outcome {
		case FinalizeOutcomeSuccess:
			successes++
		case FinalizeOutcomeAlreadyProcessed:
			noops++
		}
	}
	s.Equal(1, successes)
	s.Equal(1, noops)

	// One batch persisted, one decrement applied
	allWinners, err := s.winners.ListWinners(s.ctx, &winnerRepo.ListWinnersInput{})
	s.Require().NoError(err)
	s.Len(allWinners.Winners, 3)

	p, err := s.prizes.GetPrize(s.ctx, &prizeRepo.GetPrizeInput{PrizeID: "test-prize-id"})
	s.Require().NoError(err)
	s.Equal(0, p.RemainingQuota)
}

func (s *DrawLifecycleTestSuite) TestSpinPhaseSequenceEnforced() {
	s.seedPool(12)
	s.seedPrize(3)

	_, err := s.primary.Commit(s.ctx, &CommitInput{PrizeID: "test-prize-id"})
	s.Require().NoError(err)

	// Slowing down a session that never spun makes no sense
	_, err = s.primary.Stop(s.ctx, &StopInput{})
	s.Require().ErrorIs(err, ErrInvalidPhase)

	_, err = s.primary.StartSpin(s.ctx, &StartSpinInput{})
	s.Require().NoError(err)

	_, err = s.primary.StartSpin(s.ctx, &StartSpinInput{})
	s.Require().ErrorIs(err, ErrInvalidPhase)

	stopped, err := s.primary.Stop(s.ctx, &StopInput{})
	s.Require().NoError(err)

	// A second stop must not re-run the slowdown for the live session
	_, err = s.primary.Stop(s.ctx, &StopInput{})
	s.Require().ErrorIs(err, ErrInvalidPhase)

	shared, err := s.drawState.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(stopped.Session.Version, shared.Version)

	revealed, err := s.primary.Reveal(s.ctx, &RevealInput{})
	s.Require().NoError(err)
	s.Equal(FinalizeOutcomeSuccess, revealed.Outcome)
}
