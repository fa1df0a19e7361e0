package draw

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/KirkDiggler/stagedraw/internal/common/uuid"
	"github.com/KirkDiggler/stagedraw/internal/localstate"
	"github.com/KirkDiggler/stagedraw/internal/models"
	drawStateRepo "github.com/KirkDiggler/stagedraw/internal/repositories/drawstate"
	participantRepo "github.com/KirkDiggler/stagedraw/internal/repositories/participant"
	prizeRepo "github.com/KirkDiggler/stagedraw/internal/repositories/prize"
	winnerRepo "github.com/KirkDiggler/stagedraw/internal/repositories/winner"
	"github.com/KirkDiggler/stagedraw/internal/shuffle"
)

// FinalizeOutcome classifies how a finalize call resolved
type FinalizeOutcome string

const (
	// FinalizeOutcomeSuccess indicates this call persisted the winners
	FinalizeOutcomeSuccess FinalizeOutcome = "success"

	// FinalizeOutcomeAlreadyProcessed indicates another finalize got there
	// first; nothing was written
	FinalizeOutcomeAlreadyProcessed FinalizeOutcome = "already_processed"
)

// Config holds configuration for the draw service
type Config struct {
	// Role identifies which controller this service instance acts as
	Role models.ControllerRole

	// DefaultDrawCount is used when committing without a selected prize
	DefaultDrawCount int

	// SpinDwell is how long the display spins before the slowdown signal
	SpinDwell time.Duration

	// SlowdownDwell is how long the slowdown runs before the reveal
	SlowdownDwell time.Duration

	// RemovalDelay is the settle time before winning participants are
	// removed from the pool. Zero removes them inline during finalize.
	RemovalDelay time.Duration

	// HeartbeatInterval is how often presence and lease renewals run
	HeartbeatInterval time.Duration

	// Repository dependencies
	DrawStateRepo   drawStateRepo.Repository
	ParticipantRepo participantRepo.Repository
	PrizeRepo       prizeRepo.Repository
	WinnerRepo      winnerRepo.Repository

	// Service dependencies
	Sampler       *shuffle.Sampler
	Clock         clockwork.Clock
	UUIDGenerator uuid.UUID

	// LocalState is the optional client-local advisory flag store
	LocalState *localstate.Store
}

// SelectPrizeInput contains parameters for selecting the global prize
type SelectPrizeInput struct {
	// PrizeID is the prize to select; empty clears the selection
	PrizeID string
}

// SelectPrizeOutput contains the updated shared record
type SelectPrizeOutput struct {
	Session *models.DrawSession
}

// CommitInput contains parameters for committing a new draw session
type CommitInput struct {
	// PrizeID optionally overrides the globally selected prize
	PrizeID string
}

// CommitOutput contains the result of committing a session
type CommitOutput struct {
	// SessionID is the correlation id of the new session
	SessionID string

	// Winners is the predetermined, not-yet-revealed result
	Winners []*models.Winner
}

type StartSpinInput struct {
}

type StartSpinOutput struct {
	Session *models.DrawSession
}

type StopInput struct {
}

type StopOutput struct {
	Session *models.DrawSession
}

// RevealInput contains parameters for the finalize-and-reveal transition
type RevealInput struct {
}

// RevealOutput contains the result of revealing a session
type RevealOutput struct {
	// Outcome reports whether this controller's finalize ran or was
	// suppressed by the other controller's
	Outcome FinalizeOutcome

	// Winners is the revealed result
	Winners []*models.Winner
}

// FinalizeInput contains parameters for idempotent winner persistence
type FinalizeInput struct {
	// SessionID is the idempotency key
	SessionID string

	// Winners is the predetermined winner list for the session
	Winners []*models.Winner

	// PrizeID is the prize whose quota the session consumes, empty for a
	// default-count draw
	PrizeID string
}

// FinalizeOutput contains the result of a finalize call
type FinalizeOutput struct {
	Outcome FinalizeOutcome

	// WinnersAdded is how many winner records this call persisted
	WinnersAdded int

	// RemainingQuota is the prize quota left after the decrement, -1 when
	// no prize was involved
	RemainingQuota int
}

type ClearInput struct {
}

type ClearOutput struct {
	Session *models.DrawSession
}

type EligiblePoolInput struct {
}

type EligiblePoolOutput struct {
	// Participants is the pool minus everyone already persisted as a winner
	Participants []*models.Participant
}

type StatusInput struct {
}

type StatusOutput struct {
	Session *models.DrawSession

	// ActiveControllers lists roles with a live heartbeat
	ActiveControllers []models.ControllerRole

	// LeaseOwner is the current lease holder, empty when unheld
	LeaseOwner models.ControllerRole
}
