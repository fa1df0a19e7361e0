package drawstate

import (
	"time"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

// Patch is a partial update to the shared record. Nil fields are left
// untouched; non-nil empty slices clear their field.
type Patch struct {
	SessionID            *string
	Phase                *models.DrawPhase
	SelectedPrizeID      *string
	SelectedPrizeName    *string
	SelectedPrizeImage   *string
	SelectedPrizeQuota   *int
	ParticipantsSnapshot []*models.Participant
	PredeterminedWinners []*models.Winner
	CurrentWinners       []*models.Winner
	ShouldStartSpinning  *bool
	ShouldStartSlowdown  *bool
	ShowWinnerDisplay    *bool

	ProcessedByOtherController *bool
	ControllerActive           *bool
}

// NoVersionCheck disables compare-and-swap on a publish
const NoVersionCheck int64 = -1

type PublishInput struct {
	Patch *Patch

	// ExpectedVersion enables compare-and-swap when >= 0
	ExpectedVersion int64
}

type ResetInput struct {
	// SessionID is the fresh correlation id for the idle record
	SessionID string
}

type AcquireLeaseInput struct {
	Owner     models.ControllerRole
	SessionID string
}

type RenewLeaseInput struct {
	Owner models.ControllerRole
}

type ReleaseLeaseInput struct {
	Owner models.ControllerRole
}

type MarkFinalizedInput struct {
	SessionID string
	Owner     models.ControllerRole
}

type MarkFinalizedOutput struct {
	// First is true for exactly one caller per session
	First bool
}

type HeartbeatInput struct {
	Role models.ControllerRole
}

// Pointer helpers for building patches

func String(v string) *string {
	return &v
}

func Int(v int) *int {
	return &v
}

func Bool(v bool) *bool {
	return &v
}

func Phase(v models.DrawPhase) *models.DrawPhase {
	return &v
}

// defaultTTLs for leases, presence and finalize markers
const (
	defaultLeaseTTL     = 30 * time.Second
	defaultHeartbeatTTL = 10 * time.Second
	defaultMarkerTTL    = 24 * time.Hour
)
