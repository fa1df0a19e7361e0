package models

import (
	"time"
)

// DrawPhase represents the current stage of a draw session's state machine
type DrawPhase string

const (
	// DrawPhaseIdle indicates no session is in progress
	DrawPhaseIdle DrawPhase = "idle"

	// DrawPhaseCommitted indicates winners have been chosen but nothing is
	// visible to the display yet
	DrawPhaseCommitted DrawPhase = "committed"

	// DrawPhaseSpinning indicates the display is cycling random names
	DrawPhaseSpinning DrawPhase = "spinning"

	// DrawPhaseSlowdown indicates the display is freezing onto the
	// predetermined winners
	DrawPhaseSlowdown DrawPhase = "slowdown"

	// DrawPhaseRevealed indicates winners are shown and persisted
	DrawPhaseRevealed DrawPhase = "revealed"
)

// DrawSession is the shared record replicated to every client. It is the
// sole communication medium between the controllers and the display.
type DrawSession struct {
	// SessionID is the correlation id, unique per draw attempt
	SessionID string `json:"sessionId"`

	// Phase is the current stage of the session
	Phase DrawPhase `json:"phase"`

	// SelectedPrizeID is the globally selected prize, empty when none
	SelectedPrizeID string `json:"selectedPrizeId,omitempty"`

	// SelectedPrizeName is a snapshot of the prize name at session start
	SelectedPrizeName string `json:"selectedPrizeName,omitempty"`

	// SelectedPrizeImage is a snapshot of the prize image at session start
	SelectedPrizeImage string `json:"selectedPrizeImage,omitempty"`

	// SelectedPrizeQuota is a snapshot of the remaining quota at session start
	SelectedPrizeQuota int `json:"selectedPrizeQuota,omitempty"`

	// ParticipantsSnapshot is the pool frozen at commit time. The display
	// cycles names from this, never from the live pool.
	ParticipantsSnapshot []*Participant `json:"participantsSnapshot,omitempty"`

	// PredeterminedWinners is the committed, not-yet-revealed result. It is
	// chosen once at commit and never recomputed.
	PredeterminedWinners []*Winner `json:"predeterminedWinners,omitempty"`

	// CurrentWinners is the publicly shown result, identical to
	// PredeterminedWinners once revealed
	CurrentWinners []*Winner `json:"currentWinners,omitempty"`

	// ShouldStartSpinning tells the display to begin cycling names
	ShouldStartSpinning bool `json:"shouldStartSpinning"`

	// ShouldStartSlowdown tells the display to freeze onto the winners
	ShouldStartSlowdown bool `json:"shouldStartSlowdown"`

	// ShowWinnerDisplay tells the display to show the revealed winners
	ShowWinnerDisplay bool `json:"showWinnerDisplay"`

	// ProcessedByOtherController signals that finalization already ran.
	// Advisory only; the finalize marker is the authoritative gate.
	ProcessedByOtherController bool `json:"processedByOtherController"`

	// ControllerActive signals that some controller is driving a session
	ControllerActive bool `json:"controllerActive"`

	// Version is a monotonic counter bumped on every publish, used for
	// compare-and-swap writes
	Version int64 `json:"version"`

	// LastUpdated is when the record was last published
	LastUpdated time.Time `json:"lastUpdated"`
}

// NewIdleSession returns a fresh shared record with idle defaults
func NewIdleSession(sessionID string, now time.Time) *DrawSession {
	return &DrawSession{
		SessionID:   sessionID,
		Phase:       DrawPhaseIdle,
		LastUpdated: now,
	}
}
