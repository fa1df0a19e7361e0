package draw

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/stagedraw/internal/services/draw Service

import "context"

// Service defines the interface for driving a draw session
type Service interface {
	// SelectPrize sets or clears the globally selected prize
	SelectPrize(ctx context.Context, input *SelectPrizeInput) (*SelectPrizeOutput, error)

	// Commit starts a new session: freezes the pool, samples the winners
	// and publishes the committed record without revealing anything
	Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error)

	// StartSpin signals the display to begin cycling names and schedules
	// the slowdown after the spin dwell
	StartSpin(ctx context.Context, input *StartSpinInput) (*StartSpinOutput, error)

	// Stop cuts the spin short and moves straight to the slowdown
	Stop(ctx context.Context, input *StopInput) (*StopOutput, error)

	// Reveal finalizes the session and publishes the revealed winners
	Reveal(ctx context.Context, input *RevealInput) (*RevealOutput, error)

	// Finalize idempotently persists winners and decrements the prize
	// quota for a session
	Finalize(ctx context.Context, input *FinalizeInput) (*FinalizeOutput, error)

	// Clear resets the shared record to idle defaults. Persisted winners
	// and quota decrements stay intact.
	Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error)

	// EligiblePool returns the participants still eligible to win
	EligiblePool(ctx context.Context, input *EligiblePoolInput) (*EligiblePoolOutput, error)

	// Status reports the shared record, controller presence and lease owner
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)

	// RunHeartbeat maintains this controller's presence and lease until
	// the context is cancelled
	RunHeartbeat(ctx context.Context)
}
