package drawstate

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/stagedraw/internal/repositories/drawstate Repository

import (
	"context"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

// Repository is the shared draw-state channel. One record, replicated to
// every subscriber; writes are per-field with an optional version check.
type Repository interface {
	// Get retrieves the current shared record. A missing record comes back
	// as idle defaults, never as an error.
	Get(ctx context.Context) (*models.DrawSession, error)

	// Publish applies a partial update to the shared record and notifies
	// subscribers. With ExpectedVersion >= 0 the write is compare-and-swap
	// and fails with ErrVersionConflict if the record moved.
	Publish(ctx context.Context, input *PublishInput) (*models.DrawSession, error)

	// Reset overwrites the record with idle defaults under a fresh session id
	Reset(ctx context.Context, input *ResetInput) (*models.DrawSession, error)

	// Subscribe returns a lazy, infinite, restartable stream of record
	// snapshots. The channel closes when ctx is done.
	Subscribe(ctx context.Context) <-chan *models.DrawSession

	// AcquireLease grants session ownership to one controller. Re-acquiring
	// your own lease extends it; another holder yields ErrLeaseHeld.
	AcquireLease(ctx context.Context, input *AcquireLeaseInput) (*models.Lease, error)

	// RenewLease extends a held lease
	RenewLease(ctx context.Context, input *RenewLeaseInput) error

	// ReleaseLease drops a held lease. Releasing a lease you do not hold
	// is a no-op.
	ReleaseLease(ctx context.Context, input *ReleaseLeaseInput) error

	// GetLease retrieves the current lease, or ErrNoLease
	GetLease(ctx context.Context) (*models.Lease, error)

	// MarkFinalized claims the one-shot finalize marker for a session.
	// Exactly one caller per session observes First == true.
	MarkFinalized(ctx context.Context, input *MarkFinalizedInput) (*MarkFinalizedOutput, error)

	// Heartbeat refreshes this controller's presence key
	Heartbeat(ctx context.Context, input *HeartbeatInput) error

	// ActiveControllers reports which controller roles have a live heartbeat
	ActiveControllers(ctx context.Context) ([]models.ControllerRole, error)
}
