package winner

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/stagedraw/internal/repositories/winner Repository

import (
	"context"
)

// Repository defines the interface for winner data persistence
type Repository interface {
	// AddWinners persists a batch of winner records and indexes them by
	// draw session
	AddWinners(ctx context.Context, input *AddWinnersInput) error

	// ListWinners retrieves all winners ordered by win time
	ListWinners(ctx context.Context, input *ListWinnersInput) (*ListWinnersOutput, error)

	// ListSessionWinners retrieves the winners persisted for one session
	ListSessionWinners(ctx context.Context, input *ListSessionWinnersInput) (*ListSessionWinnersOutput, error)

	// DeleteWinner removes a winner record
	DeleteWinner(ctx context.Context, input *DeleteWinnerInput) error
}
