package prize

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/stagedraw/internal/repositories/prize Repository

import (
	"context"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

// Repository defines the interface for prize data persistence
type Repository interface {
	// SavePrize persists a prize
	SavePrize(ctx context.Context, input *SavePrizeInput) error

	// GetPrize retrieves a prize by ID
	GetPrize(ctx context.Context, input *GetPrizeInput) (*models.Prize, error)

	// ListPrizes retrieves all prizes ordered by creation time
	ListPrizes(ctx context.Context, input *ListPrizesInput) (*ListPrizesOutput, error)

	// DeletePrize removes a prize
	DeletePrize(ctx context.Context, input *DeletePrizeInput) error

	// DecrementRemaining atomically lowers a prize's remaining quota,
	// clamping at zero
	DecrementRemaining(ctx context.Context, input *DecrementRemainingInput) (*DecrementRemainingOutput, error)
}
