package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/stagedraw/internal/repositories/participant Repository

import (
	"context"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

// Repository defines the interface for participant data persistence
type Repository interface {
	// SaveParticipant persists a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// SaveParticipants persists a batch of participants
	SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// ListParticipants retrieves all participants ordered by join time
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// DeleteParticipant removes a participant
	DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error

	// DeleteParticipants removes a batch of participants
	DeleteParticipants(ctx context.Context, input *DeleteParticipantsInput) error
}
