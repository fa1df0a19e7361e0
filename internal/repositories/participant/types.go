package participant

import "github.com/KirkDiggler/stagedraw/internal/models"

type SaveParticipantInput struct {
	Participant *models.Participant
}

type SaveParticipantsInput struct {
	Participants []*models.Participant
}

type GetParticipantInput struct {
	ParticipantID string
}

type ListParticipantsInput struct {
}

type ListParticipantsOutput struct {
	Participants []*models.Participant
}

type DeleteParticipantInput struct {
	ParticipantID string
}

type DeleteParticipantsInput struct {
	ParticipantIDs []string
}
