package httpapi

// addParticipantRequest is the payload for creating one participant
type addParticipantRequest struct {
	Name    string `json:"name"`
	Tag     string `json:"tag"`
	Contact string `json:"contact"`
}

// addParticipantsRequest is the payload for a bulk import
type addParticipantsRequest struct {
	Participants []addParticipantRequest `json:"participants"`
}

// deleteParticipantsRequest is the payload for a batch delete
type deleteParticipantsRequest struct {
	IDs []string `json:"ids"`
}

// addPrizeRequest is the payload for creating a prize
type addPrizeRequest struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Quota       int    `json:"quota"`
}

// commitRequest optionally overrides the selected prize
type commitRequest struct {
	PrizeID string `json:"prizeId"`
}

// errorResponse is the uniform error payload
type errorResponse struct {
	Error string `json:"error"`
}
