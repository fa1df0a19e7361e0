package prize

import "github.com/KirkDiggler/stagedraw/internal/models"

type SavePrizeInput struct {
	Prize *models.Prize
}

type GetPrizeInput struct {
	PrizeID string
}

type ListPrizesInput struct {
}

type ListPrizesOutput struct {
	Prizes []*models.Prize
}

type DeletePrizeInput struct {
	PrizeID string
}

type DecrementRemainingInput struct {
	PrizeID string
	Count   int
}

type DecrementRemainingOutput struct {
	// Remaining is the quota left after the decrement
	Remaining int
}
