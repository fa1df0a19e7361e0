package winner

import "github.com/KirkDiggler/stagedraw/internal/models"

type AddWinnersInput struct {
	Winners []*models.Winner
}

type ListWinnersInput struct {
}

type ListWinnersOutput struct {
	Winners []*models.Winner
}

type ListSessionWinnersInput struct {
	SessionID string
}

type ListSessionWinnersOutput struct {
	Winners []*models.Winner
}

type DeleteWinnerInput struct {
	WinnerID string
}
