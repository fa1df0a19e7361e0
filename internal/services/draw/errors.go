package draw

// DrawError is a custom error type for draw-related errors
type DrawError string

// Error implements the error interface
func (e DrawError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoPrizeSelected        DrawError = "no prize selected and no default draw count configured"
	ErrPrizeExhausted         DrawError = "prize has no remaining quota"
	ErrEmptyPool              DrawError = "no eligible participants to draw from"
	ErrSessionInProgress      DrawError = "another draw session is in progress"
	ErrOtherControllerActive  DrawError = "the other controller is driving a session"
	ErrNoActiveSession        DrawError = "no draw session is active on this controller"
	ErrInvalidPhase           DrawError = "draw session is not in a valid phase for this action"
	ErrNilConfig              DrawError = "config cannot be nil"
	ErrNilDrawStateRepo       DrawError = "draw state repository cannot be nil"
	ErrNilParticipantRepo     DrawError = "participant repository cannot be nil"
	ErrNilPrizeRepo           DrawError = "prize repository cannot be nil"
	ErrNilWinnerRepo          DrawError = "winner repository cannot be nil"
	ErrNilSampler             DrawError = "sampler cannot be nil"
	ErrNilClock               DrawError = "clock cannot be nil"
	ErrNilUUIDGenerator       DrawError = "UUID generator cannot be nil"
)
