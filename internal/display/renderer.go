package display

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/stagedraw/internal/models"
	"github.com/KirkDiggler/stagedraw/internal/shuffle"
)

// ViewState is the display-side phase, a read-only projection of the
// shared record's state machine
type ViewState string

const (
	// ViewStateReady shows the idle "press to draw" screen
	ViewStateReady ViewState = "ready"

	// ViewStateSpinning cycles random names from the frozen snapshot
	ViewStateSpinning ViewState = "spinning"

	// ViewStateRevealed shows the winners
	ViewStateRevealed ViewState = "revealed"
)

// View is what the display renders at any instant
type View struct {
	State ViewState `json:"state"`

	// RollingName is the cosmetic name shown while spinning. It has no
	// bearing on the actual winners, which are fixed at commit.
	RollingName string `json:"rollingName,omitempty"`

	// Winners is populated only once the slowdown or reveal signal is set
	Winners []*models.Winner `json:"winners,omitempty"`

	// PrizeName and PrizeImage mirror the session's prize snapshot
	PrizeName  string `json:"prizeName,omitempty"`
	PrizeImage string `json:"prizeImage,omitempty"`

	// SessionID correlates the view with the shared record
	SessionID string `json:"sessionId,omitempty"`
}

// Config holds configuration for the display renderer
type Config struct {
	// Updates is the shared-record subscription feed
	Updates <-chan *models.DrawSession

	// SampleInterval is how often the rolling name changes while spinning
	SampleInterval time.Duration

	// Sampler picks rolling names from the snapshot
	Sampler *shuffle.Sampler

	// Clock allows tests to use a fake clock. Defaults to the real clock.
	Clock clockwork.Clock

	// OnChange, when set, is called with every new view. Used to push
	// frames to websocket clients.
	OnChange func(View)
}

// Renderer is the passive display role. It never writes to the shared
// record; it only projects phases into views.
type Renderer struct {
	updates        <-chan *models.DrawSession
	sampleInterval time.Duration
	sampler        *shuffle.Sampler
	clock          clockwork.Clock
	onChange       func(View)

	mu       sync.Mutex
	view     View
	snapshot []*models.Participant
}

// New creates a display renderer
func New(cfg *Config) (*Renderer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Updates == nil {
		return nil, errors.New("updates channel cannot be nil")
	}

	if cfg.Sampler == nil {
		return nil, errors.New("sampler cannot be nil")
	}

	sampleInterval := cfg.SampleInterval
	if sampleInterval <= 0 {
		sampleInterval = 80 * time.Millisecond
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Renderer{
		updates:        cfg.Updates,
		sampleInterval: sampleInterval,
		sampler:        cfg.Sampler,
		clock:          clock,
		onChange:       cfg.OnChange,
		view:           View{State: ViewStateReady},
	}, nil
}

// Run consumes the subscription until the context is cancelled
func (r *Renderer) Run(ctx context.Context) {
	ticker := r.clock.NewTicker(r.sampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case session, ok := <-r.updates:
			if !ok {
				return
			}
			r.Apply(session)
		case <-ticker.Chan():
			r.tick()
		}
	}
}

// Apply projects one shared-record snapshot into the current view
func (r *Renderer) Apply(session *models.DrawSession) {
	if session == nil {
		return
	}

	r.mu.Lock()

	view := View{
		SessionID:  session.SessionID,
		PrizeName:  session.SelectedPrizeName,
		PrizeImage: session.SelectedPrizeImage,
	}

	switch {
	case session.ShouldStartSlowdown || session.ShowWinnerDisplay:
		// The reveal strictly follows the slowdown signal. The winners
		// shown are the list the controller froze at commit.
		view.State = ViewStateRevealed
		view.Winners = session.CurrentWinners
		if len(view.Winners) == 0 {
			view.Winners = session.PredeterminedWinners
		}
	case session.ShouldStartSpinning:
		view.State = ViewStateSpinning
		view.RollingName = r.view.RollingName
	default:
		// Committed sessions look identical to idle from out here; the
		// predetermined winners stay undisclosed
		view.State = ViewStateReady
	}

	r.snapshot = session.ParticipantsSnapshot
	changed := r.setViewLocked(view)
	r.mu.Unlock()

	if changed {
		log.Debug().
			Str("state", string(view.State)).
			Str("session_id", view.SessionID).
			Msg("display view changed")
	}
}

// tick advances the rolling name while spinning
func (r *Renderer) tick() {
	r.mu.Lock()
	if r.view.State != ViewStateSpinning || len(r.snapshot) == 0 {
		r.mu.Unlock()
		return
	}

	view := r.view
	view.RollingName = r.sampler.PickName(r.snapshot)
	r.setViewLocked(view)
	r.mu.Unlock()
}

// setViewLocked swaps the view and fires the change callback. Caller
// holds r.mu. Reports whether the state label moved.
func (r *Renderer) setViewLocked(view View) bool {
	changed := r.view.State != view.State
	r.view = view

	if r.onChange != nil {
		r.onChange(view)
	}

	return changed
}

// View returns the current view
func (r *Renderer) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.view
}
