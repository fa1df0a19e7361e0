package draw

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// taskTimeout bounds the work a fired transition may do
const taskTimeout = 15 * time.Second

// pendingTask is a scheduled session transition. A controller has at most
// one pending transition; clearing the session cancels it.
type pendingTask struct {
	sessionID string
	timer     clockwork.Timer
	cancel    chan struct{}
}

// schedule arranges fn to run after d, replacing any pending transition
func (s *service) schedule(sessionID string, d time.Duration, fn func(ctx context.Context)) {
	s.cancelPending()

	task := &pendingTask{
		sessionID: sessionID,
		timer:     s.clock.NewTimer(d),
		cancel:    make(chan struct{}),
	}

	s.pendingMu.Lock()
	s.pending = task
	s.pendingMu.Unlock()

	go func() {
		select {
		case <-task.timer.Chan():
			s.clearPending(task)

			ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
			defer cancel()
			fn(ctx)
		case <-task.cancel:
			stopAndDrainTimer(task.timer)
			log.Debug().Str("session_id", task.sessionID).Msg("cancelled scheduled transition")
		}
	}()
}

// cancelPending cancels the pending transition, if any
func (s *service) cancelPending() {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	if s.pending != nil {
		close(s.pending.cancel)
		s.pending = nil
	}
}

// clearPending removes a fired task from the pending slot
func (s *service) clearPending(task *pendingTask) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	if s.pending == task {
		s.pending = nil
	}
}

// stopAndDrainTimer stops a timer and drains a fire that raced the stop
func stopAndDrainTimer(t clockwork.Timer) {
	if !t.Stop() {
		select {
		case <-t.Chan():
		default:
		}
	}
}
