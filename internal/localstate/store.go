package localstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

// State is the client-local advisory record. It is never replicated; it
// only tells this process whether it already finalized a session, as a
// second line of defense behind the shared finalize marker.
type State struct {
	// LastSessionID is the most recent session this client touched
	LastSessionID string `json:"lastSessionId"`

	// Processed is true once this client finalized LastSessionID
	Processed bool `json:"processed"`
}

// Config holds configuration for the local state store
type Config struct {
	// Dir is where the state file lives
	Dir string

	// Role namespaces the file so two controllers on one host do not
	// share flags
	Role models.ControllerRole
}

// Store is a file-backed local state store
type Store struct {
	mu    sync.Mutex
	path  string
	state State
}

// New creates a local state store, loading any existing state file
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Dir == "" {
		return nil, errors.New("dir cannot be empty")
	}

	if cfg.Role == "" {
		return nil, errors.New("role cannot be empty")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local state dir: %w", err)
	}

	s := &Store{
		path: filepath.Join(cfg.Dir, fmt.Sprintf("controller-%s.json", cfg.Role)),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read local state: %w", err)
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		// A corrupt flag file is advisory data; start fresh
		s.state = State{}
	}

	return s, nil
}

// MarkProcessed records that this client finalized the given session
func (s *Store) MarkProcessed(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{
		LastSessionID: sessionID,
		Processed:     true,
	}

	return s.flush()
}

// TrackSession records the session this client is driving, clearing the
// processed flag
func (s *Store) TrackSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{
		LastSessionID: sessionID,
	}

	return s.flush()
}

// IsProcessed reports whether this client already finalized the session
func (s *Store) IsProcessed(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Processed && s.state.LastSessionID == sessionID
}

func (s *Store) flush() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to marshal local state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write local state: %w", err)
	}

	return nil
}
