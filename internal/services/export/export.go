package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	participantRepo "github.com/KirkDiggler/stagedraw/internal/repositories/participant"
	winnerRepo "github.com/KirkDiggler/stagedraw/internal/repositories/winner"
)

// csvHeader is the exported column order. Downstream spreadsheets depend
// on it byte for byte; do not reorder.
var csvHeader = []string{"No", "Name", "ID-tag", "Contact", "Prize", "Date", "Time"}

// Config holds configuration for the export service
type Config struct {
	ParticipantRepo participantRepo.Repository
	WinnerRepo      winnerRepo.Repository
}

// Service renders draw results as CSV
type Service struct {
	participantRepo participantRepo.Repository
	winnerRepo      winnerRepo.Repository
}

// New creates a new export service
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ParticipantRepo == nil {
		return nil, errors.New("participant repository cannot be nil")
	}

	if cfg.WinnerRepo == nil {
		return nil, errors.New("winner repository cannot be nil")
	}

	return &Service{
		participantRepo: cfg.ParticipantRepo,
		winnerRepo:      cfg.WinnerRepo,
	}, nil
}

// WriteWinnersCSV writes the winners block followed by a parallel block of
// the remaining participants
func (s *Service) WriteWinnersCSV(ctx context.Context, w io.Writer) error {
	winners, err := s.winnerRepo.ListWinners(ctx, &winnerRepo.ListWinnersInput{})
	if err != nil {
		return fmt.Errorf("failed to list winners: %w", err)
	}

	participants, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{})
	if err != nil {
		return fmt.Errorf("failed to list participants: %w", err)
	}

	// Winners were removed from the pool at finalize, but a failed cleanup
	// can leave them behind; filter by identity so the remaining block
	// never repeats a winner
	won := make(map[string]bool, len(winners.Winners))
	for _, winner := range winners.Winners {
		won[winner.ParticipantID] = true
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, winner := range winners.Winners {
		row := []string{
			strconv.Itoa(i + 1),
			winner.Name,
			winner.Tag,
			winner.Contact,
			winner.PrizeName,
			winner.WonAt.Format("2006-01-02"),
			winner.WonAt.Format("15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write winner row: %w", err)
		}
	}

	// Blank spacer row, then the remaining participants under the same
	// header layout with the prize columns empty
	if err := cw.Write(make([]string, len(csvHeader))); err != nil {
		return fmt.Errorf("failed to write spacer row: %w", err)
	}
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write participants header: %w", err)
	}

	n := 0
	for _, p := range participants.Participants {
		if won[p.ID] {
			continue
		}
		n++
		row := []string{
			strconv.Itoa(n),
			p.Name,
			p.Tag,
			p.Contact,
			"",
			"",
			"",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write participant row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
