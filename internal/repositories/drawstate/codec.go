package drawstate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

// encodePatch turns the set fields of a patch into hash field writes.
// Scalars are stored as plain strings, slices as JSON.
func encodePatch(p *Patch) (map[string]string, error) {
	fields := make(map[string]string)

	if p.Phase != nil {
		fields[fieldPhase] = string(*p.Phase)
	}
	if p.SelectedPrizeID != nil {
		fields[fieldSelectedPrizeID] = *p.SelectedPrizeID
	}
	if p.SelectedPrizeName != nil {
		fields[fieldSelectedPrizeName] = *p.SelectedPrizeName
	}
	if p.SelectedPrizeImage != nil {
		fields[fieldSelectedPrizeImage] = *p.SelectedPrizeImage
	}
	if p.SelectedPrizeQuota != nil {
		fields[fieldSelectedPrizeQuota] = strconv.Itoa(*p.SelectedPrizeQuota)
	}
	if p.ParticipantsSnapshot != nil {
		encoded, err := json.Marshal(p.ParticipantsSnapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal participants snapshot: %w", err)
		}
		fields[fieldParticipantsSnapshot] = string(encoded)
	}
	if p.PredeterminedWinners != nil {
		encoded, err := json.Marshal(p.PredeterminedWinners)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal predetermined winners: %w", err)
		}
		fields[fieldPredeterminedWinners] = string(encoded)
	}
	if p.CurrentWinners != nil {
		encoded, err := json.Marshal(p.CurrentWinners)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal current winners: %w", err)
		}
		fields[fieldCurrentWinners] = string(encoded)
	}
	if p.ShouldStartSpinning != nil {
		fields[fieldShouldStartSpinning] = strconv.FormatBool(*p.ShouldStartSpinning)
	}
	if p.ShouldStartSlowdown != nil {
		fields[fieldShouldStartSlowdown] = strconv.FormatBool(*p.ShouldStartSlowdown)
	}
	if p.ShowWinnerDisplay != nil {
		fields[fieldShowWinnerDisplay] = strconv.FormatBool(*p.ShowWinnerDisplay)
	}
	if p.ProcessedByOtherController != nil {
		fields[fieldProcessedByOther] = strconv.FormatBool(*p.ProcessedByOtherController)
	}
	if p.ControllerActive != nil {
		fields[fieldControllerActive] = strconv.FormatBool(*p.ControllerActive)
	}

	return fields, nil
}

// decodeSession rebuilds a DrawSession from its hash fields. Unknown or
// missing fields keep their zero values so schema growth stays compatible.
func decodeSession(fields map[string]string) (*models.DrawSession, error) {
	session := &models.DrawSession{
		SessionID:          fields[fieldSessionID],
		Phase:              models.DrawPhase(fields[fieldPhase]),
		SelectedPrizeID:    fields[fieldSelectedPrizeID],
		SelectedPrizeName:  fields[fieldSelectedPrizeName],
		SelectedPrizeImage: fields[fieldSelectedPrizeImage],
	}

	if session.Phase == "" {
		session.Phase = models.DrawPhaseIdle
	}

	if v, ok := fields[fieldSelectedPrizeQuota]; ok && v != "" {
		quota, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("failed to decode prize quota: %w", err)
		}
		session.SelectedPrizeQuota = quota
	}

	if v, ok := fields[fieldParticipantsSnapshot]; ok && v != "" {
		if err := json.Unmarshal([]byte(v), &session.ParticipantsSnapshot); err != nil {
			return nil, fmt.Errorf("failed to decode participants snapshot: %w", err)
		}
	}
	if v, ok := fields[fieldPredeterminedWinners]; ok && v != "" {
		if err := json.Unmarshal([]byte(v), &session.PredeterminedWinners); err != nil {
			return nil, fmt.Errorf("failed to decode predetermined winners: %w", err)
		}
	}
	if v, ok := fields[fieldCurrentWinners]; ok && v != "" {
		if err := json.Unmarshal([]byte(v), &session.CurrentWinners); err != nil {
			return nil, fmt.Errorf("failed to decode current winners: %w", err)
		}
	}

	session.ShouldStartSpinning = fields[fieldShouldStartSpinning] == "true"
	session.ShouldStartSlowdown = fields[fieldShouldStartSlowdown] == "true"
	session.ShowWinnerDisplay = fields[fieldShowWinnerDisplay] == "true"
	session.ProcessedByOtherController = fields[fieldProcessedByOther] == "true"
	session.ControllerActive = fields[fieldControllerActive] == "true"

	if v, ok := fields[fieldVersion]; ok && v != "" {
		version, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode version: %w", err)
		}
		session.Version = version
	}

	if v, ok := fields[fieldLastUpdated]; ok && v != "" {
		ts, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("failed to decode last updated: %w", err)
		}
		session.LastUpdated = ts
	}

	return session, nil
}

// applyPatch merges a patch over a snapshot, returning a new value
func applyPatch(current *models.DrawSession, p *Patch) *models.DrawSession {
	merged := *current

	if p.SessionID != nil {
		merged.SessionID = *p.SessionID
	}
	if p.Phase != nil {
		merged.Phase = *p.Phase
	}
	if p.SelectedPrizeID != nil {
		merged.SelectedPrizeID = *p.SelectedPrizeID
	}
	if p.SelectedPrizeName != nil {
		merged.SelectedPrizeName = *p.SelectedPrizeName
	}
	if p.SelectedPrizeImage != nil {
		merged.SelectedPrizeImage = *p.SelectedPrizeImage
	}
	if p.SelectedPrizeQuota != nil {
		merged.SelectedPrizeQuota = *p.SelectedPrizeQuota
	}
	if p.ParticipantsSnapshot != nil {
		merged.ParticipantsSnapshot = p.ParticipantsSnapshot
	}
	if p.PredeterminedWinners != nil {
		merged.PredeterminedWinners = p.PredeterminedWinners
	}
	if p.CurrentWinners != nil {
		merged.CurrentWinners = p.CurrentWinners
	}
	if p.ShouldStartSpinning != nil {
		merged.ShouldStartSpinning = *p.ShouldStartSpinning
	}
	if p.ShouldStartSlowdown != nil {
		merged.ShouldStartSlowdown = *p.ShouldStartSlowdown
	}
	if p.ShowWinnerDisplay != nil {
		merged.ShowWinnerDisplay = *p.ShowWinnerDisplay
	}
	if p.ProcessedByOtherController != nil {
		merged.ProcessedByOtherController = *p.ProcessedByOtherController
	}
	if p.ControllerActive != nil {
		merged.ControllerActive = *p.ControllerActive
	}

	return &merged
}
