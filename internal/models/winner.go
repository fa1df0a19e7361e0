package models

import (
	"time"
)

// Winner represents a persisted draw result for one participant
type Winner struct {
	// ID is the unique identifier for the winner record
	ID string `json:"id"`

	// ParticipantID is the identity of the winning participant
	ParticipantID string `json:"participantId"`

	// Name is the participant's display name at win time
	Name string `json:"name"`

	// Tag is the participant's external identifier at win time
	Tag string `json:"tag,omitempty"`

	// Contact is the participant's contact field at win time
	Contact string `json:"contact,omitempty"`

	// PrizeID is the prize this winner was drawn for, empty for a
	// default-count draw with no prize selected
	PrizeID string `json:"prizeId,omitempty"`

	// PrizeName is the prize name snapshot at win time
	PrizeName string `json:"prizeName,omitempty"`

	// DrawSession is the correlation id of the session that produced this
	// winner. Finalization is idempotent per DrawSession.
	DrawSession string `json:"drawSession"`

	// WonAt is when the winner was persisted
	WonAt time.Time `json:"wonAt"`
}
