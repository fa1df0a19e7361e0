package models

import (
	"time"
)

// Participant represents an entrant in the prize draw pool
type Participant struct {
	// ID is the stable identity key for the participant. Eligibility and
	// duplicate checks key off this, never the display name.
	ID string `json:"id"`

	// Name is the display name shown on stage
	Name string `json:"name"`

	// Tag is an optional external identifier (badge or employee tag)
	Tag string `json:"tag,omitempty"`

	// Contact is an optional contact field (phone or email)
	Contact string `json:"contact,omitempty"`

	// JoinedAt is when the participant entered the pool
	JoinedAt time.Time `json:"joinedAt"`
}
