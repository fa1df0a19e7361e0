package models

import (
	"time"
)

// Prize represents a prize with a fixed quota of winners
type Prize struct {
	// ID is the unique identifier for the prize
	ID string `json:"id"`

	// Name is the prize name shown on stage
	Name string `json:"name"`

	// Image is an optional image URL for the display
	Image string `json:"image,omitempty"`

	// Description holds any extra descriptive text
	Description string `json:"description,omitempty"`

	// Quota is the target number of winners for this prize. It never
	// changes after creation.
	Quota int `json:"quota"`

	// RemainingQuota is how many winners are still to be drawn.
	// Invariant: 0 <= RemainingQuota <= Quota.
	RemainingQuota int `json:"remainingQuota"`

	// CreatedAt is when the prize was created
	CreatedAt time.Time `json:"createdAt"`
}
