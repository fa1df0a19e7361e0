package models

import (
	"time"
)

// ControllerRole identifies which controller a client is acting as
type ControllerRole string

const (
	// RolePrimary is the main operator console
	RolePrimary ControllerRole = "primary"

	// RoleVIP is the secondary operator console
	RoleVIP ControllerRole = "vip"
)

// Lease is the server-granted session ownership grant. Only the lease
// holder may drive a session through commit, spin and finalize. The lease
// auto-expires so a disconnected controller cannot wedge the draw.
type Lease struct {
	// Owner is the role holding the lease
	Owner ControllerRole `json:"owner"`

	// SessionID is the session the lease was acquired for
	SessionID string `json:"sessionId"`

	// AcquiredAt is when the lease was granted
	AcquiredAt time.Time `json:"acquiredAt"`
}
