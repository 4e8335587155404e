package events

import (
	"time"

	"github.com/spec-kit/pawnshop-gateway/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionCreated   EventType = "session_created"
	EventSessionCleared   EventType = "session_cleared"
	EventRoleSwitched     EventType = "role_switched"
	EventGuardDenied      EventType = "guard_denied"
	EventValidationFailed EventType = "validation_failed"
)

// Event represents a gateway auth/guard event emitted for the audit trail.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ClientID  string      `json:"client_id"`
	Role      domain.Role `json:"role,omitempty"`
	Reason    string      `json:"reason,omitempty"`
	Path      string      `json:"path,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
