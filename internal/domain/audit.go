package domain

import "time"

// AuditRecord is a persisted gateway-local auth/guard event.
type AuditRecord struct {
	ID        string    `json:"id"`
	EventType string    `json:"event_type"`
	ClientID  string    `json:"client_id"`
	Role      string    `json:"role,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Path      string    `json:"path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
