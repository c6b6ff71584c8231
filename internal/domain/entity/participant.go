package entity

import "time"

// Participant is the derived, never-persisted merge of a presence document
// and the distinct senders found in the chats log. Presence data wins when a
// uid appears in both sources.
type Participant struct {
	UID         string    `json:"uid"`
	DisplayName string    `json:"display_name"`
	LastActive  time.Time `json:"last_active"`
	IsActive    bool      `json:"is_active"`
}
