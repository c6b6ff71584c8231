package entity

import "time"

// AdminUID is the reserved sender id used for every dashboard-authored message.
const AdminUID = "admin"

// UserPresence mirrors a document in the userStatus collection. Presence
// documents are written by the end-user client; this service only reads them.
type UserPresence struct {
	UID         string    `json:"uid" firestore:"uid"`
	DisplayName string    `json:"display_name" firestore:"displayName"`
	LastActive  time.Time `json:"last_active" firestore:"lastActive"`
	IsActive    bool      `json:"is_active" firestore:"isActive"`
}
