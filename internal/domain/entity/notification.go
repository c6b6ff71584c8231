package entity

import "time"

// Notification is the side-channel record behind the unread badge. Observing
// the messages surface marks notifications read as a side effect.
type Notification struct {
	ID        string    `json:"id" firestore:"-"`
	Message   string    `json:"message" firestore:"message"`
	UserID    string    `json:"user_id" firestore:"userId"`
	UserName  string    `json:"user_name" firestore:"userName"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
	IsRead    bool      `json:"is_read" firestore:"isRead"`
}
