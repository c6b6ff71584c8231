package entity

import "time"

// ChatMessage mirrors a document in the flat chats log. The log holds both
// user turns and admin replies; admin replies carry IsAdmin plus RecipientID.
// IsRead only ever flips from false to true.
type ChatMessage struct {
	ID          string    `json:"id" firestore:"-"`
	Text        string    `json:"text" firestore:"text"`
	UID         string    `json:"uid" firestore:"uid"`
	DisplayName string    `json:"display_name" firestore:"displayName"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	IsRead      bool      `json:"is_read" firestore:"isRead"`
	IsAdmin     bool      `json:"is_admin" firestore:"isAdmin"`
	RecipientID string    `json:"recipient_id,omitempty" firestore:"recipientId,omitempty"`
}
