package entity

import "time"

// ReplyMirror is the legacy per-user reply record written to
// conversations/{uid}/messages alongside every admin reply in the chats log.
// The end-user chat client only reads this shape.
type ReplyMirror struct {
	Sender    string    `json:"sender" firestore:"sender"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
	UserID    string    `json:"user_id" firestore:"userId"`
}
