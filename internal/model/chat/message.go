package chat

import "time"

// Sender values carried by Message. There are exactly two.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is a single transcript entry. Immutable once appended.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
