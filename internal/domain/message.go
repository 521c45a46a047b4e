package domain

import "time"

// Sender identifies which side of the chat produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "ai"
)

// Message is a single chat message. Chat history lives in memory only.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	Timestamp time.Time
}
