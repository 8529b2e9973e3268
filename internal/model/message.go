package model

import "time"

// Sender identifies who produced a transcript message.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderAgent  Sender = "agent"
	SenderSystem Sender = "system"
)

// Message is one line of the desk transcript. Messages live only in memory
// for the life of a desk session; the run log records the durable trail.
type Message struct {
	ID        string
	From      Sender
	Text      string
	RunID     string // links agent replies to the run that produced them
	CreatedAt time.Time
}
