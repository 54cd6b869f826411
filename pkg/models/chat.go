package models

// Sender identifies the chat user an inbound message came from. Username and
// the name parts are optional on the Telegram side.
type Sender struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// ChatMessage is an inbound plain-text chat event before classification.
type ChatMessage struct {
	From Sender
	Text string
}
