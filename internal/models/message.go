package models

import "time"

type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeAudio ContentType = "audio"
)

// Message is one entry of a private conversation. Immutable once created.
// ClientMsgID is minted client-side before the send so the server's realtime
// rebroadcast of our own message can be recognized and dropped.
type Message struct {
	From        string      `json:"from"`
	To          string      `json:"to"`
	ContentType ContentType `json:"contentType"`
	Content     string      `json:"content"`
	ClientMsgID string      `json:"clientMsgId,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// DateKey returns the calendar-date partition key a message belongs to.
// Keys in this format sort chronologically as strings.
func (m Message) DateKey() string {
	return m.CreatedAt.Format("2006-01-02")
}
