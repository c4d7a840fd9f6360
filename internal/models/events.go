package models

import "time"

// RealtimeMessageUpdate is the background message-arrival summary delivered
// to a user whose conversation with the sender is not open.
type RealtimeMessageUpdate struct {
	From      string    `json:"from"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// PresenceUpdate carries a contact's online/offline transition.
type PresenceUpdate struct {
	UserID string         `json:"userId"`
	Status PresenceStatus `json:"status"`
}

// NotificationPing is the courtesy notice sent to a counterparty after an
// accept/decline/request action so their unseen counter updates without a poll.
type NotificationPing struct {
	To      string `json:"to"`
	Message string `json:"message,omitempty"`
}
