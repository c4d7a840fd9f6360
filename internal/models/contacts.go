package models

import "time"

// ReservedListName is the implicit superset list every connection belongs to.
// It cannot be created, renamed or deleted.
const ReservedListName = "All Connected Users"

type PresenceStatus string

const (
	StatusOnline  PresenceStatus = "online"
	StatusOffline PresenceStatus = "offline"
)

// Member is a connected user's summary card inside a sorting list.
// ConversationKey is the server-assigned room id for the private chat
// (the wire field keeps the server's historical name).
type Member struct {
	UserID              string         `json:"userId"`
	UserName            string         `json:"userName"`
	ProfileImage        string         `json:"profileImage"`
	LastMessage         string         `json:"lastMessage"`
	LastMessageTime     time.Time      `json:"lastMessageTime"`
	TotalUnseenMessages int            `json:"totalUnseenMessages"`
	Status              PresenceStatus `json:"status"`
	ConversationKey     string         `json:"privateMessageId"`
}

// SortingList is a named grouping of contacts. A member lives in the
// reserved list plus at most one custom list at a time.
type SortingList struct {
	ListName string   `json:"listName"`
	Members  []Member `json:"members"`
}

// SearchUser is one row of a connected-user search result.
type SearchUser struct {
	UserID               string `json:"userId"`
	UserName             string `json:"userName"`
	ProfileImage         string `json:"profileImage"`
	IsFriend             bool   `json:"isFriend"`
	IsMessageRequestSent bool   `json:"isMessageRequestSent"`
}
