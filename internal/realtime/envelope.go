package realtime

import "encoding/json"

// Event names used on the wire, both directions.
const (
	EventRegister         = "register"
	EventJoinRoom         = "joinRoom"
	EventLeaveRoom        = "leaveRoom"
	EventPrivateMessage   = "privatemessage"
	EventNewNotification  = "newNotification"
	EventUserStatusUpdate = "userStatusUpdate"
	EventMsgDataUpdate    = "realTimeMsgDataUpdate"
)

// Envelope is the JSON frame exchanged over the socket. Room scopes an event
// to a conversation, To addresses a user directly; both are optional.
type Envelope struct {
	Event string          `json:"event"`
	Room  string          `json:"room,omitempty"`
	To    string          `json:"to,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}
