package models

type NotificationType string

const (
	NotificationReceivedPrivateRequest NotificationType = "receivedPrivateMessageRequest"
	NotificationAcceptedPrivateRequest NotificationType = "acceptedSentPrivateMessageRequest"
	NotificationDeclinedPrivateRequest NotificationType = "declinedSentPrivateMessageRequest"
	NotificationReceivedGroupJoin      NotificationType = "receivedGroupJoinRequestAsAdmin"
	NotificationAcceptedGroupRequest   NotificationType = "acceptedSentGroupMessageRequest"
	NotificationDeclinedGroupRequest   NotificationType = "declinedSentGroupMessageRequest"
)

// NotificationTypes lists every bucket the server partitions notifications into.
var NotificationTypes = []NotificationType{
	NotificationReceivedPrivateRequest,
	NotificationAcceptedPrivateRequest,
	NotificationDeclinedPrivateRequest,
	NotificationReceivedGroupJoin,
	NotificationAcceptedGroupRequest,
	NotificationDeclinedGroupRequest,
}

// Notification is one pending or historical notification entry. Index is the
// server-assigned stable identifier and the only valid key for delete/seen
// mutations; array position shifts under concurrent deletes.
type Notification struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Date      string `json:"date"`
	Index     string `json:"index"`
	IsSeen    bool   `json:"isSeen"`
	GroupName string `json:"groupName,omitempty"`
}

// NotificationSet is the type-partitioned collection the API returns.
type NotificationSet map[NotificationType][]Notification

// EmptyNotificationSet returns a set with every bucket present and empty.
func EmptyNotificationSet() NotificationSet {
	set := make(NotificationSet, len(NotificationTypes))
	for _, t := range NotificationTypes {
		set[t] = []Notification{}
	}
	return set
}

// CountUnseen is the authoritative recount across every bucket.
func (s NotificationSet) CountUnseen() int {
	total := 0
	for _, bucket := range s {
		for _, n := range bucket {
			if !n.IsSeen {
				total++
			}
		}
	}
	return total
}
