package commands

import (
	"github.com/google/uuid"

	"github.com/alpha-154/chatsync/internal/models"
	"github.com/alpha-154/chatsync/internal/realtime"
	"github.com/alpha-154/chatsync/pkg/errors"
	"github.com/alpha-154/chatsync/pkg/logger"
)

// FetchConnectedUsers reloads every sorting list. On failure the store keeps
// its previous lists and surfaces a retryable error state.
func (c *Commands) FetchConnectedUsers() error {
	c.contacts.BeginFetch()
	lists, err := c.api.GetConnectedUsers(c.selfName)
	if err != nil {
		c.contacts.FailFetch(err.Error())
		return err
	}
	c.contacts.ReplaceAll(lists)
	return nil
}

// OpenConversation loads the peer's history, joins their room and clears
// their unseen count. The room stays subscribed until CloseConversation.
func (c *Commands) OpenConversation(peerUserName, conversationKey string) error {
	if err := c.bridge.JoinRoom(conversationKey); err != nil {
		logger.Warn().Err(err).Str("room", conversationKey).Msg("join room failed")
	}
	c.contacts.ClearUnseenForMember(peerUserName)

	c.conv.BeginLoad(c.selfName, peerUserName)
	history, err := c.api.GetPreviousMessages(c.selfName, peerUserName)
	if err != nil {
		c.conv.FailLoad(err.Error())
		return err
	}
	c.conv.ReplaceHistory(history)
	return nil
}

// CloseConversation leaves the room and folds the conversation's final
// message back into the member's card so the list is fresh without a refetch.
func (c *Commands) CloseConversation(peerUserName, conversationKey string) {
	if err := c.bridge.LeaveRoom(conversationKey); err != nil {
		logger.Warn().Err(err).Str("room", conversationKey).Msg("leave room failed")
	}
	last := lastMessageOf(c.conv.Snapshot(), c.conv.DateKeys())
	if last != nil {
		c.contacts.UpdateLastMessage(peerUserName, last.Content, last.CreatedAt)
	}
}

// SendMessage persists a text message, appends it locally once the server
// confirms, and rebroadcasts it into the room for the counterparty.
func (c *Commands) SendMessage(peerUserName, conversationKey, content string) error {
	if content == "" {
		return errors.Validation("message content cannot be empty")
	}
	clientMsgID := uuid.NewString()
	msg, err := c.api.SendMessage(c.selfName, peerUserName, content, clientMsgID)
	if err != nil {
		return err
	}
	if msg.ClientMsgID == "" {
		msg.ClientMsgID = clientMsgID
	}
	c.conv.AppendLocalSend(msg)
	if err := c.bridge.Emit(realtime.EventPrivateMessage, conversationKey, "", msg); err != nil {
		logger.Warn().Err(err).Msg("message persisted but realtime emit failed")
	}
	return nil
}

// SendVoiceMessage uploads a recorded clip and follows the same confirmed
// append + room rebroadcast path as a text send.
func (c *Commands) SendVoiceMessage(peerUserName, conversationKey, fileName string, audio []byte) error {
	if len(audio) == 0 {
		return errors.Validation("voice recording is empty")
	}
	const maxVoiceBytes = 10 << 20
	if len(audio) > maxVoiceBytes {
		return errors.Validation("voice recording exceeds the 10MB limit")
	}
	clientMsgID := uuid.NewString()
	msg, err := c.api.SendVoiceMessage(c.selfName, peerUserName, clientMsgID, fileName, audio)
	if err != nil {
		return err
	}
	if msg.ClientMsgID == "" {
		msg.ClientMsgID = clientMsgID
	}
	c.conv.AppendLocalSend(msg)
	if err := c.bridge.Emit(realtime.EventPrivateMessage, conversationKey, "", msg); err != nil {
		logger.Warn().Err(err).Msg("voice message persisted but realtime emit failed")
	}
	return nil
}

// SendMessageRequest asks a non-connected user for a conversation and sends
// them a courtesy notification ping once the server accepted it.
func (c *Commands) SendMessageRequest(receiverUserName string) error {
	if receiverUserName == "" {
		return errors.Validation("receiver username is required")
	}
	if err := c.api.SendMessageRequest(c.selfName, receiverUserName); err != nil {
		return err
	}
	c.notifyPeer(receiverUserName, c.selfName+" sent you a message request")
	return nil
}

// notifyPeer emits a courtesy newNotification event; REST already holds the
// truth, so a failed emit is only logged.
func (c *Commands) notifyPeer(userName, message string) {
	ping := models.NotificationPing{To: userName, Message: message}
	if err := c.bridge.Emit(realtime.EventNewNotification, "", userName, ping); err != nil {
		logger.Warn().Err(err).Str("to", userName).Msg("courtesy notification emit failed")
	}
}

// lastMessageOf returns the newest message in a partition snapshot, using the
// chronological key order.
func lastMessageOf(partitions map[string][]models.Message, sortedKeys []string) *models.Message {
	for i := len(sortedKeys) - 1; i >= 0; i-- {
		bucket := partitions[sortedKeys[i]]
		if len(bucket) > 0 {
			last := bucket[len(bucket)-1]
			return &last
		}
	}
	return nil
}
