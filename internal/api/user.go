package api

import (
	"bytes"

	"github.com/alpha-154/chatsync/internal/models"
)

type RegisterRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
	ImageURL string `json:"imageUrl"`
}

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Register creates a new account.
func (c *Client) Register(req RegisterRequest) error {
	resp, err := c.newRequest(nil).SetBody(req).Post("/api/user/register")
	return wrap(resp, err)
}

// Login authenticates and stores the access-token cookie in the jar.
func (c *Client) Login(req LoginRequest) error {
	resp, err := c.newRequest(nil).SetBody(req).Post("/api/user/login")
	return wrap(resp, err)
}

// Logout invalidates the session server-side.
func (c *Client) Logout() error {
	resp, err := c.newRequest(nil).Post("/api/user/logout")
	return wrap(resp, err)
}

type usernameCheckResponse struct {
	Message  string `json:"message"`
	IsUnique bool   `json:"isUnique"`
}

// CheckUsername reports whether a username is still free.
func (c *Client) CheckUsername(userName string) (bool, error) {
	var out usernameCheckResponse
	resp, err := c.newRequest(&out).
		SetQueryParam("userName", userName).
		Get("/api/user/check-username-unique")
	if err := wrap(resp, err); err != nil {
		return false, err
	}
	return out.IsUnique, nil
}

type searchResponse struct {
	Users []models.SearchUser `json:"users"`
}

// SearchUsers queries connected-user search.
func (c *Client) SearchUsers(currentUserUserName, query string) ([]models.SearchUser, error) {
	var out searchResponse
	resp, err := c.newRequest(&out).
		SetQueryParams(map[string]string{
			"currentUserUserName": currentUserUserName,
			"query":               query,
		}).
		Get("/api/user/search")
	if err := wrap(resp, err); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// SendMessageRequest asks another user for a private conversation.
func (c *Client) SendMessageRequest(senderUsername, receiverUsername string) error {
	resp, err := c.newRequest(nil).
		SetBody(map[string]string{
			"senderUsername":   senderUsername,
			"receiverUsername": receiverUsername,
		}).
		Post("/api/user/message-request")
	return wrap(resp, err)
}

// AcceptMessageRequest confirms a pending private-message request.
func (c *Client) AcceptMessageRequest(currentUserUserName, requestedUserUserName string) error {
	resp, err := c.newRequest(nil).
		SetBody(map[string]string{
			"currentUserUserName":   currentUserUserName,
			"requestedUserUserName": requestedUserUserName,
		}).
		Post("/api/user/accept-message-request")
	return wrap(resp, err)
}

// DeclineMessageRequest rejects a pending private-message request.
func (c *Client) DeclineMessageRequest(currentUserUserName, requestedUserUserName string) error {
	resp, err := c.newRequest(nil).
		SetBody(map[string]string{
			"currentUserUserName":   currentUserUserName,
			"requestedUserUserName": requestedUserUserName,
		}).
		Post("/api/user/decline-private-message-request")
	return wrap(resp, err)
}

type connectedUsersResponse struct {
	ConnectedUsers []models.SortingList `json:"connectedUsers"`
}

// GetConnectedUsers fetches every sorting list with member summaries.
func (c *Client) GetConnectedUsers(username string) ([]models.SortingList, error) {
	var out connectedUsersResponse
	resp, err := c.newRequest(&out).Get("/api/user/get-connected-users/" + username)
	if err := wrap(resp, err); err != nil {
		return nil, err
	}
	return out.ConnectedUsers, nil
}

type previousMessagesResponse struct {
	PreviousMessages map[string][]models.Message `json:"previousMessages"`
}

// GetPreviousMessages fetches a conversation's date-partitioned history.
func (c *Client) GetPreviousMessages(selfUsername, peerUsername string) (map[string][]models.Message, error) {
	var out previousMessagesResponse
	resp, err := c.newRequest(&out).
		Get("/api/user/get-previous-messages/" + selfUsername + "/" + peerUsername)
	if err := wrap(resp, err); err != nil {
		return nil, err
	}
	return out.PreviousMessages, nil
}

type sentMessageResponse struct {
	Message models.Message `json:"message"`
}

// SendMessage persists a text message; the returned message carries the
// server-stamped createdAt.
func (c *Client) SendMessage(sender, receiver, content, clientMsgID string) (models.Message, error) {
	var out sentMessageResponse
	resp, err := c.newRequest(&out).
		SetBody(map[string]string{
			"sender":      sender,
			"receiver":    receiver,
			"content":     content,
			"clientMsgId": clientMsgID,
		}).
		Post("/api/user/send-message")
	if err := wrap(resp, err); err != nil {
		return models.Message{}, err
	}
	return out.Message, nil
}

// SendVoiceMessage uploads a recorded audio clip as multipart form data.
func (c *Client) SendVoiceMessage(sender, receiver, clientMsgID, fileName string, audio []byte) (models.Message, error) {
	var out sentMessageResponse
	resp, err := c.newRequest(&out).
		SetFileReader("audio", fileName, bytes.NewReader(audio)).
		SetFormData(map[string]string{
			"sender":      sender,
			"receiver":    receiver,
			"clientMsgId": clientMsgID,
		}).
		Post("/api/user/send-voice-message")
	if err := wrap(resp, err); err != nil {
		return models.Message{}, err
	}
	return out.Message, nil
}
