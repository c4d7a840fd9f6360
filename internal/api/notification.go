package api

import "github.com/alpha-154/chatsync/internal/models"

type notificationsResponse struct {
	Notifications models.NotificationSet `json:"notifications"`
}

// GetUserNotifications fetches every typed notification array.
func (c *Client) GetUserNotifications(username string) (models.NotificationSet, error) {
	var out notificationsResponse
	resp, err := c.newRequest(&out).Get("/api/notification/get-user-notifications/" + username)
	if err := wrap(resp, err); err != nil {
		return nil, err
	}
	return out.Notifications, nil
}

// MarkNotificationsSeen persists the bulk seen flag for the user.
func (c *Client) MarkNotificationsSeen(currentUserUserName string) error {
	resp, err := c.newRequest(nil).
		SetBody(map[string]string{"currentUserUserName": currentUserUserName}).
		Put("/api/notification/seen-notification")
	return wrap(resp, err)
}

type deletedNotificationResponse struct {
	Message           string `json:"message"`
	NotificationType  string `json:"notificationType"`
	NotificationIndex string `json:"notificationIndex"`
}

// DeleteNotification removes one notification by its server-assigned index.
func (c *Client) DeleteNotification(username string, notificationType models.NotificationType, notificationIndex string) (models.NotificationType, string, error) {
	var out deletedNotificationResponse
	resp, err := c.newRequest(&out).
		SetBody(map[string]string{
			"notificationType":  string(notificationType),
			"notificationIndex": notificationIndex,
		}).
		Delete("/api/notification/delete-user-notification/" + username)
	if err := wrap(resp, err); err != nil {
		return "", "", err
	}
	return models.NotificationType(out.NotificationType), out.NotificationIndex, nil
}

// AcceptGroupJoinRequest grants a pending group-join request as admin.
func (c *Client) AcceptGroupJoinRequest(requestedUserUserName, groupName string) error {
	resp, err := c.newRequest(nil).
		SetBody(map[string]string{
			"requestedUserUserName": requestedUserUserName,
			"groupName":             groupName,
		}).
		Post("/api/group/accept-group-join-request")
	return wrap(resp, err)
}

// DeclineGroupJoinRequest rejects a pending group-join request as admin.
func (c *Client) DeclineGroupJoinRequest(requestedUserUserName, groupName string) error {
	resp, err := c.newRequest(nil).
		SetBody(map[string]string{
			"requestedUserUserName": requestedUserUserName,
			"groupName":             groupName,
		}).
		Post("/api/group/decline-group-join-request")
	return wrap(resp, err)
}
