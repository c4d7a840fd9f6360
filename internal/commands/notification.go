package commands

import (
	"github.com/alpha-154/chatsync/internal/models"
	"github.com/alpha-154/chatsync/pkg/errors"
)

// FetchNotifications reloads every typed array and recounts the unseen
// counter from scratch, correcting any incremental drift.
func (c *Commands) FetchNotifications() error {
	c.notifs.BeginFetch()
	set, err := c.api.GetUserNotifications(c.selfName)
	if err != nil {
		c.notifs.FailFetch(err.Error())
		return err
	}
	c.notifs.ReplaceAll(set)
	return nil
}

// AcceptPrivateRequest confirms a pending message request. The local entry
// and counter only change after the server acknowledged; the requester gets
// a courtesy ping so their client updates without polling.
func (c *Commands) AcceptPrivateRequest(requesterUserName string) error {
	if requesterUserName == "" {
		return errors.Validation("requester username is required")
	}
	if err := c.api.AcceptMessageRequest(c.selfName, requesterUserName); err != nil {
		return err
	}
	c.notifs.RemovePrivateRequest(requesterUserName)
	c.notifyPeer(requesterUserName, c.selfName+" accepted your message request")
	return nil
}

// DeclinePrivateRequest rejects a pending message request.
func (c *Commands) DeclinePrivateRequest(requesterUserName string) error {
	if requesterUserName == "" {
		return errors.Validation("requester username is required")
	}
	if err := c.api.DeclineMessageRequest(c.selfName, requesterUserName); err != nil {
		return err
	}
	c.notifs.RemovePrivateRequest(requesterUserName)
	c.notifyPeer(requesterUserName, c.selfName+" declined your message request")
	return nil
}

// AcceptGroupJoin grants a group-join request. Requester and group name form
// a compound key; the same user can have requests pending for several groups.
func (c *Commands) AcceptGroupJoin(requesterUserName, groupName string) error {
	if requesterUserName == "" || groupName == "" {
		return errors.Validation("requester and group name are required")
	}
	if err := c.api.AcceptGroupJoinRequest(requesterUserName, groupName); err != nil {
		return err
	}
	c.notifs.RemoveGroupJoin(requesterUserName, groupName)
	c.notifyPeer(requesterUserName, "Your request to join "+groupName+" was accepted")
	return nil
}

// DeclineGroupJoin rejects a group-join request.
func (c *Commands) DeclineGroupJoin(requesterUserName, groupName string) error {
	if requesterUserName == "" || groupName == "" {
		return errors.Validation("requester and group name are required")
	}
	if err := c.api.DeclineGroupJoinRequest(requesterUserName, groupName); err != nil {
		return err
	}
	c.notifs.RemoveGroupJoin(requesterUserName, groupName)
	c.notifyPeer(requesterUserName, "Your request to join "+groupName+" was declined")
	return nil
}

// DeleteNotification removes one entry by its server-assigned index. A stale
// index comes back as NotFound and is safe for callers to ignore.
func (c *Commands) DeleteNotification(notificationType models.NotificationType, index string) error {
	if index == "" {
		return errors.Validation("notification index is required")
	}
	confirmedType, confirmedIndex, err := c.api.DeleteNotification(c.selfName, notificationType, index)
	if err != nil {
		return err
	}
	c.notifs.DeleteByIndex(confirmedType, confirmedIndex)
	return nil
}

// MarkNotificationsSeen runs once when the notification view closes, and
// only if anything was unseen at that moment.
func (c *Commands) MarkNotificationsSeen() error {
	if c.notifs.Unseen() == 0 {
		return nil
	}
	if err := c.api.MarkNotificationsSeen(c.selfName); err != nil {
		return err
	}
	c.notifs.MarkAllSeen()
	return nil
}
