package commands

import (
	"strings"

	"github.com/alpha-154/chatsync/pkg/errors"
)

// CreateSortList creates a custom sorting list. The reserved list name is
// rejected before any network call.
func (c *Commands) CreateSortList(listName string) error {
	if listName == "" {
		return errors.Validation("list name is required")
	}
	if isReserved(listName) {
		return errors.Validation("the connected-users list is reserved")
	}
	confirmed, err := c.api.CreateSortList(c.selfName, listName)
	if err != nil {
		return err
	}
	c.contacts.AddList(confirmed)
	return nil
}

// RenameSortList renames a custom list. Renaming to the same name
// (case-insensitive) is a no-op rejected client-side to spare the round trip.
func (c *Commands) RenameSortList(currentListName, updatedListName string) error {
	if currentListName == "" || updatedListName == "" {
		return errors.Validation("both the current and the new list name are required")
	}
	if isReserved(currentListName) || isReserved(updatedListName) {
		return errors.Validation("the connected-users list cannot be renamed")
	}
	if strings.EqualFold(currentListName, updatedListName) {
		return errors.DuplicateAction("the list is already named " + currentListName)
	}
	oldName, newName, err := c.api.RenameSortList(c.selfName, currentListName, updatedListName)
	if err != nil {
		return err
	}
	c.contacts.RenameList(oldName, newName)
	return nil
}

// DeleteSortList removes a custom list; its members stay in the reserved
// list.
func (c *Commands) DeleteSortList(listName string) error {
	if listName == "" {
		return errors.Validation("list name is required")
	}
	if isReserved(listName) {
		return errors.Validation("the connected-users list cannot be deleted")
	}
	confirmed, err := c.api.DeleteSortList(c.selfName, listName)
	if err != nil {
		return err
	}
	c.contacts.RemoveList(confirmed)
	return nil
}

// AddUserToSortList moves a connection into the named custom list, evicting
// them from whichever custom list held them before. Targeting the reserved
// list or the member's current list is rejected without a network call.
func (c *Commands) AddUserToSortList(memberUserName, listName string) error {
	if memberUserName == "" || listName == "" {
		return errors.Validation("member and list name are required")
	}
	if isReserved(listName) {
		return errors.Validation("connections already belong to the connected-users list")
	}
	if strings.EqualFold(c.contacts.CustomListOf(memberUserName), listName) {
		return errors.DuplicateAction(memberUserName + " is already in " + listName)
	}
	userName, confirmedList, err := c.api.AddUserToSortList(c.selfName, memberUserName, listName)
	if err != nil {
		return err
	}
	c.contacts.MoveMemberToList(userName, confirmedList)
	return nil
}

// EndConnection severs the connection entirely; the member disappears from
// every list, the reserved one included.
func (c *Commands) EndConnection(peerUserName string) error {
	if peerUserName == "" {
		return errors.Validation("username is required")
	}
	confirmed, err := c.api.EndConnection(c.selfName, peerUserName)
	if err != nil {
		return err
	}
	c.contacts.EndConnection(confirmed)
	return nil
}
