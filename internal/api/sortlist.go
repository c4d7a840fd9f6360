package api

type createdListResponse struct {
	Message     string `json:"message"`
	CreatedList struct {
		ListName string `json:"listName"`
	} `json:"createdList"`
}

// CreateSortList creates a new sorting list and returns its confirmed name.
func (c *Client) CreateSortList(currentUserUserName, listName string) (string, error) {
	var out createdListResponse
	resp, err := c.newRequest(&out).
		SetBody(map[string]string{
			"currentUserUserName": currentUserUserName,
			"listName":            listName,
		}).
		Post("/api/user/create-user-sorting-list")
	if err := wrap(resp, err); err != nil {
		return "", err
	}
	return out.CreatedList.ListName, nil
}

type updatedListResponse struct {
	Message             string `json:"message"`
	UpdatedListNameData struct {
		CurrentListName string `json:"currentListName"`
		UpdatedListName string `json:"updatedListName"`
	} `json:"updatedListNameData"`
}

// RenameSortList renames an existing sorting list.
func (c *Client) RenameSortList(currentUserUserName, currentListName, updatedListName string) (oldName, newName string, err error) {
	var out updatedListResponse
	resp, reqErr := c.newRequest(&out).
		SetBody(map[string]string{
			"currentUserUserName": currentUserUserName,
			"currentListName":     currentListName,
			"updatedListName":     updatedListName,
		}).
		Put("/api/user/update-user-sorting-list")
	if err := wrap(resp, reqErr); err != nil {
		return "", "", err
	}
	return out.UpdatedListNameData.CurrentListName, out.UpdatedListNameData.UpdatedListName, nil
}

type deletedListResponse struct {
	Message         string `json:"message"`
	DeletedListName string `json:"deletedListName"`
}

// DeleteSortList removes a sorting list; its members stay connected.
func (c *Client) DeleteSortList(currentUserUserName, deleteListName string) (string, error) {
	var out deletedListResponse
	resp, err := c.newRequest(&out).
		SetQueryParams(map[string]string{
			"currentUserUserName": currentUserUserName,
			"deleteListName":      deleteListName,
		}).
		Delete("/api/user/delete-user-sorting-list")
	if err := wrap(resp, err); err != nil {
		return "", err
	}
	return out.DeletedListName, nil
}

type addedToListResponse struct {
	Message           string `json:"message"`
	AddedUserListData struct {
		UserName string `json:"userName"`
		ListName string `json:"listName"`
	} `json:"addedUserListData"`
}

// AddUserToSortList moves a connection into the named sorting list.
func (c *Client) AddUserToSortList(currentUserUserName, addedUserUserName, listName string) (userName, confirmedList string, err error) {
	var out addedToListResponse
	resp, reqErr := c.newRequest(&out).
		SetBody(map[string]string{
			"currentUserUserName": currentUserUserName,
			"addedUserUserName":   addedUserUserName,
			"listName":            listName,
		}).
		Post("/api/user/add-user-to-chat-sort-list")
	if err := wrap(resp, reqErr); err != nil {
		return "", "", err
	}
	return out.AddedUserListData.UserName, out.AddedUserListData.ListName, nil
}

type endConnectionResponse struct {
	Message                string `json:"message"`
	UnfriendedUserUserName string `json:"unfriendedUserUserName"`
}

// EndConnection severs a connection entirely.
func (c *Client) EndConnection(currentUserUserName, unfriendUserUserName string) (string, error) {
	var out endConnectionResponse
	resp, err := c.newRequest(&out).
		SetBody(map[string]string{
			"currentUserUserName":  currentUserUserName,
			"unfriendUserUserName": unfriendUserUserName,
		}).
		Post("/api/user/end-connection")
	if err := wrap(resp, err); err != nil {
		return "", err
	}
	return out.UnfriendedUserUserName, nil
}
