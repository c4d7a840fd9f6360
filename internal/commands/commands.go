package commands

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alpha-154/chatsync/internal/api"
	"github.com/alpha-154/chatsync/internal/models"
	"github.com/alpha-154/chatsync/internal/realtime"
	"github.com/alpha-154/chatsync/internal/search"
	"github.com/alpha-154/chatsync/internal/store/contacts"
	"github.com/alpha-154/chatsync/internal/store/conversation"
	"github.com/alpha-154/chatsync/internal/store/notifications"
	"github.com/alpha-154/chatsync/pkg/errors"
	"github.com/alpha-154/chatsync/pkg/logger"
)

// Commands orchestrates every user-initiated action: validate inputs, call
// REST, apply the store mutation on success, optionally emit a courtesy
// realtime event. Failures leave prior state intact; there is no per-command
// retry, a retry is the user clicking again.
type Commands struct {
	api      *api.Client
	bridge   *realtime.Bridge
	conv     *conversation.Store
	contacts *contacts.Store
	notifs   *notifications.Store

	validate         *validator.Validate
	usernameDebounce *search.Debouncer

	selfID   string
	selfName string
}

func New(
	apiClient *api.Client,
	bridge *realtime.Bridge,
	conv *conversation.Store,
	contactStore *contacts.Store,
	notifStore *notifications.Store,
	debounceDelay time.Duration,
) *Commands {
	return &Commands{
		api:              apiClient,
		bridge:           bridge,
		conv:             conv,
		contacts:         contactStore,
		notifs:           notifStore,
		validate:         validator.New(),
		usernameDebounce: search.NewDebouncer(debounceDelay),
	}
}

// SetIdentity binds the logged-in user and registers them on the realtime
// channel.
func (c *Commands) SetIdentity(userID, userName string) error {
	c.selfID = userID
	c.selfName = userName
	return c.bridge.Connect(userID)
}

// Identity returns the bound user id and username.
func (c *Commands) Identity() (userID, userName string) {
	return c.selfID, c.selfName
}

// RouteEvents builds the bridge handler table that feeds inbound realtime
// events straight into the stores. The bridge stays free of business logic.
func RouteEvents(
	conv *conversation.Store,
	contactStore *contacts.Store,
	notifStore *notifications.Store,
) realtime.Handlers {
	return realtime.Handlers{
		OnPrivateMessage:    conv.AppendRemoteReceive,
		OnMessageDataUpdate: contactStore.ApplyRealtimeMessageUpdate,
		OnStatusUpdate:      contactStore.ApplyPresenceUpdate,
		OnNewNotification: func(ping models.NotificationPing) {
			notifStore.IncrementUnseen(ping.Message)
		},
		OnDown: func(err error) {
			logger.Error().Err(err).Msg("realtime channel is down; live updates paused")
		},
	}
}

// isReserved guards the one list that can never be created, renamed or
// deleted.
func isReserved(name string) bool {
	return strings.EqualFold(name, models.ReservedListName)
}

// check normalizes a validator failure into a user-facing message.
func (c *Commands) check(req any) error {
	if err := c.validate.Struct(req); err != nil {
		return errors.Validation(err.Error())
	}
	return nil
}
