package commands

import (
	"github.com/alpha-154/chatsync/internal/api"
	"github.com/alpha-154/chatsync/pkg/logger"
)

type registerInput struct {
	UserName string `validate:"required,min=3,max=30"`
	Password string `validate:"required,min=6"`
	ImageURL string `validate:"omitempty,url"`
}

// Register creates a new account. Input problems never reach the network.
func (c *Commands) Register(userName, password, imageURL string) error {
	if err := c.check(registerInput{UserName: userName, Password: password, ImageURL: imageURL}); err != nil {
		return err
	}
	return c.api.Register(api.RegisterRequest{
		UserName: userName,
		Password: password,
		ImageURL: imageURL,
	})
}

type loginInput struct {
	UserName string `validate:"required"`
	Password string `validate:"required"`
}

// Login authenticates; the access-token cookie lands in the API client's jar.
func (c *Commands) Login(userName, password string) error {
	if err := c.check(loginInput{UserName: userName, Password: password}); err != nil {
		return err
	}
	return c.api.Login(api.LoginRequest{UserName: userName, Password: password})
}

// Logout invalidates the session and tears down the realtime channel. This is
// the only flow allowed to disconnect the bridge.
func (c *Commands) Logout() error {
	err := c.api.Logout()
	c.bridge.Disconnect()
	c.selfID = ""
	c.selfName = ""
	return err
}

// UsernameChanged debounces the uniqueness check during registration typing.
// Only the last keystroke in a quiet window hits the API; result receives the
// outcome.
func (c *Commands) UsernameChanged(userName string, result func(available bool)) {
	c.usernameDebounce.Schedule(func() {
		available, err := c.api.CheckUsername(userName)
		if err != nil {
			logger.Warn().Err(err).Str("userName", userName).Msg("username check failed")
			return
		}
		result(available)
	})
}

// CancelPendingChecks stops the username debounce timer on form teardown.
func (c *Commands) CancelPendingChecks() {
	c.usernameDebounce.Stop()
}
