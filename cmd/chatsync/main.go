package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alpha-154/chatsync/internal/api"
	"github.com/alpha-154/chatsync/internal/commands"
	"github.com/alpha-154/chatsync/internal/config"
	"github.com/alpha-154/chatsync/internal/realtime"
	"github.com/alpha-154/chatsync/internal/store/contacts"
	"github.com/alpha-154/chatsync/internal/store/conversation"
	"github.com/alpha-154/chatsync/internal/store/notifications"
	"github.com/alpha-154/chatsync/pkg/logger"
)

// logToaster surfaces transient notices on the console; a real UI would
// render them as toasts.
type logToaster struct{}

func (logToaster) Success(msg string) { logger.Info().Msg(msg) }
func (logToaster) Error(msg string)   { logger.Warn().Msg(msg) }

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)
	logger.Info().Str("environment", env).Msg("Starting chatsync client engine...")

	cfg := config.AppConfig
	apiClient := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	convStore := conversation.New(func() {
		// scroll-to-newest stand-in for the headless daemon
		logger.Debug().Msg("conversation updated")
	})
	contactStore := contacts.New()
	notifStore := notifications.New(logToaster{})

	bridge := realtime.NewBridge(
		cfg.SocketURL,
		commands.RouteEvents(convStore, contactStore, notifStore),
		realtime.Options{
			ReconnectAttempts: cfg.ReconnectAttempts,
			ReconnectDelay:    cfg.ReconnectDelay,
			ReconnectDelayMax: cfg.ReconnectDelayMax,
		},
	)

	cmds := commands.New(apiClient, bridge, convStore, contactStore, notifStore, cfg.SearchDebounce)

	userName := os.Getenv("CHAT_USERNAME")
	password := os.Getenv("CHAT_PASSWORD")
	userID := os.Getenv("CHAT_USER_ID")
	if userName == "" || password == "" {
		logger.Fatal().Msg("CHAT_USERNAME and CHAT_PASSWORD are required")
	}

	if err := cmds.Login(userName, password); err != nil {
		logger.Fatal().Err(err).Msg("login failed")
	}
	if err := cmds.SetIdentity(userID, userName); err != nil {
		logger.Error().Err(err).Msg("realtime connect failed; continuing on REST only")
	}

	if err := cmds.FetchConnectedUsers(); err != nil {
		logger.Error().Err(err).Msg("initial contact fetch failed")
	}
	if err := cmds.FetchNotifications(); err != nil {
		logger.Error().Err(err).Msg("initial notification fetch failed")
	}
	logger.Info().Int("unseen", notifStore.Unseen()).Msg("session ready")

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down...")
	if err := cmds.Logout(); err != nil {
		logger.Warn().Err(err).Msg("logout failed")
	}
	logger.Info().Msg("Goodbye")
}
