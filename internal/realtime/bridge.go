package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"

	"github.com/alpha-154/chatsync/internal/models"
	"github.com/alpha-154/chatsync/pkg/logger"
)

// Conn is the subset of a websocket connection the bridge needs. Tests
// substitute an in-memory implementation.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Dialer opens a Conn to the given URL.
type Dialer func(url string) (Conn, error)

// DefaultDialer dials over gorilla/websocket.
func DefaultDialer(url string) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Handlers route inbound events into the stores. The bridge itself carries no
// business logic. OnDown fires once when reconnection attempts are exhausted.
type Handlers struct {
	OnPrivateMessage    func(models.Message)
	OnNewNotification   func(models.NotificationPing)
	OnStatusUpdate      func(models.PresenceUpdate)
	OnMessageDataUpdate func(models.RealtimeMessageUpdate)
	OnDown              func(error)
}

// Options control reconnection; zero values fall back to the defaults the
// platform has always used (5 attempts, 1s delay capped at 3s).
type Options struct {
	ReconnectAttempts int
	ReconnectDelay    time.Duration
	ReconnectDelayMax time.Duration
	Dialer            Dialer
}

// Bridge is the single long-lived bidirectional channel for a session.
// Constructed once at session start and passed by reference to whichever
// modules need to emit or subscribe; only the logout flow disconnects it.
type Bridge struct {
	url      string
	handlers Handlers
	opts     Options

	mu       sync.Mutex
	conn     Conn
	identity string
	rooms    map[string]struct{}
	closed   bool
	gen      int // bumps on every (re)connect so stale read loops exit quietly
}

func NewBridge(url string, handlers Handlers, opts Options) *Bridge {
	if opts.ReconnectAttempts <= 0 {
		opts.ReconnectAttempts = 5
	}
	if opts.ReconnectDelay <= 0 {
		opts.ReconnectDelay = time.Second
	}
	if opts.ReconnectDelayMax <= 0 {
		opts.ReconnectDelayMax = 3 * time.Second
	}
	if opts.Dialer == nil {
		opts.Dialer = DefaultDialer
	}
	return &Bridge{
		url:      url,
		handlers: handlers,
		opts:     opts,
		rooms:    map[string]struct{}{},
	}
}

// Connect establishes the channel and registers the identity with the server.
// Calling it again with the same identity on a live connection is a no-op;
// a changed identity re-registers without redialing.
func (b *Bridge) Connect(identity string) error {
	b.mu.Lock()
	if b.conn != nil {
		if b.identity == identity {
			b.mu.Unlock()
			return nil
		}
		b.identity = identity
		conn := b.conn
		b.mu.Unlock()
		return b.send(conn, Envelope{Event: EventRegister, To: identity})
	}
	b.identity = identity
	b.closed = false
	b.mu.Unlock()

	return b.dialAndResume()
}

// JoinRoom subscribes to a conversation's room. The room is tracked so a
// reconnect can re-join it.
func (b *Bridge) JoinRoom(roomID string) error {
	b.mu.Lock()
	b.rooms[roomID] = struct{}{}
	conn := b.conn
	b.mu.Unlock()
	if conn == nil {
		return nil
	}
	return b.send(conn, Envelope{Event: EventJoinRoom, Room: roomID})
}

// LeaveRoom unsubscribes. Every join must have a matching leave on
// conversation close, or the subscription leaks.
func (b *Bridge) LeaveRoom(roomID string) error {
	b.mu.Lock()
	delete(b.rooms, roomID)
	conn := b.conn
	b.mu.Unlock()
	if conn == nil {
		return nil
	}
	return b.send(conn, Envelope{Event: EventLeaveRoom, Room: roomID})
}

// Emit publishes an outbound event. Data is marshalled into the envelope.
func (b *Bridge) Emit(event, room, to string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	b.mu.Lock()
	conn := b.conn
	b.mu.Unlock()
	if conn == nil {
		return nil
	}
	return b.send(conn, Envelope{Event: event, Room: room, To: to, Data: raw})
}

// Disconnect tears the channel down for good. Used by the logout flow only.
func (b *Bridge) Disconnect() {
	b.mu.Lock()
	b.closed = true
	conn := b.conn
	b.conn = nil
	b.mu.Unlock()
	if conn != nil {
		conn.Close()
	}
}

// Connected reports whether the channel is currently established.
func (b *Bridge) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn != nil
}

// Rooms returns the currently tracked room subscriptions.
func (b *Bridge) Rooms() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.rooms))
	for r := range b.rooms {
		out = append(out, r)
	}
	return out
}

// dialAndResume dials, registers once, re-joins tracked rooms and starts the
// read loop.
func (b *Bridge) dialAndResume() error {
	conn, err := b.opts.Dialer(b.url)
	if err != nil {
		return err
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		conn.Close()
		return nil
	}
	b.conn = conn
	b.gen++
	gen := b.gen
	identity := b.identity
	rooms := make([]string, 0, len(b.rooms))
	for r := range b.rooms {
		rooms = append(rooms, r)
	}
	b.mu.Unlock()

	if err := b.send(conn, Envelope{Event: EventRegister, To: identity}); err != nil {
		return err
	}
	for _, room := range rooms {
		if err := b.send(conn, Envelope{Event: EventJoinRoom, Room: room}); err != nil {
			return err
		}
	}

	go b.readLoop(conn, gen)
	return nil
}

func (b *Bridge) send(conn Conn, env Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (b *Bridge) readLoop(conn Conn, gen int) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			b.mu.Lock()
			stale := b.gen != gen || b.closed
			if !stale {
				b.conn = nil
			}
			b.mu.Unlock()
			if stale {
				return
			}
			logger.Warn().Err(err).Msg("realtime channel dropped, reconnecting")
			b.reconnect()
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			logger.Warn().Err(err).Msg("dropping malformed realtime frame")
			continue
		}
		b.dispatch(env)
	}
}

// dispatch routes one inbound frame to its store handler.
func (b *Bridge) dispatch(env Envelope) {
	switch env.Event {
	case EventPrivateMessage:
		if b.handlers.OnPrivateMessage == nil {
			return
		}
		var msg models.Message
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			logger.Warn().Err(err).Str("event", env.Event).Msg("bad payload")
			return
		}
		b.handlers.OnPrivateMessage(msg)
	case EventNewNotification:
		if b.handlers.OnNewNotification == nil {
			return
		}
		var ping models.NotificationPing
		if err := json.Unmarshal(env.Data, &ping); err != nil {
			logger.Warn().Err(err).Str("event", env.Event).Msg("bad payload")
			return
		}
		b.handlers.OnNewNotification(ping)
	case EventUserStatusUpdate:
		if b.handlers.OnStatusUpdate == nil {
			return
		}
		var update models.PresenceUpdate
		if err := json.Unmarshal(env.Data, &update); err != nil {
			logger.Warn().Err(err).Str("event", env.Event).Msg("bad payload")
			return
		}
		b.handlers.OnStatusUpdate(update)
	case EventMsgDataUpdate:
		if b.handlers.OnMessageDataUpdate == nil {
			return
		}
		var update models.RealtimeMessageUpdate
		if err := json.Unmarshal(env.Data, &update); err != nil {
			logger.Warn().Err(err).Str("event", env.Event).Msg("bad payload")
			return
		}
		b.handlers.OnMessageDataUpdate(update)
	default:
		logger.Debug().Str("event", env.Event).Msg("ignoring unknown realtime event")
	}
}

// reconnect redials with capped backoff for a bounded number of attempts.
// Exhaustion is terminal: OnDown fires and the bridge stays down until the
// next explicit Connect.
func (b *Bridge) reconnect() {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = b.opts.ReconnectDelay
	bo.MaxInterval = b.opts.ReconnectDelayMax
	bo.MaxElapsedTime = 0

	err := backoff.Retry(func() error {
		b.mu.Lock()
		closed := b.closed
		b.mu.Unlock()
		if closed {
			return nil
		}
		return b.dialAndResume()
	}, backoff.WithMaxRetries(bo, uint64(b.opts.ReconnectAttempts)))

	if err != nil {
		logger.Error().Err(err).Int("attempts", b.opts.ReconnectAttempts).
			Msg("realtime reconnection exhausted")
		if b.handlers.OnDown != nil {
			b.handlers.OnDown(err)
		}
	}
}
