package registration

import (
	"context"
	"crypto/rand"
	"errors"
	"sync"
	"time"

	"reg-form/cmd/server/handlers/httperr"
	"reg-form/internal/logger"
	"reg-form/internal/services/form"
	"reg-form/internal/services/registration"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
)

const (
	// WSClosePolicyViolation represents WebSocket close code for policy violation
	WSClosePolicyViolation = 1008

	wsWriteTimeout     = 10 * time.Second
	wsMaxIncomingBytes = 64 << 10
)

// Live form event types sent by the page.
const (
	EventInput  = "input"
	EventFocus  = "focus"
	EventBlur   = "blur"
	EventToggle = "toggle"
	EventSubmit = "submit"
)

// Message types sent to the page.
const (
	MessageSnapshot = "snapshot"
	MessageError    = "error"
)

var errUnknownEvent = errors.New("unknown event type")

// WSEvent is one DOM event forwarded by the page.
type WSEvent struct {
	Type  string             `json:"type"`
	Field registration.Field `json:"field,omitempty"`
	Value string             `json:"value,omitempty"`
}

// WSMessage carries the page state after an event.
type WSMessage struct {
	Type           string         `json:"type"`
	Snapshot       *form.Snapshot `json:"snapshot"`
	RegistrationID string         `json:"registrationId,omitempty"`
	Error          string         `json:"error,omitempty"`
}

// WebSocketHandlers serves the live form channel
type WebSocketHandlers struct {
	submitter      form.Submitter
	bannerDuration time.Duration
	maxSession     time.Duration
}

// NewWebSocketHandlers creates new WebSocket handlers
func NewWebSocketHandlers(submitter form.Submitter, bannerDuration, maxSession time.Duration) *WebSocketHandlers {
	return &WebSocketHandlers{
		submitter:      submitter,
		bannerDuration: bannerDuration,
		maxSession:     maxSession,
	}
}

// WSUpgrade rejects plain HTTP requests on the live form route
func (h *WebSocketHandlers) WSUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}

	logger.L().Warn("websocket upgrade required", "handler", "WSUpgrade", "path", c.Path())
	return httperr.Fail(httperr.ErrUpgradeRequired)
}

// liveSession serializes state changes and writes for one connection; the
// read loop, the banner timer and the session timer all go through mu.
type liveSession struct {
	mu          sync.Mutex
	conn        *websocket.Conn
	connID      string
	state       *form.State
	bannerTimer *time.Timer
	closed      bool
}

// WSLiveForm runs one live form: every page event is applied to a
// per-connection form state and answered with a full snapshot
func (h *WebSocketHandlers) WSLiveForm(c *websocket.Conn) {
	c.SetReadLimit(wsMaxIncomingBytes)

	connID := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess := &liveSession{
		conn:   c,
		connID: connID,
		state:  form.NewState(h.bannerDuration),
	}
	defer sess.stopBanner()

	sessionTimer := time.AfterFunc(h.maxSession, func() {
		logger.L().Info("live form session timeout", "conn_id", connID)
		sess.closeWith(WSClosePolicyViolation, "session timeout")
		cancel()
	})
	defer sessionTimer.Stop()

	logger.L().Info("live form connection established", "conn_id", connID)

	sess.mu.Lock()
	sess.writeLocked(WSMessage{Type: MessageSnapshot})
	sess.mu.Unlock()

	for {
		var ev WSEvent
		if err := c.ReadJSON(&ev); err != nil {
			logger.L().Debug("live form read ended", "conn_id", connID, "error", err)
			return
		}
		h.apply(ctx, sess, ev)
	}
}

func (h *WebSocketHandlers) apply(ctx context.Context, sess *liveSession, ev WSEvent) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	msg := WSMessage{Type: MessageSnapshot}
	var err error

	switch ev.Type {
	case EventInput:
		err = sess.state.Input(ev.Field, ev.Value)
	case EventFocus:
		err = sess.state.Focus(ev.Field)
	case EventBlur:
		err = sess.state.Blur(ev.Field, ev.Value)
	case EventToggle:
		sess.state.TogglePassword()
	case EventSubmit:
		var reg *registration.Registration
		reg, err = sess.state.Submit(ctx, h.submitter)
		switch {
		case err == nil:
			msg.RegistrationID = reg.ID
			sess.scheduleBannerLocked()
		case errors.Is(err, registration.ErrInvalidForm):
			// the snapshot already carries the field errors and scroll target
			err = nil
		default:
			logger.L().Error("live form submit failed", "conn_id", sess.connID, "error", err)
		}
	default:
		err = errUnknownEvent
	}

	if err != nil {
		msg.Type = MessageError
		msg.Error = err.Error()
	}
	sess.writeLocked(msg)
}

// scheduleBannerLocked pushes one more snapshot once the banner hides.
func (s *liveSession) scheduleBannerLocked() {
	until, ok := s.state.BannerExpiry()
	if !ok {
		return
	}
	if s.bannerTimer != nil {
		s.bannerTimer.Stop()
	}
	s.bannerTimer = time.AfterFunc(time.Until(until), func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.writeLocked(WSMessage{Type: MessageSnapshot})
	})
}

func (s *liveSession) stopBanner() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bannerTimer != nil {
		s.bannerTimer.Stop()
	}
	s.closed = true
}

func (s *liveSession) writeLocked(msg WSMessage) {
	if s.closed {
		return
	}
	snap := s.state.Snapshot()
	msg.Snapshot = &snap

	if err := s.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		logger.L().Error("failed to set write deadline", "error", err, "conn_id", s.connID)
		return
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		logger.L().Warn("failed to write live form message", "error", err, "conn_id", s.connID)
	}
}

func (s *liveSession) closeWith(code int, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	if err := s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason)); err != nil {
		logger.L().Error("failed to send close message", "error", err, "conn_id", s.connID)
	}
	if err := s.conn.Close(); err != nil {
		logger.L().Error("failed to close WebSocket connection", "error", err, "conn_id", s.connID)
	}
}
