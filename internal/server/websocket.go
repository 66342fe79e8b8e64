package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/mayura-ui/mayura/internal/errors"
	"github.com/mayura-ui/mayura/internal/showcase"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peer with this period.
	pingPeriod = 50 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	// Outgoing messages buffered per client before it counts as stalled.
	sendBuffer = 64
)

// Message types sent to the browser.
const (
	MessageHello     = "hello"
	MessageFragments = "fragments"
	MessageReload    = "reload"
	MessageError     = "error"
)

// Message is a server-to-browser websocket frame.
type Message struct {
	Type      string              `json:"type"`
	Session   string              `json:"session,omitempty"`
	Fragments []showcase.Fragment `json:"fragments,omitempty"`
	Error     *ErrorPayload       `json:"error,omitempty"`
}

// ErrorPayload describes a rejected event.
type ErrorPayload struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func errorMessage(err error) Message {
	payload := &ErrorPayload{Code: errors.ErrCodeInternalError, Message: err.Error()}
	var ue *errors.UIError
	if stderrors.As(err, &ue) {
		payload.Code = ue.Code
		payload.Message = ue.Message
		payload.Suggestions = ue.Suggestions
	}
	return Message{Type: MessageError, Error: payload}
}

// Client is one websocket connection and the session behind it.
type Client struct {
	conn    *websocket.Conn
	server  *Server
	session *showcase.Session
	limiter *eventLimiter
	send    chan Message

	done      chan struct{}
	closeOnce sync.Once
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// same-origin upgrades are always accepted; other origins must match a
	// configured pattern
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.config.Server.AllowedOrigins,
	})
	if err != nil {
		s.logger.Warn(r.Context(), err, "WebSocket upgrade rejected", "origin", r.Header.Get("Origin"))
		return
	}
	conn.SetReadLimit(maxMessageSize)

	c := &Client{
		conn:   conn,
		server:  s,
		limiter: newEventLimiter(s.config.Server.EventsPerSecond, time.Second),
		send:    make(chan Message, sendBuffer),
		done:    make(chan struct{}),
	}
	c.session = s.newSession(func(f showcase.Fragment) {
		c.enqueue(Message{Type: MessageFragments, Session: c.session.ID(), Fragments: []showcase.Fragment{f}})
	})

	s.addClient(c)
	defer func() {
		s.removeClient(c)
		c.session.Close()
		c.close("")
	}()

	// Shutdown closes clients itself; the pumps must not die with the base
	// context before the close frame is sent
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()
	go c.writePump(ctx)

	frags, err := c.session.RenderAll(ctx)
	if err != nil {
		s.errs.Handle(ctx, err)
		return
	}
	c.enqueue(Message{Type: MessageHello, Session: c.session.ID(), Fragments: frags})

	c.readPump(ctx)
}

// enqueue queues m without blocking. A client whose buffer is full is
// disconnected.
func (c *Client) enqueue(m Message) {
	select {
	case <-c.done:
	case c.send <- m:
	default:
		c.server.logger.Warn(context.Background(), nil, "Client stalled, disconnecting", "session", c.session.ID())
		c.close("client too slow")
	}
}

func (c *Client) close(reason string) {
	c.closeOnce.Do(func() {
		close(c.done)
		status := websocket.StatusNormalClosure
		if reason != "" {
			status = websocket.StatusGoingAway
		}
		_ = c.conn.Close(status, reason)
	})
}

// readPump turns inbound frames into session events. A malformed frame is
// answered with an error message and does not end the connection.
func (c *Client) readPump(ctx context.Context) {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && ctx.Err() == nil {
				c.server.logger.Debug(ctx, "WebSocket read ended", "session", c.session.ID(), "error", err.Error())
			}
			return
		}

		if !c.limiter.Allow() {
			c.enqueue(errorMessage(errors.NewProtocolError(errors.ErrCodeRateLimited, "too many events, slow down", nil)))
			continue
		}

		var ev showcase.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			c.enqueue(errorMessage(errors.NewProtocolError(errors.ErrCodeBadEvent, "malformed event", err)))
			continue
		}

		frags, err := c.session.Apply(ctx, ev)
		if err != nil {
			c.server.errs.Handle(ctx, err)
			c.enqueue(errorMessage(err))
			continue
		}
		c.enqueue(Message{Type: MessageFragments, Session: c.session.ID(), Fragments: frags})
	}
}

// writePump writes queued messages and keeps the connection alive with
// pings.
func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case m := <-c.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := wsjson.Write(writeCtx, c.conn, m)
			cancel()
			if err != nil {
				c.server.logger.Debug(ctx, "WebSocket write failed", "session", c.session.ID(), "error", err.Error())
				c.close("write failed")
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				c.close("ping failed")
				return
			}
		}
	}
}
