package live

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/middleware"
	"github.com/samplecafe/cafe/pkg/render"
)

// ErrStalePath is reported when an event names an element that no longer
// exists, usually because the client missed an update.
var ErrStalePath = errors.New("live: event path does not match the page")

type session struct {
	conn    *websocket.Conn
	config  Config
	logger  *slog.Logger
	metrics *middleware.Metrics

	container *dom.Node
	root      *render.Root

	title     string
	sentTitle string

	// renderErr is the last error reported by the root, cleared once sent.
	renderErr error
}

func newSession(conn *websocket.Conn, config Config, logger *slog.Logger, metrics *middleware.Metrics, observers []render.Observer) *session {
	s := &session{
		conn:      conn,
		config:    config,
		logger:    logger,
		metrics:   metrics,
		container: dom.MustElement("div"),
	}
	s.root = render.CreateRoot(s.container,
		render.WithLogger(logger),
		render.WithObserver(render.Observers(observers...)),
		render.WithErrorHandler(func(err error) { s.renderErr = err }),
	)
	return s
}

func (s *session) serve(r *http.Request, mount MountFunc) {
	defer s.root.Unmount()

	s.conn.SetReadLimit(s.config.MaxMessageBytes)
	s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	})

	top, err := mount(r, s.setTitle)
	if err == nil {
		err = s.root.Render(top)
	}
	if err != nil {
		s.logger.Warn("mount failed", "error", err)
		s.send(Reply{Error: err.Error()})
		s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "mount failed"),
			time.Now().Add(s.config.WriteTimeout))
		return
	}
	if !s.send(s.snapshot()) {
		return
	}

	done := make(chan struct{})
	defer close(done)
	go s.pingLoop(done)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Warn("read error", "error", err)
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Debug("bad message", "error", err)
			if !s.send(Reply{Error: "invalid message"}) {
				return
			}
			continue
		}
		if reply, ok := s.handle(msg); ok && !s.send(reply) {
			return
		}
	}
}

// handle dispatches msg and returns the reply to send, if any.
func (s *session) handle(msg Message) (Reply, bool) {
	if !ForwardedTypes[msg.Type] {
		s.metrics.LiveEvent("other")
		return Reply{}, false
	}
	s.metrics.LiveEvent(msg.Type)

	target, ok := s.container.ElementAt(msg.Path)
	if !ok || target == s.container {
		// Resend the page so the client's paths line up again.
		reply := s.snapshot()
		reply.Error = ErrStalePath.Error()
		return reply, true
	}

	before := s.root.Cycles()
	ev := dom.NewEvent(msg.Type)
	ev.Value = msg.Value
	ev.Fields = msg.Fields
	target.Dispatch(ev)

	if err := s.renderErr; err != nil {
		s.renderErr = nil
		s.logger.Warn("render failed", "event", msg.Type, "error", err)
		reply := s.snapshot()
		reply.Error = err.Error()
		return reply, true
	}
	if s.root.Cycles() == before && s.title == s.sentTitle {
		return Reply{}, false
	}
	return s.snapshot(), true
}

func (s *session) setTitle(title string) {
	s.title = title
}

func (s *session) snapshot() Reply {
	return Reply{
		HTML:      s.container.InnerHTML(),
		Title:     s.title,
		Listeners: Bindings(s.container),
	}
}

// send writes reply and reports whether the connection is still usable.
func (s *session) send(reply Reply) bool {
	data, err := json.Marshal(reply)
	if err != nil {
		s.logger.Error("encode reply", "error", err)
		return false
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Debug("write failed", "error", err)
		return false
	}
	if reply.Title != "" {
		s.sentTitle = reply.Title
	}
	return true
}

// pingLoop only uses WriteControl, which gorilla allows concurrently with
// the session goroutine's writes.
func (s *session) pingLoop(done <-chan struct{}) {
	ticker := time.NewTicker(s.config.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			deadline := time.Now().Add(s.config.WriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
