package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fortuna/courtside/internal/service"
	"github.com/fortuna/courtside/internal/telemetry"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	sendBuf       = 16
	writeDeadline = 10 * time.Second
	pongWait      = 60 * time.Second
	pingInterval  = 45 * time.Second
	maxFrameBytes = 64 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Dashboards runs dashboard requests
type Dashboards interface {
	Run(ctx context.Context, req service.Request) (*service.Dashboard, error)
}

// errorFrame is sent in place of a dashboard when a run fails
type errorFrame struct {
	Error     string `json:"error"`
	SessionID string `json:"session_id"`
}

type session struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	log  *logrus.Entry
}

// Server answers each dashboard request frame with one dashboard frame
type Server struct {
	dashboards Dashboards
	server     *http.Server
	log        *logrus.Entry

	mu       sync.Mutex
	sessions map[*session]struct{}
}

// NewServer creates a new WebSocket server
func NewServer(dashboards Dashboards) *Server {
	return &Server{
		dashboards: dashboards,
		log:        telemetry.Component("ws"),
		sessions:   make(map[*session]struct{}),
	}
}

// Routes returns the WebSocket endpoints
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/dashboard", s.handleDashboard)
	mux.HandleFunc("/ws/health", s.handleHealth)
	return mux
}

// Start starts the WebSocket server
func (s *Server) Start(port string) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Infof("listening on :%s", port)
	return s.server.ListenAndServe()
}

// SessionCount returns the number of open sessions
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("upgrade failed")
		return
	}

	id := uuid.NewString()
	sess := &session{
		id:   id,
		conn: conn,
		send: make(chan []byte, sendBuf),
		done: make(chan struct{}),
		log:  s.log.WithField("session_id", id),
	}

	s.mu.Lock()
	s.sessions[sess] = struct{}{}
	s.mu.Unlock()
	sess.log.Info("session opened")

	go s.writePump(sess)
	go s.readPump(sess)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "healthy",
		"sessions": s.SessionCount(),
	})
}

// readPump runs one dashboard per inbound frame, in order. On exit it
// signals writePump via done.
func (s *Server) readPump(sess *session) {
	defer close(sess.done)

	sess.conn.SetReadLimit(maxFrameBytes)
	sess.conn.SetReadDeadline(time.Now().Add(pongWait))
	sess.conn.SetPongHandler(func(string) error {
		sess.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.log.WithError(err).Warn("read failed")
			}
			return
		}
		sess.conn.SetReadDeadline(time.Now().Add(pongWait))

		reply := s.answer(sess, msg)
		select {
		case sess.send <- reply:
		case <-time.After(writeDeadline):
			sess.log.Warn("client not draining replies, closing")
			return
		}
	}
}

func (s *Server) answer(sess *session, msg []byte) []byte {
	var req service.Request
	if err := json.Unmarshal(msg, &req); err != nil {
		return s.errorReply(sess, fmt.Errorf("decoding request: %w", err))
	}
	req.Surface = "ws"

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dash, err := s.dashboards.Run(ctx, req)
	if err != nil {
		return s.errorReply(sess, err)
	}
	out, err := json.Marshal(dash)
	if err != nil {
		return s.errorReply(sess, fmt.Errorf("encoding dashboard: %w", err))
	}
	sess.log.WithField("request_id", dash.RequestID).Debug("dashboard sent")
	return out
}

func (s *Server) errorReply(sess *session, err error) []byte {
	sess.log.WithError(err).Warn("request failed")
	out, _ := json.Marshal(errorFrame{Error: err.Error(), SessionID: sess.id})
	return out
}

// writePump owns the connection: it writes replies and pings, and on exit
// removes the session and closes the connection.
func (s *Server) writePump(sess *session) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		s.mu.Lock()
		delete(s.sessions, sess)
		s.mu.Unlock()
		sess.conn.Close()
		sess.log.Info("session closed")
	}()

	for {
		select {
		case msg := <-sess.send:
			sess.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := sess.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				sess.log.WithError(err).Warn("write failed")
				return
			}
		case <-sess.done:
			return
		case <-ticker.C:
			sess.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := sess.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
