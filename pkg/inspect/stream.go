package inspect

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/niber/pkg/niber"
)

const writeWait = 2 * time.Second

// CommitMessage is sent to websocket clients after every commit.
type CommitMessage struct {
	Type      string `json:"type"`
	Seq       uint64 `json:"seq"`
	Root      string `json:"root,omitempty"`
	Instances int    `json:"instances"`
}

// commitStream fans commit notifications out to websocket clients.
type commitStream struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	seq      uint64
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func newCommitStream(logger *slog.Logger) *commitStream {
	return &commitStream{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // debug tool, any origin
			},
		},
		logger: logger,
	}
}

// handle upgrades the request and keeps the connection until the client
// goes away.
func (s *commitStream) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// notify is registered with Runtime.OnCommit. root is nil after an unmount.
func (s *commitStream) notify(root *niber.Instance) {
	s.mu.Lock()
	s.seq++
	msg := CommitMessage{Type: "commit", Seq: s.seq}
	s.mu.Unlock()

	if root != nil {
		msg.Root = root.ID
		msg.Instances = root.Count()
	}
	s.broadcast(msg)
}

func (s *commitStream) broadcast(msg CommitMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	s.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	s.mu.RUnlock()

	for _, client := range clients {
		client.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			s.logger.Debug("dropping websocket client", "error", err)
			s.mu.Lock()
			delete(s.clients, client)
			s.mu.Unlock()
			client.Close()
		}
	}
}

func (s *commitStream) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *commitStream) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for client := range s.clients {
		client.Close()
		delete(s.clients, client)
	}
}
