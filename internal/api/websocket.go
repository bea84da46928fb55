package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
	"github.com/metaxiamultimedia/scriptures-core/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ProgressMessage is a progress update sent to every connected client
// while a long computation runs.
type ProgressMessage struct {
	Type      string         `json:"type"` // "progress", "complete", "error"
	Operation string         `json:"operation"`
	Stage     string         `json:"stage,omitempty"`
	Progress  int            `json:"progress"` // 0-100
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// WSComputeRequest is a computation request sent by a client over its
// websocket connection.
type WSComputeRequest struct {
	Text     string `json:"text"`
	Method   string `json:"method,omitempty"`
	Language string `json:"language,omitempty"`
}

// WSWordMessage streams one word's value back to the requesting
// client. The final message of a stream has Type "total" and carries
// the running sum.
type WSWordMessage struct {
	Type     string `json:"type"` // "word", "total", "error"
	Position int    `json:"position,omitempty"`
	Text     string `json:"text,omitempty"`
	Method   string `json:"method,omitempty"`
	Value    int    `json:"value"`
	Message  string `json:"message,omitempty"`
}

// Client is one websocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the active websocket connections and broadcasts
// progress messages to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run handles client registration and broadcasting until the process
// exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logging.Debug("websocket client connected", "clients", h.Len())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logging.Debug("websocket client disconnected", "clients", h.Len())

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client channel full, disconnect.
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a progress message to every connected client.
func (h *Hub) Broadcast(msg ProgressMessage) {
	if msg.Timestamp == "" {
		msg.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	data, err := json.Marshal(msg)
	if err != nil {
		logging.Error("failed to marshal progress message", "error", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		logging.Warn("broadcast channel full, dropping message")
	}
}

// BroadcastProgress sends a progress update.
func (h *Hub) BroadcastProgress(operation, stage, message string, progress int) {
	h.Broadcast(ProgressMessage{
		Type:      "progress",
		Operation: operation,
		Stage:     stage,
		Progress:  progress,
		Message:   message,
	})
}

// BroadcastComplete sends a completion message.
func (h *Hub) BroadcastComplete(operation, message string, data map[string]any) {
	h.Broadcast(ProgressMessage{
		Type:      "complete",
		Operation: operation,
		Progress:  100,
		Message:   message,
		Data:      data,
	})
}

// BroadcastError sends an error message.
func (h *Hub) BroadcastError(operation, message string) {
	h.Broadcast(ProgressMessage{
		Type:      "error",
		Operation: operation,
		Message:   message,
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{hub: s.hub, conn: conn, send: make(chan []byte, 64)}
	s.hub.register <- client

	go client.writePump()
	go client.readPump(s)
}

// readPump reads compute requests from the connection and streams
// per-word values back on the client's own send channel. Broadcast
// traffic from the hub interleaves on the same channel.
func (c *Client) readPump(s *Server) {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Error("websocket unexpected close", "error", err)
			}
			break
		}
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req WSComputeRequest
		if err := json.Unmarshal(data, &req); err != nil {
			c.reply(WSWordMessage{Type: "error", Message: "malformed request"})
			continue
		}
		c.streamCompute(s, req)
	}
}

// streamCompute sends one message per word of the request text, then a
// total. A word that fails to compute streams as an error message and
// contributes zero.
func (c *Client) streamCompute(s *Server, req WSComputeRequest) {
	lang := gematria.Auto
	if req.Language != "" {
		lang = gematria.NormalizeLanguage(req.Language)
	}
	if lang == gematria.Auto {
		lang = gematria.Detect(req.Text)
	}
	name := req.Method
	if name == "" {
		name = "standard"
	}
	method, err := gematria.Default().Resolve(name, lang)
	if err != nil {
		c.reply(WSWordMessage{Type: "error", Message: err.Error()})
		return
	}

	total := 0
	for i, word := range strings.Fields(req.Text) {
		value := s.wordValues(word, lang).Get(method.Identifier)
		total += value
		c.reply(WSWordMessage{
			Type:     "word",
			Position: i + 1,
			Text:     word,
			Method:   method.Identifier,
			Value:    value,
		})
	}
	c.reply(WSWordMessage{Type: "total", Method: method.Identifier, Value: total})
}

func (c *Client) reply(msg WSWordMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// writePump writes queued messages and keeps the connection alive with
// pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
