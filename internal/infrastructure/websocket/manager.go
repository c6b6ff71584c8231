package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"supportdesk/pkg/logger"
)

// Client is one connected dashboard session. A single admin account may hold
// several concurrent sessions, so clients are keyed by connection id rather
// than by uid.
type Client struct {
	ID       string
	AdminUID string
	Conn     *websocket.Conn
	Send     chan []byte
}

type clientFrame struct {
	Type string `json:"type"`
	UID  string `json:"uid"`
}

// Manager tracks active dashboard connections and each connection's selected
// conversation.
type Manager struct {
	clients    map[string]*Client
	selections map[string]string
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	onSelect   func(clientID, uid string)
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		selections: make(map[string]string),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// OnSelect registers the callback invoked when a client selects a
// conversation. Must be set before Start.
func (m *Manager) OnSelect(fn func(clientID, uid string)) {
	m.onSelect = fn
}

func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Info("Dashboard client connected: %s (admin %s)", client.ID, client.AdminUID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					delete(m.selections, client.ID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Dashboard client disconnected: %s", client.ID)

			case message := <-m.broadcast:
				m.mutex.RLock()
				for _, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						logger.Warn("Dropping frame for slow client %s", client.ID)
					}
				}
				m.mutex.RUnlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *Manager) Broadcast(message []byte) {
	m.broadcast <- message
}

func (m *Manager) Send(clientID string, message []byte) {
	m.mutex.RLock()
	client, ok := m.clients[clientID]
	m.mutex.RUnlock()

	if ok {
		select {
		case client.Send <- message:
		default:
			logger.Warn("Dropping frame for slow client %s", clientID)
		}
	}
}

func (m *Manager) setSelection(clientID, uid string) {
	m.mutex.Lock()
	m.selections[clientID] = uid
	m.mutex.Unlock()
}

// Selections returns a copy of the clientID -> selected participant mapping.
func (m *Manager) Selections() map[string]string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make(map[string]string, len(m.selections))
	for id, uid := range m.selections {
		out[id] = uid
	}
	return out
}

// ReadPump consumes frames from the connection until it closes. The only
// inbound frame is the conversation select.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Client %s read error: %v", c.ID, err)
			}
			break
		}

		var frame clientFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			logger.Debug("Ignoring malformed frame from %s: %v", c.ID, err)
			continue
		}

		if frame.Type == "select" {
			m.setSelection(c.ID, frame.UID)
			if m.onSelect != nil {
				m.onSelect(c.ID, frame.UID)
			}
		}
	}
}

func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("Client %s write error: %v", c.ID, err)
			return
		}
	}
}
