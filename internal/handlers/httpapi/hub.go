package httpapi

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/stagedraw/internal/display"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Displays connect from venue kiosks on arbitrary origins
		return true
	},
}

// Hub maintains the set of connected display clients and pushes every
// view frame to them
type Hub struct {
	mu       sync.RWMutex
	clients  map[*hubClient]bool
	lastView display.View
}

type hubClient struct {
	conn *websocket.Conn
	send chan display.View
}

// NewHub creates a new display hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*hubClient]bool),
	}
}

// Broadcast pushes a view frame to every connected display. Slow clients
// are dropped; displays only care about the latest frame.
//
// Sends and closes on a client's send channel both happen under h.mu, so
// a disconnect can never close a channel mid-send.
func (h *Hub) Broadcast(view display.View) {
	var stale []*hubClient

	h.mu.Lock()
	h.lastView = view
	for c := range h.clients {
		select {
		case c.send <- view:
		default:
			stale = append(stale, c)
		}
	}
	for _, c := range stale {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	for _, c := range stale {
		c.conn.Close()
	}
}

// ServeHTTP upgrades a display connection and streams views to it
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("display websocket upgrade failed")
		return
	}

	client := &hubClient{
		conn: conn,
		send: make(chan display.View, 8),
	}

	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	// New displays catch up from the latest frame immediately. The
	// channel is fresh and buffered, so this send cannot block.
	if h.lastView.State != "" {
		client.send <- h.lastView
	}
	h.mu.Unlock()

	log.Debug().Int("total_clients", total).Msg("display connected")

	go client.writeLoop(h)
	go client.readLoop(h)
}

func (h *Hub) drop(c *hubClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	c.conn.Close()
}

func (c *hubClient) writeLoop(h *Hub) {
	for view := range c.send {
		if err := c.conn.WriteJSON(view); err != nil {
			h.drop(c)
			return
		}
	}
}

// readLoop discards inbound frames; displays are read-only clients. It
// exists to notice disconnects.
func (c *hubClient) readLoop(h *Hub) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.drop(c)
			return
		}
	}
}
