package websocket

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"sync/atomic"
	"time"

	"myretro/internal/utils"

	"go.uber.org/zap"
)

// Client is one browser tab following board events. An empty boardID means
// the client receives events for every board.
type Client struct {
	hub     *Hub
	conn    ClientConn
	send    chan []byte
	ID      string
	BoardID string
}

type ClientConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

func generateClientID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "xxxxx"
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

func (c *Client) follows(e utils.Event) bool {
	return c.BoardID == "" || c.BoardID == e.BoardID
}

// Hub owns the client set; only Run touches it.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	eventBus   *utils.EventBus
	count      atomic.Int64
	logger     *zap.SugaredLogger
}

func NewHub(logger *zap.Logger, eventBus *utils.EventBus) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		eventBus:   eventBus,
		logger:     logger.Sugar(),
	}
}

func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

func (h *Hub) Run() {
	h.logger.Info("WebSocket Hub started")
	events := h.eventBus.SubscribeCh()

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.count.Store(int64(len(h.clients)))
			h.logger.Infow("Client connected",
				"client_id", client.ID,
				"board_id", client.BoardID,
				"clients_count", len(h.clients),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Infow("Client disconnected",
					"client_id", client.ID,
					"clients_count", len(h.clients),
				)
			}

		case event := <-events:
			h.broadcast(event)
		}
	}
}

func (h *Hub) broadcast(event utils.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorw("Failed to encode event", "event", event.Event, "error", err)
		return
	}

	for client := range h.clients {
		if !client.follows(event) {
			continue
		}
		select {
		case client.send <- payload:
		default:
			h.logger.Warnw("Dropping slow client", "client_id", client.ID)
			h.drop(client)
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.count.Store(int64(len(h.clients)))
}
