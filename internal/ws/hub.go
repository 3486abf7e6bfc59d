package ws

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type envelope struct {
	userIDs []uuid.UUID
	payload []byte
}

// Hub fans deal events out to the connections of the addressed users. One hub
// per process; Run owns all registration state.
type Hub struct {
	byUser map[uuid.UUID]map[*Client]bool

	publish    chan envelope
	register   chan *Client
	unregister chan *Client

	mutex  sync.RWMutex
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		byUser:     make(map[uuid.UUID]map[*Client]bool),
		publish:    make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.byUser[client.userID]
			if !ok {
				set = make(map[*Client]bool)
				h.byUser[client.userID] = set
			}
			set[client] = true
			h.mutex.Unlock()
			h.logger.Debug("ws connected", zap.String("user_id", client.userID.String()))

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if set, ok := h.byUser[client.userID]; ok && set[client] {
				delete(set, client)
				if len(set) == 0 {
					delete(h.byUser, client.userID)
				}
				close(client.send)
			}
			h.mutex.Unlock()
			h.logger.Debug("ws disconnected", zap.String("user_id", client.userID.String()))

		case env := <-h.publish:
			h.mutex.RLock()
			targets := make([]*Client, 0, 4)
			for _, userID := range env.userIDs {
				for c := range h.byUser[userID] {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- env.payload:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Publish queues a payload for every connection of the given users. Drops the
// event when the hub buffer is full rather than blocking the caller.
func (h *Hub) Publish(userIDs []uuid.UUID, payload []byte) {
	if h == nil || len(userIDs) == 0 {
		return
	}
	select {
	case h.publish <- envelope{userIDs: userIDs, payload: payload}:
	default:
		h.logger.Warn("ws publish dropped", zap.Int("buffer", cap(h.publish)))
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	n := 0
	for _, set := range h.byUser {
		n += len(set)
	}
	return n
}
