package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"mindwell-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Event is the envelope every hub message travels in.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const (
	EventCalmMode       = "calm_mode"
	EventSearchResults  = "search_results"
	EventSearchIdle     = "search_idle"
	EventCatalogUpdated = "catalog_updated"
)

type Hub struct {
	// Registered clients map: SessionID -> List of Clients (multi-tab)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						// Remove from slice
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						client.closeSend()
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register attaches a client to its session's fan-out list.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister detaches a client and closes its Send channel. Safe to call
// more than once for the same client.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast sends an event to ALL connected clients, e.g. when the article
// catalog changes and every open tab should refresh its listing.
func (h *Hub) Broadcast(event Event) {
	data, _ := json.Marshal(event)

	h.deliver(h.snapshotAll(), data)

	// Publish to Redis for other instances
	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_session_id": "*", // Wildcard for broadcast
			"message":           data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// Send delivers an event to every tab of one session. Other instances pick
// it up over redis so a calm toggle reaches tabs connected elsewhere.
func (h *Hub) Send(sessionID string, event Event) {
	data, _ := json.Marshal(event)

	h.deliver(h.snapshotSession(sessionID), data)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_session_id": sessionID,
			"message":           data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// snapshotAll copies every registered client so delivery never holds the map
// lock while touching client channels.
func (h *Hub) snapshotAll() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []*Client
	for _, clients := range h.clients {
		out = append(out, clients...)
	}
	return out
}

func (h *Hub) snapshotSession(sessionID string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]*Client(nil), h.clients[sessionID]...)
}

// deliver fans data out to clients. A client whose buffer is full gets
// unregistered; an already-closed client just drops the message. Run owns
// the only close of client.Send, so delivery racing a disconnect is safe.
func (h *Hub) deliver(clients []*Client, data []byte) {
	var stalled []*Client
	for _, client := range clients {
		if !client.TrySend(data) {
			stalled = append(stalled, client)
		}
	}
	for _, client := range stalled {
		h.logger.Warn("Hub", "Client Send buffer full or closed, dropping message", map[string]interface{}{"session_id": client.SessionID})
		h.unregister <- client
	}
}

func (h *Hub) subscribeToRedis() {
	// All instances subscribe to "cluster_events". When a message arrives,
	// deliver it to the target session if it has clients here.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetSessionID == "*" {
			h.deliver(h.snapshotAll(), payload.Message)
			continue
		}

		h.deliver(h.snapshotSession(payload.TargetSessionID), payload.Message)
	}
}
