package handler

import (
	"context"
	"encoding/json"

	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/search"
	"mindwell-be/internal/service"
	internalWS "mindwell-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// LiveSearchHandler owns the websocket search channel. Each connection gets
// its own orchestrator, so debounce state never leaks between visitors.
type LiveSearchHandler struct {
	searchService service.ISearchService
	hub           *internalWS.Hub
	logger        logger.ILogger
}

func NewLiveSearchHandler(searchService service.ISearchService, hub *internalWS.Hub, log logger.ILogger) *LiveSearchHandler {
	return &LiveSearchHandler{
		searchService: searchService,
		hub:           hub,
		logger:        log,
	}
}

type inboundMessage struct {
	Type  string `json:"type"`
	Query string `json:"query"`
}

// ServeWs upgrades the connection and wires a per-connection orchestrator.
func (h *LiveSearchHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Query("session")
	if sessionID == "" {
		// Anonymous tabs still get live search, they just never sync
		// calm mode across devices.
		sessionID = uuid.NewString()
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("LiveSearchHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})

		var orchestrator *search.Orchestrator

		onMessage := func(client *internalWS.Client, data []byte) {
			var msg inboundMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				h.logger.Warn("LiveSearchHandler", "Dropping malformed frame", map[string]interface{}{
					"session_id": sessionID,
					"error":      err.Error(),
				})
				return
			}
			if msg.Type != "search" {
				return
			}
			if orchestrator == nil {
				orchestrator = h.newOrchestrator(sessionID, client)
			}
			orchestrator.Update(msg.Query)
		}

		onClose := func(_ *internalWS.Client) {
			if orchestrator != nil {
				orchestrator.Close()
			}
		}

		internalWS.ServeWs(h.hub, conn, sessionID, onMessage, onClose)
		h.logger.Info("LiveSearchHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
	})(c)
}

func (h *LiveSearchHandler) newOrchestrator(sessionID string, client *internalWS.Client) *search.Orchestrator {
	dispatch := func(query string) {
		res, err := h.searchService.Search(context.Background(), sessionID, query)
		if err != nil {
			h.logger.Error("LiveSearchHandler", "Search dispatch failed", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			return
		}
		h.push(client, internalWS.Event{Type: internalWS.EventSearchResults, Data: res})
	}

	clear := func() {
		h.push(client, internalWS.Event{Type: internalWS.EventSearchIdle})
	}

	return search.NewOrchestrator(dispatch, search.WithClear(clear))
}

func (h *LiveSearchHandler) push(client *internalWS.Client, event internalWS.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	// A dispatch can outlive its connection: the index call takes up to a
	// few seconds and the visitor may close the tab meanwhile. TrySend
	// drops the result once the hub has shut the client down.
	if !client.TrySend(data) {
		h.logger.Warn("LiveSearchHandler", "Client gone or congested, dropping event", map[string]interface{}{
			"session_id": client.SessionID,
		})
	}
}

// RegisterRoutes registers the websocket endpoint.
func (h *LiveSearchHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
