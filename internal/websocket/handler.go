package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs handles websocket requests from the peer. onMessage and onClose
// are wired by the caller before the pumps start, so live-search state can
// live per connection.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID string, onMessage func(*Client, []byte), onClose func(*Client)) {
	client := &Client{Hub: hub, Conn: c, SessionID: sessionID, Send: make(chan []byte, 256)}
	if onMessage != nil {
		client.OnMessage = func(data []byte) { onMessage(client, data) }
	}
	if onClose != nil {
		client.OnClose = func() { onClose(client) }
	}
	client.Hub.Register(client)

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
