package handler

import (
	"encoding/json"
	"testing"
	"time"

	"mindwell-be/internal/pkg/logger"
	internalWS "mindwell-be/internal/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHubAndClient(sessionID string) (*internalWS.Hub, *internalWS.Client) {
	hub := internalWS.NewHub(nil, logger.NewNoopLogger())
	go hub.Run()
	client := &internalWS.Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte, 8)}
	return hub, client
}

func waitClosed(t *testing.T, client *internalWS.Client) {
	t.Helper()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-client.Send:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond, "client Send channel should be closed")
}

func TestPushDeliversEvent(t *testing.T) {
	_, client := newTestHubAndClient("s1")
	h := NewLiveSearchHandler(nil, nil, logger.NewNoopLogger())

	h.push(client, internalWS.Event{Type: internalWS.EventSearchIdle})

	require.Len(t, client.Send, 1)
	var evt internalWS.Event
	require.NoError(t, json.Unmarshal(<-client.Send, &evt))
	assert.Equal(t, internalWS.EventSearchIdle, evt.Type)
}

// A visitor can close the tab while a dispatched search is still waiting on
// the index. The connection unregisters first; when the result arrives the
// handler still holds the client reference and must drop the event instead
// of writing to the closed channel.
func TestPushAfterDisconnectDropsEvent(t *testing.T) {
	hub, client := newTestHubAndClient("s1")
	h := NewLiveSearchHandler(nil, hub, logger.NewNoopLogger())

	hub.Register(client)
	hub.Unregister(client)
	waitClosed(t, client)

	h.push(client, internalWS.Event{Type: internalWS.EventSearchResults, Data: "stale results"})
	h.push(client, internalWS.Event{Type: internalWS.EventSearchIdle})
}
