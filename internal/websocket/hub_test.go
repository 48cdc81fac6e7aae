package websocket

import (
	"testing"
	"time"

	"mindwell-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	h := NewHub(nil, logger.NewNoopLogger())
	go h.Run()
	return h
}

func newTestClient(h *Hub, sessionID string, buffer int) *Client {
	return &Client{Hub: h, SessionID: sessionID, Send: make(chan []byte, buffer)}
}

func waitRegistered(t *testing.T, h *Hub, sessionID string, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(h.snapshotSession(sessionID)) == n
	}, time.Second, 5*time.Millisecond)
}

func TestTrySendAfterCloseReportsFalse(t *testing.T) {
	c := newTestClient(newTestHub(), "s1", 4)

	assert.True(t, c.TrySend([]byte("hello")))

	c.closeSend()
	assert.False(t, c.TrySend([]byte("late")), "closed client must drop, not panic")

	// a second close is a no-op
	c.closeSend()
}

func TestSendAfterUnregisterDropsMessage(t *testing.T) {
	h := newTestHub()
	c := newTestClient(h, "s1", 4)

	h.Register(c)
	waitRegistered(t, h, "s1", 1)

	h.Unregister(c)
	require.Eventually(t, func() bool {
		return !c.TrySend([]byte("probe-closed"))
	}, time.Second, 5*time.Millisecond, "unregister must close the client")

	// A search dispatch finishing after the tab closed lands here. It must
	// drop silently instead of writing to a closed channel.
	h.Send("s1", Event{Type: EventSearchResults, Data: "late results"})
	h.Broadcast(Event{Type: EventCatalogUpdated})
}

func TestSendFullBufferEvictsClient(t *testing.T) {
	h := newTestHub()
	c := newTestClient(h, "s1", 1)

	h.Register(c)
	waitRegistered(t, h, "s1", 1)

	require.True(t, c.TrySend([]byte("fills the buffer")))

	h.Send("s1", Event{Type: EventCalmMode, Data: map[string]bool{"calm": true}})

	require.Eventually(t, func() bool {
		return len(h.snapshotSession("s1")) == 0
	}, time.Second, 5*time.Millisecond, "stalled client must be unregistered")
	assert.False(t, c.TrySend([]byte("after eviction")))
}

func TestSendReachesEveryTabOfSession(t *testing.T) {
	h := newTestHub()
	tab1 := newTestClient(h, "s1", 4)
	tab2 := newTestClient(h, "s1", 4)
	other := newTestClient(h, "s2", 4)

	h.Register(tab1)
	h.Register(tab2)
	h.Register(other)
	waitRegistered(t, h, "s1", 2)
	waitRegistered(t, h, "s2", 1)

	h.Send("s1", Event{Type: EventCalmMode, Data: map[string]bool{"calm": true}})

	assert.Len(t, tab1.Send, 1)
	assert.Len(t, tab2.Send, 1)
	assert.Len(t, other.Send, 0, "other sessions must not receive the event")
}

func TestBroadcastReachesAllSessions(t *testing.T) {
	h := newTestHub()
	a := newTestClient(h, "s1", 4)
	b := newTestClient(h, "s2", 4)

	h.Register(a)
	h.Register(b)
	waitRegistered(t, h, "s1", 1)
	waitRegistered(t, h, "s2", 1)

	h.Broadcast(Event{Type: EventCatalogUpdated, Data: map[string]string{"slug": "new-article"}})

	assert.Len(t, a.Send, 1)
	assert.Len(t, b.Send, 1)
}
