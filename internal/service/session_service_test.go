package service

import (
	"context"
	"testing"
	"time"

	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/repository/memory"
	"mindwell-be/internal/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBroadcaster struct {
	events []websocket.Event
	ids    []string
}

func (f *fakeBroadcaster) Send(sessionID string, event websocket.Event) {
	f.ids = append(f.ids, sessionID)
	f.events = append(f.events, event)
}

func newSessionFixture() (ISessionService, *fakeBroadcaster) {
	repo := memory.NewSessionRepository(time.Hour)
	broadcaster := &fakeBroadcaster{}
	return NewSessionService(repo, broadcaster, logger.NewNoopLogger()), broadcaster
}

func TestSessionStartAndShow(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()

	started, err := svc.Start(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, started.SessionId)
	assert.False(t, started.Calm)

	shown, err := svc.Show(ctx, started.SessionId)
	require.NoError(t, err)
	assert.Equal(t, started.SessionId, shown.SessionId)
}

func TestSessionShowUnknownIs404(t *testing.T) {
	svc, _ := newSessionFixture()

	_, err := svc.Show(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSetCalmPersistsAndBroadcasts(t *testing.T) {
	svc, broadcaster := newSessionFixture()
	ctx := context.Background()

	started, err := svc.Start(ctx)
	require.NoError(t, err)

	res, err := svc.SetCalm(ctx, started.SessionId, true)
	require.NoError(t, err)
	assert.True(t, res.Calm)
	assert.True(t, svc.IsCalm(ctx, started.SessionId))

	require.Len(t, broadcaster.events, 1)
	assert.Equal(t, websocket.EventCalmMode, broadcaster.events[0].Type)
	assert.Equal(t, started.SessionId, broadcaster.ids[0])

	// Calm off again
	res, err = svc.SetCalm(ctx, started.SessionId, false)
	require.NoError(t, err)
	assert.False(t, res.Calm)
	assert.False(t, svc.IsCalm(ctx, started.SessionId))
}

func TestSetCalmRecreatesExpiredSession(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()

	// A session id the store has never seen (or has expired).
	res, err := svc.SetCalm(ctx, "expired-session", true)
	require.NoError(t, err)
	assert.True(t, res.Calm)
	assert.True(t, svc.IsCalm(ctx, "expired-session"))
}

func TestIsCalmDefaultsFalse(t *testing.T) {
	svc, _ := newSessionFixture()
	assert.False(t, svc.IsCalm(context.Background(), ""))
	assert.False(t, svc.IsCalm(context.Background(), "unknown"))
}

func TestRememberQuery(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()

	started, err := svc.Start(ctx)
	require.NoError(t, err)

	svc.RememberQuery(ctx, started.SessionId, "breathing")
	shown, err := svc.Show(ctx, started.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "breathing", shown.LastQuery)
}
