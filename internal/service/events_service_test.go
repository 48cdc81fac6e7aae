package service

import (
	"context"
	"testing"
	"time"

	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/websocket"
	"mindwell-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvalidator struct {
	keys []string
}

func (f *fakeInvalidator) Invalidate(key string) {
	f.keys = append(f.keys, key)
}

type fakeCatalogBroadcaster struct {
	events []websocket.Event
}

func (f *fakeCatalogBroadcaster) Broadcast(event websocket.Event) {
	f.events = append(f.events, event)
}

func articleEvent(eventType, slug string) events.Event {
	return events.BaseEvent{
		Type:       eventType,
		Data:       map[string]interface{}{"slug": slug},
		OccurredAt: time.Now(),
	}
}

func TestHandleArticleEventDropsStaleRewrite(t *testing.T) {
	inv := &fakeInvalidator{}
	bc := &fakeCatalogBroadcaster{}
	svc := NewEventsService(nil, inv, bc, logger.NewNoopLogger()).(*eventsService)

	err := svc.handleArticleEvent(context.Background(), articleEvent(events.TypeArticleCreated, "coping-with-grief"))

	require.NoError(t, err)
	assert.Equal(t, []string{"coping-with-grief"}, inv.keys)
	assert.Empty(t, bc.events, "creation alone is not yet searchable, no catalog refresh")
}

func TestHandleArticleEventIndexedBroadcastsCatalogUpdate(t *testing.T) {
	inv := &fakeInvalidator{}
	bc := &fakeCatalogBroadcaster{}
	svc := NewEventsService(nil, inv, bc, logger.NewNoopLogger()).(*eventsService)

	err := svc.handleArticleEvent(context.Background(), articleEvent(events.TypeArticleIndexed, "coping-with-grief"))

	require.NoError(t, err)
	require.Len(t, bc.events, 1)
	assert.Equal(t, websocket.EventCatalogUpdated, bc.events[0].Type)
	assert.Equal(t, map[string]string{"slug": "coping-with-grief"}, bc.events[0].Data)
}

func TestHandleArticleEventIgnoresPayloadWithoutSlug(t *testing.T) {
	inv := &fakeInvalidator{}
	svc := NewEventsService(nil, inv, nil, logger.NewNoopLogger()).(*eventsService)

	err := svc.handleArticleEvent(context.Background(), events.BaseEvent{Type: events.TypeArticleIndexed})

	require.NoError(t, err)
	assert.Empty(t, inv.keys)
}
