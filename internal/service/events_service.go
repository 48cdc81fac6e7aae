package service

import (
	"context"

	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/websocket"
	"mindwell-be/pkg/events"
	pktNats "mindwell-be/pkg/nats"
)

// CacheInvalidator drops a cached calm rewrite so the next calm view
// recomputes it from fresh content.
type CacheInvalidator interface {
	Invalidate(key string)
}

// CatalogBroadcaster pushes an event to every connected tab, on every
// instance.
type CatalogBroadcaster interface {
	Broadcast(event websocket.Event)
}

type IEventsService interface {
	Start() error
}

// eventsService reacts to article lifecycle events from sibling instances.
// When an article changes anywhere in the cluster, its cached calm rewrite
// here is stale and gets dropped; once the article is searchable, open tabs
// are told the catalog changed so listings can refresh.
type eventsService struct {
	subscriber  *pktNats.Subscriber
	rewriter    CacheInvalidator
	broadcaster CatalogBroadcaster
	logger      logger.ILogger
}

func NewEventsService(subscriber *pktNats.Subscriber, rewriter CacheInvalidator, broadcaster CatalogBroadcaster, log logger.ILogger) IEventsService {
	return &eventsService{
		subscriber:  subscriber,
		rewriter:    rewriter,
		broadcaster: broadcaster,
		logger:      log,
	}
}

func (s *eventsService) Start() error {
	return s.subscriber.Subscribe("articles.>", "mindwell-calm-cache", s.handleArticleEvent)
}

func (s *eventsService) handleArticleEvent(_ context.Context, event events.Event) error {
	slug, _ := event.Payload()["slug"].(string)
	if slug == "" {
		return nil
	}
	s.rewriter.Invalidate(slug)
	s.logger.Info("EventsService", "Dropped stale calm rewrite", map[string]interface{}{
		"slug": slug,
		"type": event.EventType(),
	})

	if event.EventType() == events.TypeArticleIndexed && s.broadcaster != nil {
		s.broadcaster.Broadcast(websocket.Event{
			Type: websocket.EventCatalogUpdated,
			Data: map[string]string{"slug": slug},
		})
	}
	return nil
}
