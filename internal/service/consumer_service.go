package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/pkg/cms"
	"mindwell-be/pkg/events"
	pktNats "mindwell-be/pkg/nats"
	"mindwell-be/pkg/searchindex"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const indexExcerptLimit = 250

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	cmsClient      ContentStore
	index          SearchIndexStore
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	cmsClient ContentStore,
	index SearchIndexStore,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		cmsClient:      cmsClient,
		index:          index,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIndexArticleMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal index message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("ConsumerService", "Indexing article", map[string]interface{}{
		"story_id": payload.StoryId,
		"slug":     payload.Slug,
	})

	story, err := cs.cmsClient.FetchStoryBySlug(ctx, payload.Slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			cs.logger.Warn("ConsumerService", "Story vanished before indexing", map[string]interface{}{
				"slug": payload.Slug,
			})
			msg.Ack() // Deleted? Ack.
			return
		}
		cs.logger.Error("ConsumerService", "Failed to fetch story", map[string]interface{}{
			"slug":  payload.Slug,
			"error": err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	record := toIndexRecord(story)
	if err := cs.index.SaveObject(ctx, record); err != nil {
		cs.logger.Error("ConsumerService", "Failed to save index record", map[string]interface{}{
			"slug":  payload.Slug,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	if cs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeArticleIndexed,
			Data: map[string]interface{}{
				"story_id": story.ID,
				"slug":     story.Slug,
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to publish ARTICLE_INDEXED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}

func toIndexRecord(story *cms.Story) searchindex.Record {
	var contents []string
	for _, block := range story.Blocks() {
		if c := strings.TrimSpace(block.Content); c != "" {
			contents = append(contents, c)
		}
	}
	body := strings.Join(contents, "\n\n")

	return searchindex.Record{
		ObjectID:    strconv.FormatInt(story.ID, 10),
		Title:       story.Title(),
		Content:     body,
		Tags:        story.Tags(),
		Type:        componentToType(story.Content.Component),
		Slug:        story.Slug,
		Excerpt:     cms.Truncate(body, indexExcerptLimit),
		ImageURL:    story.ImageURL(),
		PublishedAt: story.PublishedAt,
	}
}
