package service

import (
	"context"
	"encoding/json"
	"time"

	"portfolio-be/internal/contentstore"
	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

const ContentSavedEventType = "CONTENT_SAVED"

// EventPublisher forwards domain events to an external bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// ContentEventPublisher announces collection writes on the in-process topic
// and, when a bus is configured, as CONTENT_SAVED events.
type ContentEventPublisher struct {
	publisher IPublisherService
	bus       EventPublisher
	logger    logger.ILogger
	now       func() time.Time
}

func NewContentEventPublisher(publisher IPublisherService, bus EventPublisher, log logger.ILogger) *ContentEventPublisher {
	return &ContentEventPublisher{
		publisher: publisher,
		bus:       bus,
		logger:    log,
		now:       time.Now,
	}
}

func (p *ContentEventPublisher) CollectionSaved(ctx context.Context, key contentstore.Key, size int) {
	msg := dto.ContentSavedMessage{
		Key:     string(key),
		Size:    size,
		SavedAt: p.now().UTC(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		p.logger.Error("ContentEvents", "Failed to encode content event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := p.publisher.Publish(ctx, payload); err != nil {
		p.logger.Error("ContentEvents", "Failed to publish content event", map[string]interface{}{
			"key":   msg.Key,
			"error": err.Error(),
		})
	}

	if p.bus == nil {
		return
	}
	evt := events.BaseEvent{
		Type: ContentSavedEventType,
		Data: map[string]interface{}{
			"key":  msg.Key,
			"size": msg.Size,
		},
		OccurredAt: msg.SavedAt,
	}
	if err := p.bus.Publish(ctx, evt); err != nil {
		p.logger.Warn("ContentEvents", "Failed to forward content event", map[string]interface{}{"error": err.Error()})
	}
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// cacheInvalidator drops cached public pages whenever content is saved.
type cacheInvalidator struct {
	subscriber message.Subscriber
	topicName  string
	portfolio  IPortfolioService
	logger     logger.ILogger
}

func NewCacheInvalidator(subscriber message.Subscriber, topicName string, portfolio IPortfolioService, log logger.ILogger) IConsumerService {
	return &cacheInvalidator{
		subscriber: subscriber,
		topicName:  topicName,
		portfolio:  portfolio,
		logger:     log,
	}
}

func (ci *cacheInvalidator) Consume(ctx context.Context) error {
	messages, err := ci.subscriber.Subscribe(ctx, ci.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ci.processMessage(msg)
		}
	}()

	return nil
}

func (ci *cacheInvalidator) processMessage(msg *message.Message) {
	var payload dto.ContentSavedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ci.logger.Warn("ContentEvents", "Dropping malformed content event", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	ci.portfolio.Invalidate(contentstore.Key(payload.Key))
	ci.logger.Debug("ContentEvents", "Portfolio cache invalidated", map[string]interface{}{
		"key":  payload.Key,
		"size": payload.Size,
	})
	msg.Ack()
}
