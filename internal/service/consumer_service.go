package service

import (
	"context"

	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
	"github.com/DhairyaS450/personal-website-sub000/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// CacheInvalidator drops any cached copy of the document.
type CacheInvalidator interface {
	Invalidate()
}

// contentEventConsumer reacts to content.updated events: it invalidates the
// read cache and pushes a refresh notice to connected websocket clients.
type contentEventConsumer struct {
	subscriber  message.Subscriber
	invalidator CacheInvalidator
	hub         *websocket.Hub
	log         logger.ILogger
}

func NewContentEventConsumer(
	subscriber message.Subscriber,
	invalidator CacheInvalidator,
	hub *websocket.Hub,
	log logger.ILogger,
) IConsumerService {
	return &contentEventConsumer{
		subscriber:  subscriber,
		invalidator: invalidator,
		hub:         hub,
		log:         log,
	}
}

func (c *contentEventConsumer) Consume(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, ContentUpdatedTopic)
	if err != nil {
		return err
	}

	for msg := range messages {
		if c.invalidator != nil {
			c.invalidator.Invalidate()
		}
		if c.hub != nil {
			c.hub.BroadcastContentUpdated(msg.Payload)
		}
		c.log.Debug("ContentEventConsumer", "Handled content.updated", nil)
		msg.Ack()
	}
	return nil
}
