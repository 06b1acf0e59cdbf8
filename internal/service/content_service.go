package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
	"github.com/DhairyaS450/personal-website-sub000/internal/repository/contract"
	"github.com/DhairyaS450/personal-website-sub000/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// ContentUpdatedTopic is the in-process topic carrying replace notifications.
const ContentUpdatedTopic = "content.updated"

type IContentService interface {
	Get(ctx context.Context) (*entity.WebsiteContent, time.Time, error)
	Replace(ctx context.Context, doc *entity.WebsiteContent) error
}

// NatsPublisher is the optional cross-instance mirror for content events.
type NatsPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type contentService struct {
	repo      contract.ContentRepository
	publisher message.Publisher
	natsPub   NatsPublisher
	log       logger.ILogger
}

func NewContentService(
	repo contract.ContentRepository,
	publisher message.Publisher,
	natsPub NatsPublisher,
	log logger.ILogger,
) IContentService {
	return &contentService{
		repo:      repo,
		publisher: publisher,
		natsPub:   natsPub,
		log:       log,
	}
}

func (s *contentService) Get(ctx context.Context) (*entity.WebsiteContent, time.Time, error) {
	return s.repo.Fetch(ctx)
}

// Replace upserts the whole document. Event delivery is auxiliary: a failed
// publish is logged, never surfaced to the editor.
func (s *contentService) Replace(ctx context.Context, doc *entity.WebsiteContent) error {
	updatedAt, err := s.repo.Replace(ctx, doc)
	if err != nil {
		return err
	}

	evt := events.ContentUpdated(updatedAt)
	payload, err := json.Marshal(evt.Payload())
	if err == nil && s.publisher != nil {
		msg := message.NewMessage(uuid.NewString(), payload)
		if err := s.publisher.Publish(ContentUpdatedTopic, msg); err != nil {
			s.log.Warn("ContentService", "Failed to publish content.updated", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, evt); err != nil {
			s.log.Warn("ContentService", "Failed to mirror content.updated to NATS", map[string]interface{}{"error": err.Error()})
		}
	}

	s.log.Info("ContentService", "Content replaced", map[string]interface{}{"updated_at": updatedAt})
	return nil
}
