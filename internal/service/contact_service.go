package service

import (
	"context"

	"github.com/DhairyaS450/personal-website-sub000/internal/dto"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/mailer"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
}

type contactService struct {
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewContactService(emailService mailer.IEmailService, log logger.ILogger) IContactService {
	return &contactService{
		emailService: emailService,
		log:          log,
	}
}

// Submit accepts the submission and dispatches mail in the background; SMTP
// latency must not block the visitor.
func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) error {
	s.log.Info("ContactService", "Contact message received", map[string]interface{}{
		"from":    req.Email,
		"subject": req.Subject,
	})

	go func(r dto.ContactRequest) {
		if err := s.emailService.SendContactMessage(r.Name, r.Email, r.Subject, r.Message); err != nil {
			s.log.Error("ContactService", "Failed to send contact email", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}(*req)

	return nil
}
