package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendContactMessage(fromName, fromEmail, subject, message string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	contactTo   string
}

func NewEmailService(host string, port int, username, password, senderEmail, contactTo string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		contactTo:   contactTo,
	}
}

// SendContactMessage forwards a contact-form submission to the site owner.
// Reply-To carries the visitor's address so replies go straight back.
func (s *emailService) SendContactMessage(fromName, fromEmail, subject, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.contactTo)
	m.SetHeader("Reply-To", fromEmail)
	m.SetHeader("Subject", fmt.Sprintf("[Contact Form] %s", subject))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New message from your portfolio site</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p><strong>Subject:</strong> %s</p>
			<hr>
			<p>%s</p>
		</div>
	`, fromName, fromEmail, subject, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	return nil
}
