package mailer

import (
	"errors"
	"fmt"
	"html"

	"portfolio-be/internal/dto"

	"gopkg.in/gomail.v2"
)

var ErrMailerDisabled = errors.New("smtp is not configured")

type IEmailService interface {
	Enabled() bool
	SendContactCopy(toEmail string, req *dto.ContactRequest) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

// NewEmailService returns a sender that is disabled when host is empty.
func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	var d *gomail.Dialer
	if host != "" {
		d = gomail.NewDialer(host, port, username, password)
	}

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) Enabled() bool {
	return s.dialer != nil
}

func (s *emailService) SendContactCopy(toEmail string, req *dto.ContactRequest) error {
	if !s.Enabled() {
		return ErrMailerDisabled
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetAddressHeader("Reply-To", req.Email, req.Name)
	m.SetHeader("Subject", req.Subject)
	m.SetBody("text/plain", ContactBody(req))
	m.AddAlternative("text/html", fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p style="white-space: pre-wrap;">%s</p>
		</div>
	`, html.EscapeString(req.Subject), html.EscapeString(req.Name), html.EscapeString(req.Email), html.EscapeString(req.Message)))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact copy: %w", err)
	}
	return nil
}

// ContactBody is the plain text rendering shared by the SMTP copy and the
// mailto fallback.
func ContactBody(req *dto.ContactRequest) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", req.Name, req.Email, req.Message)
}
