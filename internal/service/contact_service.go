package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio-be/internal/config"
	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/pkg/mailer"
)

const ContactThanksMessage = "Thank you for reaching out. I'll get back to you soon."

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type contactService struct {
	endpoint   string
	ownerEmail string
	client     *http.Client
	mailer     mailer.IEmailService
	inbox      logger.ILogger
	logger     logger.ILogger
}

func NewContactService(cfg config.ContactConfig, client *http.Client, emailService mailer.IEmailService, inbox, log logger.ILogger) IContactService {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &contactService{
		endpoint:   cfg.FormEndpoint,
		ownerEmail: cfg.OwnerEmail,
		client:     client,
		mailer:     emailService,
		inbox:      inbox,
		logger:     log,
	}
}

// Submit makes one delivery attempt to the form endpoint. Failure is not an
// error for the caller: the response carries a mailto link instead.
func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	s.inbox.Info("Contact", "Contact form submitted", map[string]interface{}{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
	})

	err := s.forward(ctx, req)
	if err == nil {
		return &dto.ContactResponse{Delivered: true, Message: ContactThanksMessage}, nil
	}
	s.logger.Warn("Contact", "Form endpoint delivery failed", map[string]interface{}{"error": err.Error()})

	if s.mailer != nil && s.mailer.Enabled() {
		if mailErr := s.mailer.SendContactCopy(s.ownerEmail, req); mailErr == nil {
			return &dto.ContactResponse{Delivered: true, Message: ContactThanksMessage}, nil
		} else {
			s.logger.Error("Contact", "SMTP copy failed", map[string]interface{}{"error": mailErr.Error()})
		}
	}

	return &dto.ContactResponse{
		Delivered: false,
		MailtoURL: MailtoURL(s.ownerEmail, req),
		Message:   ContactThanksMessage,
	}, nil
}

func (s *contactService) forward(ctx context.Context, req *dto.ContactRequest) error {
	payload, err := json.Marshal(map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"subject":  req.Subject,
		"message":  req.Message,
		"_replyto": req.Email,
	})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: form endpoint returned %d", ErrRemoteUnavailable, resp.StatusCode)
	}
	return nil
}

// MailtoURL pre-fills a mail to the site owner with the submitted fields.
func MailtoURL(ownerEmail string, req *dto.ContactRequest) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		ownerEmail,
		encodeComponent(req.Subject),
		encodeComponent(mailer.ContactBody(req)),
	)
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
