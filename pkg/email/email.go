// Package email sends plain notification mail through mailgun.
package email

import (
	"context"
	"errors"

	"github.com/mailgun/mailgun-go/v4"
)

var ErrEmptyEmail = errors.New("empty email not allowed")

type EmailSvcOpts struct {
	Domain string `json:"domain"`
	ApiKey string `json:"apiKey"`
}

type Email struct {
	Subject string
	Text    string
	From    string
	To      []string
}

type EmailService struct {
	client mailgun.MailgunImpl
}

func NewEmailService(ops *EmailSvcOpts) *EmailService {
	return &EmailService{
		client: *mailgun.NewMailgun(ops.Domain, ops.ApiKey),
	}
}

func NewEmail(subject, text, from string, to []string) *Email {
	return &Email{
		Subject: subject,
		Text:    text,
		From:    from,
		To:      to,
	}
}

func (s *EmailService) Send(ctx context.Context, email *Email) error {
	if email == nil || email.Text == "" || len(email.To) == 0 {
		return ErrEmptyEmail
	}
	m := s.client.NewMessage(email.From, email.Subject, email.Text, email.To...)

	_, _, err := s.client.Send(ctx, m)
	return err
}
