package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// EmailService delivers transactional mail through Resend. Outside
// production (or without an API key) it logs instead of sending, so local
// registration flows work without credentials.
type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
}

func NewEmailService(apiKey, fromEmail string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
	}
}

// SendVerificationOTP mails the registration passcode to the new account.
func (s *EmailService) SendVerificationOTP(ctx context.Context, email, otp string) error {
	subject := "BookVerse Email Verification"
	body := fmt.Sprintf("<p>Your OTP for verification is: <strong>%s</strong></p>", otp)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "verification_otp", "to", email, "otp", otp)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Html:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "verification_otp", "to", email)
	}
	return err
}
