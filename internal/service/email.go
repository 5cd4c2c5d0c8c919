package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"propdesk-backend/internal/config"
	"propdesk-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(cfg config.EmailConfig) EmailService {
	return &sendGridEmailService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *sendGridEmailService) send(to, toName, subject, plainText, htmlContent string) error {
	if s.apiKey == "" {
		// No key configured, common in dev. Log instead of failing the flow.
		logger.Info("Email sending skipped, no API key configured", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error {
	subject := fmt.Sprintf("Your account has been %s", status)
	plainText := fmt.Sprintf("Hi %s, your account status changed to %s.", name, status)
	if reason != "" {
		plainText += " Reason: " + reason
	}
	htmlContent := fmt.Sprintf("<p>Hi %s,</p><p>Your account status changed to <strong>%s</strong>.</p>", name, status)
	if reason != "" {
		htmlContent += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}
	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendTaskAssignmentNotification(ctx context.Context, email, partnerName, taskTitle, propertyName, date string) error {
	subject := fmt.Sprintf("New task assigned: %s", taskTitle)
	plainText := fmt.Sprintf("Hi %s, you were assigned %q at %s, scheduled for %s.", partnerName, taskTitle, propertyName, date)
	htmlContent := fmt.Sprintf(
		"<p>Hi %s,</p><p>You were assigned <strong>%s</strong> at %s, scheduled for %s.</p>",
		partnerName, taskTitle, propertyName, date)
	return s.send(email, partnerName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendTaskCompletionNotification(ctx context.Context, email, taskTitle string, billableCents int32) error {
	subject := fmt.Sprintf("Task completed: %s", taskTitle)
	amount := fmt.Sprintf("%.2f", float64(billableCents)/100)
	plainText := fmt.Sprintf("Task %q is complete. Billed amount: %s.", taskTitle, amount)
	htmlContent := fmt.Sprintf("<p>Task <strong>%s</strong> is complete.</p><p>Billed amount: %s</p>", taskTitle, amount)
	return s.send(email, "", subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendRenewalReminder(ctx context.Context, email, ownerName, propertyName, tenantName, leaseEnd string, daysLeft int) error {
	subject := fmt.Sprintf("Lease expiring soon: %s", propertyName)
	plainText := fmt.Sprintf(
		"Hi %s, the lease for %s at %s ends on %s (%d days left). Time to start the renewal conversation.",
		ownerName, tenantName, propertyName, leaseEnd, daysLeft)
	htmlContent := fmt.Sprintf(
		"<p>Hi %s,</p><p>The lease for <strong>%s</strong> at <strong>%s</strong> ends on %s (%d days left).</p>",
		ownerName, tenantName, propertyName, leaseEnd, daysLeft)
	return s.send(email, ownerName, subject, plainText, htmlContent)
}
