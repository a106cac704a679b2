package email

import (
	"context"
	"fmt"
	"net/smtp"

	"portfolio-backend/pkg/logger"
)

// ContactNotificationData carries the fields rendered into the
// contact-form notification email sent to the site owner.
type ContactNotificationData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type Service interface {
	SendContactNotification(ctx context.Context, data ContactNotificationData) error
}

type smtpService struct {
	smtpAddr   string
	smtpFrom   string
	adminEmail string
}

func NewSMTPService(host, port, from, adminEmail string) Service {
	return &smtpService{
		smtpAddr:   host + ":" + port,
		smtpFrom:   from,
		adminEmail: adminEmail,
	}
}

func (s *smtpService) SendContactNotification(ctx context.Context, data ContactNotificationData) error {
	if s.adminEmail == "" {
		logger.Warn("admin email not configured, skipping contact notification", nil)
		return nil
	}

	subject := fmt.Sprintf("New contact submission from %s", data.Name)
	body := fmt.Sprintf(`You have a new contact form submission.

From:    %s <%s>
Subject: %s

%s`, data.Name, data.Email, data.Subject, data.Message)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, s.adminEmail, data.Email, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{s.adminEmail}, msg); err != nil {
		logger.Info("Failed to send contact notification", map[string]interface{}{
			"error":     err.Error(),
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
