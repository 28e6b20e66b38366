// Package email sends loan reminder mail over SMTP.
package email

import (
	"fmt"
	"net/smtp"

	"fintrack/internal/config"
	"fintrack/internal/models"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{cfg: cfg, logger: logger}
}

// SendLoanReminder mails the loan owner that a pending loan's reminder date
// has arrived.
func (s *Sender) SendLoanReminder(to, name string, loan *models.Loan) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Loan reminder: %s", loan.PersonName)
	e.Text = []byte(reminderBody(name, loan))

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func reminderBody(name string, loan *models.Loan) string {
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"This is a reminder about the %.2f you lent to %s on %s.\n"+
			"The loan is still marked as pending.\n",
		name, loan.Amount, loan.PersonName, loan.Date.Format("2006-01-02"),
	)
	if loan.Description != "" {
		body += fmt.Sprintf("\nNote: %s\n", loan.Description)
	}
	body += "\nBest regards,\nFintrack"
	return body
}
