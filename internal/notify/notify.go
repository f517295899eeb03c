// Package notify sends task reminder and completion emails.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"taskman/internal/task"
)

// Sender delivers a single message. Implemented by SMTPSender; tests use a fake.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail through a plain-auth SMTP server.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Send delivers the message via SMTP.
func (s *SMTPSender) Send(to, subject, body string) error {
	if err := ValidateAddress(to); err != nil {
		return err
	}

	from := s.From
	if from == "" {
		from = s.Username
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", from, to, subject, body)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}
	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// ValidateAddress checks that addr looks like user@domain.tld.
func ValidateAddress(addr string) error {
	parts := strings.Split(addr, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid email address: %q", addr)
	}
	domainParts := strings.Split(parts[1], ".")
	last := domainParts[len(domainParts)-1]
	if len(domainParts) < 2 || domainParts[0] == "" || len(last) < 2 {
		return fmt.Errorf("invalid email address: %q", addr)
	}
	return nil
}

// Notifier formats and sends task notifications.
type Notifier struct {
	sender Sender
}

// NewNotifier creates a Notifier using the given sender.
func NewNotifier(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// SendReminder emails a reminder for the task with its due time.
func (n *Notifier) SendReminder(to string, t *task.Task, due time.Time) error {
	if err := ValidateAddress(to); err != nil {
		return err
	}

	subject := fmt.Sprintf("Reminder: %s", t.Title)
	body := fmt.Sprintf(
		"This is a reminder for the task: %s\nPriority: %s\nDue: %s\n",
		t.Title, t.Priority, due.Format("2006-01-02 15:04"),
	)
	return n.sender.Send(to, subject, body)
}

// SendCompletion emails a completion notification for the task.
func (n *Notifier) SendCompletion(to string, t *task.Task) error {
	if err := ValidateAddress(to); err != nil {
		return err
	}

	subject := fmt.Sprintf("Task completed: %s", t.Title)
	body := fmt.Sprintf("The task %q has been marked as done.\n", t.Title)
	return n.sender.Send(to, subject, body)
}
