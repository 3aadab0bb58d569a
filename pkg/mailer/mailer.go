package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	gomail "gopkg.in/gomail.v2"

	"github.com/mateusfigmelo/msc-backend/pkg/config"
)

// Message is one outbound notification: a named HTML template rendered with
// Data and sent to a single recipient.
type Message struct {
	Template string
	To       string
	Subject  string
	Data     map[string]interface{}
}

// Mailer dispatches notification mails. Failures are reported to the caller
// and never retried here; the caller decides how to surface them.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer sends mail over SMTP, rendering templates from a directory on
// disk.
type SMTPMailer struct {
	dialer      *gomail.Dialer
	from        string
	templateDir string
}

// NewSMTPMailer builds a mailer from configuration.
func NewSMTPMailer(cfg *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer:      gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:        cfg.From,
		templateDir: cfg.TemplateDir,
	}
}

// Send renders the template and dispatches the mail. The connection is dialed
// per message; the submission volume of a student club does not need pooling.
func (m *SMTPMailer) Send(msg Message) error {
	body, err := m.render(msg.Template, msg.Data)
	if err != nil {
		return fmt.Errorf("render mail template %s: %w", msg.Template, err)
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

func (m *SMTPMailer) render(name string, data map[string]interface{}) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(m.templateDir, name))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
