package services

import (
	"fmt"
	"log"

	"github.com/autohaus/autohaus/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends notification mails for newly created records. Sending is
// best effort: failures are logged, never surfaced to the caller.
type Mailer struct {
	enabled bool
	dialer  *gomail.Dialer
	from    string
	to      string
}

// NewMailer builds a Mailer from the configuration. With mail disabled
// the returned Mailer is a no-op.
func NewMailer(cfg *config.Config) *Mailer {
	if !cfg.MailEnabled {
		return &Mailer{}
	}
	return &Mailer{
		enabled: true,
		dialer:  gomail.NewDialer(cfg.MailHost, cfg.MailPort, "", ""),
		from:    cfg.MailFrom,
		to:      cfg.MailTo,
	}
}

// SendNeuesAuto dispatches the "new record" notification in the
// background.
func (m *Mailer) SendNeuesAuto(id uint64, modell string) {
	if !m.enabled {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Neues Auto %d", id))
	msg.SetBody("text/html", fmt.Sprintf("<strong>Neues Auto:</strong> <em>%s</em>", modell))

	go func() {
		if err := m.dialer.DialAndSend(msg); err != nil {
			log.Printf("mail: send failed: %v", err)
		}
	}()
}
