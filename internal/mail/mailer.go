// Package mail wraps outbound SMTP delivery behind a small interface so the
// service layer can be tested without a mail server.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Sender delivers a single plain-text message to the configured recipient.
type Sender interface {
	Send(ctx context.Context, subject, body string) error
}

type smtpSender struct {
	host      string
	port      int
	user      string
	password  string
	recipient string
}

// NewSMTPSender returns a Sender that authenticates against the given SMTP
// host and always delivers to the fixed recipient address.
func NewSMTPSender(host string, port int, user, password, recipient string) Sender {
	return &smtpSender{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		recipient: recipient,
	}
}

func (s *smtpSender) Send(ctx context.Context, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.user); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(s.recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.user),
		gomail.WithPassword(s.password),
	}
	// Port 465 is implicit TLS; everything else upgrades via STARTTLS when
	// the server offers it.
	if s.port == 465 {
		opts = append(opts, gomail.WithSSLPort(false))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("could not create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("could not send mail: %w", err)
	}
	return nil
}
