// Package mailer provides outbound email delivery.
package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Invitation holds the details rendered into an invitation email.
type Invitation struct {
	To          string
	TeamName    string
	InviterName string
	Role        string
	AcceptURL   string
}

// Service defines the interface for sending invitation emails.
type Service interface {
	// SendInvitation delivers an invitation email. Returns error on delivery failure.
	SendInvitation(ctx context.Context, inv Invitation) error
}

// SMTPConfig holds the SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPService sends emails over SMTP using gomail.
type SMTPService struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPService creates a new SMTPService.
func NewSMTPService(cfg SMTPConfig) *SMTPService {
	return &SMTPService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendInvitation delivers an invitation email over SMTP.
func (s *SMTPService) SendInvitation(ctx context.Context, inv Invitation) error {
	// gomail has no context support; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", inv.To)
	m.SetHeader("Subject", fmt.Sprintf("You've been invited to join %s", inv.TeamName))
	m.SetBody("text/html", renderInvitationBody(inv))

	return s.dialer.DialAndSend(m)
}

func renderInvitationBody(inv Invitation) string {
	return fmt.Sprintf(`
		<html>
		<body>
			<h2>Join %s</h2>
			<p>%s has invited you to join the team <strong>%s</strong> as a %s.</p>
			<p><a href="%s">Accept invitation</a></p>
			<p>If you weren't expecting this, you can ignore this email.</p>
		</body>
		</html>
	`, inv.TeamName, inv.InviterName, inv.TeamName, inv.Role, inv.AcceptURL)
}
