// Package mail envía los correos de invitación por SMTP (gomail).
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/auth"
	"github.com/jhoicas/eno-livraison-api/pkg/config"
	"github.com/jhoicas/eno-livraison-api/pkg/logger"
)

const invitationSubject = "Invitation à rejoindre Eno Livraison"

var invitationTmpl = template.Must(template.New("invitation").Parse(`<html>
	<body>
		<h3>Bienvenue sur Eno Livraison</h3>
		<p>{{if .InvitedBy}}{{.InvitedBy}} vous invite{{else}}Vous êtes invité(e){{end}} à rejoindre la plateforme en tant que <strong>{{.RoleLabel}}</strong>{{if .PartnerName}} pour <strong>{{.PartnerName}}</strong>{{end}}.</p>
		<p><a href="{{.Link}}">Créer mon compte</a></p>
		<p>Ce lien est personnel et expire automatiquement. Si vous n'attendiez pas cette invitation, ignorez ce message.</p>
	</body>
</html>`))

type invitationView struct {
	auth.Invitation
	RoleLabel string
}

func renderInvitation(inv auth.Invitation) (string, error) {
	var buf bytes.Buffer
	if err := invitationTmpl.Execute(&buf, invitationView{Invitation: inv, RoleLabel: inv.Role.Label()}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildMessage(from string, inv auth.Invitation) (*gomail.Message, error) {
	body, err := renderInvitation(inv)
	if err != nil {
		return nil, fmt.Errorf("mail: plantilla: %w", err)
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", inv.To)
	msg.SetHeader("Subject", invitationSubject)
	msg.SetBody("text/html", body)
	return msg, nil
}

// SMTPMailer implementa auth.Mailer sobre un servidor SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

// NewSMTPMailer construye el mailer a partir de la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

// SendInvitation envía la invitación. gomail no acepta contexto: se comprueba antes de marcar.
func (m *SMTPMailer) SendInvitation(ctx context.Context, inv auth.Invitation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := buildMessage(m.from, inv)
	if err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error().Err(err).Str("to", inv.To).Msg("mail: fallo al enviar invitación")
		return fmt.Errorf("mail: enviar: %w", err)
	}
	m.log.Info().Str("to", inv.To).Str("role", string(inv.Role)).Msg("invitación enviada")
	return nil
}

// LogMailer solo registra la invitación (SMTP_HOST vacío, entornos de desarrollo).
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el mailer de solo log.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendInvitation escribe el enlace en el log en lugar de enviarlo.
func (m *LogMailer) SendInvitation(_ context.Context, inv auth.Invitation) error {
	m.log.Warn().
		Str("to", inv.To).
		Str("role", string(inv.Role)).
		Str("link", inv.Link).
		Msg("SMTP no configurado: invitación no enviada")
	return nil
}

// New elige el mailer según la configuración.
func New(cfg config.SMTPConfig, log *logger.Logger) auth.Mailer {
	if cfg.Host == "" {
		return NewLogMailer(log)
	}
	return NewSMTPMailer(cfg, log)
}
