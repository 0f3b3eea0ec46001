package auth

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
)

// SessionHooks se avisa al abrir y cerrar sesión (bandeja de notificaciones).
type SessionHooks interface {
	StartSession(g access.Grant)
	EndSession(userID string)
}

// Invitation datos del correo de invitación.
type Invitation struct {
	To          string
	Role        access.Role
	PartnerName string
	InvitedBy   string
	Link        string
}

// Mailer envía las invitaciones.
type Mailer interface {
	SendInvitation(ctx context.Context, inv Invitation) error
}
