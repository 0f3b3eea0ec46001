package dto

import (
	"time"

	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest alta de cuenta a partir de una invitación.
type SignUpRequest struct {
	InviteToken string `json:"invite_token" validate:"required"`
	FullName    string `json:"full_name" validate:"required,min=1,max=200"`
	Password    string `json:"password" validate:"required,min=8"`
}

// UpdateMeRequest cambio de nombre y/o contraseña del usuario actual.
type UpdateMeRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// InviteUserRequest invitación de un nuevo usuario con rol y partenaire opcional.
type InviteUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required,oneof=ceo accountant secretary partner"`
	PartnerID string `json:"partner_id"`
}

// UpdateUserRequest edición de un usuario por el CEO.
type UpdateUserRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Role      *string `json:"role" validate:"omitempty,oneof=ceo accountant secretary partner"`
	PartnerID *string `json:"partner_id"`
}

// SetPermissionsRequest reemplazo del conjunto de permisos individuales.
type SetPermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"dive,min=1"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	PartnerID   string    `json:"partner_id,omitempty"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// MeResponse perfil actual con su menú de navegación.
type MeResponse struct {
	User UserResponse      `json:"user"`
	Menu []access.MenuItem `json:"menu"`
}

// InviteResponse resultado de una invitación (el enlace también se envía por correo).
type InviteResponse struct {
	Email     string    `json:"email"`
	Link      string    `json:"link"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ActivityQuery filtros y página del journal.
type ActivityQuery struct {
	PageRequest
	UserID string `query:"user_id"`
	Action string `query:"action"`
	From   string `query:"from"`
	To     string `query:"to"`
}

// ActivityPage página de entradas del journal.
type ActivityPage struct {
	Items []*entity.ActivityLogEntry `json:"items"`
	Page  PageResponse               `json:"page"`
}
