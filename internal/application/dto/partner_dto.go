package dto

// CreatePartnerRequest entrada para crear un partenaire (el código lo genera el servidor).
type CreatePartnerRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,max=50"`
	Address       string `json:"address" validate:"omitempty,max=500"`
	ContactPerson string `json:"contact_person" validate:"omitempty,max=200"`
}

// UpdatePartnerRequest entrada para actualizar un partenaire (el código no cambia).
type UpdatePartnerRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=50"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=200"`
}

// InvitePartnerRequest invitación de un usuario ligado al partenaire.
type InvitePartnerRequest struct {
	Email string `json:"email" validate:"omitempty,email"` // vacío = email del partenaire
}

// ReassignCodesResponse resultado de la renumeración de códigos.
type ReassignCodesResponse struct {
	Updated int `json:"updated"`
}
