package entity

import "time"

// Profile usuario de la plataforma. Role gobierna la visibilidad; Permissions
// es una lista auxiliar de capacidades otorgadas de forma individual.
type Profile struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca se expone
	FullName     string
	Role         string  // ceo, accountant, secretary, partner
	PartnerID    *string // solo si Role = partner
	Permissions  []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
