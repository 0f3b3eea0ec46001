// Package access modela los roles cerrados de la plataforma y la tabla
// rol → capacidades que se consulta en cada ruta y acción.
package access

import (
	"fmt"
	"strings"
)

// Role categoría de usuario. Conjunto cerrado.
type Role string

const (
	RoleCEO        Role = "ceo"
	RoleAccountant Role = "accountant"
	RoleSecretary  Role = "secretary"
	RolePartner    Role = "partner"
)

// Roles todos los roles válidos, en orden de jerarquía.
var Roles = []Role{RoleCEO, RoleAccountant, RoleSecretary, RolePartner}

// ParseRole convierte un string (token, DB) en Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleCEO, RoleAccountant, RoleSecretary, RolePartner:
		return r, nil
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }

// IsStaff indica si el rol pertenece a la agencia (no a un partenaire).
func (r Role) IsStaff() bool { return r != RolePartner }

// Label nombre visible del rol.
func (r Role) Label() string {
	switch r {
	case RoleCEO:
		return "CEO"
	case RoleAccountant:
		return "Comptable"
	case RoleSecretary:
		return "Secrétaire"
	case RolePartner:
		return "Partenaire"
	}
	return string(r)
}
