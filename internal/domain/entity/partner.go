package entity

import (
	"regexp"
	"time"
)

// PartnerCodePattern formato de los códigos que genera generate_partner_code().
var PartnerCodePattern = regexp.MustCompile(`^ENO\d{4}$`)

// Partner empresa externa cuyo stock y entregas gestiona la agencia.
// En el alta el ID es el código generado. Tras reassign_partner_codes solo
// cambia PartnerCode: el ID sigue siendo la clave que referencian productos,
// entregas y liquidaciones, y ya no coincide con el código visible.
type Partner struct {
	ID            string    `json:"id"`
	PartnerCode   string    `json:"partner_code"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contact_person"`
	CreatedAt     time.Time `json:"created_at"`
}
