package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo almacenado por cuenta de un partenaire.
// Stock solo cambia vía StockMovement (ver inventory.RegisterMovement).
type Product struct {
	ID             string          `json:"id"`
	PartnerID      string          `json:"partner_id"`
	Name           string          `json:"name"`
	Stock          int             `json:"stock"`
	AlertThreshold int             `json:"alert_threshold"` // 0 = sin alerta
	Price          decimal.Decimal `json:"price"`
	CreatedAt      time.Time       `json:"created_at"`
}
