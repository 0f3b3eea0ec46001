package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StandardOrder entrega puntual fuera del ciclo de liquidación de partenaires.
type StandardOrder struct {
	ID               string          `json:"id"`
	PickupLocation   string          `json:"pickup_location"`
	DeliveryLocation string          `json:"delivery_location"`
	DeliveryAmount   decimal.Decimal `json:"delivery_amount"`
	OperationDate    Date            `json:"operation_date"`
	CreatedAt        time.Time       `json:"created_at"`
}
