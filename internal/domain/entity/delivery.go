package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una entrega.
const (
	DeliveryPending   = "pending"
	DeliveryDelivered = "delivered"
	DeliveryCancelled = "cancelled"
)

// Delivery entrega individual realizada para un partenaire.
type Delivery struct {
	ID              string          `json:"id"`
	PartnerID       string          `json:"partner_id"`
	PickupAddress   string          `json:"pickup_address"`
	DeliveryAddress string          `json:"delivery_address"`
	Fee             decimal.Decimal `json:"fee"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}
