package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
// InitialStock > 0 genera un movimiento de entrada "Stock initial".
type CreateProductRequest struct {
	PartnerID      string          `json:"partner_id" validate:"required"`
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	InitialStock   int             `json:"stock" validate:"min=0"`
	AlertThreshold int             `json:"alert_threshold" validate:"min=0"`
	Price          decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Stock, si viene y difiere del actual, se registra como movimiento de ajuste.
type UpdateProductRequest struct {
	PartnerID      *string          `json:"partner_id" validate:"omitempty,min=1"`
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Stock          *int             `json:"stock" validate:"omitempty,min=0"`
	AlertThreshold *int             `json:"alert_threshold" validate:"omitempty,min=0"`
	Price          *decimal.Decimal `json:"price"`
	Reason         string           `json:"reason" validate:"omitempty,max=500"`
}

// RegisterMovementRequest body para POST /api/stock/movements.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity  int    `json:"quantity" validate:"min=0"`
	Reason    string `json:"reason" validate:"omitempty,max=500"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto en stock bajo.
type ReplenishmentSuggestionDTO struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	PartnerID         string `json:"partner_id"`
	PartnerName       string `json:"partner_name"`
	CurrentStock      int    `json:"current_stock"`
	AlertThreshold    int    `json:"alert_threshold"`
	IdealStock        int    `json:"ideal_stock"`         // AlertThreshold * 1.5
	SuggestedOrderQty int    `json:"suggested_order_qty"` // IdealStock - CurrentStock
	UnitsOutLast90d   int    `json:"units_out_last_90d"`
	Priority          int    `json:"priority"` // 1 = más urgente
}
