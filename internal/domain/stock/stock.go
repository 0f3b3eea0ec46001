// Package stock reglas puras de cálculo de stock (servicio de dominio).
package stock

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// IsLowStock indica si un producto está en condición de stock bajo.
// Un umbral 0 desactiva la alerta.
func IsLowStock(stock, threshold int) bool {
	return threshold > 0 && stock <= threshold
}

// ProductIsLow atajo sobre un producto.
func ProductIsLow(p *entity.Product) bool {
	return p != nil && IsLowStock(p.Stock, p.AlertThreshold)
}

// ValidMovementType indica si el tipo de movimiento es conocido.
func ValidMovementType(t string) bool {
	switch t {
	case entity.MovementTypeIn, entity.MovementTypeOut, entity.MovementTypeAdjustment:
		return true
	}
	return false
}

// NextStock calcula el stock resultante de un movimiento.
// in suma, out resta, adjustment fija el valor absoluto qty.
func NextStock(prev int, movementType string, qty int) (int, error) {
	var next int
	switch movementType {
	case entity.MovementTypeIn:
		if qty <= 0 {
			return 0, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
		}
		next = prev + qty
	case entity.MovementTypeOut:
		if qty <= 0 {
			return 0, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
		}
		next = prev - qty
	case entity.MovementTypeAdjustment:
		if qty < 0 {
			return 0, fmt.Errorf("%w: el stock ajustado no puede ser negativo", domain.ErrInvalidInput)
		}
		next = qty
	default:
		return 0, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, movementType)
	}
	if next < 0 {
		return 0, fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, prev, qty)
	}
	return next, nil
}

// BuildMovement arma el registro de auditoría para un movimiento sobre el producto.
// No modifica el producto; el llamador persiste ambos en la misma transacción.
func BuildMovement(p *entity.Product, movementType string, qty int, reason, createdBy string) (*entity.StockMovement, error) {
	next, err := NextStock(p.Stock, movementType, qty)
	if err != nil {
		return nil, err
	}
	return &entity.StockMovement{
		ProductID:     p.ID,
		Type:          movementType,
		Quantity:      qty,
		PreviousStock: p.Stock,
		NewStock:      next,
		Reason:        reason,
		CreatedBy:     createdBy,
	}, nil
}

// Consistent verifica new_stock = previous_stock ± quantity (o quantity en ajuste).
func Consistent(m *entity.StockMovement) bool {
	next, err := NextStock(m.PreviousStock, m.Type, m.Quantity)
	return err == nil && next == m.NewStock
}

// Value valor del stock de un producto (stock * precio).
func Value(p *entity.Product) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
