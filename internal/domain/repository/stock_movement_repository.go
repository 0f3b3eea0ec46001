package repository

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// StockMovementRepository puerto del historial de movimientos (append-only).
// List ordena por created_at descendente.
type StockMovementRepository interface {
	TableReader[entity.StockMovement]
	Create(ctx context.Context, m *entity.StockMovement) (*entity.StockMovement, error)
}
