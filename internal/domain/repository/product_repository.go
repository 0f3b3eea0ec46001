package repository

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product.
// Update no toca la columna stock; solo UpdateStock (dentro de una tx de movimiento) la cambia.
type ProductRepository interface {
	TableReader[entity.Product]
	TableWriter[entity.Product]
	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	UpdateStock(ctx context.Context, id string, stock int) error
}
