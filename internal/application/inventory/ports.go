package inventory

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que stock y movimiento se escriban juntos o no se escriban.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// StockSource lectura de productos y movimientos desde el espejo.
type StockSource interface {
	Products() []*entity.Product
	StockMovements() []*entity.StockMovement
	Partner(id string) (*entity.Partner, bool)
}
