package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
	"github.com/jhoicas/eno-livraison-api/internal/domain/stock"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// (in, out, adjustment) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es el único camino que modifica products.stock.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento.
// Quantity es la cantidad a sumar/restar, o el stock final en un ajuste.
type MovementInput struct {
	Actor     access.Grant
	ProductID string
	Type      string
	Quantity  int
	Reason    string
}

// RegisterMovement inicia una transacción, bloquea el producto, calcula el nuevo stock,
// lo persiste junto con el movimiento y devuelve el movimiento confirmado.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	if strings.TrimSpace(in.ProductID) == "" || !stock.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if !in.Actor.SeesPartner(product.PartnerID) {
			return domain.ErrForbidden
		}
		created, err = ApplyMovement(ctx, productRepo, movementRepo, product, in.Type, in.Quantity, in.Reason, in.Actor.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ApplyMovement escribe el movimiento y el nuevo stock usando los repositorios de la
// transacción del llamador. product debe venir bloqueado (GetForUpdate) o recién creado.
func ApplyMovement(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	product *entity.Product,
	movementType string,
	quantity int,
	reason, userID string,
) (*entity.StockMovement, error) {
	mov, err := stock.BuildMovement(product, movementType, quantity, strings.TrimSpace(reason), userID)
	if err != nil {
		return nil, err
	}
	if err := productRepo.UpdateStock(ctx, product.ID, mov.NewStock); err != nil {
		return nil, err
	}
	created, err := movementRepo.Create(ctx, mov)
	if err != nil {
		return nil, err
	}
	// La fila confirmada debe cuadrar con el stock escrito; si no, se revierte la transacción.
	if !stock.Consistent(created) || created.NewStock != mov.NewStock {
		return nil, fmt.Errorf("%w: movimiento %s no cuadra (%d -> %d)", domain.ErrConflict, created.ID, created.PreviousStock, created.NewStock)
	}
	return created, nil
}
