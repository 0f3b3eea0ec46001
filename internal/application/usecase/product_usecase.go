package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/inventory"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

// Motivos de los movimientos generados por la ficha de producto.
const (
	ReasonInitialStock     = "Stock initial"
	ReasonManualAdjustment = "Ajustement manuel"
)

// ProductUseCase casos de uso de productos. El stock solo cambia vía movimientos:
// el alta con stock inicial y la edición del stock generan un movimiento.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
	mirror   MirrorReader
	journal  *Journal
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner, mirror MirrorReader, journal *Journal) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, mirror: mirror, journal: journal}
}

// List productos visibles para el usuario.
func (uc *ProductUseCase) List(actor access.Grant) ([]*entity.Product, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	all := uc.mirror.Products()
	out := make([]*entity.Product, 0, len(all))
	for _, p := range all {
		if actor.SeesPartner(p.PartnerID) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Movements historial de movimientos visible para el usuario, más reciente primero.
// productID vacío = todos.
func (uc *ProductUseCase) Movements(actor access.Grant, productID string) ([]*entity.StockMovement, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	visible := map[string]bool{}
	for _, p := range uc.mirror.Products() {
		visible[p.ID] = actor.SeesPartner(p.PartnerID)
	}
	all := uc.mirror.StockMovements()
	out := make([]*entity.StockMovement, 0, len(all))
	for _, m := range all {
		if productID != "" && m.ProductID != productID {
			continue
		}
		if visible[m.ProductID] {
			out = append(out, m)
		}
	}
	return out, nil
}

// Add crea el producto y, si trae stock inicial, su movimiento de entrada, en una sola tx.
func (uc *ProductUseCase) Add(ctx context.Context, actor access.Grant, in dto.CreateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.PartnerID == "" || in.InitialStock < 0 || in.AlertThreshold < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !actor.SeesPartner(in.PartnerID) {
		return nil, domain.ErrForbidden
	}
	var created *entity.Product
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) error {
		p, err := productRepo.Create(ctx, &entity.Product{
			PartnerID:      in.PartnerID,
			Name:           name,
			AlertThreshold: in.AlertThreshold,
			Price:          in.Price,
		})
		if err != nil {
			return err
		}
		if in.InitialStock > 0 {
			mov, err := inventory.ApplyMovement(ctx, productRepo, movementRepo, p, entity.MovementTypeIn, in.InitialStock, ReasonInitialStock, actor.UserID)
			if err != nil {
				return err
			}
			p.Stock = mov.NewStock
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.journal.Record(ctx, actor, ActionProductCreated, map[string]any{"product_id": created.ID, "name": created.Name})
	return created, nil
}

// Update actualiza la ficha. Un stock distinto del actual se registra como ajuste.
func (uc *ProductUseCase) Update(ctx context.Context, actor access.Grant, id string, in dto.UpdateProductRequest) error {
	adjusted := false
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) error {
		current, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !actor.SeesPartner(current.PartnerID) {
			return domain.ErrForbidden
		}
		p := *current
		if in.PartnerID != nil {
			if !actor.SeesPartner(*in.PartnerID) {
				return domain.ErrForbidden
			}
			p.PartnerID = *in.PartnerID
		}
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return domain.ErrInvalidInput
			}
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.AlertThreshold != nil {
			if *in.AlertThreshold < 0 {
				return domain.ErrInvalidInput
			}
			p.AlertThreshold = *in.AlertThreshold
		}
		if in.Price != nil {
			if in.Price.IsNegative() {
				return domain.ErrInvalidInput
			}
			p.Price = *in.Price
		}
		if err := productRepo.Update(ctx, &p); err != nil {
			return err
		}
		if in.Stock == nil || *in.Stock == current.Stock {
			return nil
		}
		reason := strings.TrimSpace(in.Reason)
		if reason == "" {
			reason = ReasonManualAdjustment
		}
		if _, err := inventory.ApplyMovement(ctx, productRepo, movementRepo, current, entity.MovementTypeAdjustment, *in.Stock, reason, actor.UserID); err != nil {
			return err
		}
		adjusted = true
		return nil
	})
	if err != nil {
		return err
	}
	if adjusted {
		uc.journal.Record(ctx, actor, ActionStockAdjusted, map[string]any{"product_id": id, "stock": *in.Stock})
	}
	return nil
}

// Delete borra el producto (sus movimientos caen en cascada en la DB).
func (uc *ProductUseCase) Delete(ctx context.Context, actor access.Grant, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.SeesPartner(p.PartnerID) {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.journal.Record(ctx, actor, ActionProductDeleted, map[string]any{"product_id": id, "name": p.Name})
	return nil
}
