package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/inventory"
	"github.com/jhoicas/eno-livraison-api/internal/application/usecase"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

func newProductUC(ps ...*entity.Product) (*usecase.ProductUseCase, *fakeTx, *fakeActivity) {
	tx := &fakeTx{products: newFakeProductRepo(ps...), movements: &fakeMovementRepo{}}
	act := &fakeActivity{}
	mirror := &fakeMirror{products: ps}
	return usecase.NewProductUseCase(tx.products, tx, mirror, usecase.NewJournal(act, nil)), tx, act
}

func TestProductAdd_StockInicialGeneraEntrada(t *testing.T) {
	uc, tx, _ := newProductUC()
	p, err := uc.Add(context.Background(), ceo, dto.CreateProductRequest{
		PartnerID: "ENO0001", Name: "Savon", InitialStock: 12, AlertThreshold: 5, Price: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, p.Stock)
	assert.Equal(t, 12, tx.products.rows[p.ID].Stock)

	require.Len(t, tx.movements.rows, 1)
	m := tx.movements.rows[0]
	assert.Equal(t, entity.MovementTypeIn, m.Type)
	assert.Equal(t, 0, m.PreviousStock)
	assert.Equal(t, 12, m.NewStock)
	assert.Equal(t, usecase.ReasonInitialStock, m.Reason)
	assert.Equal(t, "u-ceo", m.CreatedBy)
}

func TestProductAdd_SinStockNoGeneraMovimiento(t *testing.T) {
	uc, tx, _ := newProductUC()
	_, err := uc.Add(context.Background(), ceo, dto.CreateProductRequest{PartnerID: "ENO0001", Name: "Riz"})
	require.NoError(t, err)
	assert.Empty(t, tx.movements.rows)

	_, err = uc.Add(context.Background(), ceo, dto.CreateProductRequest{Name: "Sans partenaire"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductAdd_PartenaireSoloParaSiMismo(t *testing.T) {
	uc, _, _ := newProductUC()
	partner := access.Grant{UserID: "u-p", Role: access.RolePartner, PartnerID: "ENO0001"}
	_, err := uc.Add(context.Background(), partner, dto.CreateProductRequest{PartnerID: "ENO0002", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductUpdate_StockEditadoEsAjuste(t *testing.T) {
	uc, tx, act := newProductUC(&entity.Product{ID: "p1", PartnerID: "ENO0001", Name: "Savon", Stock: 5, AlertThreshold: 10})
	stock := 20
	name := "Savon noir"
	require.NoError(t, uc.Update(context.Background(), ceo, "p1", dto.UpdateProductRequest{Name: &name, Stock: &stock}))

	got := tx.products.rows["p1"]
	assert.Equal(t, "Savon noir", got.Name)
	assert.Equal(t, 20, got.Stock)
	require.Len(t, tx.movements.rows, 1)
	m := tx.movements.rows[0]
	assert.Equal(t, entity.MovementTypeAdjustment, m.Type)
	assert.Equal(t, 5, m.PreviousStock)
	assert.Equal(t, 20, m.NewStock)
	assert.Equal(t, usecase.ReasonManualAdjustment, m.Reason)
	assert.Equal(t, []string{usecase.ActionStockAdjusted}, act.actions())
}

func TestProductUpdate_MismoStockNoGeneraMovimiento(t *testing.T) {
	uc, tx, _ := newProductUC(&entity.Product{ID: "p1", PartnerID: "ENO0001", Name: "Savon", Stock: 5})
	stock := 5
	require.NoError(t, uc.Update(context.Background(), ceo, "p1", dto.UpdateProductRequest{Stock: &stock}))
	assert.Empty(t, tx.movements.rows)
}

func TestProductUpdateYDelete_FueraDeAlcance(t *testing.T) {
	uc, _, _ := newProductUC(&entity.Product{ID: "p1", PartnerID: "ENO0001", Name: "Savon", Stock: 5})
	other := access.Grant{UserID: "u-p", Role: access.RolePartner, PartnerID: "ENO0002"}
	stock := 1
	assert.ErrorIs(t, uc.Update(context.Background(), other, "p1", dto.UpdateProductRequest{Stock: &stock}), domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(context.Background(), other, "p1"), domain.ErrForbidden)
	assert.NoError(t, uc.Delete(context.Background(), ceo, "p1"))
}

func TestRegisterMovement_SalidaInsuficiente(t *testing.T) {
	tx := &fakeTx{products: newFakeProductRepo(&entity.Product{ID: "p1", PartnerID: "ENO0001", Stock: 3}), movements: &fakeMovementRepo{}}
	uc := inventory.NewRegisterMovementUseCase(tx)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		Actor: ceo, ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 4,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, tx.products.rows["p1"].Stock)

	m, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		Actor: ceo, ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 3, Reason: "Livraison",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, m.NewStock)
	assert.Equal(t, 0, tx.products.rows["p1"].Stock)

	_, err = uc.RegisterMovement(context.Background(), inventory.MovementInput{
		Actor: access.Grant{Role: access.RolePartner, PartnerID: "ENO0002"}, ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegisterMovement_FilaConfirmadaDescuadrada(t *testing.T) {
	movements := &fakeMovementRepo{tamper: func(m *entity.StockMovement) { m.NewStock++ }}
	tx := &fakeTx{products: newFakeProductRepo(&entity.Product{ID: "p1", Stock: 3}), movements: movements}
	uc := inventory.NewRegisterMovementUseCase(tx)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		Actor: ceo, ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 2,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductList_RequiereEspejoCargado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), &fakeTx{}, &fakeMirror{notLoaded: true}, nil)
	_, err := uc.List(ceo)
	assert.ErrorIs(t, err, domain.ErrNotLoaded)
}

func TestProductMovements_FiltraPorAlcance(t *testing.T) {
	mirror := &fakeMirror{
		products: []*entity.Product{{ID: "p1", PartnerID: "ENO0001"}, {ID: "p2", PartnerID: "ENO0002"}},
		movements: []*entity.StockMovement{
			{ID: "m2", ProductID: "p2"}, {ID: "m1", ProductID: "p1"},
		},
	}
	uc := usecase.NewProductUseCase(newFakeProductRepo(), &fakeTx{}, mirror, nil)
	got, err := uc.Movements(access.Grant{Role: access.RolePartner, PartnerID: "ENO0002"}, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m2", got[0].ID)

	got, err = uc.Movements(ceo, "p1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)
}
