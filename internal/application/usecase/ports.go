package usecase

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// MirrorReader lectura de las colecciones espejadas (datasync.Mirror).
type MirrorReader interface {
	Loaded() bool
	Partners() []*entity.Partner
	Partner(id string) (*entity.Partner, bool)
	Products() []*entity.Product
	Product(id string) (*entity.Product, bool)
	Transactions() []*entity.Transaction
	Deliveries() []*entity.Delivery
	StockMovements() []*entity.StockMovement
	BankDeposits() []*entity.BankDeposit
	StandardOrders() []*entity.StandardOrder
	PartnerDeliveryFees() []*entity.PartnerDeliveryFee
	Salaries() []*entity.Salary
}

// Refresher refresco manual del espejo.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Inviter emite y envía invitaciones (auth.InviteUseCase).
type Inviter interface {
	Invite(ctx context.Context, by access.Grant, email string, role access.Role, partnerID string) (*dto.InviteResponse, error)
}

func requireLoaded(m MirrorReader) error {
	if !m.Loaded() {
		return domain.ErrNotLoaded
	}
	return nil
}
