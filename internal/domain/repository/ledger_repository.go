package repository

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// TransactionRepository puerto del libro de ingresos/gastos.
type TransactionRepository interface {
	TableReader[entity.Transaction]
	TableWriter[entity.Transaction]
}

// StandardOrderRepository puerto de pedidos estándar.
type StandardOrderRepository interface {
	TableReader[entity.StandardOrder]
	TableWriter[entity.StandardOrder]
}

// PartnerDeliveryFeeRepository puerto de liquidaciones de partenaires.
type PartnerDeliveryFeeRepository interface {
	TableReader[entity.PartnerDeliveryFee]
	TableWriter[entity.PartnerDeliveryFee]
}

// SalaryRepository puerto de pagos de nómina.
type SalaryRepository interface {
	TableReader[entity.Salary]
	TableWriter[entity.Salary]
}

// DeliveryRepository puerto de entregas.
type DeliveryRepository interface {
	TableReader[entity.Delivery]
	Create(ctx context.Context, d *entity.Delivery) (*entity.Delivery, error)
}

// BankDepositRepository puerto de depósitos bancarios.
type BankDepositRepository interface {
	TableReader[entity.BankDeposit]
	Create(ctx context.Context, b *entity.BankDeposit) (*entity.BankDeposit, error)
}
