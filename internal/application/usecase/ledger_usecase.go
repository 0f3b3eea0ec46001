package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

func parseDate(field, s string) (entity.Date, error) {
	d, err := entity.ParseDate(s)
	if err != nil {
		return entity.Date{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, field)
	}
	return d, nil
}

func positive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return fmt.Errorf("%w: %s debe ser mayor a 0", domain.ErrInvalidInput, field)
	}
	return nil
}

// TransactionUseCase asientos libres de ingreso/gasto.
type TransactionUseCase struct {
	repo   repository.TransactionRepository
	mirror MirrorReader
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository, mirror MirrorReader) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, mirror: mirror}
}

// List transacciones del espejo.
func (uc *TransactionUseCase) List() ([]*entity.Transaction, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	return uc.mirror.Transactions(), nil
}

func (uc *TransactionUseCase) build(in dto.TransactionRequest) (*entity.Transaction, error) {
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionExpense {
		return nil, domain.ErrInvalidInput
	}
	if err := positive("amount", in.Amount); err != nil {
		return nil, err
	}
	date, err := parseDate("operation_date", in.OperationDate)
	if err != nil {
		return nil, err
	}
	return &entity.Transaction{
		Type:          in.Type,
		Amount:        in.Amount,
		Category:      strings.TrimSpace(in.Category),
		Description:   strings.TrimSpace(in.Description),
		OperationDate: date,
	}, nil
}

// Add registra la transacción y devuelve la fila confirmada.
func (uc *TransactionUseCase) Add(ctx context.Context, in dto.TransactionRequest) (*entity.Transaction, error) {
	t, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, t)
}

// Update reemplaza los campos editables.
func (uc *TransactionUseCase) Update(ctx context.Context, id string, in dto.TransactionRequest) error {
	t, err := uc.build(in)
	if err != nil {
		return err
	}
	t.ID = id
	return uc.repo.Update(ctx, t)
}

// Delete borra la transacción.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// StandardOrderUseCase pedidos estándar (entregas puntuales).
type StandardOrderUseCase struct {
	repo   repository.StandardOrderRepository
	mirror MirrorReader
}

// NewStandardOrderUseCase construye el caso de uso.
func NewStandardOrderUseCase(repo repository.StandardOrderRepository, mirror MirrorReader) *StandardOrderUseCase {
	return &StandardOrderUseCase{repo: repo, mirror: mirror}
}

// List pedidos estándar del espejo.
func (uc *StandardOrderUseCase) List() ([]*entity.StandardOrder, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	return uc.mirror.StandardOrders(), nil
}

func (uc *StandardOrderUseCase) build(in dto.StandardOrderRequest) (*entity.StandardOrder, error) {
	if strings.TrimSpace(in.PickupLocation) == "" || strings.TrimSpace(in.DeliveryLocation) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := positive("delivery_amount", in.DeliveryAmount); err != nil {
		return nil, err
	}
	date, err := parseDate("operation_date", in.OperationDate)
	if err != nil {
		return nil, err
	}
	return &entity.StandardOrder{
		PickupLocation:   strings.TrimSpace(in.PickupLocation),
		DeliveryLocation: strings.TrimSpace(in.DeliveryLocation),
		DeliveryAmount:   in.DeliveryAmount,
		OperationDate:    date,
	}, nil
}

// Add registra el pedido.
func (uc *StandardOrderUseCase) Add(ctx context.Context, in dto.StandardOrderRequest) (*entity.StandardOrder, error) {
	o, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, o)
}

// Update reemplaza los campos editables.
func (uc *StandardOrderUseCase) Update(ctx context.Context, id string, in dto.StandardOrderRequest) error {
	o, err := uc.build(in)
	if err != nil {
		return err
	}
	o.ID = id
	return uc.repo.Update(ctx, o)
}

// Delete borra el pedido.
func (uc *StandardOrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// PartnerFeeUseCase liquidaciones periódicas de partenaires.
type PartnerFeeUseCase struct {
	repo   repository.PartnerDeliveryFeeRepository
	mirror MirrorReader
}

// NewPartnerFeeUseCase construye el caso de uso.
func NewPartnerFeeUseCase(repo repository.PartnerDeliveryFeeRepository, mirror MirrorReader) *PartnerFeeUseCase {
	return &PartnerFeeUseCase{repo: repo, mirror: mirror}
}

// List liquidaciones visibles (el rol partner solo ve las suyas).
func (uc *PartnerFeeUseCase) List(actor access.Grant) ([]*entity.PartnerDeliveryFee, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	all := uc.mirror.PartnerDeliveryFees()
	out := make([]*entity.PartnerDeliveryFee, 0, len(all))
	for _, f := range all {
		if actor.SeesPartner(f.PartnerID) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (uc *PartnerFeeUseCase) build(in dto.PartnerDeliveryFeeRequest) (*entity.PartnerDeliveryFee, error) {
	if in.PartnerID == "" || in.TotalPackagesDelivered < 0 || in.Turnover.IsNegative() || in.TotalDeliveryFee.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate("operation_date", in.OperationDate)
	if err != nil {
		return nil, err
	}
	return &entity.PartnerDeliveryFee{
		PartnerID:              in.PartnerID,
		Turnover:               in.Turnover,
		TotalDeliveryFee:       in.TotalDeliveryFee,
		TotalPackagesDelivered: in.TotalPackagesDelivered,
		OperationDate:          date,
	}, nil
}

// Add registra la liquidación.
func (uc *PartnerFeeUseCase) Add(ctx context.Context, in dto.PartnerDeliveryFeeRequest) (*entity.PartnerDeliveryFee, error) {
	f, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, f)
}

// Update reemplaza los campos editables.
func (uc *PartnerFeeUseCase) Update(ctx context.Context, id string, in dto.PartnerDeliveryFeeRequest) error {
	f, err := uc.build(in)
	if err != nil {
		return err
	}
	f.ID = id
	return uc.repo.Update(ctx, f)
}

// Delete borra la liquidación.
func (uc *PartnerFeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// SalaryUseCase pagos de nómina.
type SalaryUseCase struct {
	repo   repository.SalaryRepository
	mirror MirrorReader
}

// NewSalaryUseCase construye el caso de uso.
func NewSalaryUseCase(repo repository.SalaryRepository, mirror MirrorReader) *SalaryUseCase {
	return &SalaryUseCase{repo: repo, mirror: mirror}
}

// List salarios del espejo.
func (uc *SalaryUseCase) List() ([]*entity.Salary, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	return uc.mirror.Salaries(), nil
}

// build exige un beneficiario: user_id o beneficiary_name.
func (uc *SalaryUseCase) build(in dto.SalaryRequest) (*entity.Salary, error) {
	userID := strings.TrimSpace(in.UserID)
	name := strings.TrimSpace(in.BeneficiaryName)
	if userID == "" && name == "" {
		return nil, fmt.Errorf("%w: se requiere user_id o beneficiary_name", domain.ErrInvalidInput)
	}
	if err := positive("amount", in.Amount); err != nil {
		return nil, err
	}
	date, err := parseDate("payment_date", in.PaymentDate)
	if err != nil {
		return nil, err
	}
	s := &entity.Salary{
		BeneficiaryName: name,
		Amount:          in.Amount,
		PaymentDate:     date,
		Notes:           strings.TrimSpace(in.Notes),
	}
	if userID != "" {
		s.UserID = &userID
	}
	return s, nil
}

// Add registra el pago.
func (uc *SalaryUseCase) Add(ctx context.Context, in dto.SalaryRequest) (*entity.Salary, error) {
	s, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, s)
}

// Update reemplaza los campos editables.
func (uc *SalaryUseCase) Update(ctx context.Context, id string, in dto.SalaryRequest) error {
	s, err := uc.build(in)
	if err != nil {
		return err
	}
	s.ID = id
	return uc.repo.Update(ctx, s)
}

// Delete borra el pago.
func (uc *SalaryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// DeliveryUseCase entregas de partenaires.
type DeliveryUseCase struct {
	repo   repository.DeliveryRepository
	mirror MirrorReader
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(repo repository.DeliveryRepository, mirror MirrorReader) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo, mirror: mirror}
}

// List entregas visibles para el usuario.
func (uc *DeliveryUseCase) List(actor access.Grant) ([]*entity.Delivery, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	all := uc.mirror.Deliveries()
	out := make([]*entity.Delivery, 0, len(all))
	for _, d := range all {
		if actor.SeesPartner(d.PartnerID) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Add registra una entrega; sin estado explícito queda pendiente.
func (uc *DeliveryUseCase) Add(ctx context.Context, actor access.Grant, in dto.DeliveryRequest) (*entity.Delivery, error) {
	if in.PartnerID == "" || strings.TrimSpace(in.PickupAddress) == "" || strings.TrimSpace(in.DeliveryAddress) == "" || in.Fee.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !actor.SeesPartner(in.PartnerID) {
		return nil, domain.ErrForbidden
	}
	status := in.Status
	if status == "" {
		status = entity.DeliveryPending
	}
	return uc.repo.Create(ctx, &entity.Delivery{
		PartnerID:       in.PartnerID,
		PickupAddress:   strings.TrimSpace(in.PickupAddress),
		DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		Fee:             in.Fee,
		Status:          status,
	})
}

// BankDepositUseCase depósitos bancarios.
type BankDepositUseCase struct {
	repo   repository.BankDepositRepository
	mirror MirrorReader
}

// NewBankDepositUseCase construye el caso de uso.
func NewBankDepositUseCase(repo repository.BankDepositRepository, mirror MirrorReader) *BankDepositUseCase {
	return &BankDepositUseCase{repo: repo, mirror: mirror}
}

// List depósitos del espejo.
func (uc *BankDepositUseCase) List() ([]*entity.BankDeposit, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	return uc.mirror.BankDeposits(), nil
}

// Add registra el depósito a nombre del usuario.
func (uc *BankDepositUseCase) Add(ctx context.Context, actor access.Grant, in dto.BankDepositRequest) (*entity.BankDeposit, error) {
	if strings.TrimSpace(in.Reference) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := positive("amount", in.Amount); err != nil {
		return nil, err
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, &entity.BankDeposit{
		Date:            date,
		Reference:       strings.TrimSpace(in.Reference),
		Amount:          in.Amount,
		ReceiptPhotoURL: in.ReceiptPhotoURL,
		UserID:          actor.UserID,
	})
}
