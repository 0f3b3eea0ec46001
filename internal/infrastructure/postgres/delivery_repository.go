package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var (
	_ repository.DeliveryRepository    = (*DeliveryRepo)(nil)
	_ repository.BankDepositRepository = (*BankDepositRepo)(nil)
)

const deliveryColumns = `id, partner_id, COALESCE(pickup_address, ''), COALESCE(delivery_address, ''),
	COALESCE(fee, 0), status, created_at`

// DeliveryRepo entregas individuales.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador.
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

func scanDelivery(s pgxScanner) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := s.Scan(&d.ID, &d.PartnerID, &d.PickupAddress, &d.DeliveryAddress, &d.Fee, &d.Status, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepo) List(ctx context.Context) ([]*entity.Delivery, error) {
	rows, err := r.q.Query(ctx, `SELECT `+deliveryColumns+` FROM deliveries ORDER BY created_at DESC`)
	if err != nil {
		return nil, readError("list deliveries", err)
	}
	return collect(rows, scanDelivery)
}

func (r *DeliveryRepo) GetByID(ctx context.Context, id string) (*entity.Delivery, error) {
	d, err := scanDelivery(r.q.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id))
	if err != nil {
		return nil, readError("get delivery", err)
	}
	return d, nil
}

func (r *DeliveryRepo) Create(ctx context.Context, d *entity.Delivery) (*entity.Delivery, error) {
	query := `
		INSERT INTO deliveries (partner_id, pickup_address, delivery_address, fee, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + deliveryColumns
	out, err := scanDelivery(r.q.QueryRow(ctx, query,
		d.PartnerID, textArg(d.PickupAddress), textArg(d.DeliveryAddress), d.Fee, d.Status,
	))
	if err != nil {
		return nil, writeError("insert delivery", err)
	}
	return out, nil
}

const bankDepositColumns = `id, date, COALESCE(reference, ''), amount, COALESCE(receipt_photo_url, ''),
	COALESCE(user_id::text, ''), created_at`

// BankDepositRepo depósitos bancarios.
type BankDepositRepo struct {
	q Querier
}

// NewBankDepositRepository construye el adaptador.
func NewBankDepositRepository(q Querier) *BankDepositRepo {
	return &BankDepositRepo{q: q}
}

func scanBankDeposit(s pgxScanner) (*entity.BankDeposit, error) {
	var b entity.BankDeposit
	var d pgtype.Date
	if err := s.Scan(&b.ID, &d, &b.Reference, &b.Amount, &b.ReceiptPhotoURL, &b.UserID, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.Date = toDate(d)
	return &b, nil
}

func (r *BankDepositRepo) List(ctx context.Context) ([]*entity.BankDeposit, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bankDepositColumns+` FROM bank_deposits ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, readError("list bank deposits", err)
	}
	return collect(rows, scanBankDeposit)
}

func (r *BankDepositRepo) GetByID(ctx context.Context, id string) (*entity.BankDeposit, error) {
	b, err := scanBankDeposit(r.q.QueryRow(ctx, `SELECT `+bankDepositColumns+` FROM bank_deposits WHERE id = $1`, id))
	if err != nil {
		return nil, readError("get bank deposit", err)
	}
	return b, nil
}

func (r *BankDepositRepo) Create(ctx context.Context, b *entity.BankDeposit) (*entity.BankDeposit, error) {
	query := `
		INSERT INTO bank_deposits (date, reference, amount, receipt_photo_url, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + bankDepositColumns
	out, err := scanBankDeposit(r.q.QueryRow(ctx, query,
		dateArg(b.Date), textArg(b.Reference), b.Amount, textArg(b.ReceiptPhotoURL), textArg(b.UserID),
	))
	if err != nil {
		return nil, writeError("insert bank deposit", err)
	}
	return out, nil
}
