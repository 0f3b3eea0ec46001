package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.PartnerDeliveryFeeRepository = (*PartnerDeliveryFeeRepo)(nil)

const feeColumns = `id, partner_id, COALESCE(turnover, 0), COALESCE(total_delivery_fee, 0),
	COALESCE(total_packages_delivered, 0), operation_date, created_at`

// PartnerDeliveryFeeRepo liquidaciones periódicas de partenaires.
type PartnerDeliveryFeeRepo struct {
	q Querier
}

// NewPartnerDeliveryFeeRepository construye el adaptador.
func NewPartnerDeliveryFeeRepository(q Querier) *PartnerDeliveryFeeRepo {
	return &PartnerDeliveryFeeRepo{q: q}
}

func scanFee(s pgxScanner) (*entity.PartnerDeliveryFee, error) {
	var f entity.PartnerDeliveryFee
	var od pgtype.Date
	if err := s.Scan(&f.ID, &f.PartnerID, &f.Turnover, &f.TotalDeliveryFee, &f.TotalPackagesDelivered, &od, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.OperationDate = toDate(od)
	return &f, nil
}

func (r *PartnerDeliveryFeeRepo) List(ctx context.Context) ([]*entity.PartnerDeliveryFee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+feeColumns+` FROM partner_delivery_fees ORDER BY operation_date DESC, created_at DESC`)
	if err != nil {
		return nil, readError("list partner delivery fees", err)
	}
	return collect(rows, scanFee)
}

func (r *PartnerDeliveryFeeRepo) GetByID(ctx context.Context, id string) (*entity.PartnerDeliveryFee, error) {
	f, err := scanFee(r.q.QueryRow(ctx, `SELECT `+feeColumns+` FROM partner_delivery_fees WHERE id = $1`, id))
	if err != nil {
		return nil, readError("get partner delivery fee", err)
	}
	return f, nil
}

func (r *PartnerDeliveryFeeRepo) Create(ctx context.Context, f *entity.PartnerDeliveryFee) (*entity.PartnerDeliveryFee, error) {
	query := `
		INSERT INTO partner_delivery_fees (partner_id, turnover, total_delivery_fee, total_packages_delivered, operation_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + feeColumns
	out, err := scanFee(r.q.QueryRow(ctx, query,
		f.PartnerID, f.Turnover, f.TotalDeliveryFee, f.TotalPackagesDelivered, dateArg(f.OperationDate),
	))
	if err != nil {
		return nil, writeError("insert partner delivery fee", err)
	}
	return out, nil
}

func (r *PartnerDeliveryFeeRepo) Update(ctx context.Context, f *entity.PartnerDeliveryFee) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE partner_delivery_fees
		SET partner_id = $2, turnover = $3, total_delivery_fee = $4, total_packages_delivered = $5, operation_date = $6
		WHERE id = $1`,
		f.ID, f.PartnerID, f.Turnover, f.TotalDeliveryFee, f.TotalPackagesDelivered, dateArg(f.OperationDate),
	)
	return execOne(tag, err, "update partner delivery fee")
}

func (r *PartnerDeliveryFeeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM partner_delivery_fees WHERE id = $1`, id)
	return execOne(tag, err, "delete partner delivery fee")
}
