package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.StandardOrderRepository = (*StandardOrderRepo)(nil)

const standardOrderColumns = `id, COALESCE(pickup_location, ''), COALESCE(delivery_location, ''),
	delivery_amount, operation_date, created_at`

// StandardOrderRepo pedidos estándar.
type StandardOrderRepo struct {
	q Querier
}

// NewStandardOrderRepository construye el adaptador.
func NewStandardOrderRepository(q Querier) *StandardOrderRepo {
	return &StandardOrderRepo{q: q}
}

func scanStandardOrder(s pgxScanner) (*entity.StandardOrder, error) {
	var o entity.StandardOrder
	var od pgtype.Date
	if err := s.Scan(&o.ID, &o.PickupLocation, &o.DeliveryLocation, &o.DeliveryAmount, &od, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.OperationDate = toDate(od)
	return &o, nil
}

func (r *StandardOrderRepo) List(ctx context.Context) ([]*entity.StandardOrder, error) {
	rows, err := r.q.Query(ctx, `SELECT `+standardOrderColumns+` FROM standard_orders ORDER BY operation_date DESC, created_at DESC`)
	if err != nil {
		return nil, readError("list standard orders", err)
	}
	return collect(rows, scanStandardOrder)
}

func (r *StandardOrderRepo) GetByID(ctx context.Context, id string) (*entity.StandardOrder, error) {
	o, err := scanStandardOrder(r.q.QueryRow(ctx, `SELECT `+standardOrderColumns+` FROM standard_orders WHERE id = $1`, id))
	if err != nil {
		return nil, readError("get standard order", err)
	}
	return o, nil
}

func (r *StandardOrderRepo) Create(ctx context.Context, o *entity.StandardOrder) (*entity.StandardOrder, error) {
	query := `
		INSERT INTO standard_orders (pickup_location, delivery_location, delivery_amount, operation_date)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + standardOrderColumns
	out, err := scanStandardOrder(r.q.QueryRow(ctx, query,
		textArg(o.PickupLocation), textArg(o.DeliveryLocation), o.DeliveryAmount, dateArg(o.OperationDate),
	))
	if err != nil {
		return nil, writeError("insert standard order", err)
	}
	return out, nil
}

func (r *StandardOrderRepo) Update(ctx context.Context, o *entity.StandardOrder) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE standard_orders SET pickup_location = $2, delivery_location = $3, delivery_amount = $4, operation_date = $5
		WHERE id = $1`,
		o.ID, textArg(o.PickupLocation), textArg(o.DeliveryLocation), o.DeliveryAmount, dateArg(o.OperationDate),
	)
	return execOne(tag, err, "update standard order")
}

func (r *StandardOrderRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM standard_orders WHERE id = $1`, id)
	return execOne(tag, err, "delete standard order")
}
