package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, type, amount, COALESCE(category, ''), COALESCE(description, ''), operation_date, created_at`

// TransactionRepo libro de ingresos y gastos.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func scanTransaction(s pgxScanner) (*entity.Transaction, error) {
	var t entity.Transaction
	var od pgtype.Date
	if err := s.Scan(&t.ID, &t.Type, &t.Amount, &t.Category, &t.Description, &od, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.OperationDate = toDate(od)
	return &t, nil
}

func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY operation_date DESC, created_at DESC`)
	if err != nil {
		return nil, readError("list transactions", err)
	}
	return collect(rows, scanTransaction)
}

func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t, err := scanTransaction(r.q.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		return nil, readError("get transaction", err)
	}
	return t, nil
}

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	query := `
		INSERT INTO transactions (type, amount, category, description, operation_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + transactionColumns
	out, err := scanTransaction(r.q.QueryRow(ctx, query,
		t.Type, t.Amount, textArg(t.Category), textArg(t.Description), dateArg(t.OperationDate),
	))
	if err != nil {
		return nil, writeError("insert transaction", err)
	}
	return out, nil
}

func (r *TransactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE transactions SET type = $2, amount = $3, category = $4, description = $5, operation_date = $6
		WHERE id = $1`,
		t.ID, t.Type, t.Amount, textArg(t.Category), textArg(t.Description), dateArg(t.OperationDate),
	)
	return execOne(tag, err, "update transaction")
}

func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	return execOne(tag, err, "delete transaction")
}
