package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.SalaryRepository = (*SalaryRepo)(nil)

const salaryColumns = `id, user_id::text, COALESCE(beneficiary_name, ''), amount, payment_date,
	COALESCE(notes, ''), created_at`

// SalaryRepo pagos de nómina.
type SalaryRepo struct {
	q Querier
}

// NewSalaryRepository construye el adaptador.
func NewSalaryRepository(q Querier) *SalaryRepo {
	return &SalaryRepo{q: q}
}

func scanSalary(s pgxScanner) (*entity.Salary, error) {
	var sal entity.Salary
	var pd pgtype.Date
	if err := s.Scan(&sal.ID, &sal.UserID, &sal.BeneficiaryName, &sal.Amount, &pd, &sal.Notes, &sal.CreatedAt); err != nil {
		return nil, err
	}
	sal.PaymentDate = toDate(pd)
	return &sal, nil
}

func (r *SalaryRepo) List(ctx context.Context) ([]*entity.Salary, error) {
	rows, err := r.q.Query(ctx, `SELECT `+salaryColumns+` FROM salaries ORDER BY payment_date DESC, created_at DESC`)
	if err != nil {
		return nil, readError("list salaries", err)
	}
	return collect(rows, scanSalary)
}

func (r *SalaryRepo) GetByID(ctx context.Context, id string) (*entity.Salary, error) {
	sal, err := scanSalary(r.q.QueryRow(ctx, `SELECT `+salaryColumns+` FROM salaries WHERE id = $1`, id))
	if err != nil {
		return nil, readError("get salary", err)
	}
	return sal, nil
}

func (r *SalaryRepo) Create(ctx context.Context, s *entity.Salary) (*entity.Salary, error) {
	query := `
		INSERT INTO salaries (user_id, beneficiary_name, amount, payment_date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + salaryColumns
	out, err := scanSalary(r.q.QueryRow(ctx, query,
		s.UserID, textArg(s.BeneficiaryName), s.Amount, dateArg(s.PaymentDate), textArg(s.Notes),
	))
	if err != nil {
		return nil, writeError("insert salary", err)
	}
	return out, nil
}

func (r *SalaryRepo) Update(ctx context.Context, s *entity.Salary) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE salaries SET user_id = $2, beneficiary_name = $3, amount = $4, payment_date = $5, notes = $6
		WHERE id = $1`,
		s.ID, s.UserID, textArg(s.BeneficiaryName), s.Amount, dateArg(s.PaymentDate), textArg(s.Notes),
	)
	return execOne(tag, err, "update salary")
}

func (r *SalaryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM salaries WHERE id = $1`, id)
	return execOne(tag, err, "delete salary")
}
