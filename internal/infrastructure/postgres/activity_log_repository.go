package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

const defaultActivityLimit = 100

// ActivityLogRepo journal de actividad (append-only).
type ActivityLogRepo struct {
	pool *pgxpool.Pool
}

// NewActivityLogRepository construye el adaptador.
func NewActivityLogRepository(pool *pgxpool.Pool) *ActivityLogRepo {
	return &ActivityLogRepo{pool: pool}
}

// Append agrega una entrada. Details se guarda como jsonb.
func (r *ActivityLogRepo) Append(ctx context.Context, e *entity.ActivityLogEntry) error {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO activity_log (user_id, action, details) VALUES ($1, $2, $3)`,
		e.UserID, e.Action, details,
	)
	if err != nil {
		return writeError("insert activity log", err)
	}
	return nil
}

// List filtra por usuario, acción y fechas (To exclusivo), del más reciente al más antiguo.
func (r *ActivityLogRepo) List(ctx context.Context, f repository.ActivityFilter) ([]*entity.ActivityLogEntry, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.UserID != "" {
		add("a.user_id = $%d", f.UserID)
	}
	if f.Action != "" {
		add("a.action = $%d", f.Action)
	}
	if !f.From.IsZero() {
		add("a.created_at >= $%d", f.From)
	}
	if !f.To.IsZero() {
		add("a.created_at < $%d", f.To)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT a.id, a.user_id::text, COALESCE(p.full_name, ''), a.action, COALESCE(a.details, '{}'::jsonb), a.created_at
		FROM activity_log a
		LEFT JOIN profiles p ON p.id = a.user_id`)
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	args = append(args, limit, max(f.Offset, 0))
	sb.WriteString(fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list activity log: %w", err)
	}
	return collect(rows, func(s pgxScanner) (*entity.ActivityLogEntry, error) {
		var e entity.ActivityLogEntry
		if err := s.Scan(&e.ID, &e.UserID, &e.UserFullName, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		return &e, nil
	})
}
