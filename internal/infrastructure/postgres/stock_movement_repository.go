package postgres

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, type, quantity, previous_stock, new_stock,
	COALESCE(reason, ''), COALESCE(created_by::text, ''), created_at`

// StockMovementRepo historial de movimientos (append-only).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func scanMovement(s pgxScanner) (*entity.StockMovement, error) {
	var m entity.StockMovement
	if err := s.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.PreviousStock, &m.NewStock,
		&m.Reason, &m.CreatedBy, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// List devuelve los movimientos del más reciente al más antiguo.
func (r *StockMovementRepo) List(ctx context.Context) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, `SELECT `+movementColumns+` FROM stock_movements ORDER BY created_at DESC`)
	if err != nil {
		return nil, readError("list stock movements", err)
	}
	return collect(rows, scanMovement)
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM stock_movements WHERE id = $1`, id))
	if err != nil {
		return nil, readError("get stock movement", err)
	}
	return m, nil
}

// Create registra el movimiento.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	query := `
		INSERT INTO stock_movements (product_id, type, quantity, previous_stock, new_stock, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + movementColumns
	out, err := scanMovement(r.q.QueryRow(ctx, query,
		m.ProductID, m.Type, m.Quantity, m.PreviousStock, m.NewStock, textArg(m.Reason), textArg(m.CreatedBy),
	))
	if err != nil {
		return nil, writeError("insert stock movement", err)
	}
	return out, nil
}
