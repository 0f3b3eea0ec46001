package repository

import (
	"context"
	"time"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// ActivityFilter criterios de consulta del journal. Campos vacíos no filtran.
// From es inclusivo y To exclusivo.
type ActivityFilter struct {
	UserID string
	Action string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// ActivityLogRepository puerto del journal de actividad (append-only).
type ActivityLogRepository interface {
	Append(ctx context.Context, e *entity.ActivityLogEntry) error
	// List devuelve las entradas más recientes primero.
	List(ctx context.Context, f ActivityFilter) ([]*entity.ActivityLogEntry, error)
}
