package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

// ActivityUseCase consulta del journal de actividad.
type ActivityUseCase struct {
	repo repository.ActivityLogRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityLogRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// List entradas filtradas por usuario, acción y fechas (inclusivas), más recientes primero.
func (uc *ActivityUseCase) List(ctx context.Context, q dto.ActivityQuery) (*dto.ActivityPage, error) {
	q.DefaultPage()
	f := repository.ActivityFilter{UserID: q.UserID, Action: q.Action, Limit: q.Limit, Offset: q.Offset}
	if q.From != "" {
		d, err := entity.ParseDate(q.From)
		if err != nil {
			return nil, fmt.Errorf("%w: from", domain.ErrInvalidInput)
		}
		f.From = d.Time
	}
	if q.To != "" {
		d, err := entity.ParseDate(q.To)
		if err != nil {
			return nil, fmt.Errorf("%w: to", domain.ErrInvalidInput)
		}
		f.To = d.AddDate(0, 0, 1) // exclusivo en el repositorio: incluye todo el día
	}
	if !f.From.IsZero() && !f.To.IsZero() && !f.To.After(f.From) {
		return nil, fmt.Errorf("%w: rango de fechas", domain.ErrInvalidInput)
	}
	items, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*entity.ActivityLogEntry{}
	}
	return &dto.ActivityPage{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}
