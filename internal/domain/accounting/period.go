// Package accounting agrega los asientos del espejo en resúmenes contables.
// Todos los totales se calculan en lectura; nada se guarda pre-agregado.
package accounting

import (
	"fmt"
	"time"

	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// DateRange rango de días de calendario, inclusivo en ambos extremos.
// Un extremo cero deja ese lado abierto; el rango cero incluye todo.
type DateRange struct {
	From entity.Date
	To   entity.Date
}

// IsZero indica si el rango no filtra nada.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains indica si la fecha cae dentro del rango.
func (r DateRange) Contains(d entity.Date) bool {
	if r.IsZero() {
		return true
	}
	if d.IsZero() {
		return false
	}
	if !r.From.IsZero() && d.Before(r.From.Time) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To.Time) {
		return false
	}
	return true
}

// ContainsTime como Contains sobre un timestamp (se trunca al día).
func (r DateRange) ContainsTime(t time.Time) bool {
	return r.Contains(entity.NewDate(t))
}

// Days enumera los días del rango (requiere ambos extremos).
func (r DateRange) Days() []entity.Date {
	if r.From.IsZero() || r.To.IsZero() || r.To.Before(r.From.Time) {
		return nil
	}
	var out []entity.Date
	for d := r.From.Time; !d.After(r.To.Time); d = d.AddDate(0, 0, 1) {
		out = append(out, entity.Date{Time: d})
	}
	return out
}

// Presets de periodo.
const (
	PresetToday     = "today"
	PresetThisWeek  = "this_week"
	PresetThisMonth = "this_month"
	PresetLastMonth = "last_month"
)

// PresetRange resuelve un preset relativo a now. La semana empieza el lunes.
func PresetRange(preset string, now time.Time) (DateRange, error) {
	today := entity.NewDate(now)
	switch preset {
	case PresetToday:
		return DateRange{From: today, To: today}, nil
	case PresetThisWeek:
		offset := (int(today.Weekday()) + 6) % 7 // lunes = 0
		start := today.AddDate(0, 0, -offset)
		return DateRange{From: entity.Date{Time: start}, To: entity.Date{Time: start.AddDate(0, 0, 6)}}, nil
	case PresetThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{From: entity.Date{Time: start}, To: entity.Date{Time: start.AddDate(0, 1, -1)}}, nil
	case PresetLastMonth:
		start := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		return DateRange{From: entity.Date{Time: start}, To: entity.Date{Time: start.AddDate(0, 1, -1)}}, nil
	}
	return DateRange{}, fmt.Errorf("%w: periodo %q", domain.ErrInvalidInput, preset)
}

// NewRange construye un rango desde strings opcionales ("" = abierto).
func NewRange(from, to string) (DateRange, error) {
	var r DateRange
	if from != "" {
		d, err := entity.ParseDate(from)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: fecha inicial", domain.ErrInvalidInput)
		}
		r.From = d
	}
	if to != "" {
		d, err := entity.ParseDate(to)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: fecha final", domain.ErrInvalidInput)
		}
		r.To = d
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From.Time) {
		return DateRange{}, fmt.Errorf("%w: la fecha final es anterior a la inicial", domain.ErrInvalidInput)
	}
	return r, nil
}

// Resolve aplica el preset si viene; si no, las fechas explícitas.
func Resolve(preset, from, to string, now time.Time) (DateRange, error) {
	if preset != "" {
		return PresetRange(preset, now)
	}
	return NewRange(from, to)
}
