package datasync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

// binding operaciones de una tabla espejada, independientes del tipo de fila.
// Las funciones devueltas se ejecutan con el lock del espejo tomado.
type binding interface {
	name() string
	fetch(ctx context.Context) (func(), error)
	prepare(ctx context.Context, ev repository.ChangeEvent) (func(), error)
	count() int
}

// table colección en memoria de una tabla remota.
// Las filas se tratan como inmutables: un cambio reemplaza el puntero.
type table[T any] struct {
	tableName string
	reader    repository.TableReader[T]
	id        func(*T) string
	prepend   bool // inserciones al inicio (orden más reciente primero)
	rows      []*T
}

func newTable[T any](name string, reader repository.TableReader[T], id func(*T) string, prepend bool) *table[T] {
	return &table[T]{tableName: name, reader: reader, id: id, prepend: prepend}
}

func (t *table[T]) name() string { return t.tableName }

func (t *table[T]) count() int { return len(t.rows) }

func (t *table[T]) fetch(ctx context.Context) (func(), error) {
	rows, err := t.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	return func() { t.rows = rows }, nil
}

// prepare decodifica la fila del evento (o la relee si el payload no la trae)
// y devuelve la mutación a aplicar.
func (t *table[T]) prepare(ctx context.Context, ev repository.ChangeEvent) (func(), error) {
	switch ev.Type {
	case repository.ChangeDelete:
		id := ev.ID
		if id == "" {
			old, err := t.decode(ev.OldRecord)
			if err != nil || old == nil {
				return nil, fmt.Errorf("delete sin id en %s", t.tableName)
			}
			id = t.id(old)
		}
		return func() { t.remove(id) }, nil
	case repository.ChangeInsert, repository.ChangeUpdate:
		row, err := t.decode(ev.Record)
		if err != nil {
			return nil, fmt.Errorf("decodificar %s: %w", t.tableName, err)
		}
		if row == nil {
			if ev.ID == "" {
				return nil, fmt.Errorf("evento sin fila ni id en %s", t.tableName)
			}
			row, err = t.reader.GetByID(ctx, ev.ID)
			if err != nil {
				return nil, fmt.Errorf("releer %s/%s: %w", t.tableName, ev.ID, err)
			}
		}
		if ev.Type == repository.ChangeInsert {
			return func() { t.insert(row) }, nil
		}
		return func() { t.replace(row) }, nil
	}
	return nil, fmt.Errorf("tipo de evento desconocido %q", ev.Type)
}

func (t *table[T]) decode(raw json.RawMessage) (*T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var row T
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *table[T]) indexOf(id string) int {
	for i, r := range t.rows {
		if t.id(r) == id {
			return i
		}
	}
	return -1
}

// insert agrega la fila. Si ya existe (un refresco la trajo antes que el evento) se reemplaza.
func (t *table[T]) insert(row *T) {
	if i := t.indexOf(t.id(row)); i >= 0 {
		t.rows[i] = row
		return
	}
	next := make([]*T, 0, len(t.rows)+1)
	if t.prepend {
		next = append(next, row)
		next = append(next, t.rows...)
	} else {
		next = append(next, t.rows...)
		next = append(next, row)
	}
	t.rows = next
}

// replace sustituye en sitio; si la fila no está no hace nada.
func (t *table[T]) replace(row *T) {
	i := t.indexOf(t.id(row))
	if i < 0 {
		return
	}
	next := make([]*T, len(t.rows))
	copy(next, t.rows)
	next[i] = row
	t.rows = next
}

func (t *table[T]) remove(id string) {
	i := t.indexOf(id)
	if i < 0 {
		return
	}
	next := make([]*T, 0, len(t.rows)-1)
	next = append(next, t.rows[:i]...)
	next = append(next, t.rows[i+1:]...)
	t.rows = next
}
