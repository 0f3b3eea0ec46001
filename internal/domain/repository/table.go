package repository

import "context"

// TableReader lectura masiva y puntual de una tabla remota.
// List devuelve todas las filas (sin paginación); el espejo las mantiene en memoria.
type TableReader[T any] interface {
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
}

// TableWriter escritura directa sobre una tabla remota.
// Create devuelve la fila confirmada por el servidor (id y created_at asignados).
type TableWriter[T any] interface {
	Create(ctx context.Context, row *T) (*T, error)
	Update(ctx context.Context, row *T) error
	Delete(ctx context.Context, id string) error
}
