package repository

import (
	"context"
	"encoding/json"
)

// ChangeType tipo de evento de cambio.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// ChangeEvent cambio de una fila publicado por el servidor.
// Record viene vacío cuando la fila no cabe en el payload; el consumidor relee por ID.
type ChangeEvent struct {
	Table     string          `json:"table"`
	Type      ChangeType      `json:"type"`
	ID        string          `json:"id"`
	Record    json.RawMessage `json:"record,omitempty"`
	OldRecord json.RawMessage `json:"old_record,omitempty"`
}

// ChangeFeed flujo de eventos de cambio de las tablas espejadas.
// Listen bloquea entregando eventos a handler hasta que ctx se cancela.
type ChangeFeed interface {
	Listen(ctx context.Context, handler func(ChangeEvent)) error
}
