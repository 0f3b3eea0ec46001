package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
	"github.com/jhoicas/eno-livraison-api/pkg/logger"
)

var _ repository.ChangeFeed = (*ChangeListener)(nil)

const reconnectDelay = time.Second

// ChangeListener recibe los cambios que publica el trigger notify_change()
// por LISTEN/NOTIFY. Usa una conexión dedicada, sacada del pool.
type ChangeListener struct {
	pool    *pgxpool.Pool
	channel string
	log     *logger.Logger
}

// NewChangeListener construye el listener sobre el canal indicado.
func NewChangeListener(pool *pgxpool.Pool, channel string, log *logger.Logger) *ChangeListener {
	return &ChangeListener{pool: pool, channel: channel, log: log}
}

// Listen bloquea entregando eventos a handler hasta que ctx se cancela.
// Ante un error de conexión espera un segundo y vuelve a suscribirse.
func (l *ChangeListener) Listen(ctx context.Context, handler func(repository.ChangeEvent)) error {
	for {
		err := l.listenOnce(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.log.Warn().Err(err).Str("channel", l.channel).Msg("change feed: conexión perdida, reintentando")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *ChangeListener) listenOnce(ctx context.Context, handler func(repository.ChangeEvent)) error {
	pc, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire: %w", err)
	}
	// La conexión sale del pool: tras LISTEN no debe volver a repartirse.
	conn := pc.Hijack()
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	l.log.Info().Str("channel", l.channel).Msg("change feed suscrito")

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		ev, err := decodeChange(n.Payload)
		if err != nil {
			l.log.Warn().Err(err).Str("payload", n.Payload).Msg("change feed: payload inválido")
			continue
		}
		handler(ev)
	}
}

// decodeChange interpreta el payload {table, type, id, record, old_record}.
func decodeChange(payload string) (repository.ChangeEvent, error) {
	var ev repository.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return ev, err
	}
	if ev.Table == "" {
		return ev, errors.New("sin tabla")
	}
	switch ev.Type {
	case repository.ChangeInsert, repository.ChangeUpdate, repository.ChangeDelete:
	default:
		return ev, fmt.Errorf("tipo %q desconocido", ev.Type)
	}
	if isJSONNull(ev.Record) {
		ev.Record = nil
	}
	if isJSONNull(ev.OldRecord) {
		ev.OldRecord = nil
	}
	if ev.ID == "" {
		ev.ID = idFromRecord(ev.Record, ev.OldRecord)
	}
	if ev.ID == "" {
		return ev, errors.New("sin id")
	}
	return ev, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func idFromRecord(records ...json.RawMessage) string {
	for _, raw := range records {
		if len(raw) == 0 {
			continue
		}
		var row struct {
			ID string `json:"id"`
		}
		if json.Unmarshal(raw, &row) == nil && row.ID != "" {
			return row.ID
		}
	}
	return ""
}
