package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

func TestDecodeChange_Completo(t *testing.T) {
	ev, err := decodeChange(`{"table":"products","type":"UPDATE","id":"p1","record":{"id":"p1","stock":3},"old_record":null}`)
	require.NoError(t, err)
	assert.Equal(t, "products", ev.Table)
	assert.Equal(t, repository.ChangeUpdate, ev.Type)
	assert.Equal(t, "p1", ev.ID)
	assert.JSONEq(t, `{"id":"p1","stock":3}`, string(ev.Record))
	assert.Nil(t, ev.OldRecord)
}

func TestDecodeChange_IDDesdeElRegistro(t *testing.T) {
	ev, err := decodeChange(`{"table":"partners","type":"DELETE","old_record":{"id":"ENO0003"}}`)
	require.NoError(t, err)
	assert.Equal(t, "ENO0003", ev.ID)
	assert.Nil(t, ev.Record)
}

func TestDecodeChange_SoloID(t *testing.T) {
	ev, err := decodeChange(`{"table":"stock_movements","type":"INSERT","id":"m9","record":null}`)
	require.NoError(t, err)
	assert.Equal(t, "m9", ev.ID)
	assert.Nil(t, ev.Record, "payload recortado: el consumidor relee la fila")
}

func TestDecodeChange_Invalido(t *testing.T) {
	for _, payload := range []string{
		`no-json`,
		`{"type":"INSERT","id":"x"}`,
		`{"table":"products","type":"TRUNCATE","id":"x"}`,
		`{"table":"products","type":"INSERT"}`,
	} {
		_, err := decodeChange(payload)
		assert.Error(t, err, payload)
	}
}
