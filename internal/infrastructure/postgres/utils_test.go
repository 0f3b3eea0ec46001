package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

func TestWriteError_MapeaCodigos(t *testing.T) {
	assert.ErrorIs(t, writeError("insert", &pgconn.PgError{Code: "23505"}), domain.ErrDuplicate)
	assert.ErrorIs(t, writeError("insert", &pgconn.PgError{Code: "23503"}), domain.ErrInvalidInput)

	other := errors.New("boom")
	assert.ErrorIs(t, writeError("insert", other), other)
}

func TestReadError_SinFilas(t *testing.T) {
	assert.ErrorIs(t, readError("get", pgx.ErrNoRows), domain.ErrNotFound)
	assert.NotErrorIs(t, readError("get", errors.New("x")), domain.ErrNotFound)
}

func TestExecOne(t *testing.T) {
	assert.ErrorIs(t, execOne(pgconn.NewCommandTag("UPDATE 0"), nil, "update"), domain.ErrNotFound)
	assert.NoError(t, execOne(pgconn.NewCommandTag("UPDATE 1"), nil, "update"))
}

func TestDateHelpers(t *testing.T) {
	assert.Nil(t, dateArg(entity.Date{}))
	d := entity.NewDate(time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, d.Time, dateArg(d))

	assert.True(t, toDate(pgtype.Date{}).IsZero())
	assert.Equal(t, "2026-03-09", toDate(pgtype.Date{Time: d.Time, Valid: true}).String())
	assert.Nil(t, textArg(""))
}
