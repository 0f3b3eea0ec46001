package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
)

func statusFor(t *testing.T, err error) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return writeError(c, err) })
	resp, e := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, e)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestWriteError_MapeaErroresDeDominio(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("%w: amount", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrEmailAlreadyExists, http.StatusConflict, "EMAIL_EXISTS"},
		{domain.ErrInsufficientStock, http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrNotLoaded, http.StatusServiceUnavailable, "NOT_LOADED"},
		{errors.New("conexión perdida"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		status, body := statusFor(t, tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Contains(t, body, tc.code)
	}
}

func TestBindBody_ValidaEtiquetas(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var in dto.TransactionRequest
		if ok, err := bindBody(c, &in); !ok {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	post := func(body string) (int, string) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(b)
	}

	status, body := post(`{"type":"gift","amount":"10","operation_date":"2024-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Type: oneof")

	status, _ = post(`{"type":"income","amount":"10"}`)
	assert.Equal(t, http.StatusBadRequest, status, "operation_date es requerido")

	status, body = post(`{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "INVALID_BODY")

	status, _ = post(`{"type":"income","amount":"10","operation_date":"2024-01-01"}`)
	assert.Equal(t, http.StatusNoContent, status)
}
