package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
)

var validate = validator.New()

// httpError estado y código de respuesta de un error de dominio.
type httpError struct {
	status int
	code   string
}

var domainErrors = []struct {
	err error
	out httpError
}{
	{domain.ErrNotFound, httpError{fiber.StatusNotFound, "NOT_FOUND"}},
	{domain.ErrUserNotFound, httpError{fiber.StatusNotFound, "USER_NOT_FOUND"}},
	{domain.ErrInvalidInput, httpError{fiber.StatusBadRequest, "VALIDATION"}},
	{domain.ErrInvalidPartnerCode, httpError{fiber.StatusBadGateway, "INVALID_PARTNER_CODE"}},
	{domain.ErrDuplicate, httpError{fiber.StatusConflict, "DUPLICATE"}},
	{domain.ErrEmailAlreadyExists, httpError{fiber.StatusConflict, "EMAIL_EXISTS"}},
	{domain.ErrConflict, httpError{fiber.StatusConflict, "CONFLICT"}},
	{domain.ErrInsufficientStock, httpError{fiber.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"}},
	{domain.ErrUnauthorized, httpError{fiber.StatusUnauthorized, "UNAUTHORIZED"}},
	{domain.ErrForbidden, httpError{fiber.StatusForbidden, "FORBIDDEN"}},
	{domain.ErrNotLoaded, httpError{fiber.StatusServiceUnavailable, "NOT_LOADED"}},
}

// writeError traduce un error de los casos de uso a dto.ErrorResponse.
// Lo que no es un error de dominio sale como 500 INTERNAL.
func writeError(c *fiber.Ctx, err error) error {
	for _, d := range domainErrors {
		if errors.Is(err, d.err) {
			return c.Status(d.out.status).JSON(dto.ErrorResponse{Code: d.out.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// bindBody parsea el cuerpo JSON y corre las reglas `validate`.
// Si falla, ya escribió la respuesta 400 y devuelve false.
func bindBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return checkStruct(c, out)
}

// bindQuery igual que bindBody para los parámetros de consulta.
func bindQuery(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.QueryParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	return checkStruct(c, out)
}

func checkStruct(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return true, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

// requireParam devuelve el parámetro de ruta o escribe 400 MISSING_ID.
func requireParam(c *fiber.Ctx, name string) (string, bool, error) {
	v := strings.TrimSpace(c.Params(name))
	if v == "" {
		return "", false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: name + " es requerido"})
	}
	return v, true, nil
}
