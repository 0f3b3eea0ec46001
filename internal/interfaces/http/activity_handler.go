package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/usecase"
)

// ActivityHandler journal de actividad.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Journal de actividad
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Filtrar por usuario"
// @Param        action   query  string  false  "Filtrar por acción"
// @Param        from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Param        limit    query  int     false  "Máximo de entradas (default 100, máx. 500)"
// @Param        offset   query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ActivityPage
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/activity-log [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var q dto.ActivityQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
