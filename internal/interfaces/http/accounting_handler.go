package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/usecase"
)

// AccountingHandler resúmenes contables y reset.
type AccountingHandler struct {
	uc *usecase.AccountingUseCase
}

// NewAccountingHandler construye el handler.
func NewAccountingHandler(uc *usecase.AccountingUseCase) *AccountingHandler {
	return &AccountingHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen contable del periodo
// @Description  Sin preset ni fechas se resumen todas las filas.
// @Tags         accounting
// @Security     Bearer
// @Produce      json
// @Param        preset  query  string  false  "today | this_week | this_month | last_month"
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.AccountingSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/accounting/summary [get]
func (h *AccountingHandler) Summary(c *fiber.Ctx) error {
	var q dto.RangeQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.Summary(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PartnerStats godoc
// @Summary      Acumulados por partenaire
// @Tags         accounting
// @Security     Bearer
// @Produce      json
// @Param        preset  query  string  false  "today | this_week | this_month | last_month"
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        sort    query  string  false  "name | turnover | delivery_fees | packages"
// @Param        order   query  string  false  "asc | desc (default desc)"
// @Success      200  {array}   accounting.PartnerStat
// @Router       /api/accounting/partner-stats [get]
func (h *AccountingHandler) PartnerStats(c *fiber.Ctx) error {
	var q dto.RangeQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	desc := !strings.EqualFold(c.Query("order"), "asc")
	out, err := h.uc.PartnerStats(q, c.Query("sort", "turnover"), desc)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reset vacía los datos contables. POST /api/accounting/reset (solo CEO)
func (h *AccountingHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(c.Context(), GetGrant(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
