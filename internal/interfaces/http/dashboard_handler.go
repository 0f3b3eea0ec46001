package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/eno-livraison-api/internal/application/analytics"
	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
)

// DashboardHandler maneja los tableros (accueil, CEO, estadísticas, partenaire).
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Home devuelve los contadores de la página de inicio, acotados al partenaire si aplica.
// GET /api/dashboard/home
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	out, err := h.uc.Home(GetGrant(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CEO godoc
// @Summary      Tablero del CEO
// @Description  Totales históricos, totales del periodo y series diarias de ingresos y gastos.
//
//	Sin fechas, las series cubren los últimos 30 días.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        preset  query  string  false  "today | this_week | this_month | last_month"
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.CEODashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/ceo [get]
func (h *DashboardHandler) CEO(c *fiber.Ctx) error {
	var q dto.RangeQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.CEO(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Statistics gastos por categoría, salidas por producto y ranking de partenaires.
// GET /api/dashboard/statistics
func (h *DashboardHandler) Statistics(c *fiber.Ctx) error {
	var q dto.RangeQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.Statistics(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Partner godoc
// @Summary      Tablero del partenaire
// @Description  Un usuario partner siempre ve su propio partenaire; el personal indica partner_id.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        partner_id  query  string  false  "Código del partenaire (personal de la agencia)"
// @Param        preset      query  string  false  "today | this_week | this_month | last_month"
// @Param        from        query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to          query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.PartnerDashboardDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/partner [get]
func (h *DashboardHandler) Partner(c *fiber.Ctx) error {
	var q dto.RangeQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.Partner(GetGrant(c), c.Query("partner_id"), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
