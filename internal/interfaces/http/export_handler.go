package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/export"
)

// ExportHandler exportación de datos en PDF o Excel.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Categories lista las categorías exportables con su título. GET /api/export/categories
func (h *ExportHandler) Categories(c *fiber.Ctx) error {
	out := make([]fiber.Map, 0, len(export.Categories))
	for _, cat := range export.Categories {
		out = append(out, fiber.Map{"key": cat, "title": export.CategoryTitle(cat)})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar datos
// @Description  Una sección (PDF) u hoja (Excel) por categoría seleccionada.
// @Tags         export
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body  body  dto.ExportRequest  true  "format, categories, from, to"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/export [post]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	f, err := h.uc.Export(c.Context(), GetGrant(c), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, f.Name))
	return c.Send(f.Data)
}
