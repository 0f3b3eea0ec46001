package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/datasync"
	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
)

// SyncHandler estado y refresco manual del espejo.
type SyncHandler struct {
	mirror *datasync.Mirror
}

// NewSyncHandler construye el handler.
func NewSyncHandler(mirror *datasync.Mirror) *SyncHandler {
	return &SyncHandler{mirror: mirror}
}

// Status godoc
// @Summary      Estado del espejo de datos
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  datasync.Status
// @Router       /api/sync/status [get]
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.mirror.Status())
}

// Refresh godoc
// @Summary      Refresco manual del espejo
// @Description  Relee todas las tablas; si alguna lectura falla se conservan los datos previos.
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  datasync.Status
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sync/refresh [post]
func (h *SyncHandler) Refresh(c *fiber.Ctx) error {
	if err := h.mirror.Refresh(c.Context()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REFRESH_FAILED", Message: err.Error()})
	}
	return c.JSON(h.mirror.Status())
}
