package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP de movimientos y reposición (protegido).
type InventoryHandler struct {
	uc            *inventory.RegisterMovementUseCase
	replenishment *inventory.ReplenishmentUseCase
	loaded        func() bool
}

// NewInventoryHandler construye el handler. loaded indica si el espejo ya tiene datos.
func NewInventoryHandler(uc *inventory.RegisterMovementUseCase, replenishment *inventory.ReplenishmentUseCase, loaded func() bool) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment, loaded: loaded}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  in suma, out resta, adjustment fija el stock final. Un partner solo
//
//	mueve los productos de su partenaire.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, type, quantity, reason"
// @Success      201   {object}  entity.StockMovement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	mv, err := h.uc.RegisterMovement(c.Context(), inventory.MovementInput{
		Actor:     GetGrant(c),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mv)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos en stock bajo con la cantidad sugerida, priorizados por las
//
//	salidas de los últimos 90 días.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/replenishment-list [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	if h.loaded != nil && !h.loaded() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "NOT_LOADED", Message: "datos aún no cargados"})
	}
	list := h.replenishment.GenerateReplenishmentList(GetGrant(c))
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}
