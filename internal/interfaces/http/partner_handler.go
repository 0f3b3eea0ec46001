package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/usecase"
)

// PartnerHandler maneja los partenaires (comercios cuyos paquetes entrega la agencia).
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// List godoc
// @Summary      Listar partenaires
// @Description  Un usuario partner solo ve su propio partenaire.
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   entity.Partner
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetGrant(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear partenaire
// @Description  El código ENOxxxx lo genera el servidor y sirve de id.
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "Datos del partenaire"
// @Success      201   {object}  entity.Partner
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/partners [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Add(c.Context(), GetGrant(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar partenaire
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "Código del partenaire"
// @Param        body  body  dto.UpdatePartnerRequest  true  "Campos a actualizar"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [put]
func (h *PartnerHandler) Update(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	var in dto.UpdatePartnerRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar partenaire y sus dependientes
// @Tags         partners
// @Security     Bearer
// @Param        id   path  string  true  "Código del partenaire"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [delete]
func (h *PartnerHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.Context(), GetGrant(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReassignCodes renumera los códigos ENOxxxx de forma contigua.
// POST /api/partners/reassign-codes
func (h *PartnerHandler) ReassignCodes(c *fiber.Ctx) error {
	n, err := h.uc.ReassignCodes(c.Context(), GetGrant(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ReassignCodesResponse{Updated: n})
}

// Invite godoc
// @Summary      Invitar a un usuario del partenaire
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Código del partenaire"
// @Param        body  body  dto.InvitePartnerRequest  false  "email (por defecto el del partenaire)"
// @Success      201   {object}  dto.InviteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/partners/{id}/invite [post]
func (h *PartnerHandler) Invite(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	var in dto.InvitePartnerRequest
	if len(c.Body()) > 0 {
		if ok, err := bindBody(c, &in); !ok {
			return err
		}
	}
	out, err := h.uc.Invite(c.Context(), GetGrant(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
