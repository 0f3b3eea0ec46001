package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/notification"
)

// NotificationHandler bandeja de alertas del usuario.
type NotificationHandler struct {
	svc *notification.Service
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(svc *notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// ensureSession reabre la bandeja si el proceso se reinició con el token aún vigente.
func (h *NotificationHandler) ensureSession(c *fiber.Ctx) string {
	g := GetGrant(c)
	if !h.svc.HasSession(g.UserID) {
		h.svc.StartSession(g)
	}
	return g.UserID
}

// List godoc
// @Summary      Notificaciones del usuario
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := h.ensureSession(c)
	return c.JSON(fiber.Map{
		"unread": h.svc.UnreadCount(userID),
		"items":  h.svc.List(userID),
	})
}

// UnreadCount contador para el badge del menú. GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userID := h.ensureSession(c)
	return c.JSON(fiber.Map{"unread": h.svc.UnreadCount(userID)})
}

// MarkRead POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	if err := h.svc.MarkRead(h.ensureSession(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	h.svc.MarkAllRead(h.ensureSession(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Clear DELETE /api/notifications
func (h *NotificationHandler) Clear(c *fiber.Ctx) error {
	h.svc.Clear(h.ensureSession(c))
	return c.SendStatus(fiber.StatusNoContent)
}
