package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/pkg/jwt"
)

// Locals keys de la sesión en Fiber.
const (
	LocalUserID      = "user_id"
	LocalRole        = "role"
	LocalPartnerID   = "partner_id"
	LocalFullName    = "full_name"
	LocalPermissions = "permissions"
)

// AuthMiddleware valida el Bearer Token JWT y copia la sesión a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		s, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		role, err := access.ParseRole(s.Role)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no trae un rol válido"})
		}
		c.Locals(LocalUserID, s.UserID)
		c.Locals(LocalRole, role.String())
		c.Locals(LocalPartnerID, s.PartnerID)
		c.Locals(LocalFullName, s.FullName)
		c.Locals(LocalPermissions, s.Permissions)
		return c.Next()
	}
}

// RequireCapability deja pasar si el usuario tiene al menos una de las capacidades.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireCapability(caps ...access.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		g := GetGrant(c)
		if g.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "rol no encontrado en el token"})
		}
		if !g.CanAny(caps...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permiso para esta acción"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetPartnerID devuelve el partenaire ligado a la sesión (solo rol partner).
func GetPartnerID(c *fiber.Ctx) string {
	return localString(c, LocalPartnerID)
}

// GetGrant reconstruye las capacidades efectivas de la sesión.
func GetGrant(c *fiber.Ctx) access.Grant {
	perms, _ := c.Locals(LocalPermissions).([]string)
	return access.Grant{
		UserID:      GetUserID(c),
		FullName:    localString(c, LocalFullName),
		Role:        access.Role(GetRole(c)),
		PartnerID:   GetPartnerID(c),
		Permissions: perms,
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
