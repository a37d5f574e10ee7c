package middleware

import (
	"absensi-danton/internal/helpers"

	"github.com/gofiber/fiber/v2"
)

// Role untuk halaman: role tidak cocok berarti kembali ke login.
func Role(allowed string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != allowed {
			helpers.SetFlash(c, "Akses hanya untuk "+allowed)
			return c.Redirect("/")
		}
		return c.Next()
	}
}

// RoleOr403 untuk rekap/export: role tidak cocok berarti 403 polos.
func RoleOr403(allowed string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != allowed {
			return c.Status(fiber.StatusForbidden).SendString("Unauthorized")
		}
		return c.Next()
	}
}
