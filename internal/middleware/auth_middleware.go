package middleware

import (
	"absensi-danton/internal/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie membawa token sesi bertanda tangan (stateless).
const SessionCookie = "session_token"

func parseSession(c *fiber.Ctx, secret string) bool {
	raw := c.Cookies(SessionCookie)
	if raw == "" {
		return false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	// Hidrasi locals yang dipakai handler. Klaim angka datang sebagai float64.
	if v, ok := claims["user_id"].(string); ok {
		c.Locals("user_id", v)
	}
	if v, ok := claims["username"].(string); ok {
		c.Locals("username", v)
	}
	if v, ok := claims["role"].(string); ok {
		c.Locals("role", v)
	}
	if v, ok := claims["unit_id"].(float64); ok {
		c.Locals("unit_id", int(v))
	}
	if v, ok := claims["id_pegawai"].(float64); ok {
		c.Locals("id_pegawai", int(v))
	}
	if v, ok := claims["is_danton_today"].(bool); ok && v {
		c.Locals("is_danton_today", true)
		if u, ok := claims["danton_unit_id"].(float64); ok {
			c.Locals("danton_unit_id", int(u))
		}
	}

	return c.Locals("user_id") != nil
}

// Auth untuk halaman: tanpa sesi valid, kembali ke form login.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseSession(c, secret) {
			helpers.SetFlash(c, "Silakan login terlebih dahulu")
			return c.Redirect("/")
		}
		return c.Next()
	}
}

// AuthOr403 untuk halaman rekap/export: tanpa sesi valid, jawab 403 polos.
func AuthOr403(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseSession(c, secret) {
			return c.Status(fiber.StatusForbidden).SendString("Unauthorized")
		}
		return c.Next()
	}
}

// ClearSession menghapus cookie sesi (logout).
func ClearSession(c *fiber.Ctx) {
	c.ClearCookie(SessionCookie)
}
