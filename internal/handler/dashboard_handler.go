package handler

import (
	"absensi-danton/internal/helpers"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	return c.Render("dashboard_admin", fiber.Map{
		"Username": c.Locals("username"),
		"Flash":    helpers.TakeFlash(c),
	})
}

func (h *DashboardHandler) Danton(c *fiber.Ctx) error {
	if danton, _ := c.Locals("is_danton_today").(bool); !danton {
		helpers.SetFlash(c, "Anda tidak dijadwalkan sebagai danton hari ini")
		return c.Redirect("/")
	}
	return c.Render("dashboard_danton", fiber.Map{
		"Username": c.Locals("username"),
		"Flash":    helpers.TakeFlash(c),
	})
}

// Pegawai biasa saja: danton hari ini tidak boleh melihat halaman ini.
func (h *DashboardHandler) Pegawai(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	danton, _ := c.Locals("is_danton_today").(bool)
	if role != "pegawai" || danton {
		helpers.SetFlash(c, "Akses hanya untuk pegawai biasa")
		return c.Redirect("/")
	}
	return c.Render("dashboard_pegawai", fiber.Map{
		"Username": c.Locals("username"),
		"Flash":    helpers.TakeFlash(c),
	})
}
