package routes

import (
	"absensi-danton/internal/handler"
	"absensi-danton/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, secret string) {
	hdl := handler.NewDashboardHandler()

	app.Get("/dashboard_admin", middleware.Auth(secret), middleware.Role("admin"), hdl.Admin)
	app.Get("/dashboard_danton", middleware.Auth(secret), hdl.Danton)
	app.Get("/dashboard_pegawai", middleware.Auth(secret), hdl.Pegawai)
}
