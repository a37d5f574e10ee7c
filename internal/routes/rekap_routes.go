package routes

import (
	"absensi-danton/internal/handler"
	"absensi-danton/internal/middleware"
	"absensi-danton/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRekapRoutes(app *fiber.App, db *gorm.DB, secret string) {
	absensiRepo := repository.NewAbsensiRepository(db)
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewRekapHandler(absensiRepo, userRepo)

	// Rute rekap menjawab 403 polos, bukan redirect ke login.
	app.Get("/rekap_absensi_pegawai", middleware.AuthOr403(secret), middleware.RoleOr403("admin"), hdl.RekapAll)
	app.Get("/rekap_pegawai", middleware.AuthOr403(secret), middleware.RoleOr403("pegawai"), hdl.RekapSaya)
	app.Get("/export_excel", middleware.AuthOr403(secret), middleware.RoleOr403("admin"), hdl.ExportExcel)
}
