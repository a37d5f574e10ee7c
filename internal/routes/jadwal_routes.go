package routes

import (
	"absensi-danton/internal/handler"
	"absensi-danton/internal/middleware"
	"absensi-danton/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJadwalRoutes(app *fiber.App, db *gorm.DB, secret string) {
	jadwalRepo := repository.NewJadwalRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	pegawaiRepo := repository.NewPegawaiRepository(db)
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewJadwalHandler(jadwalRepo, unitRepo, pegawaiRepo, userRepo)

	app.Get("/kelola_jadwal", middleware.Auth(secret), middleware.Role("admin"), hdl.Kelola)
	app.Post("/kelola_jadwal", middleware.Auth(secret), middleware.Role("admin"), hdl.Create)
}
