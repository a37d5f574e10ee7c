package routes

import (
	"absensi-danton/internal/handler"
	"absensi-danton/internal/middleware"
	"absensi-danton/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAbsenRoutes(app *fiber.App, db *gorm.DB, secret string) {
	userRepo := repository.NewUserRepository(db)
	absensiRepo := repository.NewAbsensiRepository(db)
	hdl := handler.NewAbsenHandler(userRepo, absensiRepo)

	app.Get("/absen-danton", middleware.Auth(secret), hdl.ShowForm)
	app.Post("/absen-danton", middleware.Auth(secret), hdl.Submit)
}
