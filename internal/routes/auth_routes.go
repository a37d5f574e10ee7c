package routes

import (
	"absensi-danton/internal/handler"
	"absensi-danton/internal/repository"
	"absensi-danton/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, secret string) {
	userRepo := repository.NewUserRepository(db)
	jadwalRepo := repository.NewJadwalRepository(db)
	authUsecase := usecase.NewAuthUsecase(userRepo, jadwalRepo, secret)
	hdl := handler.NewAuthHandler(authUsecase)

	app.Get("/", hdl.ShowLogin)
	app.Post("/", hdl.Login)
	app.Get("/logout", hdl.Logout)
}
