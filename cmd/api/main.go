package main

import (
	"fmt"
	"log"

	"absensi-danton/config"
	"absensi-danton/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	secret := config.MustGetEnv("SECRET_KEY")

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, config.DB, secret)
	routes.SetupDashboardRoutes(app, secret)
	routes.SetupAbsenRoutes(app, config.DB, secret)
	routes.SetupJadwalRoutes(app, config.DB, secret)
	routes.SetupRekapRoutes(app, config.DB, secret)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	log.Fatal(app.Listen(":" + port))
}
