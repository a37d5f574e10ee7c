package main

import (
	"fmt"
	"log"

	"absensi-danton/config"
	"absensi-danton/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	// Migrasi hanya di seeder; server tidak pernah membuat tabel sendiri.
	database.Migrate(config.DB)
	database.SeedAll(config.DB)

	fmt.Println("Seeding Selesai!")
}
