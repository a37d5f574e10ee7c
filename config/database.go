package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("Koneksi ke PostgreSQL (Supabase)...")

	// DSN lengkap via SUPABASE_DB_URL. SUPABASE_KEY ikut dicek di sini
	// karena proses tidak boleh jalan tanpa kredensial store.
	dsn := MustGetEnv("SUPABASE_DB_URL")
	MustGetEnv("SUPABASE_KEY")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Gagal konek DB: %v", err)
	}

	DB = db
	log.Println("DB connected.")
}
