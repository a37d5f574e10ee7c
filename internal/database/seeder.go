package database

import (
	"log"

	"absensi-danton/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Migrate membuat kelima tabel. Hanya dipanggil dari seeder: di produksi
// users/unit/pegawai diprovision di luar aplikasi dan hanya dibaca.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&model.User{},
		&model.Unit{},
		&model.Pegawai{},
		&model.JadwalDanton{},
		&model.Absensi{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate gagal: %v", err)
	}
}

// SeedAll mengisi data contoh supaya aplikasi langsung bisa dicoba:
// satu unit, satu admin, dan dua pegawai yang tertaut baris pegawai.
func SeedAll(db *gorm.DB) {
	// 1. Seed Unit
	unit := model.Unit{Nama: "Unit Keamanan"}
	db.FirstOrCreate(&unit, model.Unit{Nama: unit.Nama})

	// 2. Seed Akun Admin. Password disimpan apa adanya, mengikuti skema
	// provisioning lama (pencocokan login juga apa adanya).
	admin := model.User{
		ID:       uuid.NewString(),
		Username: "admin",
		Password: "admin123",
		Role:     "admin",
		Nama:     "Administrator Utama",
	}
	var existing model.User
	db.Where("username = ?", admin.Username).Limit(1).Find(&existing)
	if existing.ID == "" {
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("Seeding admin gagal: %v", err)
		} else {
			log.Println("Seeding Admin berhasil!")
		}
	}

	// 3. Seed Pegawai + akun User yang tertaut (id_pegawai = skema 2)
	names := []string{"Budi Santoso", "Siti Aminah"}
	usernames := []string{"budi", "siti"}
	for i, nama := range names {
		pegawai := model.Pegawai{Nama: nama, Unit: unit.Nama}
		db.FirstOrCreate(&pegawai, model.Pegawai{Nama: nama})

		var u model.User
		db.Where("username = ?", usernames[i]).Limit(1).Find(&u)
		if u.ID != "" {
			continue
		}
		user := model.User{
			ID:        uuid.NewString(),
			Username:  usernames[i],
			Password:  "pegawai123",
			Role:      "pegawai",
			UnitID:    &unit.ID,
			IDPegawai: &pegawai.ID,
			Nama:      nama,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Seeding pegawai %s gagal: %v", nama, err)
		}
	}

	log.Println("Seeding selesai.")
}
