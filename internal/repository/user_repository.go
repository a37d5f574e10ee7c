package repository

import (
	"log"

	"absensi-danton/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByCredentials(username, password string) (*model.User, error)
	GetAll() ([]model.User, error)
	GetPegawaiByUnit(unitID int) ([]model.User, error)
	NamesByIDs(ids []string) map[string]string
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

// FindByCredentials mencocokkan username+password persis satu baris.
// Kredensial dibandingkan apa adanya (provisioning eksternal menyimpan plaintext).
func (r *userRepository) FindByCredentials(username, password string) (*model.User, error) {
	var user model.User
	// Find + Limit(1) supaya GORM tidak log error "record not found"
	err := r.db.Where("username = ? AND password = ?", username, password).Limit(1).Find(&user).Error
	if err != nil {
		log.Printf("FindByCredentials gagal: %v", err)
		return nil, err
	}
	if user.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *userRepository) GetAll() ([]model.User, error) {
	var users []model.User
	err := r.db.Find(&users).Error
	if err != nil {
		log.Printf("GetAll users gagal: %v", err)
	}
	return users, err
}

// GetPegawaiByUnit mengambil roster: user ber-role pegawai dalam satu unit.
func (r *userRepository) GetPegawaiByUnit(unitID int) ([]model.User, error) {
	var users []model.User
	err := r.db.Where("role = ? AND unit_id = ?", "pegawai", unitID).Find(&users).Error
	if err != nil {
		log.Printf("GetPegawaiByUnit gagal: %v", err)
	}
	return users, err
}

// NamesByIDs adalah batch lookup id -> nama. Gagal atau kosong sama-sama
// menghasilkan map kosong supaya pemanggil tidak perlu menangani error.
func (r *userRepository) NamesByIDs(ids []string) map[string]string {
	names := make(map[string]string)
	if len(ids) == 0 {
		return names
	}

	var users []model.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		log.Printf("NamesByIDs gagal: %v", err)
		return names
	}
	for _, u := range users {
		names[u.ID] = u.Nama
	}
	return names
}
