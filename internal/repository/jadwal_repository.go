package repository

import (
	"log"

	"absensi-danton/internal/model"

	"gorm.io/gorm"
)

type JadwalRepository interface {
	Create(jadwal *model.JadwalDanton) error
	GetAll() ([]model.JadwalDanton, error)
	GetAllOrdered() ([]model.JadwalDanton, error)
	GetByDantonAndDate(dantonID, tanggal string) ([]model.JadwalDanton, error)
	Delete(id int) error
}

type jadwalRepository struct {
	db *gorm.DB
}

func NewJadwalRepository(db *gorm.DB) JadwalRepository {
	return &jadwalRepository{db}
}

func (r *jadwalRepository) Create(jadwal *model.JadwalDanton) error {
	err := r.db.Create(jadwal).Error
	if err != nil {
		log.Printf("Create jadwal gagal: %v", err)
	}
	return err
}

func (r *jadwalRepository) GetAll() ([]model.JadwalDanton, error) {
	var jadwal []model.JadwalDanton
	err := r.db.Find(&jadwal).Error
	if err != nil {
		log.Printf("GetAll jadwal gagal: %v", err)
	}
	return jadwal, err
}

func (r *jadwalRepository) GetAllOrdered() ([]model.JadwalDanton, error) {
	var jadwal []model.JadwalDanton
	err := r.db.Order("tanggal desc").Find(&jadwal).Error
	if err != nil {
		log.Printf("GetAllOrdered jadwal gagal: %v", err)
	}
	return jadwal, err
}

// GetByDantonAndDate melayani satu skema pencarian; penentuan prioritas
// dua skema ada di usecase.ResolveDanton.
func (r *jadwalRepository) GetByDantonAndDate(dantonID, tanggal string) ([]model.JadwalDanton, error) {
	var jadwal []model.JadwalDanton
	err := r.db.Where("tanggal = ? AND danton_id = ?", tanggal, dantonID).Find(&jadwal).Error
	if err != nil {
		log.Printf("GetByDantonAndDate gagal: %v", err)
	}
	return jadwal, err
}

func (r *jadwalRepository) Delete(id int) error {
	err := r.db.Delete(&model.JadwalDanton{}, id).Error
	if err != nil {
		log.Printf("Delete jadwal %d gagal: %v", id, err)
	}
	return err
}
