package repository

import (
	"log"

	"absensi-danton/internal/model"

	"gorm.io/gorm"
)

type AbsensiRepository interface {
	Create(absensi *model.Absensi) error
	GetAllOrdered() ([]model.Absensi, error)
	GetByPegawai(pegawaiID string) ([]model.Absensi, error)
}

type absensiRepository struct {
	db *gorm.DB
}

func NewAbsensiRepository(db *gorm.DB) AbsensiRepository {
	return &absensiRepository{db}
}

func (r *absensiRepository) Create(absensi *model.Absensi) error {
	err := r.db.Create(absensi).Error
	if err != nil {
		log.Printf("Create absensi gagal: %v", err)
	}
	return err
}

func (r *absensiRepository) GetAllOrdered() ([]model.Absensi, error) {
	var absensi []model.Absensi
	err := r.db.Order("tanggal desc").Find(&absensi).Error
	if err != nil {
		log.Printf("GetAllOrdered absensi gagal: %v", err)
	}
	return absensi, err
}

func (r *absensiRepository) GetByPegawai(pegawaiID string) ([]model.Absensi, error) {
	var absensi []model.Absensi
	err := r.db.Where("pegawai_id = ?", pegawaiID).Order("tanggal desc").Find(&absensi).Error
	if err != nil {
		log.Printf("GetByPegawai absensi gagal: %v", err)
	}
	return absensi, err
}
