package repository

import (
	"log"

	"absensi-danton/internal/model"

	"gorm.io/gorm"
)

type PegawaiRepository interface {
	GetAll() ([]model.Pegawai, error)
}

type pegawaiRepository struct {
	db *gorm.DB
}

func NewPegawaiRepository(db *gorm.DB) PegawaiRepository {
	return &pegawaiRepository{db}
}

func (r *pegawaiRepository) GetAll() ([]model.Pegawai, error) {
	var pegawai []model.Pegawai
	err := r.db.Order("nama").Find(&pegawai).Error
	if err != nil {
		log.Printf("GetAll pegawai gagal: %v", err)
	}
	return pegawai, err
}
