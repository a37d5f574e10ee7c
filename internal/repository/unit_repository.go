package repository

import (
	"log"

	"absensi-danton/internal/model"

	"gorm.io/gorm"
)

type UnitRepository interface {
	GetAll() ([]model.Unit, error)
}

type unitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db}
}

func (r *unitRepository) GetAll() ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.Order("id").Find(&units).Error
	if err != nil {
		log.Printf("GetAll unit gagal: %v", err)
	}
	return units, err
}
