package model

import (
	"strconv"

	"github.com/google/uuid"
)

// JadwalDanton menunjuk siapa danton sebuah unit pada satu tanggal.
// Kolom danton_id warisan skema lama: bisa berisi users.id (UUID)
// atau pegawai.id (integer). Baca lewat DantonRef().
type JadwalDanton struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	DantonID   string `json:"danton_id" gorm:"column:danton_id"`
	UnitID     int    `json:"unit_id"`
	Tanggal    string `json:"tanggal"` // YYYY-MM-DD
	Keterangan string `json:"keterangan"`
}

func (JadwalDanton) TableName() string {
	return "jadwal_danton"
}

type DantonScheme int

const (
	DantonSchemeUnknown DantonScheme = iota
	DantonSchemeUser                 // skema 1: users.id (UUID)
	DantonSchemePegawai              // skema 2: pegawai.id (integer)
)

// DantonRef adalah hasil parse kolom danton_id pada saat baca.
type DantonRef struct {
	Scheme    DantonScheme
	UserID    string
	PegawaiID int
}

// ParseDantonRef menentukan skema dari bentuk nilainya: UUID berarti
// referensi ke users, angka berarti referensi ke pegawai.
func ParseDantonRef(raw string) DantonRef {
	if _, err := uuid.Parse(raw); err == nil {
		return DantonRef{Scheme: DantonSchemeUser, UserID: raw}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return DantonRef{Scheme: DantonSchemePegawai, PegawaiID: n}
	}
	return DantonRef{Scheme: DantonSchemeUnknown}
}

func (j JadwalDanton) DantonRef() DantonRef {
	return ParseDantonRef(j.DantonID)
}
