package model

// Pegawai adalah data kepegawaian; tidak selalu 1:1 dengan User
// (lihat DantonRef untuk dua skema identifier yang dipakai jadwal).
type Pegawai struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Nama string `json:"nama"`
	Unit string `json:"unit"`
}

func (Pegawai) TableName() string {
	return "pegawai"
}
