package model

// Absensi adalah riwayat append-only; aplikasi tidak pernah update/delete.
type Absensi struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	PegawaiID  string `json:"pegawai_id" gorm:"column:pegawai_id"`
	DantonID   string `json:"danton_id" gorm:"column:danton_id"`
	Tanggal    string `json:"tanggal"` // YYYY-MM-DD
	Status     string `json:"status"`  // hadir/izin/sakit, bebas
	Keterangan string `json:"keterangan"`
	UnitID     int    `json:"unit_id"`
}

func (Absensi) TableName() string {
	return "absensi"
}
