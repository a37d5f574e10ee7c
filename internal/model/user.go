package model

import "fmt"

// User dibuat oleh provisioning eksternal; aplikasi ini hanya membaca.
// ID berbentuk UUID (users.id di Supabase).
type User struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Username    string `json:"username"`
	Password    string `json:"-"`
	Role        string `json:"role"` // admin / pegawai
	UnitID      *int   `json:"unit_id"`
	IDPegawai   *int   `json:"id_pegawai" gorm:"column:id_pegawai"` // FK pegawai.id (skema 2)
	Nama        string `json:"nama"`
	NamaLengkap string `json:"nama_lengkap"`
	FullName    string `json:"full_name"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName memilih nama yang bisa ditampilkan:
// nama -> nama_lengkap -> full_name -> username -> "ID {id}"
func (u User) DisplayName() string {
	if u.Nama != "" {
		return u.Nama
	}
	if u.NamaLengkap != "" {
		return u.NamaLengkap
	}
	if u.FullName != "" {
		return u.FullName
	}
	if u.Username != "" {
		return u.Username
	}
	return FallbackName(u.ID)
}

// FallbackName dipakai saat sebuah id tidak ketemu di tabel users.
func FallbackName(id string) string {
	return fmt.Sprintf("ID %s", id)
}
