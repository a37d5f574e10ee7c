package usecase

import (
	"strconv"
	"time"

	"absensi-danton/internal/model"
	"absensi-danton/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

type AuthUsecase struct {
	userRepo   repository.UserRepository
	jadwalRepo repository.JadwalRepository
	secret     []byte
}

func NewAuthUsecase(userRepo repository.UserRepository, jadwalRepo repository.JadwalRepository, secret string) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jadwalRepo: jadwalRepo,
		secret:     []byte(secret),
	}
}

// LoginResult membawa token sesi dan tujuan redirect pasca-login.
type LoginResult struct {
	Token        string
	RedirectPath string
	DantonToday  bool
}

// Login mencocokkan kredensial persis, lalu menjalankan resolusi danton
// untuk tanggal hari ini guna menentukan dashboard tujuan. Danton hari ini
// selalu diarahkan ke dashboard danton, apapun role tersimpannya.
func (u *AuthUsecase) Login(username, password string, now time.Time) (*LoginResult, error) {
	user, err := u.userRepo.FindByCredentials(username, password)
	if err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")
	jadwal := u.ResolveDanton(user, today)

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(24 * time.Hour).Unix(),
	}
	if user.UnitID != nil {
		claims["unit_id"] = *user.UnitID
	}
	if user.IDPegawai != nil {
		claims["id_pegawai"] = *user.IDPegawai
	}

	result := &LoginResult{RedirectPath: "/dashboard_pegawai"}
	if jadwal != nil {
		claims["is_danton_today"] = true
		claims["danton_unit_id"] = jadwal.UnitID
		result.DantonToday = true
		result.RedirectPath = "/dashboard_danton"
	} else if user.Role == "admin" {
		result.RedirectPath = "/dashboard_admin"
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return nil, err
	}
	result.Token = signed

	return result, nil
}

// ResolveDanton menentukan jadwal yang menjadikan user danton pada tanggal
// tersebut. Skema 1 (danton_id = users.id) selalu menang; skema 2
// (danton_id = pegawai.id) hanya dicek kalau skema 1 kosong dan user punya
// id_pegawai. Baris pertama skema pemenang yang berlaku.
func (u *AuthUsecase) ResolveDanton(user *model.User, tanggal string) *model.JadwalDanton {
	jadwal, err := u.jadwalRepo.GetByDantonAndDate(user.ID, tanggal)
	if err == nil && len(jadwal) > 0 {
		return &jadwal[0]
	}

	if user.IDPegawai == nil {
		return nil
	}
	jadwal, err = u.jadwalRepo.GetByDantonAndDate(strconv.Itoa(*user.IDPegawai), tanggal)
	if err == nil && len(jadwal) > 0 {
		return &jadwal[0]
	}
	return nil
}
