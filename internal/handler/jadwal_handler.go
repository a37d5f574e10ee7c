package handler

import (
	"log"
	"time"

	"absensi-danton/internal/helpers"
	"absensi-danton/internal/model"
	"absensi-danton/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type JadwalHandler struct {
	jadwalRepo  repository.JadwalRepository
	unitRepo    repository.UnitRepository
	pegawaiRepo repository.PegawaiRepository
	userRepo    repository.UserRepository
}

func NewJadwalHandler(jadwalRepo repository.JadwalRepository, unitRepo repository.UnitRepository, pegawaiRepo repository.PegawaiRepository, userRepo repository.UserRepository) *JadwalHandler {
	return &JadwalHandler{
		jadwalRepo:  jadwalRepo,
		unitRepo:    unitRepo,
		pegawaiRepo: pegawaiRepo,
		userRepo:    userRepo,
	}
}

// JadwalRow adalah baris tampilan hasil join in-memory.
type JadwalRow struct {
	NamaDanton string
	Unit       string
	Tanggal    string
	Keterangan string
}

type createJadwalRequest struct {
	DantonID   string `form:"danton_id" validate:"required"`
	UnitID     int    `form:"unit_id" validate:"required"`
	Tanggal    string `form:"tanggal" validate:"required,datetime=2006-01-02"`
	Keterangan string `form:"keterangan"`
}

func (h *JadwalHandler) Kelola(c *fiber.Ctx) error {
	h.purgeExpired(time.Now())
	return h.renderKelola(c)
}

func (h *JadwalHandler) Create(c *fiber.Ctx) error {
	h.purgeExpired(time.Now())

	var req createJadwalRequest
	if err := c.BodyParser(&req); err != nil {
		helpers.SetFlash(c, "Data jadwal tidak valid")
		return h.renderKelola(c)
	}
	if err := validate.Struct(req); err != nil {
		helpers.SetFlash(c, "Data jadwal tidak valid")
		return h.renderKelola(c)
	}

	// Sengaja tanpa cek keberadaan danton/unit maupun duplikat: data lama
	// dengan dua skema identifier tetap harus bisa masuk.
	err := h.jadwalRepo.Create(&model.JadwalDanton{
		DantonID:   req.DantonID,
		UnitID:     req.UnitID,
		Tanggal:    req.Tanggal,
		Keterangan: req.Keterangan,
	})
	if err == nil {
		helpers.SetFlash(c, "Jadwal berhasil disimpan.")
	}

	return h.renderKelola(c)
}

// purgeExpired menghapus jadwal yang tanggalnya lewat lebih dari 24 jam.
// Batas tepat 24 jam masih dipertahankan (pembanding strict). Kegagalan
// hapus satu baris tidak menghentikan baris lain.
func (h *JadwalHandler) purgeExpired(now time.Time) {
	jadwal, err := h.jadwalRepo.GetAll()
	if err != nil {
		return
	}
	for _, j := range jadwal {
		tanggal, err := time.ParseInLocation("2006-01-02", j.Tanggal, now.Location())
		if err != nil {
			log.Printf("Tanggal jadwal %d tidak bisa diparse: %v", j.ID, err)
			continue
		}
		if now.Sub(tanggal) > 24*time.Hour {
			_ = h.jadwalRepo.Delete(j.ID)
		}
	}
}

func (h *JadwalHandler) renderKelola(c *fiber.Ctx) error {
	units, _ := h.unitRepo.GetAll()
	pegawai, _ := h.pegawaiRepo.GetAll()
	jadwal, _ := h.jadwalRepo.GetAllOrdered()

	pegawaiMap := make(map[int]string, len(pegawai))
	for _, p := range pegawai {
		pegawaiMap[p.ID] = p.Nama
	}
	unitMap := make(map[int]string, len(units))
	for _, u := range units {
		unitMap[u.ID] = u.Nama
	}

	// Jadwal skema 1 menyimpan users.id; kumpulkan dulu untuk batch lookup.
	var userIDs []string
	for _, j := range jadwal {
		if ref := j.DantonRef(); ref.Scheme == model.DantonSchemeUser {
			userIDs = append(userIDs, ref.UserID)
		}
	}
	userNames := h.userRepo.NamesByIDs(userIDs)

	rows := make([]JadwalRow, 0, len(jadwal))
	for _, j := range jadwal {
		rows = append(rows, JadwalRow{
			NamaDanton: h.dantonName(j.DantonRef(), pegawaiMap, userNames),
			Unit:       displayOr(unitMap[j.UnitID]),
			Tanggal:    j.Tanggal,
			Keterangan: j.Keterangan,
		})
	}

	return c.Render("kelola_jadwal", fiber.Map{
		"Unit":    units,
		"Pegawai": pegawai,
		"Jadwal":  rows,
		"Flash":   helpers.TakeFlash(c),
	})
}

func (h *JadwalHandler) dantonName(ref model.DantonRef, pegawaiMap map[int]string, userNames map[string]string) string {
	switch ref.Scheme {
	case model.DantonSchemePegawai:
		return displayOr(pegawaiMap[ref.PegawaiID])
	case model.DantonSchemeUser:
		return displayOr(userNames[ref.UserID])
	}
	return "??"
}

func displayOr(name string) string {
	if name == "" {
		return "??"
	}
	return name
}
