package handler

import (
	"time"

	"absensi-danton/internal/helpers"
	"absensi-danton/internal/model"
	"absensi-danton/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AbsenHandler struct {
	userRepo    repository.UserRepository
	absensiRepo repository.AbsensiRepository
}

func NewAbsenHandler(userRepo repository.UserRepository, absensiRepo repository.AbsensiRepository) *AbsenHandler {
	return &AbsenHandler{userRepo: userRepo, absensiRepo: absensiRepo}
}

func (h *AbsenHandler) ShowForm(c *fiber.Ctx) error {
	unitID, ok := c.Locals("unit_id").(int)
	if !ok {
		helpers.SetFlash(c, "Unit tidak ditemukan. Silakan login ulang.")
		return c.Redirect("/")
	}

	pegawai, _ := h.userRepo.GetPegawaiByUnit(unitID)

	return c.Render("absen_danton", fiber.Map{
		"Pegawai": pegawai,
		"Tanggal": time.Now().Format("2006-01-02"),
		"Flash":   helpers.TakeFlash(c),
	})
}

// Submit memproses tiap pegawai di roster secara independen: status kosong
// dilewati, insert yang gagal dicatat lalu lanjut (best-effort, tanpa
// transaksi).
func (h *AbsenHandler) Submit(c *fiber.Ctx) error {
	unitID, ok := c.Locals("unit_id").(int)
	if !ok {
		helpers.SetFlash(c, "Unit tidak ditemukan. Silakan login ulang.")
		return c.Redirect("/")
	}
	dantonID, _ := c.Locals("user_id").(string)

	pegawai, _ := h.userRepo.GetPegawaiByUnit(unitID)

	for _, p := range pegawai {
		status := c.FormValue("status_" + p.ID)
		keterangan := c.FormValue("keterangan_" + p.ID)
		if status == "" {
			continue
		}

		// Error insert sudah dicatat di repository; baris lain tetap diproses.
		_ = h.absensiRepo.Create(&model.Absensi{
			PegawaiID:  p.ID,
			DantonID:   dantonID,
			Tanggal:    c.FormValue("tanggal"),
			Status:     status,
			Keterangan: keterangan,
			UnitID:     unitID,
		})
	}

	helpers.SetFlash(c, "Absensi berhasil disimpan")
	return c.Redirect("/dashboard_danton")
}
