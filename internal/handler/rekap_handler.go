package handler

import (
	"strconv"

	"absensi-danton/internal/helpers"
	"absensi-danton/internal/model"
	"absensi-danton/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type RekapHandler struct {
	absensiRepo repository.AbsensiRepository
	userRepo    repository.UserRepository
}

func NewRekapHandler(absensiRepo repository.AbsensiRepository, userRepo repository.UserRepository) *RekapHandler {
	return &RekapHandler{absensiRepo: absensiRepo, userRepo: userRepo}
}

// RekapRow adalah baris riwayat absensi dengan nama yang sudah diresolve.
type RekapRow struct {
	Tanggal     string
	Status      string
	NamaPegawai string
	NamaDanton  string
}

func (h *RekapHandler) displayNames() map[string]string {
	users, _ := h.userRepo.GetAll()
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName()
	}
	return names
}

func resolveName(names map[string]string, id string) string {
	if nama, ok := names[id]; ok {
		return nama
	}
	return model.FallbackName(id)
}

// RekapAll menampilkan seluruh riwayat absensi (halaman admin).
func (h *RekapHandler) RekapAll(c *fiber.Ctx) error {
	absensi, _ := h.absensiRepo.GetAllOrdered()
	names := h.displayNames()

	rows := make([]RekapRow, 0, len(absensi))
	for _, a := range absensi {
		rows = append(rows, RekapRow{
			Tanggal:     a.Tanggal,
			Status:      a.Status,
			NamaPegawai: resolveName(names, a.PegawaiID),
			NamaDanton:  resolveName(names, a.DantonID),
		})
	}

	return c.Render("rekap_absensi_pegawai", fiber.Map{
		"Absensi": rows,
		"Flash":   helpers.TakeFlash(c),
	})
}

// RekapSaya menampilkan riwayat milik pegawai yang sedang login.
func (h *RekapHandler) RekapSaya(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	absensi, _ := h.absensiRepo.GetByPegawai(userID)
	names := h.displayNames()

	rows := make([]RekapRow, 0, len(absensi))
	for _, a := range absensi {
		rows = append(rows, RekapRow{
			Tanggal:    a.Tanggal,
			Status:     a.Status,
			NamaDanton: resolveName(names, a.DantonID),
		})
	}

	return c.Render("rekap_pegawai", fiber.Map{
		"Data":  rows,
		"Flash": helpers.TakeFlash(c),
	})
}

// ExportExcel mengunduh seluruh riwayat sebagai rekap_absensi.xlsx.
func (h *RekapHandler) ExportExcel(c *fiber.Ctx) error {
	absensi, err := h.absensiRepo.GetAllOrdered()
	if err != nil || len(absensi) == 0 {
		return c.SendString("Tidak ada data absensi")
	}

	idSet := make(map[string]struct{})
	for _, a := range absensi {
		idSet[a.PegawaiID] = struct{}{}
		idSet[a.DantonID] = struct{}{}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	names := h.userRepo.NamesByIDs(ids)

	// Id yang tidak terresolve dipakai apa adanya di kolom nama.
	nameOrID := func(id string) string {
		if nama, ok := names[id]; ok {
			return nama
		}
		return id
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []string{"ID", "Pegawai", "Danton", "Tanggal", "Status"}
	for i, title := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for i, a := range absensi {
		values := []interface{}{a.ID, nameOrID(a.PegawaiID), nameOrID(a.DantonID), a.Tanggal, a.Status}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Gagal membuat file excel")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote("rekap_absensi.xlsx"))
	return c.Send(buf.Bytes())
}
