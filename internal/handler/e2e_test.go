package handler_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"absensi-danton/internal/model"
	"absensi-danton/internal/routes"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Unit{},
		&model.Pegawai{},
		&model.JadwalDanton{},
		&model.Absensi{},
	))

	engine := html.New("../../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	routes.SetupAuthRoutes(app, db, testSecret)
	routes.SetupDashboardRoutes(app, testSecret)
	routes.SetupAbsenRoutes(app, db, testSecret)
	routes.SetupJadwalRoutes(app, db, testSecret)
	routes.SetupRekapRoutes(app, db, testSecret)

	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string, unitID, idPegawai *int) *model.User {
	t.Helper()
	user := &model.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  "rahasia",
		Role:      role,
		UnitID:    unitID,
		IDPegawai: idPegawai,
		Nama:      strings.ToUpper(username[:1]) + username[1:],
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// login mengirim form login dan mengembalikan cookie sesi (nil kalau gagal)
// beserta lokasi redirect.
func login(t *testing.T, app *fiber.App, username, password string) (*http.Cookie, string) {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	var session *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "session_token" && ck.Value != "" {
			session = ck
		}
	}
	return session, resp.Header.Get("Location")
}

func get(t *testing.T, app *fiber.App, path string, session *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if session != nil {
		req.AddCookie(session)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, session *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestLoginBadCredentials(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "budi", "pegawai", nil, nil)

	session, location := login(t, app, "budi", "salah")
	assert.Nil(t, session, "kredensial salah tidak boleh membuat sesi")
	assert.Equal(t, "/", location)
}

func TestLoginRoutesByRole(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", "admin", nil, nil)
	unitID := 1
	seedUser(t, db, "budi", "pegawai", &unitID, nil)

	session, location := login(t, app, "admin", "rahasia")
	require.NotNil(t, session)
	assert.Equal(t, "/dashboard_admin", location)

	session, location = login(t, app, "budi", "rahasia")
	require.NotNil(t, session)
	assert.Equal(t, "/dashboard_pegawai", location)
}

func TestLoginDantonTodayRedirect(t *testing.T) {
	app, db := newTestApp(t)
	unitID := 1
	user := seedUser(t, db, "budi", "pegawai", &unitID, nil)
	require.NoError(t, db.Create(&model.JadwalDanton{
		DantonID: user.ID,
		UnitID:   unitID,
		Tanggal:  time.Now().Format("2006-01-02"),
	}).Error)

	session, location := login(t, app, "budi", "rahasia")
	require.NotNil(t, session)
	assert.Equal(t, "/dashboard_danton", location)

	resp := get(t, app, "/dashboard_danton", session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Danton hari ini tidak boleh membuka dashboard pegawai biasa.
	resp = get(t, app, "/dashboard_pegawai", session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestDashboardRequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/dashboard_admin", "/dashboard_danton", "/dashboard_pegawai", "/kelola_jadwal", "/absen-danton"} {
		resp := get(t, app, path, nil)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/", resp.Header.Get("Location"), path)
	}
}

func TestKelolaJadwalEndToEnd(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", "admin", nil, nil)
	unit := model.Unit{Nama: "Unit Keamanan"}
	require.NoError(t, db.Create(&unit).Error)
	pegawai := model.Pegawai{Nama: "Budi Santoso", Unit: unit.Nama}
	require.NoError(t, db.Create(&pegawai).Error)

	session, _ := login(t, app, "admin", "rahasia")
	require.NotNil(t, session)

	today := time.Now().Format("2006-01-02")
	resp := postForm(t, app, "/kelola_jadwal", url.Values{
		"danton_id":  {fmt.Sprint(pegawai.ID)},
		"unit_id":    {fmt.Sprint(unit.ID)},
		"tanggal":    {today},
		"keterangan": {"test"},
	}, session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = get(t, app, "/kelola_jadwal", session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Budi Santoso")
	assert.Contains(t, body, "Unit Keamanan")
	assert.Contains(t, body, today)
	assert.Contains(t, body, "test")
}

func TestKelolaJadwalUnknownDantonShowsPlaceholder(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", "admin", nil, nil)
	require.NoError(t, db.Create(&model.JadwalDanton{
		DantonID: "9999",
		UnitID:   42,
		Tanggal:  time.Now().Format("2006-01-02"),
	}).Error)

	session, _ := login(t, app, "admin", "rahasia")
	require.NotNil(t, session)

	resp := get(t, app, "/kelola_jadwal", session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "??")
}

func TestAbsenDantonRecording(t *testing.T) {
	app, db := newTestApp(t)
	unitID := 1
	danton := seedUser(t, db, "danton", "pegawai", &unitID, nil)
	p1 := seedUser(t, db, "p1", "pegawai", &unitID, nil)
	p2 := seedUser(t, db, "p2", "pegawai", &unitID, nil)
	today := time.Now().Format("2006-01-02")
	require.NoError(t, db.Create(&model.JadwalDanton{
		DantonID: danton.ID,
		UnitID:   unitID,
		Tanggal:  today,
	}).Error)

	session, _ := login(t, app, "danton", "rahasia")
	require.NotNil(t, session)

	resp := postForm(t, app, "/absen-danton", url.Values{
		"tanggal":             {today},
		"status_" + p1.ID:     {"hadir"},
		"keterangan_" + p1.ID: {"tepat waktu"},
		"status_" + p2.ID:     {""},
	}, session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard_danton", resp.Header.Get("Location"))

	var records []model.Absensi
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1, "hanya status non-kosong yang direkam")
	assert.Equal(t, p1.ID, records[0].PegawaiID)
	assert.Equal(t, danton.ID, records[0].DantonID)
	assert.Equal(t, today, records[0].Tanggal)
	assert.Equal(t, "hadir", records[0].Status)
	assert.Equal(t, unitID, records[0].UnitID)
}

func TestRekapAccessControl(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", "admin", nil, nil)
	seedUser(t, db, "budi", "pegawai", nil, nil)

	adminSession, _ := login(t, app, "admin", "rahasia")
	pegawaiSession, _ := login(t, app, "budi", "rahasia")

	cases := []struct {
		path    string
		session *http.Cookie
		want    int
	}{
		{"/rekap_absensi_pegawai", nil, fiber.StatusForbidden},
		{"/rekap_absensi_pegawai", pegawaiSession, fiber.StatusForbidden},
		{"/rekap_absensi_pegawai", adminSession, fiber.StatusOK},
		{"/rekap_pegawai", nil, fiber.StatusForbidden},
		{"/rekap_pegawai", adminSession, fiber.StatusForbidden},
		{"/rekap_pegawai", pegawaiSession, fiber.StatusOK},
		{"/export_excel", pegawaiSession, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		resp := get(t, app, tc.path, tc.session)
		assert.Equal(t, tc.want, resp.StatusCode, tc.path)
	}
}

func TestRekapNameResolution(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", "admin", nil, nil)
	pegawai := seedUser(t, db, "budi", "pegawai", nil, nil)

	require.NoError(t, db.Create(&model.Absensi{
		PegawaiID: pegawai.ID,
		DantonID:  "id-tak-dikenal",
		Tanggal:   "2026-09-01",
		Status:    "hadir",
		UnitID:    1,
	}).Error)

	session, _ := login(t, app, "admin", "rahasia")
	resp := get(t, app, "/rekap_absensi_pegawai", session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "Budi")
	assert.Contains(t, body, "ID id-tak-dikenal")
}

func TestExportExcelNoData(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", "admin", nil, nil)

	session, _ := login(t, app, "admin", "rahasia")
	resp := get(t, app, "/export_excel", session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tidak ada data absensi", readBody(t, resp))
}

func TestExportExcelRows(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", "admin", nil, nil)
	unitID := 1
	danton := seedUser(t, db, "danton", "pegawai", &unitID, nil)
	p1 := seedUser(t, db, "p1", "pegawai", &unitID, nil)

	require.NoError(t, db.Create(&model.Absensi{
		PegawaiID: p1.ID,
		DantonID:  danton.ID,
		Tanggal:   "2026-09-01",
		Status:    "hadir",
		UnitID:    unitID,
	}).Error)

	session, _ := login(t, app, "admin", "rahasia")
	resp := get(t, app, "/export_excel", session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "rekap_absensi.xlsx")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	namaPegawai, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "P1", namaPegawai)

	status, err := f.GetCellValue(sheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "hadir", status)
}
