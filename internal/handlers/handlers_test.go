package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"kos-manager/internal/models"
	"kos-manager/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router       *gin.Engine
	db           *gorm.DB
	kosanRepo    *repository.KosanRepository
	kamarRepo    *repository.KamarRepository
	penghuniRepo *repository.PenghuniRepository
	pkRepo       *repository.PenghuniKamarRepository
}

func setupTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Kosan{},
		&models.Kamar{},
		&models.Penghuni{},
		&models.PenghuniKamar{},
	))

	env := &testEnv{
		db:           db,
		kosanRepo:    repository.NewKosanRepository(db),
		kamarRepo:    repository.NewKamarRepository(db),
		penghuniRepo: repository.NewPenghuniRepository(db),
		pkRepo:       repository.NewPenghuniKamarRepository(db),
	}

	kosanHandler := NewKosanHandler(env.kosanRepo, env.kamarRepo, nil)
	kamarHandler := NewKamarHandler(env.kamarRepo, env.pkRepo)
	penghuniHandler := NewPenghuniHandler(env.penghuniRepo)
	pkHandler := NewPenghuniKamarHandler(env.pkRepo)
	adminHandler := NewAdminHandler(env.kosanRepo, env.kamarRepo, env.penghuniRepo, nil, nil, nil)

	r := gin.New()
	r.GET("/api/kosan", kosanHandler.ListKosan)
	r.GET("/api/kosan/:id", kosanHandler.GetKosan)
	r.POST("/api/kosan", kosanHandler.CreateKosan)
	r.PUT("/api/kosan/:id", kosanHandler.UpdateKosan)
	r.DELETE("/api/kosan/:id", kosanHandler.DeleteKosan)

	r.GET("/api/kamar", kamarHandler.ListKamar)
	r.GET("/api/kamar/detail", kamarHandler.ListDetail)
	r.GET("/api/kamar/:id", kamarHandler.GetKamar)
	r.GET("/api/kamar/:id/penghuni", penghuniHandler.GetPenghuniByKamar)
	r.POST("/api/kamar", kamarHandler.CreateKamar)
	r.PUT("/api/kamar/:id", kamarHandler.UpdateKamar)
	r.PUT("/api/kamar/:id/pembayaran", kamarHandler.UpdatePembayaran)
	r.DELETE("/api/kamar/:id", kamarHandler.DeleteKamar)

	r.GET("/api/penghuni", penghuniHandler.ListPenghuni)
	r.GET("/api/penghuni/:id", penghuniHandler.GetPenghuni)
	r.GET("/api/penghuni/:id/riwayat", pkHandler.GetRiwayat)
	r.POST("/api/penghuni", penghuniHandler.CreatePenghuni)
	r.PUT("/api/penghuni/:id", penghuniHandler.UpdatePenghuni)
	r.DELETE("/api/penghuni/:id", penghuniHandler.DeletePenghuni)

	r.GET("/api/penghuni-kamar/:id", pkHandler.GetPenghuniKamar)
	r.POST("/api/penghuni-kamar", pkHandler.CreatePenghuniKamar)
	r.PUT("/api/penghuni-kamar/:id", pkHandler.UpdatePenghuniKamar)
	r.DELETE("/api/penghuni-kamar/:id", pkHandler.DeletePenghuniKamar)

	r.GET("/api/stats", adminHandler.GetStats)
	r.GET("/api/search", adminHandler.SearchKosan)

	env.router = r
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (env *testEnv) seedKosan(t *testing.T) *models.Kosan {
	kosan := &models.Kosan{
		NamaKosan: "Kos Anggrek",
		Kota:      "Bandung",
		Alamat:    "Jl. Anggrek No. 5",
		Harga:     650000,
		TipeKosan: models.TipeKosanPerempuan,
	}
	require.NoError(t, env.kosanRepo.Create(kosan))
	return kosan
}

func (env *testEnv) seedKamar(t *testing.T, kosanID uint, noKam int) *models.Kamar {
	kamar := &models.Kamar{KosanId: kosanID, NoKam: noKam}
	require.NoError(t, env.kamarRepo.Create(kamar))
	return kamar
}

func (env *testEnv) seedPenghuni(t *testing.T, nama string) *models.Penghuni {
	penghuni := &models.Penghuni{Nama: nama, Umur: 25, JenisKelamin: "Perempuan", NoTelp: "0812"}
	require.NoError(t, env.penghuniRepo.Create(penghuni))
	return penghuni
}

func (env *testEnv) seedTransaksi(t *testing.T, kamarID, penghuniID uint) *models.PenghuniKamar {
	masuk := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	pk := &models.PenghuniKamar{KamarId: kamarID, PenghuniId: penghuniID, TanggalMasuk: &masuk}
	require.NoError(t, env.pkRepo.Create(pk))
	return pk
}

func TestCreateKosanWithRooms(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/kosan", gin.H{
		"NamaKosan":   "Kos Baru",
		"Kota":        "Jakarta",
		"Alamat":      "Jl. Baru",
		"Harga":       700000,
		"JumlahKamar": 3,
		"TipeKosan":   "Laki-Laki",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["JumlahKamar"])

	kosanID := uint(body["Id"].(float64))
	kamar, err := env.kamarRepo.ListByKosanID(kosanID)
	require.NoError(t, err)
	require.Len(t, kamar, 3)
	assert.Equal(t, 1, kamar[0].NoKam)
	assert.Equal(t, 3, kamar[2].NoKam)
}

func TestCreateKosanRejectsUnknownTipe(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/kosan", gin.H{
		"NamaKosan": "Kos X",
		"Kota":      "Jakarta",
		"TipeKosan": "Campur",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetKosanNotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/kosan/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteKosanCascades(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	kamar := env.seedKamar(t, kosan.Id, 1)
	penghuni := env.seedPenghuni(t, "Sari")
	env.seedTransaksi(t, kamar.Id, penghuni.Id)

	w := env.do(t, http.MethodDelete, "/api/kosan/"+itoa(kosan.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var kamarCount int64
	require.NoError(t, env.db.Model(&models.Kamar{}).Count(&kamarCount).Error)
	assert.Zero(t, kamarCount)
}

func TestDeleteKamarWithTransaksiConflicts(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	kamar := env.seedKamar(t, kosan.Id, 1)
	penghuni := env.seedPenghuni(t, "Sari")
	env.seedTransaksi(t, kamar.Id, penghuni.Id)

	w := env.do(t, http.MethodDelete, "/api/kamar/"+itoa(kamar.Id), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckInOccupiedRoomConflicts(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	kamar := env.seedKamar(t, kosan.Id, 1)
	first := env.seedPenghuni(t, "Sari")
	second := env.seedPenghuni(t, "Dewi")
	env.seedTransaksi(t, kamar.Id, first.Id)

	w := env.do(t, http.MethodPost, "/api/penghuni-kamar", gin.H{
		"KamarId":    kamar.Id,
		"PenghuniId": second.Id,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckInRejectsBadDate(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	kamar := env.seedKamar(t, kosan.Id, 1)
	penghuni := env.seedPenghuni(t, "Sari")

	w := env.do(t, http.MethodPost, "/api/penghuni-kamar", gin.H{
		"KamarId":      kamar.Id,
		"PenghuniId":   penghuni.Id,
		"TanggalMasuk": "01-02-2025",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckInReversedDatesRejected(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	kamar := env.seedKamar(t, kosan.Id, 1)
	penghuni := env.seedPenghuni(t, "Sari")

	w := env.do(t, http.MethodPost, "/api/penghuni-kamar", gin.H{
		"KamarId":       kamar.Id,
		"PenghuniId":    penghuni.Id,
		"TanggalMasuk":  "2025-03-01",
		"TanggalKeluar": "2025-02-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckOutFreesRoom(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	kamar := env.seedKamar(t, kosan.Id, 1)
	penghuni := env.seedPenghuni(t, "Sari")
	pk := env.seedTransaksi(t, kamar.Id, penghuni.Id)

	w := env.do(t, http.MethodDelete, "/api/penghuni-kamar/"+itoa(pk.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := env.kamarRepo.GetByID(kamar.Id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusKamarKosong, stored.StatusKamar)
}

func TestDeletePenghuniWithTransaksiConflicts(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	kamar := env.seedKamar(t, kosan.Id, 1)
	penghuni := env.seedPenghuni(t, "Sari")
	env.seedTransaksi(t, kamar.Id, penghuni.Id)

	w := env.do(t, http.MethodDelete, "/api/penghuni/"+itoa(penghuni.Id), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListDetail(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	env.seedKamar(t, kosan.Id, 2)
	kamar := env.seedKamar(t, kosan.Id, 1)
	penghuni := env.seedPenghuni(t, "Sari")
	env.seedTransaksi(t, kamar.Id, penghuni.Id)

	w := env.do(t, http.MethodGet, "/api/kamar/detail?kosan_id="+itoa(kosan.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["count"])

	rows := body["kamar"].([]interface{})
	first := rows[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["NoKam"])
	assert.Equal(t, "Sari", first["Nama"])
}

func TestUpdatePembayaran(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	kamar := env.seedKamar(t, kosan.Id, 1)
	penghuni := env.seedPenghuni(t, "Sari")
	pk := env.seedTransaksi(t, kamar.Id, penghuni.Id)

	w := env.do(t, http.MethodPut, "/api/kamar/"+itoa(kamar.Id)+"/pembayaran", gin.H{
		"StatusPembayaran": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := env.pkRepo.GetByID(pk.Id)
	require.NoError(t, err)
	require.NotNil(t, stored.StatusPembayaran)
	assert.Equal(t, models.StatusPembayaranLunas, *stored.StatusPembayaran)
}

func TestGetPenghuniByKamar(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	kamar := env.seedKamar(t, kosan.Id, 1)
	penghuni := env.seedPenghuni(t, "Sari")
	env.seedTransaksi(t, kamar.Id, penghuni.Id)

	w := env.do(t, http.MethodGet, "/api/kamar/"+itoa(kamar.Id)+"/penghuni", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Sari", body["Nama"])
}

func TestStats(t *testing.T) {
	env := setupTestEnv(t)

	kosan := env.seedKosan(t)
	kamar := env.seedKamar(t, kosan.Id, 1)
	env.seedKamar(t, kosan.Id, 2)
	penghuni := env.seedPenghuni(t, "Sari")
	env.seedTransaksi(t, kamar.Id, penghuni.Id)

	w := env.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	kamarStats := body["kamar"].(map[string]interface{})
	assert.Equal(t, float64(2), kamarStats["total"])
	assert.Equal(t, float64(1), kamarStats["terisi"])
	assert.Equal(t, float64(1), kamarStats["kosong"])
}

func TestSearchDisabled(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/search?q=kos", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
