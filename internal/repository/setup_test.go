package repository

import (
	"testing"
	"time"

	"kos-manager/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Kosan{},
		&models.Kamar{},
		&models.Penghuni{},
		&models.PenghuniKamar{},
	)
	require.NoError(t, err)

	return db
}

func seedKosan(t *testing.T, db *gorm.DB) *models.Kosan {
	repo := NewKosanRepository(db)
	kosan := &models.Kosan{
		NamaKosan: "Kos Mawar",
		Kota:      "Bandung",
		Alamat:    "Jl. Mawar No. 1",
		Harga:     750000,
		TipeKosan: models.TipeKosanPerempuan,
	}
	require.NoError(t, repo.Create(kosan))
	return kosan
}

func seedKamar(t *testing.T, db *gorm.DB, kosanID uint, noKam int) *models.Kamar {
	repo := NewKamarRepository(db)
	kamar := &models.Kamar{
		KosanId:     kosanID,
		NoKam:       noKam,
		StatusKamar: models.StatusKamarKosong,
	}
	require.NoError(t, repo.Create(kamar))
	return kamar
}

func seedPenghuni(t *testing.T, db *gorm.DB, nama string) *models.Penghuni {
	repo := NewPenghuniRepository(db)
	penghuni := &models.Penghuni{
		Nama:         nama,
		Umur:         22,
		JenisKelamin: "Perempuan",
		NoTelp:       "081234567890",
	}
	require.NoError(t, repo.Create(penghuni))
	return penghuni
}

func seedTransaksi(t *testing.T, db *gorm.DB, kamarID, penghuniID uint) *models.PenghuniKamar {
	repo := NewPenghuniKamarRepository(db)
	masuk := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	pk := &models.PenghuniKamar{
		KamarId:      kamarID,
		PenghuniId:   penghuniID,
		TanggalMasuk: &masuk,
	}
	require.NoError(t, repo.Create(pk))
	return pk
}
