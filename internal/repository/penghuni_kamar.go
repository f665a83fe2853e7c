package repository

import (
	"errors"
	"fmt"

	"kos-manager/internal/models"

	"gorm.io/gorm"
)

// PenghuniKamarRepository persists occupancy records. Creating or
// deleting a record flips the room's occupancy flag in the same
// transaction, so the flag and the record can never disagree.
type PenghuniKamarRepository struct {
	db *gorm.DB
}

// NewPenghuniKamarRepository creates a new occupancy repository over the shared handle
func NewPenghuniKamarRepository(db *gorm.DB) *PenghuniKamarRepository {
	return &PenghuniKamarRepository{db: db}
}

const detailKamarQuery = `
SELECT
    Kamar.Id AS KamarId,
    Kamar.KosanId,
    Kamar.NoKam,
    Kamar.ImageUri,
    Kamar.StatusKamar,
    Kamar.Harga,
    Penghuni_Kamar.Id AS TransId,
    Penghuni_Kamar.TanggalMasuk,
    Penghuni_Kamar.TanggalKeluar,
    Penghuni_Kamar.StatusPembayaran,
    Penghuni.Id AS PenghuniId,
    Penghuni.Nama
FROM Kamar
LEFT JOIN Penghuni_Kamar ON Kamar.Id = Penghuni_Kamar.KamarId
LEFT JOIN Penghuni ON Penghuni_Kamar.PenghuniId = Penghuni.Id
`

// ListDetail returns the denormalized room listing that powers the main
// room screen: one row per (room, occupancy) pair, vacant rooms with
// nil tenant fields, ordered by room number. Pass a property id to
// restrict to one property, or nil for all.
func (r *PenghuniKamarRepository) ListDetail(kosanID *uint) ([]models.DetailKamar, error) {
	query := detailKamarQuery
	args := []interface{}{}
	if kosanID != nil {
		query += "WHERE Kamar.KosanId = ?\n"
		args = append(args, *kosanID)
	}
	query += "ORDER BY Kamar.NoKam ASC"

	var detail []models.DetailKamar
	if err := r.db.Raw(query, args...).Scan(&detail).Error; err != nil {
		return nil, fmt.Errorf("failed to load room listing: %w", err)
	}
	return detail, nil
}

// ListByPenghuniID retrieves a tenant's occupancy history, newest first
func (r *PenghuniKamarRepository) ListByPenghuniID(penghuniID uint) ([]models.PenghuniKamar, error) {
	var records []models.PenghuniKamar
	err := r.db.Where("PenghuniId = ?", penghuniID).Order("Id DESC").Find(&records).Error
	return records, err
}

// GetByID retrieves an occupancy record by id, or nil when it does not exist
func (r *PenghuniKamarRepository) GetByID(id uint) (*models.PenghuniKamar, error) {
	var record models.PenghuniKamar
	err := r.db.First(&record, "Id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts an occupancy record and marks its room occupied, both
// in one transaction. Refused with ErrKamarTerisi when the room already
// has an active occupancy (the schema does not enforce exclusivity, so
// this is where it lives), with ErrNotFound when the room or tenant is
// missing, and with ErrTanggalInvalid when the dates are reversed.
func (r *PenghuniKamarRepository) Create(pk *models.PenghuniKamar) error {
	if pk.TanggalMasuk != nil && pk.TanggalKeluar != nil && pk.TanggalKeluar.Before(*pk.TanggalMasuk) {
		return ErrTanggalInvalid
	}
	pk.Id = 0

	return r.db.Transaction(func(tx *gorm.DB) error {
		var kamar models.Kamar
		if err := tx.First(&kamar, "Id = ?", pk.KamarId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if kamar.Terisi() {
			return ErrKamarTerisi
		}

		var penghuni int64
		if err := tx.Model(&models.Penghuni{}).Where("Id = ?", pk.PenghuniId).Count(&penghuni).Error; err != nil {
			return err
		}
		if penghuni == 0 {
			return ErrNotFound
		}

		if err := tx.Create(pk).Error; err != nil {
			return fmt.Errorf("failed to create occupancy record: %w", err)
		}
		return setStatusKamar(tx, pk.KamarId, models.StatusKamarTerisi)
	})
}

// Update replaces dates, payment status and foreign keys of an existing
// record by id. The room's occupancy flag is deliberately untouched.
func (r *PenghuniKamarRepository) Update(pk *models.PenghuniKamar) error {
	result := r.db.Model(&models.PenghuniKamar{}).Where("Id = ?", pk.Id).Updates(map[string]interface{}{
		"KamarId":          pk.KamarId,
		"PenghuniId":       pk.PenghuniId,
		"TanggalMasuk":     pk.TanggalMasuk,
		"TanggalKeluar":    pk.TanggalKeluar,
		"StatusPembayaran": pk.StatusPembayaran,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update occupancy record %d: %w", pk.Id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an occupancy record and marks its room vacant again,
// both in one transaction.
func (r *PenghuniKamarRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var record models.PenghuniKamar
		if err := tx.First(&record, "Id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&models.PenghuniKamar{}, "Id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete occupancy record %d: %w", id, err)
		}
		return setStatusKamar(tx, record.KamarId, models.StatusKamarKosong)
	})
}

func setStatusKamar(tx *gorm.DB, kamarID uint, status models.StatusKamar) error {
	return tx.Model(&models.Kamar{}).Where("Id = ?", kamarID).
		UpdateColumn("StatusKamar", status).Error
}
