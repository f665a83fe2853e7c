package repository

import (
	"errors"
	"fmt"

	"kos-manager/internal/models"

	"gorm.io/gorm"
)

// PenghuniRepository persists tenants.
type PenghuniRepository struct {
	db *gorm.DB
}

// NewPenghuniRepository creates a new tenant repository over the shared handle
func NewPenghuniRepository(db *gorm.DB) *PenghuniRepository {
	return &PenghuniRepository{db: db}
}

// List retrieves all tenants
func (r *PenghuniRepository) List() ([]models.Penghuni, error) {
	var penghuni []models.Penghuni
	err := r.db.Order("Nama ASC").Find(&penghuni).Error
	return penghuni, err
}

// GetByID retrieves a tenant by id, or nil when it does not exist
func (r *PenghuniRepository) GetByID(id uint) (*models.Penghuni, error) {
	var penghuni models.Penghuni
	err := r.db.First(&penghuni, "Id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &penghuni, nil
}

// GetByKamarID retrieves the tenant currently occupying a room via the
// newest occupancy record, or nil when the room is vacant.
func (r *PenghuniRepository) GetByKamarID(kamarID uint) (*models.Penghuni, error) {
	var penghuni models.Penghuni
	err := r.db.
		Joins("JOIN Penghuni_Kamar ON Penghuni_Kamar.PenghuniId = Penghuni.Id").
		Where("Penghuni_Kamar.KamarId = ?", kamarID).
		Order("Penghuni_Kamar.Id DESC").
		First(&penghuni).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &penghuni, nil
}

// Create inserts a new tenant and fills in the generated id
func (r *PenghuniRepository) Create(p *models.Penghuni) error {
	p.Id = 0
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create penghuni: %w", err)
	}
	return nil
}

// Update replaces the stored fields of an existing tenant
func (r *PenghuniRepository) Update(p *models.Penghuni) error {
	result := r.db.Model(&models.Penghuni{}).Where("Id = ?", p.Id).Updates(map[string]interface{}{
		"Nama":         p.Nama,
		"Umur":         p.Umur,
		"JenisKelamin": p.JenisKelamin,
		"NoTelp":       p.NoTelp,
		"FotoPenghuni": p.FotoPenghuni,
		"FotoKTP":      p.FotoKTP,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update penghuni %d: %w", p.Id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a tenant. Refused with ErrPenghuniHasTransaksi while
// occupancy records still reference them; end the tenancy first.
func (r *PenghuniRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var transaksi int64
		if err := tx.Model(&models.PenghuniKamar{}).Where("PenghuniId = ?", id).Count(&transaksi).Error; err != nil {
			return err
		}
		if transaksi > 0 {
			return ErrPenghuniHasTransaksi
		}

		result := tx.Delete(&models.Penghuni{}, "Id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete penghuni %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Count returns the number of tenants
func (r *PenghuniRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Penghuni{}).Count(&count).Error
	return count, err
}
