package repository

import (
	"errors"
	"fmt"

	"kos-manager/internal/models"

	"gorm.io/gorm"
)

// KosanRepository persists boarding-house properties.
type KosanRepository struct {
	db *gorm.DB
}

// NewKosanRepository creates a new property repository over the shared handle
func NewKosanRepository(db *gorm.DB) *KosanRepository {
	return &KosanRepository{db: db}
}

// List retrieves all properties
func (r *KosanRepository) List() ([]models.Kosan, error) {
	var kosan []models.Kosan
	err := r.db.Order("Id ASC").Find(&kosan).Error
	return kosan, err
}

// GetByID retrieves a property by id, or nil when it does not exist
func (r *KosanRepository) GetByID(id uint) (*models.Kosan, error) {
	var kosan models.Kosan
	err := r.db.First(&kosan, "Id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kosan, nil
}

// Create inserts a new property and fills in its generated id. The room
// counter always starts at 0 no matter what the caller supplies; rooms
// are counted as they are actually created.
func (r *KosanRepository) Create(k *models.Kosan) error {
	k.Id = 0
	k.JumlahKamar = 0
	if err := r.db.Create(k).Error; err != nil {
		return fmt.Errorf("failed to create kosan: %w", err)
	}
	return nil
}

// Update replaces the stored fields of an existing property. JumlahKamar
// is left alone; only the room transactions move it.
func (r *KosanRepository) Update(k *models.Kosan) error {
	result := r.db.Model(&models.Kosan{}).Where("Id = ?", k.Id).Updates(map[string]interface{}{
		"NamaKosan": k.NamaKosan,
		"Kota":      k.Kota,
		"Alamat":    k.Alamat,
		"Harga":     k.Harga,
		"TipeKosan": k.TipeKosan,
		"ImageUri":  k.ImageUri,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update kosan %d: %w", k.Id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a property together with its rooms and their occupancy
// records in one transaction. Unlike single-room deletion, the cascade
// does not check occupancy history: tearing down the property tears
// down everything under it.
func (r *KosanRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		roomIDs := tx.Model(&models.Kamar{}).Select("Id").Where("KosanId = ?", id)
		if err := tx.Where("KamarId IN (?)", roomIDs).Delete(&models.PenghuniKamar{}).Error; err != nil {
			return fmt.Errorf("failed to delete occupancy records of kosan %d: %w", id, err)
		}
		if err := tx.Where("KosanId = ?", id).Delete(&models.Kamar{}).Error; err != nil {
			return fmt.Errorf("failed to delete rooms of kosan %d: %w", id, err)
		}

		result := tx.Delete(&models.Kosan{}, "Id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete kosan %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Count returns the number of properties
func (r *KosanRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Kosan{}).Count(&count).Error
	return count, err
}
