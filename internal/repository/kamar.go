package repository

import (
	"errors"
	"fmt"

	"kos-manager/internal/models"

	"gorm.io/gorm"
)

// KamarRepository persists rooms. Room creation and deletion also
// maintain the owning property's denormalized room counter, inside the
// same transaction so the counter cannot drift from the actual rows.
type KamarRepository struct {
	db *gorm.DB
}

// NewKamarRepository creates a new room repository over the shared handle
func NewKamarRepository(db *gorm.DB) *KamarRepository {
	return &KamarRepository{db: db}
}

// List retrieves all rooms
func (r *KamarRepository) List() ([]models.Kamar, error) {
	var kamar []models.Kamar
	err := r.db.Order("NoKam ASC").Find(&kamar).Error
	return kamar, err
}

// ListByKosanID retrieves the rooms of one property
func (r *KamarRepository) ListByKosanID(kosanID uint) ([]models.Kamar, error) {
	var kamar []models.Kamar
	err := r.db.Where("KosanId = ?", kosanID).Order("NoKam ASC").Find(&kamar).Error
	return kamar, err
}

// CountByKosanID returns the number of room rows of one property
func (r *KamarRepository) CountByKosanID(kosanID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Kamar{}).Where("KosanId = ?", kosanID).Count(&count).Error
	return count, err
}

// GetByID retrieves a room by id, or nil when it does not exist
func (r *KamarRepository) GetByID(id uint) (*models.Kamar, error) {
	var kamar models.Kamar
	err := r.db.First(&kamar, "Id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kamar, nil
}

// Create inserts a room under its property and increments the property's
// room counter in the same transaction. Fails with ErrNotFound when the
// property does not exist.
func (r *KamarRepository) Create(k *models.Kamar) error {
	k.Id = 0
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requireKosan(tx, k.KosanId); err != nil {
			return err
		}
		if err := tx.Create(k).Error; err != nil {
			return fmt.Errorf("failed to create kamar: %w", err)
		}
		return bumpJumlahKamar(tx, k.KosanId, 1)
	})
}

// CreateBatch inserts n numbered rooms (NoKam 1..n) under a property,
// all sharing the given price and image, and bumps the counter by n.
// Used by the property form when a room count is supplied up front.
func (r *KamarRepository) CreateBatch(kosanID uint, n int, harga *int, imageUri *string) ([]models.Kamar, error) {
	if n <= 0 {
		return nil, nil
	}

	kamar := make([]models.Kamar, n)
	for i := range kamar {
		kamar[i] = models.Kamar{
			KosanId:     kosanID,
			NoKam:       i + 1,
			StatusKamar: models.StatusKamarKosong,
			Harga:       harga,
			ImageUri:    imageUri,
		}
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := requireKosan(tx, kosanID); err != nil {
			return err
		}
		if err := tx.Create(&kamar).Error; err != nil {
			return fmt.Errorf("failed to create %d kamar: %w", n, err)
		}
		return bumpJumlahKamar(tx, kosanID, n)
	})
	if err != nil {
		return nil, err
	}
	return kamar, nil
}

// Update replaces the stored fields of an existing room
func (r *KamarRepository) Update(k *models.Kamar) error {
	result := r.db.Model(&models.Kamar{}).Where("Id = ?", k.Id).Updates(map[string]interface{}{
		"KosanId":     k.KosanId,
		"NoKam":       k.NoKam,
		"StatusKamar": k.StatusKamar,
		"Harga":       k.Harga,
		"ImageUri":    k.ImageUri,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update kamar %d: %w", k.Id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a room and decrements its property's room counter.
// Refused with ErrKamarHasTransaksi while any occupancy record,
// historical or current, still references the room; in that case
// neither the room row nor the counter changes.
func (r *KamarRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var kamar models.Kamar
		if err := tx.First(&kamar, "Id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var transaksi int64
		if err := tx.Model(&models.PenghuniKamar{}).Where("KamarId = ?", id).Count(&transaksi).Error; err != nil {
			return err
		}
		if transaksi > 0 {
			return ErrKamarHasTransaksi
		}

		result := tx.Delete(&models.Kamar{}, "Id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete kamar %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return bumpJumlahKamar(tx, kamar.KosanId, -1)
	})
}

// DeleteByKosanID removes every room of a property without checking
// occupancy records. Only the property cascade uses this; the property
// delete transaction removes the occupancy rows itself.
func (r *KamarRepository) DeleteByKosanID(kosanID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("KosanId = ?", kosanID).Delete(&models.Kamar{}).Error; err != nil {
			return fmt.Errorf("failed to delete rooms of kosan %d: %w", kosanID, err)
		}
		return tx.Model(&models.Kosan{}).Where("Id = ?", kosanID).
			UpdateColumn("JumlahKamar", 0).Error
	})
}

// UpdatePaymentStatus flips the payment flag on the room's active
// occupancy record. No other row is touched.
func (r *KamarRepository) UpdatePaymentStatus(kamarID uint, status models.StatusPembayaran) error {
	result := r.db.Model(&models.PenghuniKamar{}).
		Where("KamarId = ?", kamarID).
		Update("StatusPembayaran", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update payment status of kamar %d: %w", kamarID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of rooms across all properties
func (r *KamarRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Kamar{}).Count(&count).Error
	return count, err
}

// CountTerisi returns the number of occupied rooms
func (r *KamarRepository) CountTerisi() (int64, error) {
	var count int64
	err := r.db.Model(&models.Kamar{}).Where("StatusKamar = ?", models.StatusKamarTerisi).Count(&count).Error
	return count, err
}

func requireKosan(tx *gorm.DB, kosanID uint) error {
	var count int64
	if err := tx.Model(&models.Kosan{}).Where("Id = ?", kosanID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func bumpJumlahKamar(tx *gorm.DB, kosanID uint, delta int) error {
	return tx.Model(&models.Kosan{}).Where("Id = ?", kosanID).
		UpdateColumn("JumlahKamar", gorm.Expr("JumlahKamar + ?", delta)).Error
}
