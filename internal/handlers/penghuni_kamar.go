package handlers

import (
	"net/http"
	"time"

	"kos-manager/internal/models"
	"kos-manager/internal/repository"

	"github.com/gin-gonic/gin"
)

// PenghuniKamarHandler handles occupancy record requests
type PenghuniKamarHandler struct {
	pkRepo *repository.PenghuniKamarRepository
}

// NewPenghuniKamarHandler creates a new occupancy handler
func NewPenghuniKamarHandler(pkRepo *repository.PenghuniKamarRepository) *PenghuniKamarHandler {
	return &PenghuniKamarHandler{pkRepo: pkRepo}
}

// Dates travel as "YYYY-MM-DD" strings and are parsed at this edge.
const dateLayout = "2006-01-02"

type penghuniKamarRequest struct {
	KamarId          uint    `json:"KamarId" binding:"required"`
	PenghuniId       uint    `json:"PenghuniId" binding:"required"`
	TanggalMasuk     *string `json:"TanggalMasuk"`
	TanggalKeluar    *string `json:"TanggalKeluar"`
	StatusPembayaran *int    `json:"StatusPembayaran" binding:"omitempty,oneof=0 1"`
}

func (req *penghuniKamarRequest) toModel() (*models.PenghuniKamar, error) {
	masuk, err := parseDate(req.TanggalMasuk)
	if err != nil {
		return nil, err
	}
	keluar, err := parseDate(req.TanggalKeluar)
	if err != nil {
		return nil, err
	}

	pk := &models.PenghuniKamar{
		KamarId:       req.KamarId,
		PenghuniId:    req.PenghuniId,
		TanggalMasuk:  masuk,
		TanggalKeluar: keluar,
	}
	if req.StatusPembayaran != nil {
		status := models.StatusPembayaran(*req.StatusPembayaran)
		pk.StatusPembayaran = &status
	}
	return pk, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetRiwayat returns a tenant's occupancy history, newest first
func (h *PenghuniKamarHandler) GetRiwayat(c *gin.Context) {
	penghuniID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	riwayat, err := h.pkRepo.ListByPenghuniID(penghuniID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"riwayat": riwayat,
		"count":   len(riwayat),
	})
}

// GetPenghuniKamar returns one occupancy record by id
func (h *PenghuniKamarHandler) GetPenghuniKamar(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	record, err := h.pkRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaksi tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreatePenghuniKamar checks a tenant into a room. The room becomes
// occupied in the same transaction. Occupied rooms are refused with 409.
func (h *PenghuniKamarHandler) CreatePenghuniKamar(c *gin.Context) {
	var req penghuniKamarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pk, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tanggal harus berformat YYYY-MM-DD"})
		return
	}

	if err := h.pkRepo.Create(pk); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pk)
}

// UpdatePenghuniKamar updates an occupancy record. The room's occupancy
// flag stays as it is; only check-in and check-out change it.
func (h *PenghuniKamarHandler) UpdatePenghuniKamar(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req penghuniKamarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pk, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tanggal harus berformat YYYY-MM-DD"})
		return
	}
	pk.Id = id

	if err := h.pkRepo.Update(pk); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, pk)
}

// DeletePenghuniKamar checks a tenant out of a room. The room becomes
// vacant in the same transaction.
func (h *PenghuniKamarHandler) DeletePenghuniKamar(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.pkRepo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaksi berhasil dihapus"})
}
