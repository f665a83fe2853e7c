package handlers

import (
	"net/http"

	"kos-manager/internal/models"
	"kos-manager/internal/repository"

	"github.com/gin-gonic/gin"
)

// KamarHandler handles room requests
type KamarHandler struct {
	kamarRepo  *repository.KamarRepository
	detailRepo *repository.PenghuniKamarRepository
}

// NewKamarHandler creates a new room handler
func NewKamarHandler(kamarRepo *repository.KamarRepository, detailRepo *repository.PenghuniKamarRepository) *KamarHandler {
	return &KamarHandler{
		kamarRepo:  kamarRepo,
		detailRepo: detailRepo,
	}
}

type kamarRequest struct {
	KosanId     uint    `json:"KosanId" binding:"required"`
	NoKam       int     `json:"NoKam" binding:"required,min=1"`
	StatusKamar int     `json:"StatusKamar" binding:"oneof=0 1"`
	Harga       *int    `json:"Harga"`
	ImageUri    *string `json:"ImageUri"`
}

// ListKamar returns all rooms, or the rooms of one property when a
// kosan_id query parameter is present
func (h *KamarHandler) ListKamar(c *gin.Context) {
	var (
		kamar []models.Kamar
		err   error
	)
	if raw := c.Query("kosan_id"); raw != "" {
		kosanID, parseErr := parseID(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kosan_id"})
			return
		}
		kamar, err = h.kamarRepo.ListByKosanID(kosanID)
	} else {
		kamar, err = h.kamarRepo.List()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"kamar": kamar,
		"count": len(kamar),
	})
}

// ListDetail returns the denormalized room listing for the room screen:
// every room with its current tenant and payment status, vacant rooms
// included. Optional kosan_id query parameter restricts to one property.
func (h *KamarHandler) ListDetail(c *gin.Context) {
	var kosanID *uint
	if raw := c.Query("kosan_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kosan_id"})
			return
		}
		kosanID = &id
	}

	detail, err := h.detailRepo.ListDetail(kosanID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"kamar": detail,
		"count": len(detail),
	})
}

// GetKamar returns one room by id
func (h *KamarHandler) GetKamar(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	kamar, err := h.kamarRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if kamar == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "kamar tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, kamar)
}

// CreateKamar creates a room under a property
func (h *KamarHandler) CreateKamar(c *gin.Context) {
	var req kamarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kamar := models.Kamar{
		KosanId:     req.KosanId,
		NoKam:       req.NoKam,
		StatusKamar: models.StatusKamar(req.StatusKamar),
		Harga:       req.Harga,
		ImageUri:    req.ImageUri,
	}

	if err := h.kamarRepo.Create(&kamar); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, kamar)
}

// UpdateKamar updates a room
func (h *KamarHandler) UpdateKamar(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req kamarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kamar := models.Kamar{
		Id:          id,
		KosanId:     req.KosanId,
		NoKam:       req.NoKam,
		StatusKamar: models.StatusKamar(req.StatusKamar),
		Harga:       req.Harga,
		ImageUri:    req.ImageUri,
	}

	if err := h.kamarRepo.Update(&kamar); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, kamar)
}

// DeleteKamar deletes a room. Rooms referenced by occupancy records,
// current or historical, are refused with 409.
func (h *KamarHandler) DeleteKamar(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.kamarRepo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kamar berhasil dihapus"})
}

type pembayaranRequest struct {
	StatusPembayaran int `json:"StatusPembayaran" binding:"oneof=0 1"`
}

// UpdatePembayaran flips the payment flag on the room's occupancy record
func (h *KamarHandler) UpdatePembayaran(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req pembayaranRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.kamarRepo.UpdatePaymentStatus(id, models.StatusPembayaran(req.StatusPembayaran)); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status pembayaran diperbarui"})
}
