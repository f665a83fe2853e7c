package handlers

import (
	"net/http"

	"kos-manager/internal/models"
	"kos-manager/internal/repository"

	"github.com/gin-gonic/gin"
)

// PenghuniHandler handles tenant requests
type PenghuniHandler struct {
	penghuniRepo *repository.PenghuniRepository
}

// NewPenghuniHandler creates a new tenant handler
func NewPenghuniHandler(penghuniRepo *repository.PenghuniRepository) *PenghuniHandler {
	return &PenghuniHandler{penghuniRepo: penghuniRepo}
}

type penghuniRequest struct {
	Nama         string  `json:"Nama" binding:"required"`
	Umur         int     `json:"Umur" binding:"min=0"`
	JenisKelamin string  `json:"JenisKelamin" binding:"required,oneof=Laki-Laki Perempuan"`
	NoTelp       string  `json:"NoTelp"`
	FotoPenghuni *string `json:"FotoPenghuni"`
	FotoKTP      *string `json:"FotoKTP"`
}

// ListPenghuni returns all tenants ordered by name
func (h *PenghuniHandler) ListPenghuni(c *gin.Context) {
	penghuni, err := h.penghuniRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"penghuni": penghuni,
		"count":    len(penghuni),
	})
}

// GetPenghuni returns one tenant by id
func (h *PenghuniHandler) GetPenghuni(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	penghuni, err := h.penghuniRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if penghuni == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "penghuni tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, penghuni)
}

// GetPenghuniByKamar returns the tenant currently occupying a room
func (h *PenghuniHandler) GetPenghuniByKamar(c *gin.Context) {
	kamarID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	penghuni, err := h.penghuniRepo.GetByKamarID(kamarID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if penghuni == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "kamar tidak memiliki penghuni"})
		return
	}
	c.JSON(http.StatusOK, penghuni)
}

// CreatePenghuni creates a tenant
func (h *PenghuniHandler) CreatePenghuni(c *gin.Context) {
	var req penghuniRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	penghuni := models.Penghuni{
		Nama:         req.Nama,
		Umur:         req.Umur,
		JenisKelamin: req.JenisKelamin,
		NoTelp:       req.NoTelp,
		FotoPenghuni: req.FotoPenghuni,
		FotoKTP:      req.FotoKTP,
	}

	if err := h.penghuniRepo.Create(&penghuni); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, penghuni)
}

// UpdatePenghuni updates a tenant
func (h *PenghuniHandler) UpdatePenghuni(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req penghuniRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	penghuni := models.Penghuni{
		Id:           id,
		Nama:         req.Nama,
		Umur:         req.Umur,
		JenisKelamin: req.JenisKelamin,
		NoTelp:       req.NoTelp,
		FotoPenghuni: req.FotoPenghuni,
		FotoKTP:      req.FotoKTP,
	}

	if err := h.penghuniRepo.Update(&penghuni); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, penghuni)
}

// DeletePenghuni deletes a tenant. Tenants with occupancy records are
// refused with 409; end the tenancy first.
func (h *PenghuniHandler) DeletePenghuni(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.penghuniRepo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "penghuni berhasil dihapus"})
}
