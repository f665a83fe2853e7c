package handlers

import (
	"log"
	"net/http"
	"strconv"

	"kos-manager/internal/models"
	"kos-manager/internal/repository"
	"kos-manager/internal/search"

	"github.com/gin-gonic/gin"
)

// KosanHandler handles property requests
type KosanHandler struct {
	kosanRepo *repository.KosanRepository
	kamarRepo *repository.KamarRepository
	search    *search.SearchClient
}

// NewKosanHandler creates a new property handler. searchClient may be
// nil when search is disabled.
func NewKosanHandler(kosanRepo *repository.KosanRepository, kamarRepo *repository.KamarRepository, searchClient *search.SearchClient) *KosanHandler {
	return &KosanHandler{
		kosanRepo: kosanRepo,
		kamarRepo: kamarRepo,
		search:    searchClient,
	}
}

type createKosanRequest struct {
	NamaKosan   string  `json:"NamaKosan" binding:"required"`
	Kota        string  `json:"Kota" binding:"required"`
	Alamat      string  `json:"Alamat"`
	Harga       int     `json:"Harga" binding:"min=0"`
	JumlahKamar int     `json:"JumlahKamar" binding:"min=0"`
	TipeKosan   string  `json:"TipeKosan" binding:"required,oneof=Laki-Laki Perempuan"`
	ImageUri    string  `json:"ImageUri"`
	HargaKamar  *int    `json:"HargaKamar"`
	ImageKamar  *string `json:"ImageKamar"`
}

// ListKosan returns all properties
func (h *KosanHandler) ListKosan(c *gin.Context) {
	kosan, err := h.kosanRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"kosan": kosan,
		"count": len(kosan),
	})
}

// GetKosan returns one property by id
func (h *KosanHandler) GetKosan(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	kosan, err := h.kosanRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if kosan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "kosan tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, kosan)
}

// CreateKosan creates a property. The stored room counter always starts
// at zero; when the request carries JumlahKamar > 0 the handler creates
// that many numbered rooms right after, which brings the counter up to
// the requested value.
func (h *KosanHandler) CreateKosan(c *gin.Context) {
	var req createKosanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kosan := models.Kosan{
		NamaKosan: req.NamaKosan,
		Kota:      req.Kota,
		Alamat:    req.Alamat,
		Harga:     req.Harga,
		TipeKosan: models.TipeKosan(req.TipeKosan),
		ImageUri:  req.ImageUri,
	}

	if err := h.kosanRepo.Create(&kosan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.JumlahKamar > 0 {
		harga := req.HargaKamar
		if harga == nil {
			harga = &req.Harga
		}
		if _, err := h.kamarRepo.CreateBatch(kosan.Id, req.JumlahKamar, harga, req.ImageKamar); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		kosan.JumlahKamar = req.JumlahKamar
	}

	h.indexKosan(&kosan)
	c.JSON(http.StatusCreated, kosan)
}

// UpdateKosan updates a property
func (h *KosanHandler) UpdateKosan(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req createKosanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kosan := models.Kosan{
		Id:        id,
		NamaKosan: req.NamaKosan,
		Kota:      req.Kota,
		Alamat:    req.Alamat,
		Harga:     req.Harga,
		TipeKosan: models.TipeKosan(req.TipeKosan),
		ImageUri:  req.ImageUri,
	}

	if err := h.kosanRepo.Update(&kosan); err != nil {
		respondRepoError(c, err)
		return
	}

	updated, err := h.kosanRepo.GetByID(id)
	if err != nil || updated == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload kosan"})
		return
	}
	h.indexKosan(updated)
	c.JSON(http.StatusOK, updated)
}

// DeleteKosan deletes a property together with its rooms and their
// occupancy records
func (h *KosanHandler) DeleteKosan(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.kosanRepo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}

	if h.search != nil {
		if err := h.search.DeleteKosan(id); err != nil {
			log.Printf("Search: failed to remove kosan %d from index: %v", id, err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "kosan berhasil dihapus"})
}

// indexKosan pushes one property into the search index, best effort
func (h *KosanHandler) indexKosan(kosan *models.Kosan) {
	if h.search == nil {
		return
	}
	if err := h.search.IndexKosan(kosan); err != nil {
		log.Printf("Search: failed to index kosan %d: %v", kosan.Id, err)
	}
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	return uint(id), err
}
