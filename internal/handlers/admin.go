package handlers

import (
	"log"
	"net/http"
	"strconv"

	"kos-manager/internal/ratelimit"
	"kos-manager/internal/repository"
	"kos-manager/internal/scheduler"
	"kos-manager/internal/search"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles statistics, search and maintenance requests
type AdminHandler struct {
	kosanRepo    *repository.KosanRepository
	kamarRepo    *repository.KamarRepository
	penghuniRepo *repository.PenghuniRepository
	search       *search.SearchClient
	scheduler    *scheduler.Scheduler
	rateLimiter  *ratelimit.RateLimiter
}

// NewAdminHandler creates a new admin handler. search and sched may be
// nil when search is disabled.
func NewAdminHandler(
	kosanRepo *repository.KosanRepository,
	kamarRepo *repository.KamarRepository,
	penghuniRepo *repository.PenghuniRepository,
	searchClient *search.SearchClient,
	sched *scheduler.Scheduler,
	rateLimiter *ratelimit.RateLimiter,
) *AdminHandler {
	return &AdminHandler{
		kosanRepo:    kosanRepo,
		kamarRepo:    kamarRepo,
		penghuniRepo: penghuniRepo,
		search:       searchClient,
		scheduler:    sched,
		rateLimiter:  rateLimiter,
	}
}

// GetStats returns entity counts for the dashboard
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats := make(map[string]interface{})

	kosanCount, err := h.kosanRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	kamarCount, err := h.kamarRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	terisiCount, err := h.kamarRepo.CountTerisi()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	penghuniCount, err := h.penghuniRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats["kosan"] = map[string]interface{}{
		"total": kosanCount,
	}
	stats["kamar"] = map[string]interface{}{
		"total":  kamarCount,
		"terisi": terisiCount,
		"kosong": kamarCount - terisiCount,
	}
	stats["penghuni"] = map[string]interface{}{
		"total": penghuniCount,
	}
	if h.rateLimiter != nil {
		stats["rate_limit"] = h.rateLimiter.GetStats()
	}

	c.JSON(http.StatusOK, stats)
}

// SearchKosan performs a full-text property search
func (h *AdminHandler) SearchKosan(c *gin.Context) {
	if h.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search is not enabled"})
		return
	}

	query := c.Query("q")
	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		limit = 20
	}

	req := search.SearchRequest{
		Query: query,
		Limit: limit,
	}
	if tipe := c.Query("tipe_kosan"); tipe != "" {
		req.Filter = append(req.Filter, "tipe_kosan = "+strconv.Quote(tipe))
	}
	if kota := c.Query("kota"); kota != "" {
		req.Filter = append(req.Filter, "kota = "+strconv.Quote(kota))
	}
	if maxHarga := c.Query("max_harga"); maxHarga != "" {
		if _, err := strconv.Atoi(maxHarga); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_harga"})
			return
		}
		req.Filter = append(req.Filter, "harga <= "+maxHarga)
	}

	result, err := h.search.AdvancedSearch(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hits":               result.Hits,
		"total_hits":         result.TotalHits,
		"processing_time_ms": result.ProcessingTime,
	})
}

// TriggerReindex manually rebuilds the search index
func (h *AdminHandler) TriggerReindex(c *gin.Context) {
	if h.scheduler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search is not enabled"})
		return
	}

	log.Println("Admin: Manual reindex trigger requested")

	// Run in goroutine to avoid blocking
	go func() {
		if err := h.scheduler.RunNow(); err != nil {
			log.Printf("Admin: Manual reindex failed: %v", err)
		} else {
			log.Println("Admin: Manual reindex completed successfully")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"message": "reindex job started",
		"status":  "running",
	})
}
