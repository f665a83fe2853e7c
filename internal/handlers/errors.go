package handlers

import (
	"errors"
	"net/http"

	"kos-manager/internal/repository"

	"github.com/gin-gonic/gin"
)

// respondRepoError maps repository sentinels to HTTP statuses. Refusals
// that the client can act on (occupied room, linked records) are 409,
// bad input is 400, everything else is 500.
func respondRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "data tidak ditemukan"})
	case errors.Is(err, repository.ErrKamarHasTransaksi),
		errors.Is(err, repository.ErrPenghuniHasTransaksi),
		errors.Is(err, repository.ErrKamarTerisi):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrTanggalInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
