package handlers

import (
	"net/http"

	"github.com/castledice/storage/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to the HTTP boundary: not-found family to
// 404, ledger precondition violations to 409, everything else to a server
// fault. The detail string is the error's own message.
func respondError(c *gin.Context, err error) {
	if _, ok := domain.IsNotFound(err); ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}
	if domain.IsConflict(err) {
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": msg})
}
