package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "couriersathi backend running"})
}

// GET /api/db-check — opens a fresh connection and counts bookings.
func (h *Handler) DBCheck(c *gin.Context) {
	dbh, err := h.Conn.Open(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database unreachable"})
		return
	}
	defer dbh.Close()

	var count int
	if err := dbh.QueryRowContext(c.Request.Context(), "SELECT COUNT(*) FROM bookings").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database OK", "bookings_in_db": count})
}
