package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"couriersathi/internal/http/middleware"
	"couriersathi/internal/utils"
)

// GET /admin — listing behind Basic auth. A storage failure degrades to
// an empty list with a visible notice; the page never hard-fails.
func (h *Handler) AdminList(c *gin.Context) {
	rows, err := h.Bookings.ListRecent(c.Request.Context(), adminListLimit)
	notice := ""
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "admin", "list_failed", err.Error())
		rows = nil
		notice = "Could not load bookings."
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Bookings": rows,
		"Notice":   notice,
		"Year":     time.Now().UTC().Year(),
	})
}

// GET /admin/export.pdf
func (h *Handler) AdminExportPDF(c *gin.Context) {
	svc := h.Export
	svc.RequestID = middleware.GetRequestID(c)
	data, filename, err := svc.GenerateBookingsPDF(c.Request.Context())
	if err != nil {
		utils.LogEvent(svc.RequestID, "admin", "export_failed", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server DB error"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin/login
func (h *Handler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if !h.Creds.Verify(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	token, err := h.Tokens.Issue(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GET /api/admin/bookings — token-gated JSON variant of the listing.
func (h *Handler) AdminBookingsJSON(c *gin.Context) {
	rows, err := h.Bookings.ListRecent(c.Request.Context(), adminListLimit)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "admin", "list_failed", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server DB error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": rows, "count": len(rows)})
}
