package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"couriersathi/internal/domain"
	"couriersathi/internal/domain/models"
	"couriersathi/internal/http/middleware"
	"couriersathi/internal/utils"
)

const genericStoreErr = "Server error saving booking. Try again later."

// POST /submit — HTML form entry point. Validation or storage failures
// flash and bounce back to the form; success renders the WhatsApp page.
func (h *Handler) SubmitForm(c *gin.Context) {
	in := models.BookingInput{
		ItemDescription: c.PostForm("item_description"),
		SenderName:      c.PostForm("sender_name"),
		SenderPhone:     c.PostForm("sender_phone"),
		SenderPincode:   c.PostForm("sender_pincode"),
		ReceiverPincode: c.PostForm("receiver_pincode"),
	}

	svc := h.Submissions
	svc.RequestID = middleware.GetRequestID(c)
	rec, err := svc.Submit(c.Request.Context(), in)

	var ve domain.ValidationError
	switch {
	case errors.As(err, &ve):
		addFlashes(c, flashDanger, ve.Msgs...)
		c.Redirect(http.StatusFound, "/")
	case err != nil:
		utils.LogEvent(svc.RequestID, "booking", "store_failed", err.Error())
		addFlashes(c, flashDanger, genericStoreErr)
		c.Redirect(http.StatusFound, "/")
	default:
		c.HTML(http.StatusOK, "success.html", gin.H{
			"MessageText": rec.MessageText,
			"WaURL":       rec.WaURL,
			"Notice":      "Booking saved. Click WhatsApp link to notify manually.",
		})
	}
}

// POST /api/submit-json — JSON entry point used by the "Send via
// WhatsApp" button. Same validation and storage contract as the form.
func (h *Handler) SubmitJSON(c *gin.Context) {
	var in models.BookingInput
	// a missing or malformed body degrades to empty fields, which the
	// validator reports field by field
	_ = c.ShouldBindJSON(&in)

	svc := h.Submissions
	svc.RequestID = middleware.GetRequestID(c)
	rec, err := svc.Submit(c.Request.Context(), in)

	var ve domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": ve.Msgs})
	case err != nil:
		utils.LogEvent(svc.RequestID, "booking", "store_failed", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "errors": []string{"Server DB error"}})
	default:
		c.JSON(http.StatusOK, gin.H{
			"ok":           true,
			"wa_url":       rec.WaURL,
			"message_text": rec.MessageText,
		})
	}
}
