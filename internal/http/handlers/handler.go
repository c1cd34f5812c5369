package handlers

import (
	"context"

	"couriersathi/internal/auth"
	"couriersathi/internal/config"
	"couriersathi/internal/db"
	"couriersathi/internal/domain/models"
	"couriersathi/internal/services"
)

// BookingLister is the read side of the booking store as the handlers
// need it.
type BookingLister interface {
	ListRecent(ctx context.Context, limit int) ([]models.Booking, error)
}

// Handler carries the wired dependencies for every route.
type Handler struct {
	Env         config.Env
	Submissions services.SubmissionService
	Bookings    BookingLister
	Export      services.ExportService
	Creds       auth.CredentialStore
	Tokens      auth.TokenIssuer
	Conn        db.Opener
}

// adminListLimit caps the admin listing and every export of it.
const adminListLimit = 200
