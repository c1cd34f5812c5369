package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"couriersathi/internal/domain"
	"couriersathi/internal/domain/models"
	"couriersathi/internal/utils"
)

// minPhoneLen is the shortest sender phone accepted after trimming.
const minPhoneLen = 6

// BookingInserter is the storage dependency of the submission flow.
type BookingInserter interface {
	Insert(ctx context.Context, in models.BookingInput) (int64, error)
}

// SubmissionService validates a booking payload, persists it and builds
// the owner notification. Both the form and the JSON entry points share
// this one implementation.
type SubmissionService struct {
	Store         BookingInserter
	OwnerWhatsApp string
	RequestID     string
}

// Receipt is the result of a stored submission.
type Receipt struct {
	BookingID   int64
	MessageText string
	WaURL       string
}

// ValidateInput trims all five fields and checks them in fixed order,
// accumulating every failing reason. An empty slice means the cleaned
// input may be stored.
func ValidateInput(in models.BookingInput) (models.BookingInput, []string) {
	clean := models.BookingInput{
		ItemDescription: utils.TrimOrEmpty(in.ItemDescription),
		SenderName:      utils.TrimOrEmpty(in.SenderName),
		SenderPhone:     utils.TrimOrEmpty(in.SenderPhone),
		SenderPincode:   utils.TrimOrEmpty(in.SenderPincode),
		ReceiverPincode: utils.TrimOrEmpty(in.ReceiverPincode),
	}

	var msgs []string
	if clean.ItemDescription == "" {
		msgs = append(msgs, "Item description required.")
	}
	if clean.SenderName == "" {
		msgs = append(msgs, "Sender name required.")
	}
	if len(clean.SenderPhone) < minPhoneLen {
		msgs = append(msgs, "Valid sender phone required.")
	}
	if clean.SenderPincode == "" {
		msgs = append(msgs, "Sender pincode required.")
	}
	if clean.ReceiverPincode == "" {
		msgs = append(msgs, "Receiver pincode required.")
	}
	return clean, msgs
}

// Submit runs the full flow: validate, store, build notification.
// Validation failures never touch storage; storage failures pass through
// typed for the handler to log and mask.
func (s SubmissionService) Submit(ctx context.Context, in models.BookingInput) (Receipt, error) {
	clean, msgs := ValidateInput(in)
	if len(msgs) > 0 {
		return Receipt{}, domain.ValidationError{Msgs: msgs}
	}

	id, err := s.Store.Insert(ctx, clean)
	if err != nil {
		return Receipt{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "stored", fmt.Sprintf("booking_id=%d", id))

	msg := NotificationMessage(clean)
	return Receipt{
		BookingID:   id,
		MessageText: msg,
		WaURL:       WhatsAppURL(s.OwnerWhatsApp, msg),
	}, nil
}

// NotificationMessage renders the fixed owner notification template.
// Same input always yields byte-identical text.
func NotificationMessage(in models.BookingInput) string {
	return fmt.Sprintf("CourierSathi booking:\nItem: %s\nSender: %s (%s)\nFrom Pincode: %s\nTo Pincode: %s\n",
		in.ItemDescription, in.SenderName, in.SenderPhone, in.SenderPincode, in.ReceiverPincode)
}

// WhatsAppURL builds the wa.me deep-link that opens a chat to the owner
// pre-filled with the message. Spaces are encoded as %20, the form
// WhatsApp expects.
func WhatsAppURL(ownerPhone, message string) string {
	return "https://wa.me/" + ownerPhone + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
