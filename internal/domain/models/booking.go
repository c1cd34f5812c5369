package models

import "time"

// Booking is a single courier pickup request as stored in MySQL.
type Booking struct {
	ID              int64     `json:"id"`
	ItemDescription string    `json:"item_description"`
	SenderName      string    `json:"sender_name"`
	SenderPhone     string    `json:"sender_phone"`
	SenderPincode   string    `json:"sender_pincode"`
	ReceiverPincode string    `json:"receiver_pincode"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookingInput holds the five raw fields as received from the form or
// the JSON API, before trimming and validation.
type BookingInput struct {
	ItemDescription string `json:"item_description" form:"item_description"`
	SenderName      string `json:"sender_name" form:"sender_name"`
	SenderPhone     string `json:"sender_phone" form:"sender_phone"`
	SenderPincode   string `json:"sender_pincode" form:"sender_pincode"`
	ReceiverPincode string `json:"receiver_pincode" form:"receiver_pincode"`
}
