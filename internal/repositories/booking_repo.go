package repositories

import (
	"context"
	"time"

	"couriersathi/internal/db"
	"couriersathi/internal/domain"
	"couriersathi/internal/domain/models"
)

// DefaultListLimit caps admin listings when callers pass no usable limit.
const DefaultListLimit = 200

// BookingRepo wraps DB access for the bookings table. Every call opens
// its own connection through the connector and closes it before
// returning.
type BookingRepo struct {
	Conn db.Opener
}

// Insert stores one booking row with created_at set to the current UTC
// time and returns the generated id.
func (r BookingRepo) Insert(ctx context.Context, in models.BookingInput) (int64, error) {
	dbh, err := r.Conn.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer dbh.Close()

	res, err := dbh.ExecContext(ctx, `
        INSERT INTO bookings (item_description, sender_name, sender_phone, sender_pincode, receiver_pincode, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, in.ItemDescription, in.SenderName, in.SenderPhone, in.SenderPincode, in.ReceiverPincode, time.Now().UTC())
	if err != nil {
		return 0, domain.StorageError{Op: "insert booking", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.StorageError{Op: "insert booking", Err: err}
	}
	return id, nil
}

// ListRecent returns at most limit bookings, most recent first. A
// failure here means "no data available", which callers must keep
// distinct from an empty table.
func (r BookingRepo) ListRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	dbh, err := r.Conn.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer dbh.Close()

	rows, err := dbh.QueryContext(ctx, `
        SELECT id, item_description, sender_name, sender_phone, sender_pincode, receiver_pincode, created_at
        FROM bookings
        ORDER BY created_at DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, domain.StorageError{Op: "list bookings", Err: err}
	}
	defer rows.Close()

	out := make([]models.Booking, 0, limit)
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID,
			&b.ItemDescription,
			&b.SenderName,
			&b.SenderPhone,
			&b.SenderPincode,
			&b.ReceiverPincode,
			&b.CreatedAt,
		); err != nil {
			return nil, domain.StorageError{Op: "scan booking", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "list bookings", Err: err}
	}
	return out, nil
}
