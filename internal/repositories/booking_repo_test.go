package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"couriersathi/internal/domain"
	"couriersathi/internal/domain/models"
)

type stubOpener struct {
	db  *sql.DB
	err error
}

func (s stubOpener) Open(ctx context.Context) (*sql.DB, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.db, nil
}

func sampleInput() models.BookingInput {
	return models.BookingInput{
		ItemDescription: "Books",
		SenderName:      "Asha",
		SenderPhone:     "9876543210",
		SenderPincode:   "560001",
		ReceiverPincode: "110001",
	}
}

// utcTimeArg matches a UTC timestamp set between test start and now.
type utcTimeArg struct {
	start time.Time
}

func (a utcTimeArg) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	if !ok {
		return false
	}
	return !ts.Before(a.start.Add(-time.Second)) && !ts.After(time.Now().UTC().Add(time.Second))
}

func TestInsertReturnsGeneratedID(t *testing.T) {
	dbh, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("Books", "Asha", "9876543210", "560001", "110001", utcTimeArg{start: time.Now().UTC()}).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectClose()

	repo := BookingRepo{Conn: stubOpener{db: dbh}}
	id, err := repo.Insert(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertRejectedStatementIsStorageError(t *testing.T) {
	dbh, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(errors.New("table gone"))
	mock.ExpectClose()

	repo := BookingRepo{Conn: stubOpener{db: dbh}}
	if _, err := repo.Insert(context.Background(), sampleInput()); !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestInsertConnectionFailurePassesThrough(t *testing.T) {
	connErr := domain.ConnectionError{Err: errors.New("refused")}
	repo := BookingRepo{Conn: stubOpener{err: connErr}}
	if _, err := repo.Insert(context.Background(), sampleInput()); !domain.IsConnection(err) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestListRecentOrdersAndLimits(t *testing.T) {
	dbh, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	newer := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "item_description", "sender_name", "sender_phone", "sender_pincode", "receiver_pincode", "created_at"}).
		AddRow(2, "Books", "Asha", "9876543210", "560001", "110001", newer).
		AddRow(1, "Shoes", "Ravi", "9876500000", "400001", "700001", older)

	mock.ExpectQuery("SELECT id, item_description, sender_name").
		WithArgs(200).
		WillReturnRows(rows)
	mock.ExpectClose()

	repo := BookingRepo{Conn: stubOpener{db: dbh}}
	got, err := repo.ListRecent(context.Background(), 200)
	if err != nil {
		t.Fatalf("ListRecent returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("rows out of order: %+v", got)
	}
	if got[0].CreatedAt.Before(got[1].CreatedAt) {
		t.Fatalf("created_at not descending")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRecentNonPositiveLimitUsesDefault(t *testing.T) {
	dbh, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	mock.ExpectQuery("SELECT id, item_description, sender_name").
		WithArgs(DefaultListLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_description", "sender_name", "sender_phone", "sender_pincode", "receiver_pincode", "created_at"}))
	mock.ExpectClose()

	repo := BookingRepo{Conn: stubOpener{db: dbh}}
	got, err := repo.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRecent returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(got))
	}
}

func TestListRecentQueryFailureIsStorageError(t *testing.T) {
	dbh, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	mock.ExpectQuery("SELECT id, item_description, sender_name").
		WillReturnError(errors.New("down"))
	mock.ExpectClose()

	repo := BookingRepo{Conn: stubOpener{db: dbh}}
	if _, err := repo.ListRecent(context.Background(), 10); !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
