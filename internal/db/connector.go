package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"couriersathi/internal/domain"
)

// Opener hands out a live database handle for a single operation. The
// caller owns the handle and must close it when the operation finishes.
type Opener interface {
	Open(ctx context.Context) (*sql.DB, error)
}

// Connector opens one connection per logical operation, retrying a
// bounded number of times with a fixed delay. There is no shared pool;
// each handle is pinned to a single connection and closed by the caller.
type Connector struct {
	DSN         string
	MaxAttempts int
	Delay       time.Duration
}

const (
	DefaultMaxAttempts = 10
	DefaultRetryDelay  = 2 * time.Second

	pingTimeout = 5 * time.Second
)

func (c Connector) attempts() int {
	if c.MaxAttempts > 0 {
		return c.MaxAttempts
	}
	return DefaultMaxAttempts
}

func (c Connector) delay() time.Duration {
	if c.Delay > 0 {
		return c.Delay
	}
	return DefaultRetryDelay
}

// Open dials MySQL under the retry policy. Exhausting all attempts
// returns a domain.ConnectionError wrapping the last failure.
func (c Connector) Open(ctx context.Context) (*sql.DB, error) {
	var handle *sql.DB
	err := Retry(c.attempts(), c.delay(), func() error {
		h, err := sql.Open("mysql", c.DSN)
		if err != nil {
			return err
		}
		h.SetMaxOpenConns(1)
		h.SetMaxIdleConns(1)

		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := h.PingContext(pctx); err != nil {
			_ = h.Close()
			return err
		}
		handle = h
		return nil
	})
	if err != nil {
		return nil, domain.ConnectionError{Err: err}
	}
	return handle, nil
}

// Probe makes a single connection attempt and closes it. Used by the
// startup wait loop and the db-check endpoint.
func (c Connector) Probe(ctx context.Context) error {
	single := Connector{DSN: c.DSN, MaxAttempts: 1, Delay: 0}
	h, err := single.Open(ctx)
	if err != nil {
		return err
	}
	return h.Close()
}
