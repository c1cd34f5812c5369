package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError carries every failing field reason for one submission.
type ValidationError struct {
	Msgs []string
}

func (e ValidationError) Error() string {
	if len(e.Msgs) == 0 {
		return "validation error"
	}
	return strings.Join(e.Msgs, "; ")
}

// ConnectionError means the database could not be reached after the
// connector exhausted its attempts.
type ConnectionError struct {
	Err error
}

func (e ConnectionError) Error() string {
	if e.Err == nil {
		return "database unreachable"
	}
	return fmt.Sprintf("database unreachable: %v", e.Err)
}

func (e ConnectionError) Unwrap() error { return e.Err }

// StorageError means the store rejected a statement that did reach it.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("storage error: %v", e.Err)
	}
	return fmt.Sprintf("storage error on %s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error { return e.Err }

// AuthError is a failed admin credential check.
type AuthError struct{}

func (e AuthError) Error() string { return "unauthorized" }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConnection(err error) bool {
	var target ConnectionError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target StorageError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target AuthError
	return errors.As(err, &target)
}
