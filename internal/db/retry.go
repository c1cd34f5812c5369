package db

import "time"

// Retry runs fn up to attempts times, sleeping delay between tries, and
// returns the last error once attempts are exhausted. attempts below 1
// is treated as a single try.
func Retry(attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var last error
	for i := 0; i < attempts; i++ {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}
		if last = fn(); last == nil {
			return nil
		}
	}
	return last
}
