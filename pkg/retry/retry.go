package retry

import "time"

// ExponentialBackoff returns the wait before the next attempt: 2^attempt
// seconds plus a fixed floor. The floor is the per-API-mode base delay, so
// even the first retry respects the mode's steady-state rate ceiling.
func ExponentialBackoff(attempt int, floor time.Duration) time.Duration {
	return time.Duration(1<<attempt)*time.Second + floor
}
