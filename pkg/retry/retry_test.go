package retry

import (
	"testing"
	"time"
)

func TestExponentialBackoff(t *testing.T) {
	floor := 4 * time.Second

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 5 * time.Second},  // 2^0 + 4s
		{1, 6 * time.Second},  // 2^1 + 4s
		{2, 8 * time.Second},  // 2^2 + 4s
		{3, 12 * time.Second}, // 2^3 + 4s
	}

	for _, tt := range tests {
		result := ExponentialBackoff(tt.attempt, floor)
		if result != tt.expected {
			t.Errorf("attempt %d: got %v, want %v", tt.attempt, result, tt.expected)
		}
	}
}

func TestExponentialBackoffZeroFloor(t *testing.T) {
	result := ExponentialBackoff(2, 0)
	expected := 4 * time.Second

	if result != expected {
		t.Errorf("got %v, want %v", result, expected)
	}
}
