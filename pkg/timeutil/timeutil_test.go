package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"three full days ahead", time.Date(2026, 3, 13, 14, 30, 0, 0, time.UTC), 3},
		{"partial day rounds up", time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), 3},
		{"same instant", now, 0},
		{"midnight today is overdue", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 0},
		{"past deadline goes negative", time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(now, tt.deadline))
		})
	}
}

func TestDaysUntil_NegativeNotClamped(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	overdue := AddDays(now, -10)
	assert.Equal(t, -10, DaysUntil(now, overdue))
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 7, 1, 23, 59, 59, 1234, time.UTC)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}

func TestSameDate(t *testing.T) {
	a := time.Date(2026, 7, 1, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, 7, 1, 23, 0, 0, 0, time.UTC)
	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, AddDays(b, 1)))
}
