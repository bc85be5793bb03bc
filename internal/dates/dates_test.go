package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDay(t *testing.T) {
	moment := time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, "2025-03-10", Day(moment))
}

func TestDay_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 22, 15, 0, 0, time.UTC)

	assert.Equal(t, Day(morning), Day(evening))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("2025-03-10"))
	assert.False(t, Valid("2025-3-10"))
	assert.False(t, Valid("10/03/2025"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("2025-13-40"))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween("2025-03-10", "2025-03-10"))
	assert.Equal(t, 1, DaysBetween("2025-03-10", "2025-03-11"))
	assert.Equal(t, 2, DaysBetween("2025-03-10", "2025-03-12"))
	assert.Equal(t, -3, DaysBetween("2025-03-10", "2025-03-07"))
}

func TestDaysBetween_AcrossMonthBoundary(t *testing.T) {
	assert.Equal(t, 2, DaysBetween("2025-02-28", "2025-03-02"))
}

func TestDaysBetween_MalformedInput(t *testing.T) {
	assert.Equal(t, 0, DaysBetween("not-a-day", "2025-03-10"))
	assert.Equal(t, 0, DaysBetween("2025-03-10", ""))
}

func TestDayOrderIsLexicographic(t *testing.T) {
	assert.True(t, "2025-03-09" < "2025-03-10")
	assert.True(t, "2024-12-31" < "2025-01-01")
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)

	assert.Equal(t, start, clock.Now())

	clock.Advance(48 * time.Hour)
	assert.Equal(t, "2025-03-12", Day(clock.Now()))

	clock.Set(start)
	assert.Equal(t, start, clock.Now())
}
