package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRangeDecember(t *testing.T) {
	r := MonthRange(2024, 12)

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), r.End)

	assert.True(t, r.Contains(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, time.November, 30, 23, 59, 59, 0, time.UTC)))
}

func TestYearRange(t *testing.T) {
	r := YearRange(2024)

	assert.True(t, r.Contains(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)))
}
