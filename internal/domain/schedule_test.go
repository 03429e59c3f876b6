package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleScheduleTime(t *testing.T) {
	loc := time.UTC

	t.Run("12 AM is midnight", func(t *testing.T) {
		got, err := AssembleScheduleTime("2026-09-01", 12, 0, 0, "AM", loc)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Hour())
	})

	t.Run("12 PM is noon", func(t *testing.T) {
		got, err := AssembleScheduleTime("2026-09-01", 12, 0, 0, "PM", loc)
		require.NoError(t, err)
		assert.Equal(t, 12, got.Hour())
	})

	t.Run("PM hours are shifted", func(t *testing.T) {
		got, err := AssembleScheduleTime("2026-09-01", 3, 15, 30, "PM", loc)
		require.NoError(t, err)
		assert.Equal(t, 15, got.Hour())
		assert.Equal(t, 15, got.Minute())
		assert.Equal(t, 30, got.Second())
	})

	t.Run("AM hours pass through", func(t *testing.T) {
		got, err := AssembleScheduleTime("2026-09-01", 9, 0, 0, "AM", loc)
		require.NoError(t, err)
		assert.Equal(t, 9, got.Hour())
	})

	t.Run("rejects hour outside 1-12", func(t *testing.T) {
		_, err := AssembleScheduleTime("2026-09-01", 0, 0, 0, "AM", loc)
		assert.Error(t, err)
		_, err = AssembleScheduleTime("2026-09-01", 13, 0, 0, "PM", loc)
		assert.Error(t, err)
	})

	t.Run("rejects bad meridiem", func(t *testing.T) {
		_, err := AssembleScheduleTime("2026-09-01", 9, 0, 0, "am", loc)
		assert.Error(t, err)
	})

	t.Run("rejects nonexistent calendar dates", func(t *testing.T) {
		_, err := AssembleScheduleTime("2026-02-30", 9, 0, 0, "AM", loc)
		assert.Error(t, err)
	})

	t.Run("rejects minute and second out of range", func(t *testing.T) {
		_, err := AssembleScheduleTime("2026-09-01", 9, 60, 0, "AM", loc)
		assert.Error(t, err)
		_, err = AssembleScheduleTime("2026-09-01", 9, 0, 61, "AM", loc)
		assert.Error(t, err)
	})
}

func TestMockStatusAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("future mock is upcoming", func(t *testing.T) {
		m := &ScheduledMock{ScheduledFor: now.Add(time.Minute)}
		assert.Equal(t, MockStatusUpcoming, m.StatusAt(now))
	})

	t.Run("past mock is expired", func(t *testing.T) {
		m := &ScheduledMock{ScheduledFor: now.Add(-time.Minute)}
		assert.Equal(t, MockStatusExpired, m.StatusAt(now))
	})

	t.Run("exact start time counts as expired", func(t *testing.T) {
		m := &ScheduledMock{ScheduledFor: now}
		assert.Equal(t, MockStatusExpired, m.StatusAt(now))
	})
}
