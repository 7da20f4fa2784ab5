package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithinWindow(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("inside window", func(t *testing.T) {
		require.True(t, WithinWindow(now.Add(-59*time.Minute), now, time.Hour))
	})
	t.Run("exactly at window edge", func(t *testing.T) {
		require.False(t, WithinWindow(now.Add(-time.Hour), now, time.Hour))
	})
	t.Run("outside window", func(t *testing.T) {
		require.False(t, WithinWindow(NewDate(2024, 4, 30), now, time.Hour))
	})
}
