package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfirmerArmsThenConfirms(t *testing.T) {
	c := newConfirmer(15 * time.Second)

	require.False(t, c.Confirm("slip:1"))
	require.True(t, c.Confirm("slip:1"))

	// Confirming disarms; the next call starts over.
	require.False(t, c.Confirm("slip:1"))
}

func TestConfirmerKeysAreIndependent(t *testing.T) {
	c := newConfirmer(15 * time.Second)

	require.False(t, c.Confirm("slip:1"))
	require.False(t, c.Confirm("slip:2"))
	require.True(t, c.Confirm("slip:1"))
}

func TestConfirmerArmLapses(t *testing.T) {
	c := newConfirmer(15 * time.Second)
	current := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	require.False(t, c.Confirm("slip:1"))

	current = current.Add(16 * time.Second)
	// Past the window the arm has lapsed; this re-arms instead.
	require.False(t, c.Confirm("slip:1"))
	require.True(t, c.Confirm("slip:1"))
}

func TestConfirmerSweepsLapsedArms(t *testing.T) {
	c := newConfirmer(15 * time.Second)
	current := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	for _, key := range []string{"slip:1", "memo:2", "bill:3"} {
		require.False(t, c.Confirm(key))
	}
	require.Len(t, c.armed, 3)

	// Arms abandoned past the window are evicted by the next call on any
	// key, not retained forever.
	current = current.Add(time.Minute)
	require.False(t, c.Confirm("slip:9"))
	require.Len(t, c.armed, 1)
}
