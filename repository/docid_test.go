package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextDocIDUniqueUnderConcurrency(t *testing.T) {
	const n = 200

	var mu sync.Mutex
	seen := make(map[int64]bool, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := nextDocID()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Many of these land in the same millisecond; every id must still be
	// distinct.
	require.Len(t, seen, n)
}

func TestNextDocIDIncreases(t *testing.T) {
	prev := nextDocID()
	for i := 0; i < 50; i++ {
		id := nextDocID()
		require.Greater(t, id, prev)
		prev = id
	}
}
