package numbering

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu   sync.Mutex
	last map[string]string
}

func newMemStore() *memStore {
	return &memStore{last: make(map[string]string)}
}

func (s *memStore) GetLastNumber(kind string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last[kind], nil
}

func (s *memStore) SetLastNumber(kind, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[kind] = number
	return nil
}

func fixedGenerator(store Store, t time.Time) *Generator {
	g := NewGenerator(store)
	g.now = func() time.Time { return t }
	return g
}

func TestNextStartsAtOne(t *testing.T) {
	g := fixedGenerator(newMemStore(), time.Date(2025, time.August, 16, 0, 0, 0, 0, time.Local))

	n, err := g.Next(KindSlip)
	require.NoError(t, err)
	require.Equal(t, "LS25080001", n)
}

func TestPrefixPerKind(t *testing.T) {
	g := fixedGenerator(newMemStore(), time.Date(2025, time.August, 16, 0, 0, 0, 0, time.Local))

	memo, err := g.Next(KindMemo)
	require.NoError(t, err)
	require.Equal(t, "MO25080001", memo)

	bill, err := g.Next(KindBill)
	require.NoError(t, err)
	require.Equal(t, "BL25080001", bill)
}

func TestSequenceStrictlyIncreasing(t *testing.T) {
	g := fixedGenerator(newMemStore(), time.Date(2025, time.August, 16, 0, 0, 0, 0, time.Local))

	seen := make(map[string]bool)
	for i := 1; i <= 50; i++ {
		n, err := g.Next(KindSlip)
		require.NoError(t, err)
		require.False(t, seen[n], "duplicate number %s", n)
		seen[n] = true
		require.Equal(t, fmt.Sprintf("LS2508%04d", i), n)
	}
}

func TestMonthRollsButSequenceContinues(t *testing.T) {
	store := newMemStore()

	g := fixedGenerator(store, time.Date(2025, time.August, 31, 0, 0, 0, 0, time.Local))
	n, err := g.Next(KindSlip)
	require.NoError(t, err)
	require.Equal(t, "LS25080001", n)

	g = fixedGenerator(store, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.Local))
	n, err = g.Next(KindSlip)
	require.NoError(t, err)
	require.Equal(t, "LS25090002", n)
}

func TestTailWidensPast9999(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.SetLastNumber(string(KindBill), "BL25089999"))

	g := fixedGenerator(store, time.Date(2025, time.August, 16, 0, 0, 0, 0, time.Local))
	n, err := g.Next(KindBill)
	require.NoError(t, err)
	require.Equal(t, "BL250810000", n)

	n, err = g.Next(KindBill)
	require.NoError(t, err)
	require.Equal(t, "BL250810001", n)
}

func TestGarbageLastValueRestarts(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.SetLastNumber(string(KindMemo), "junk"))

	g := fixedGenerator(store, time.Date(2025, time.August, 16, 0, 0, 0, 0, time.Local))
	n, err := g.Next(KindMemo)
	require.NoError(t, err)
	require.Equal(t, "MO25080001", n)
}

func TestConcurrentCallersGetDistinctNumbers(t *testing.T) {
	g := fixedGenerator(newMemStore(), time.Date(2025, time.August, 16, 0, 0, 0, 0, time.Local))

	const workers = 20
	results := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := g.Next(KindSlip)
			require.NoError(t, err)
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for n := range results {
		require.False(t, seen[n], "duplicate number %s", n)
		seen[n] = true
	}
	require.Len(t, seen, workers)
}

func TestUnknownKindRejected(t *testing.T) {
	g := NewGenerator(newMemStore())
	_, err := g.Next(Kind("voucher"))
	require.Error(t, err)
}
