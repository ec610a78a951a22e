// Package numbering produces the human-readable document numbers printed on
// loading slips, memos and bills: {PREFIX}{YY}{MM}{NNNN}. One "last number"
// string is persisted per kind; generation parses its sequence tail,
// increments it, and re-stamps the current year/month. The sequence never
// resets across months, so tails stay strictly increasing for the life of
// the books.
package numbering

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

type Kind string

const (
	KindSlip Kind = "slip"
	KindMemo Kind = "memo"
	KindBill Kind = "bill"
)

func (k Kind) Prefix() string {
	switch k {
	case KindSlip:
		return "LS"
	case KindMemo:
		return "MO"
	case KindBill:
		return "BL"
	}
	return ""
}

// Store persists the last generated number per kind. An empty string and nil
// error mean no number has been generated yet.
type Store interface {
	GetLastNumber(kind string) (string, error)
	SetLastNumber(kind, number string) error
}

// Generator hands out document numbers. The read-increment-write against the
// store is serialized under a mutex so concurrent callers can never mint the
// same number.
type Generator struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time
}

func NewGenerator(store Store) *Generator {
	return &Generator{store: store, now: time.Now}
}

// Next returns the next number for kind and persists it as the new last
// number before returning.
func (g *Generator) Next(kind Kind) (string, error) {
	prefix := kind.Prefix()
	if prefix == "" {
		return "", fmt.Errorf("numbering: unknown kind %q", kind)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	last, err := g.store.GetLastNumber(string(kind))
	if err != nil {
		return "", fmt.Errorf("numbering: read last %s number: %w", kind, err)
	}

	seq := sequenceTail(last) + 1

	// %04d widens naturally past 9999 instead of wrapping; wrapping would
	// reissue numbers within a month and break uniqueness.
	next := fmt.Sprintf("%s%s%04d", prefix, g.now().Format("0601"), seq)

	if err := g.store.SetLastNumber(string(kind), next); err != nil {
		return "", fmt.Errorf("numbering: persist last %s number: %w", kind, err)
	}
	return next, nil
}

// sequenceTail extracts the running sequence from a stored number: the
// digits after the 2-letter prefix and 4-digit YYMM block. Values that do
// not match that shape count as no prior number.
func sequenceTail(last string) int {
	if len(last) < 7 {
		return 0
	}
	n, err := strconv.Atoi(last[6:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
