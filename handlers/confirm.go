package handlers

import (
	"sync"
	"time"
)

// deleteWindow is how long a delete stays armed waiting for its confirming
// request.
const deleteWindow = 15 * time.Second

// confirmer implements the two-step delete: the first request for a key arms
// it, a second request within the window confirms. An arm that sits past the
// window lapses and the next request re-arms instead of deleting.
type confirmer struct {
	mu     sync.Mutex
	window time.Duration
	armed  map[string]time.Time
	now    func() time.Time
}

func newConfirmer(window time.Duration) *confirmer {
	return &confirmer{
		window: window,
		armed:  make(map[string]time.Time),
		now:    time.Now,
	}
}

// Confirm returns true only when key was armed within the window; it then
// disarms so a third request starts over. Lapsed arms are swept on every
// call so abandoned deletes do not accumulate.
func (c *confirmer) Confirm(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, armedAt := range c.armed {
		if now.Sub(armedAt) > c.window {
			delete(c.armed, k)
		}
	}

	if _, ok := c.armed[key]; ok {
		delete(c.armed, key)
		return true
	}
	c.armed[key] = now
	return false
}
