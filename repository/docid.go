package repository

import (
	"sync/atomic"
	"time"
)

var lastDocID int64

// nextDocID mints millisecond-epoch ids for new Mongo documents, the same
// shape the data was seeded with. Ids are kept strictly increasing within
// the process so two inserts in the same millisecond never collide.
func nextDocID() int64 {
	for {
		last := atomic.LoadInt64(&lastDocID)
		id := time.Now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastDocID, last, id) {
			return id
		}
	}
}
