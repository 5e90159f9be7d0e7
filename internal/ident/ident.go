// Package ident provides id generation and timestamp stamping for the
// local store. Ids are URL-safe and unique without central coordination;
// timestamps are logical Unix milliseconds that never move backwards, so
// an entity and the history records written in the same operation can
// share one value.
package ident

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewID returns a URL-safe unique identifier.
func NewID() string {
	return uuid.NewString()
}

var (
	mu   sync.Mutex
	last int64
)

// Now returns the current Unix millisecond timestamp, clamped so that
// consecutive calls are monotonically non-decreasing even if the wall
// clock steps backwards. Repositories call it once per mutation and reuse
// the value for the entity's updatedAt and any derived history records.
func Now() int64 {
	mu.Lock()
	defer mu.Unlock()
	t := time.Now().UnixMilli()
	if t < last {
		t = last
	}
	last = t
	return t
}
