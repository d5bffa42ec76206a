package chat

import "sync/atomic"

// IDAllocator hands out conversation ids: a strictly increasing sequence
// starting at 0. Backed by an atomic counter so the user-action path and the
// completion-handling path can both allocate without coordination.
type IDAllocator struct {
	next atomic.Int64
}

// Next returns a fresh id strictly greater than every previously returned
// one. It cannot fail.
func (a *IDAllocator) Next() int {
	return int(a.next.Add(1) - 1)
}
