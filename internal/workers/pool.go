// Package workers runs CPU-bound jobs on a bounded number of goroutines so
// request handlers are not pinned by expensive work under load.
package workers

import (
	"context"
	"runtime"
)

// Pool limits how many submitted jobs may run at once. The zero value is not
// usable; construct with [NewPool].
type Pool struct {
	slots chan struct{}
}

// NewPool creates a pool admitting up to size concurrent jobs. A size of
// zero or less defaults to GOMAXPROCS.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	return &Pool{slots: make(chan struct{}, size)}
}

// Do runs job on the calling goroutine once a slot is free and returns the
// job's error. Waiting for a slot is interrupted by ctx; the job itself is
// not.
func (p *Pool) Do(ctx context.Context, job func() error) error {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.slots }()

	return job()
}
