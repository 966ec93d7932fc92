// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Do_ReturnsJobError(t *testing.T) {
	pool := NewPool(1)
	wantErr := errors.New("hashing failed")

	err := pool.Do(context.Background(), func() error { return wantErr })

	assert.ErrorIs(t, err, wantErr)
}

func TestPool_Do_LimitsConcurrency(t *testing.T) {
	pool := NewPool(2)

	var running, peak atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pool.Do(context.Background(), func() error {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int64(2))
}

func TestPool_Do_CancelledWhileWaiting(t *testing.T) {
	pool := NewPool(1)

	release := make(chan struct{})
	go func() {
		_ = pool.Do(context.Background(), func() error {
			<-release
			return nil
		})
	}()
	defer close(release)

	// Wait for the slot to be taken.
	require.Eventually(t, func() bool {
		return len(pool.slots) == 1
	}, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.Do(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
