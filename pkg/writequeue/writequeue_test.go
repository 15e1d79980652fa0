package writequeue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSerializesSameUser(t *testing.T) {
	m := New(nil, nil)
	defer m.Shutdown(context.Background())

	var mu sync.Mutex
	var active, maxActive int

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.Execute(context.Background(), 1, func() error {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive, "same-user writes must not overlap")
}

func TestExecuteDifferentUsersRunIndependently(t *testing.T) {
	m := New(nil, nil)
	defer m.Shutdown(context.Background())

	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_ = m.Execute(context.Background(), 1, func() error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started

	done := make(chan error, 1)
	go func() {
		done <- m.Execute(context.Background(), 2, func() error { return nil })
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("user 2 write blocked behind user 1")
	}

	close(release)
}

func TestLockLaneRetriesAfterEviction(t *testing.T) {
	m := New(nil, nil)
	defer m.Shutdown(context.Background())

	first := m.lockLane(42)
	first.mu.Unlock()

	// 模拟回收器：持锁置位 dead 并从表中摘除
	first.mu.Lock()
	first.dead = true
	m.lanes.Delete(int64(42))
	first.mu.Unlock()

	// 取到旧通道指针的等锁方复验后必须改用新通道
	second := m.lockLane(42)
	defer second.mu.Unlock()
	assert.NotSame(t, first, second)
	assert.False(t, second.dead)

	// 新通道已登记，后续同用户写入方与其互斥
	v, ok := m.lanes.Load(int64(42))
	require.True(t, ok)
	assert.Same(t, second, v.(*lane))
}

func TestExecuteSerializesUnderAggressiveReaping(t *testing.T) {
	m := New(&Config{IdleTimeout: time.Millisecond}, nil)
	defer m.Shutdown(context.Background())

	var mu sync.Mutex
	var active, maxActive int

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.Execute(context.Background(), 42, func() error {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive, "same-user writes overlapped across lane eviction")
}

func TestExecuteCancelledContext(t *testing.T) {
	m := New(nil, nil)
	defer m.Shutdown(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := m.Execute(ctx, 1, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestExecuteAfterShutdown(t *testing.T) {
	m := New(nil, nil)
	require.NoError(t, m.Shutdown(context.Background()))

	err := m.Execute(context.Background(), 1, func() error { return nil })
	assert.ErrorIs(t, err, ErrClosed)
	assert.True(t, m.IsClosed())
}

func TestShutdownWaitsForInflight(t *testing.T) {
	m := New(nil, nil)

	started := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		_ = m.Execute(context.Background(), 1, func() error {
			close(started)
			time.Sleep(50 * time.Millisecond)
			close(finished)
			return nil
		})
	}()

	<-started
	require.NoError(t, m.Shutdown(context.Background()))

	select {
	case <-finished:
	default:
		t.Fatal("shutdown returned before inflight write completed")
	}
}
