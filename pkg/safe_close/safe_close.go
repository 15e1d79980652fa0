// Package safe_close coordinates graceful shutdown of long-running components.
// Package safe_close 协调长生命周期组件的优雅关闭
package safe_close

import (
	"sync"
)

// SafeClose fans a single close signal out to every attached component and
// waits until they all report done.
type SafeClose struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	closeSignal chan struct{}
	closeOnce   sync.Once
	err         error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach runs fn in its own goroutine. fn must call done() when it has fully
// stopped, and should begin shutting down once closeSignal is closed.
// Attach 在独立协程中运行 fn，fn 停止后必须调用 done()
func (s *SafeClose) Attach(fn func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	done := func() {
		s.wg.Done()
	}
	go fn(done, s.closeSignal)
}

// SendCloseSignal broadcasts shutdown. The first non-nil error wins and is
// returned from WaitClosed; later calls are no-ops.
// SendCloseSignal 广播关闭信号，首个非 nil 错误会从 WaitClosed 返回
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	if s.err == nil && err != nil {
		s.err = err
	}
	s.mu.Unlock()

	s.closeOnce.Do(func() {
		close(s.closeSignal)
	})
}

// WaitClosed blocks until every attached component has called done.
// WaitClosed 阻塞直到所有组件完成关闭
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
