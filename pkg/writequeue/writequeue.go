// Package writequeue 串行化同一用户的数据库写操作
// SQLite 单写者模型下并发写同一用户的数据会触发 "database is locked"，
// 快捷键冲突检查的 read-then-write 也依赖同用户写操作不交错。
package writequeue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrClosed 管理器已关闭
	ErrClosed = errors.New("write queue is closed")
)

// Config 写队列配置
type Config struct {
	// IdleTimeout 空闲用户通道的回收时间，默认 10 分钟
	IdleTimeout time.Duration
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		IdleTimeout: 10 * time.Minute,
	}
}

// lane 单用户写通道，互斥锁保证同用户写操作串行
type lane struct {
	mu       sync.Mutex
	lastUsed atomic.Int64

	// dead 由回收器在持有 mu 时置位，置位后该通道不再被使用
	dead bool
}

// Manager 管理所有用户的写通道
type Manager struct {
	config Config
	logger *zap.Logger

	lanes sync.Map // map[int64]*lane

	inflight sync.WaitGroup
	closed   atomic.Bool
	stopCh   chan struct{}
}

// New 创建写队列管理器
// cfg 为 nil 时使用默认配置，logger 为 nil 时使用 nop logger
func New(cfg *Config, logger *zap.Logger) *Manager {
	if cfg == nil {
		defaultCfg := DefaultConfig()
		cfg = &defaultCfg
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		config: *cfg,
		logger: logger,
		stopCh: make(chan struct{}),
	}

	go m.reapIdleLanes()

	m.logger.Info("write queue manager started",
		zap.Duration("idleTimeout", cfg.IdleTimeout))

	return m
}

// Execute 串行执行写操作
// 同一用户的写操作按到达顺序依次执行，不同用户互不阻塞
func (m *Manager) Execute(ctx context.Context, uid int64, fn func() error) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.inflight.Add(1)
	defer m.inflight.Done()

	l := m.lockLane(uid)
	defer l.mu.Unlock()
	l.lastUsed.Store(time.Now().UnixNano())

	// 排队期间调用方可能已放弃
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn()
}

// lockLane 返回已加锁的用户通道
// 取到通道和加锁之间回收器可能已将其回收，加锁后需复验 dead 标记，
// 否则两次 Execute 可能拿到不同通道并发执行
func (m *Manager) lockLane(uid int64) *lane {
	for {
		var l *lane
		if v, ok := m.lanes.Load(uid); ok {
			l = v.(*lane)
		} else {
			v, _ := m.lanes.LoadOrStore(uid, &lane{})
			l = v.(*lane)
		}
		l.mu.Lock()
		if !l.dead {
			return l
		}
		l.mu.Unlock()
	}
}

// reapIdleLanes 定期回收空闲用户的通道
func (m *Manager) reapIdleLanes() {
	ticker := time.NewTicker(m.config.IdleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			now := time.Now().UnixNano()
			threshold := m.config.IdleTimeout.Nanoseconds()
			m.lanes.Range(func(key, value interface{}) bool {
				l := value.(*lane)
				if now-l.lastUsed.Load() > threshold && l.mu.TryLock() {
					// 持锁置位 dead 后再摘除，等锁方复验后会重新建通道
					l.dead = true
					m.lanes.Delete(key)
					l.mu.Unlock()
				}
				return true
			})
		}
	}
}

// LaneCount 返回当前持有的用户通道数量
func (m *Manager) LaneCount() int {
	count := 0
	m.lanes.Range(func(key, value interface{}) bool {
		count++
		return true
	})
	return count
}

// IsClosed 返回管理器是否已关闭
func (m *Manager) IsClosed() bool {
	return m.closed.Load()
}

// Shutdown 关闭管理器并等待在途写操作完成
// ctx 用于控制关闭超时
func (m *Manager) Shutdown(ctx context.Context) error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}

	close(m.stopCh)

	done := make(chan struct{})
	go func() {
		m.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("write queue manager shutdown completed")
		return nil
	case <-ctx.Done():
		m.logger.Warn("write queue manager shutdown timeout")
		return ctx.Err()
	}
}
