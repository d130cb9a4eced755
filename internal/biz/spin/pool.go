package spin

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

// Pool 会话池
type Pool struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewPool() *Pool {
	return &Pool{sessions: make(map[string]*Session)}
}

func (p *Pool) Add(s *Session) {
	p.mu.Lock()
	p.sessions[s.ID()] = s
	p.mu.Unlock()
}

func (p *Pool) Get(id string) (*Session, bool) {
	p.mu.RLock()
	s, ok := p.sessions[id]
	p.mu.RUnlock()
	return s, ok
}

// List 按创建时间倒序
func (p *Pool) List() []*Session {
	p.mu.RLock()
	out := make([]*Session, 0, len(p.sessions))
	for _, s := range p.sessions {
		out = append(out, s)
	}
	p.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].createdAt.After(out[j].createdAt)
	})
	return out
}

func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.sessions)
}

// Remove 移出并关闭
func (p *Pool) Remove(id string) (*Session, bool) {
	p.mu.Lock()
	s, ok := p.sessions[id]
	if ok {
		delete(p.sessions, id)
	}
	p.mu.Unlock()
	if ok {
		s.Close()
	}
	return s, ok
}

// CloseAll 进程退出时关闭全部会话
func (p *Pool) CloseAll() int {
	p.mu.Lock()
	all := p.sessions
	p.sessions = make(map[string]*Session)
	p.mu.Unlock()
	for _, s := range all {
		s.Close()
	}
	return len(all)
}

// CleanupIdle 关闭超过 ttl 未活动的会话，旋转中的不动；返回被关闭的会话
func (p *Pool) CleanupIdle(ttl time.Duration) []*Session {
	cutoff := time.Now().Add(-ttl)

	p.mu.Lock()
	var expired []*Session
	for id, s := range p.sessions {
		if s.Phase() == PhaseSpinning {
			continue
		}
		if s.ActiveAt().Before(cutoff) {
			delete(p.sessions, id)
			expired = append(expired, s)
		}
	}
	p.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	return expired
}

// StartAutoCleanup 周期清理空闲会话，ctx 取消后退出；onExpired 可为 nil
func (p *Pool) StartAutoCleanup(ctx context.Context, logger log.Logger, ttl, interval time.Duration, onExpired func([]*Session)) {
	logHelper := log.NewHelper(logger)
	logHelper.Infof("Session cleaner started, ttl=%v, interval=%v", ttl, interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logHelper.Info("closing session cleaner")
			return
		case <-ticker.C:
			if expired := p.CleanupIdle(ttl); len(expired) > 0 {
				logHelper.Infof("Session cleanup: closed %d idle sessions", len(expired))
				if onExpired != nil {
					onExpired(expired)
				}
			}
		}
	}
}
