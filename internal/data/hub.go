package data

import (
	"sync"
	"sync/atomic"

	"spinwheel/internal/biz"
	"spinwheel/internal/biz/spin"

	"github.com/go-kratos/kratos/v2/log"
)

// hub 按会话分组的事件广播；慢订阅者丢帧，不阻塞发布方
type hub struct {
	mu      sync.RWMutex
	subs    map[string]map[uint64]chan spin.Event
	nextID  uint64
	buffer  int
	dropped atomic.Int64
	log     *log.Helper
}

func newHub(buffer int, logger log.Logger) *hub {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &hub{
		subs:   make(map[string]map[uint64]chan spin.Event),
		buffer: buffer,
		log:    log.NewHelper(logger),
	}
}

// NewEventHub .
func NewEventHub(d *Data) biz.EventHub {
	return d.hub
}

func (h *hub) Publish(e spin.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs[e.SessionID] {
		select {
		case ch <- e:
		default:
			h.dropped.Add(1)
		}
	}
}

func (h *hub) Subscribe(sessionID string) (<-chan spin.Event, func()) {
	ch := make(chan spin.Event, h.buffer)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	m, ok := h.subs[sessionID]
	if !ok {
		m = make(map[uint64]chan spin.Event)
		h.subs[sessionID] = m
	}
	m[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() { h.unsubscribe(sessionID, id) })
	}
	return ch, cancel
}

func (h *hub) unsubscribe(sessionID string, id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	m, ok := h.subs[sessionID]
	if !ok {
		return
	}
	if ch, ok := m[id]; ok {
		delete(m, id)
		close(ch)
	}
	if len(m) == 0 {
		delete(h.subs, sessionID)
	}
}

// CloseSession 关闭该会话的全部订阅
func (h *hub) CloseSession(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[sessionID] {
		close(ch)
	}
	delete(h.subs, sessionID)
}

func (h *hub) closeAll() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	var n int
	for sid, m := range h.subs {
		for _, ch := range m {
			close(ch)
			n++
		}
		delete(h.subs, sid)
	}
	return n
}

// Dropped 因订阅者缓冲满而丢弃的事件数
func (h *hub) Dropped() int64 {
	return h.dropped.Load()
}

func (h *hub) subscribers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[sessionID])
}
