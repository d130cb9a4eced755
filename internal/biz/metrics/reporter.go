package metrics

import (
	"context"
	"sync"
	"time"

	"spinwheel/internal/biz/reveal"
	"spinwheel/internal/biz/spin"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer 订阅会话事件并累计计数，挂在会话 Listener 链上
type Observer struct {
	wheelID string

	mu      sync.Mutex
	started map[string]spinStart // 按会话 id，每个会话同时只有一次旋转
}

type spinStart struct {
	spin int64
	at   time.Time
}

func NewObserver(wheelID string) *Observer {
	return &Observer{wheelID: wheelID, started: make(map[string]spinStart)}
}

func (o *Observer) OnEvent(e spin.Event) {
	lbl := prometheus.Labels{labelWheel: o.wheelID}
	switch e.Kind {
	case spin.EventFrame:
		if e.Frame != nil && e.Frame.Seq == 0 {
			o.mu.Lock()
			o.started[e.SessionID] = spinStart{spin: e.Spin, at: time.Now()}
			o.mu.Unlock()
		}
	case spin.EventComplete:
		inc(spins, lbl)
		if e.Outcome != nil {
			inc(outcomes, prometheus.Labels{
				labelWheel:    o.wheelID,
				labelReward:   e.Outcome.Reward.Name,
				labelCategory: e.Outcome.Reward.Category.String(),
			})
		}
		o.mu.Lock()
		if st, ok := o.started[e.SessionID]; ok && st.spin == e.Spin {
			spinDurations.With(lbl).Observe(time.Since(st.at).Seconds())
			delete(o.started, e.SessionID)
		}
		o.mu.Unlock()
	case spin.EventReveal:
		if e.Reveal != nil && e.Reveal.Phase == reveal.PhaseVideo {
			inc(reveals, prometheus.Labels{labelWheel: o.wheelID, labelValue: e.Reveal.Value})
		}
	}
}

// Rejected 记录被忽略的触发
func Rejected(wheelID, trigger string) {
	inc(rejected, prometheus.Labels{labelWheel: wheelID, labelTrigger: trigger})
}

// Expired 记录被空闲回收的会话
func Expired(wheelID string) {
	inc(expired, prometheus.Labels{labelWheel: wheelID})
}

// SessionLister 会话来源
type SessionLister interface {
	List() []*spin.Session
}

// ReportSessions 周期上报会话分布，ctx 取消后退出
func ReportSessions(ctx context.Context, pool SessionLister) {
	ticker := time.NewTicker(reportInterval)
	defer ticker.Stop()

	reportOnce(pool)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reportOnce(pool)
		}
	}
}

type phaseKey struct {
	wheel string
	phase string
}

func reportOnce(pool SessionLister) {
	counts := make(map[phaseKey]int)
	pending := make(map[string]int)
	for _, s := range pool.List() {
		snap := s.Snapshot()
		counts[phaseKey{snap.WheelID, snap.Phase.String()}]++
		if p := snap.Reveal.Phase; p == reveal.PhaseWon || p == reveal.PhaseVideo {
			pending[snap.WheelID]++
		}
	}
	sessions.Reset()
	revealPending.Reset()
	for k, n := range counts {
		set(sessions, prometheus.Labels{labelWheel: k.wheel, labelPhase: k.phase}, float64(n))
	}
	for w, n := range pending {
		set(revealPending, prometheus.Labels{labelWheel: w}, float64(n))
	}
}
