package spin

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"spinwheel/internal/biz/reward"
	"spinwheel/internal/biz/wheel"
)

// scriptedRNG 按顺序回放，用完后循环
type scriptedRNG struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedRNG) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedRNG) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

// recorder 记录事件，可按类型等待
type recorder struct {
	mu     sync.Mutex
	events []Event
	notify chan struct{}
}

func newRecorder() *recorder {
	return &recorder{notify: make(chan struct{}, 1024)}
}

func (r *recorder) OnEvent(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
	select {
	case r.notify <- struct{}{}:
	default:
	}
}

func (r *recorder) count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) last(kind EventKind) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return Event{}, false
}

func (r *recorder) wait(t *testing.T, kind EventKind, n int) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for r.count(kind) < n {
		select {
		case <-r.notify:
		case <-deadline:
			t.Fatalf("等待 %d 个 %s 事件超时, got %d", n, kind, r.count(kind))
		}
	}
}

type failingPlayer struct {
	mu    sync.Mutex
	calls []string
}

var errNoAudio = errors.New("audio device unavailable")

func (p *failingPlayer) record(name string) error {
	p.mu.Lock()
	p.calls = append(p.calls, name)
	p.mu.Unlock()
	return errNoAudio
}

func (p *failingPlayer) PlayTick(context.Context, string, float64) error { return p.record(CueTick) }
func (p *failingPlayer) PlayWin(context.Context, string) error            { return p.record(CueWin) }
func (p *failingPlayer) PlayRevealVideo(context.Context, string) error    { return p.record(CueVideo) }

func mustWheel(t *testing.T, base *wheel.Wheel, entries []reward.Reward) *wheel.Wheel {
	t.Helper()
	w, err := base.With(wheel.Override{Rewards: entries})
	if err != nil {
		t.Fatalf("wheel override: %v", err)
	}
	return w
}
