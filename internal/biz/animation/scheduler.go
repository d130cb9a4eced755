package animation

import (
	"context"
	"errors"
	"sync/atomic"
)

var ErrBusy = errors.New("animation: timeline already running")

type State int32

const (
	StateIdle      State = 0
	StateRunning   State = 1
	StateComplete  State = 2
	StateCancelled State = 3
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Scheduler 同一时刻只允许一条时间线运行
type Scheduler struct {
	state atomic.Int32
}

func NewScheduler() *Scheduler { return &Scheduler{} }

func (s *Scheduler) State() State { return State(s.state.Load()) }

func (s *Scheduler) begin() bool {
	for {
		cur := s.state.Load()
		if State(cur) == StateRunning {
			return false
		}
		if s.state.CompareAndSwap(cur, int32(StateRunning)) {
			return true
		}
	}
}

// Run 启动时间线，按 clock 节奏把帧写入返回的通道
// 正常结束：发出 Final 帧后关闭通道；ctx 取消：不发 Final 直接关闭
func (s *Scheduler) Run(ctx context.Context, plan Plan, clock FrameClock) (<-chan Frame, error) {
	if !s.begin() {
		return nil, ErrBusy
	}
	if clock == nil {
		clock = TickerClock{}
	}

	ctx, cancel := context.WithCancel(ctx)
	ticks := clock.Frames(ctx)
	out := make(chan Frame, 8)

	go func() {
		defer cancel()
		defer close(out)

		tl := NewTimeline(plan)
		for {
			select {
			case <-ctx.Done():
				s.state.Store(int32(StateCancelled))
				return
			case elapsed, ok := <-ticks:
				if !ok {
					s.state.Store(int32(StateCancelled))
					return
				}
				f := tl.Sample(elapsed)
				if f.Final {
					s.state.Store(int32(StateComplete))
				}
				select {
				case out <- f:
				case <-ctx.Done():
					s.state.Store(int32(StateCancelled))
					return
				}
				if f.Final {
					return
				}
			}
		}
	}()
	return out, nil
}

// RunReduced 减少动效：同步完成，通道里只有一帧 Final
func (s *Scheduler) RunReduced(plan Plan) (<-chan Frame, error) {
	if !s.begin() {
		return nil, ErrBusy
	}
	out := make(chan Frame, 1)
	out <- NewTimeline(plan).Final()
	close(out)
	s.state.Store(int32(StateComplete))
	return out, nil
}

// Hooks 回调式消费
type Hooks struct {
	OnFrame    func(Frame)
	OnCrossing func(Crossing)
	OnComplete func(Frame)
}

// Drive 消费帧流直到通道关闭；收到 Final 时 OnComplete 恰好调用一次，返回是否完成。
// ctx 取消后通道里残留的帧（包括 Final）只排空不回调
func Drive(ctx context.Context, frames <-chan Frame, h Hooks) bool {
	completed := false
	for f := range frames {
		if ctx.Err() != nil {
			continue
		}
		if h.OnFrame != nil {
			h.OnFrame(f)
		}
		if f.Crossing != nil && h.OnCrossing != nil {
			h.OnCrossing(*f.Crossing)
		}
		if f.Final && !completed {
			completed = true
			if h.OnComplete != nil {
				h.OnComplete(f)
			}
		}
	}
	return completed
}
