package spin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"spinwheel/internal/biz/animation"
	"spinwheel/internal/biz/reveal"
	"spinwheel/internal/biz/reward"
	"spinwheel/internal/biz/selector"
	"spinwheel/internal/biz/wheel"
	"spinwheel/pkg/xgo"

	"github.com/go-kratos/kratos/v2/log"
)

// Phase 旋转阶段，与揭晓阶段相互独立
type Phase int32

const (
	PhaseIdle     Phase = 0
	PhaseSpinning Phase = 1
	PhaseSettled  Phase = 2
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

type Options struct {
	ID            string
	Wheel         *wheel.Wheel
	RNG           selector.RNG
	Clock         animation.FrameClock
	Player        Player
	Listener      Listener
	Runner        Runner
	ReducedMotion bool
	Logger        log.Logger
}

// Session 单个转盘会话，同一时刻最多一次旋转
type Session struct {
	id        string
	wheel     *wheel.Wheel
	rng       selector.RNG
	clock     animation.FrameClock
	player    Player
	listener  Listener
	runner    Runner
	reduced   bool
	log       *log.Helper
	scheduler *animation.Scheduler
	reveal    *reveal.Machine

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	phase     Phase
	angle     float64
	target    float64
	winIndex  int
	winning   *reward.Reward
	spins     int64
	stopSpin  context.CancelFunc
	closed    bool
	createdAt time.Time
	activeAt  time.Time
}

func NewSession(o Options) *Session {
	if o.Wheel == nil {
		o.Wheel = wheel.NewClassic()
	}
	if o.RNG == nil {
		o.RNG = selector.NewRNG(0)
	}
	if o.Clock == nil {
		o.Clock = animation.TickerClock{}
	}
	if o.Player == nil {
		o.Player = NoopPlayer{}
	}
	if o.Listener == nil {
		o.Listener = noopListener{}
	}
	if o.Runner == nil {
		o.Runner = goRunner{}
	}
	if o.Logger == nil {
		o.Logger = log.GetLogger()
	}
	ctx, cancel := context.WithCancel(context.Background())
	now := time.Now()
	return &Session{
		id:        o.ID,
		wheel:     o.Wheel,
		rng:       o.RNG,
		clock:     o.Clock,
		player:    o.Player,
		listener:  o.Listener,
		runner:    o.Runner,
		reduced:   o.ReducedMotion,
		log:       log.NewHelper(log.With(o.Logger, "session", o.ID)),
		scheduler: animation.NewScheduler(),
		reveal:    reveal.NewMachine(),
		ctx:       ctx,
		cancel:    cancel,
		winIndex:  -1,
		createdAt: now,
		activeAt:  now,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Wheel() *wheel.Wheel { return s.wheel }

func (s *Session) CreatedAt() time.Time { return s.createdAt }

func (s *Session) ActiveAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeAt
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// RequestSpin 旋转中或神秘盒待打开/播放中时拒绝
func (s *Session) RequestSpin() bool {
	s.mu.Lock()
	if s.closed || s.phase == PhaseSpinning {
		phase := s.phase
		s.mu.Unlock()
		s.log.Debugf("spin rejected: phase=%s", phase)
		return false
	}
	if p := s.reveal.Phase(); p == reveal.PhaseWon || p == reveal.PhaseVideo {
		s.mu.Unlock()
		s.log.Debugf("spin rejected: reveal pending phase=%s", p)
		return false
	}
	return s.startLocked(nil)
}

// SpinAgain 清空结果与揭晓状态后重新旋转；旋转中或尚无结果时拒绝
func (s *Session) SpinAgain() bool {
	s.mu.Lock()
	if s.closed || s.phase == PhaseSpinning {
		phase := s.phase
		s.mu.Unlock()
		s.log.Debugf("spin again rejected: phase=%s", phase)
		return false
	}
	if s.reveal.Phase() == reveal.PhaseIdle && s.phase != PhaseSettled {
		s.mu.Unlock()
		s.log.Debug("spin again rejected: nothing to reset")
		return false
	}
	var evs []Event
	if s.reveal.Reset() {
		evs = append(evs, s.revealEvent(reveal.PhaseIdle, ""))
	}
	s.winning, s.winIndex = nil, -1
	s.phase = PhaseIdle
	return s.startLocked(evs)
}

// startLocked 调用前持有 s.mu，返回前释放
func (s *Session) startLocked(evs []Event) bool {
	if s.reveal.Reset() {
		evs = append(evs, s.revealEvent(reveal.PhaseIdle, ""))
	}

	table := s.wheel.Table()
	idx, rw := selector.Select(table, s.rng)
	if idx < 0 {
		s.mu.Unlock()
		s.emit(evs...)
		return false
	}
	target := s.wheel.Style().TargetAngle(idx, table.Len(), s.angle, s.rng)
	plan := s.wheel.Plan(s.angle, target)

	s.spins++
	spin := s.spins
	s.phase = PhaseSpinning
	s.target = target
	s.winIndex = idx
	s.winning = &rw
	s.activeAt = time.Now()
	s.log.Infof("spin #%d start: angle=%.4f target=%.4f", spin, s.angle, target)

	if s.reduced {
		frames, err := s.scheduler.RunReduced(plan)
		if err != nil {
			s.abortLocked(err)
			s.mu.Unlock()
			s.emit(evs...)
			return false
		}
		var final animation.Frame
		for f := range frames {
			final = f
		}
		evs = append(evs, Event{Kind: EventFrame, SessionID: s.id, Spin: spin, Frame: &final})
		evs = append(evs, s.settleLocked(spin, final)...)
		s.mu.Unlock()
		s.emit(evs...)
		s.playWin()
		return true
	}

	ctx, stop := context.WithCancel(s.ctx)
	frames, err := s.scheduler.Run(ctx, plan, s.clock)
	if err != nil {
		stop()
		s.abortLocked(err)
		s.mu.Unlock()
		s.emit(evs...)
		return false
	}
	s.stopSpin = stop
	s.mu.Unlock()
	s.emit(evs...)

	if err := s.runner.Submit(func() { s.consume(ctx, spin, frames, stop) }); err != nil {
		stop()
		s.mu.Lock()
		if s.spins == spin {
			s.abortLocked(err)
		}
		s.mu.Unlock()
		return false
	}
	return true
}

func (s *Session) abortLocked(err error) {
	s.log.Warnf("spin aborted: %v", err)
	s.phase = PhaseIdle
	s.winning, s.winIndex = nil, -1
	s.stopSpin = nil
}

func (s *Session) consume(ctx context.Context, spin int64, frames <-chan animation.Frame, stop context.CancelFunc) {
	defer stop()
	defer xgo.RecoverFromError(func(e any) {
		s.mu.Lock()
		if s.spins == spin && s.phase == PhaseSpinning {
			s.abortLocked(fmt.Errorf("panic: %v", e))
		}
		s.mu.Unlock()
	})

	animation.Drive(ctx, frames, animation.Hooks{
		OnFrame:    func(f animation.Frame) { s.onFrame(spin, f) },
		OnCrossing: func(c animation.Crossing) { s.onCrossing(spin, c) },
		OnComplete: func(f animation.Frame) { s.onComplete(spin, f) },
	})
}

func (s *Session) current(spin int64) bool {
	return !s.closed && s.spins == spin && s.phase == PhaseSpinning
}

func (s *Session) onFrame(spin int64, f animation.Frame) {
	s.mu.Lock()
	if !s.current(spin) {
		s.mu.Unlock()
		return
	}
	s.angle = f.Angle
	s.mu.Unlock()

	fr := f
	fr.Crossing = nil
	s.emit(Event{Kind: EventFrame, SessionID: s.id, Spin: spin, Frame: &fr})
}

func (s *Session) onCrossing(spin int64, c animation.Crossing) {
	s.mu.Lock()
	ok := s.current(spin)
	s.mu.Unlock()
	if !ok {
		return
	}
	s.emit(Event{Kind: EventCrossing, SessionID: s.id, Spin: spin, Crossing: &c})
	if err := s.player.PlayTick(s.ctx, s.id, c.Pitch); err != nil {
		s.log.Debugf("tick playback: %v", err)
	}
}

func (s *Session) onComplete(spin int64, f animation.Frame) {
	s.mu.Lock()
	if !s.current(spin) {
		s.mu.Unlock()
		return
	}
	evs := s.settleLocked(spin, f)
	s.mu.Unlock()

	s.emit(evs...)
	s.playWin()
}

// settleLocked 角度精确落在 target，神秘盒进入 Won
func (s *Session) settleLocked(spin int64, f animation.Frame) []Event {
	s.angle = s.target
	s.phase = PhaseSettled
	s.stopSpin = nil
	s.activeAt = time.Now()

	evs := []Event{{
		Kind:      EventComplete,
		SessionID: s.id,
		Spin:      spin,
		Outcome:   &Outcome{Index: s.winIndex, Reward: *s.winning, Angle: s.angle},
	}}
	if s.winning.IsMystery() && s.reveal.Win() {
		evs = append(evs, s.revealEvent(reveal.PhaseWon, ""))
	}
	s.log.Infof("spin #%d settled: index=%d reward=%s angle=%.4f frame=%d", spin, s.winIndex, s.winning.Name, s.angle, f.Seq)
	return evs
}

func (s *Session) playWin() {
	if err := s.player.PlayWin(s.ctx, s.id); err != nil {
		s.log.Debugf("win playback: %v", err)
	}
}

// OpenMysteryBox 仅在 Won 阶段有效，从隐藏奖池均匀抽取
func (s *Session) OpenMysteryBox() bool {
	s.mu.Lock()
	if s.closed || s.phase != PhaseSettled || s.reveal.Phase() != reveal.PhaseWon {
		s.mu.Unlock()
		s.log.Debug("open rejected")
		return false
	}
	value := selector.Pick(s.wheel.Catalog(), s.rng)
	if !s.reveal.Open(value) {
		s.mu.Unlock()
		return false
	}
	s.activeAt = time.Now()
	ev := s.revealEvent(reveal.PhaseVideo, value)
	s.mu.Unlock()

	s.emit(ev)
	if err := s.player.PlayRevealVideo(s.ctx, s.id); err != nil {
		s.log.Debugf("reveal video playback: %v", err)
	}
	return true
}

// OnExternalMediaEnded 开箱视频播完，仅在 Video 阶段有效
func (s *Session) OnExternalMediaEnded() bool {
	s.mu.Lock()
	if s.closed || !s.reveal.MediaEnded() {
		s.mu.Unlock()
		s.log.Debug("media ended ignored")
		return false
	}
	s.activeAt = time.Now()
	_, value := s.reveal.Snapshot()
	ev := s.revealEvent(reveal.PhaseReveal, value)
	s.mu.Unlock()

	s.emit(ev)
	return true
}

// Cancel 中止进行中的旋转，不触发完成；角度停在最后一帧
func (s *Session) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSpinning {
		return false
	}
	if s.stopSpin != nil {
		s.stopSpin()
	}
	s.phase = PhaseIdle
	s.winning, s.winIndex = nil, -1
	s.stopSpin = nil
	// 旧时间线异步退出，换新的调度器避免下一次旋转撞上 ErrBusy
	s.scheduler = animation.NewScheduler()
	s.log.Infof("spin #%d cancelled at angle=%.4f", s.spins, s.angle)
	return true
}

// Close 宿主销毁会话
func (s *Session) Close() {
	s.Cancel()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Snapshot 会话当前状态，旋转中不暴露结果
type Snapshot struct {
	ID            string     `json:"id"`
	WheelID       string     `json:"wheel_id"`
	Phase         Phase      `json:"phase"`
	Angle         float64    `json:"angle"`
	Target        float64    `json:"target"`
	Spins         int64      `json:"spins"`
	Outcome       *Outcome   `json:"outcome,omitempty"`
	Reveal        RevealInfo `json:"reveal"`
	ReducedMotion bool       `json:"reduced_motion"`
	Closed        bool       `json:"closed"`
	CreatedAt     time.Time  `json:"created_at"`
	ActiveAt      time.Time  `json:"active_at"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	phase, value := s.reveal.Snapshot()
	snap := Snapshot{
		ID:            s.id,
		WheelID:       s.wheel.ID(),
		Phase:         s.phase,
		Angle:         s.angle,
		Target:        s.target,
		Spins:         s.spins,
		Reveal:        RevealInfo{Phase: phase, Value: value},
		ReducedMotion: s.reduced,
		Closed:        s.closed,
		CreatedAt:     s.createdAt,
		ActiveAt:      s.activeAt,
	}
	if s.phase == PhaseSettled && s.winning != nil {
		snap.Outcome = &Outcome{Index: s.winIndex, Reward: *s.winning, Angle: s.angle}
	}
	return snap
}

func (s *Session) revealEvent(p reveal.Phase, value string) Event {
	return Event{Kind: EventReveal, SessionID: s.id, Spin: s.spins, Reveal: &RevealInfo{Phase: p, Value: value}}
}

func (s *Session) emit(evs ...Event) {
	for _, e := range evs {
		s.listener.OnEvent(e)
	}
}
