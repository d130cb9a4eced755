package spin

import (
	"testing"
	"time"

	"spinwheel/internal/biz/animation"
	"spinwheel/internal/biz/reveal"
	"spinwheel/internal/biz/reward"
	"spinwheel/internal/biz/selector"
	"spinwheel/internal/biz/wheel"
)

func twoSegmentWheel(t *testing.T) *wheel.Wheel {
	return mustWheel(t, wheel.NewClassic(), []reward.Reward{
		{ID: 1, Name: "A", Chance: 50},
		{ID: 2, Name: "B", Chance: 50},
	})
}

func TestTwoSegmentScenario(t *testing.T) {
	rec := newRecorder()
	s := NewSession(Options{
		ID:            "s1",
		Wheel:         twoSegmentWheel(t),
		RNG:           &scriptedRNG{floats: []float64{0.9, 0.5}},
		Listener:      rec,
		ReducedMotion: true,
	})
	if !s.RequestSpin() {
		t.Fatalf("RequestSpin 应被接受")
	}
	snap := s.Snapshot()
	if snap.Phase != PhaseSettled || snap.Outcome == nil || snap.Outcome.Reward.Name != "B" {
		t.Fatalf("应同步停在 B: %+v", snap)
	}
	if got := s.Wheel().Style().SegmentAt(snap.Angle, 2); got != 1 {
		t.Errorf("终角应落在 B 扇区, got %d", got)
	}
	ev, ok := rec.last(EventComplete)
	if !ok || ev.Outcome.Reward.ID != 2 || ev.Outcome.Index != 1 {
		t.Errorf("完成事件应为 B: %+v", ev)
	}
	if rec.count(EventReveal) != 0 {
		t.Errorf("现金奖励不应进入揭晓流程")
	}
}

func TestAnimatedSpinCompletesOnce(t *testing.T) {
	rec := newRecorder()
	s := NewSession(Options{
		ID:       "s2",
		RNG:      selector.NewRNG(11),
		Clock:    animation.StepClock{Step: 20 * time.Millisecond},
		Listener: rec,
	})
	defer s.Close()

	if !s.RequestSpin() {
		t.Fatalf("RequestSpin 应被接受")
	}
	rec.wait(t, EventComplete, 1)

	snap := s.Snapshot()
	if snap.Phase != PhaseSettled || snap.Angle != snap.Target {
		t.Fatalf("应精确停在 target: %+v", snap)
	}
	if got := s.Wheel().Style().SegmentAt(snap.Angle, s.Wheel().Table().Len()); got != snap.Outcome.Index {
		t.Errorf("终角扇区 %d != 中奖下标 %d", got, snap.Outcome.Index)
	}
	if rec.count(EventFrame) < 100 || rec.count(EventCrossing) == 0 {
		t.Errorf("frames=%d crossings=%d", rec.count(EventFrame), rec.count(EventCrossing))
	}

	time.Sleep(50 * time.Millisecond)
	if n := rec.count(EventComplete); n != 1 {
		t.Errorf("完成事件应恰好一次, got %d", n)
	}
}

func TestSpinRejectedWhileSpinning(t *testing.T) {
	rec := newRecorder()
	s := NewSession(Options{
		ID:       "s3",
		RNG:      selector.NewRNG(3),
		Clock:    animation.TickerClock{Interval: time.Hour},
		Listener: rec,
	})
	defer s.Close()

	if !s.RequestSpin() {
		t.Fatalf("首次旋转应被接受")
	}
	rec.wait(t, EventFrame, 1)
	before := s.Snapshot()

	if s.RequestSpin() || s.SpinAgain() || s.OpenMysteryBox() {
		t.Fatalf("旋转中的触发应全部被拒绝")
	}
	after := s.Snapshot()
	if after.Spins != before.Spins || after.Target != before.Target || after.Outcome != nil {
		t.Errorf("拒绝不应改变状态: before=%+v after=%+v", before, after)
	}
}

func TestCancelSkipsCompletion(t *testing.T) {
	rec := newRecorder()
	s := NewSession(Options{
		ID:       "s4",
		RNG:      selector.NewRNG(4),
		Clock:    animation.TickerClock{Interval: time.Hour},
		Listener: rec,
	})
	defer s.Close()

	s.RequestSpin()
	rec.wait(t, EventFrame, 1)
	first, _ := rec.last(EventFrame)

	if !s.Cancel() {
		t.Fatalf("Cancel 应生效")
	}
	if s.Cancel() {
		t.Errorf("重复 Cancel 应为空操作")
	}
	time.Sleep(20 * time.Millisecond)
	if rec.count(EventComplete) != 0 {
		t.Fatalf("取消后不应完成")
	}
	snap := s.Snapshot()
	if snap.Phase != PhaseIdle || snap.Angle != first.Frame.Angle {
		t.Errorf("取消后应停在最后一帧: %+v", snap)
	}

	if !s.RequestSpin() {
		t.Errorf("取消后应可再次旋转")
	}
}

func TestReducedMatchesAnimated(t *testing.T) {
	reduced := NewSession(Options{ID: "r", RNG: selector.NewRNG(77), ReducedMotion: true})
	rec := newRecorder()
	animated := NewSession(Options{
		ID:       "a",
		RNG:      selector.NewRNG(77),
		Clock:    animation.StepClock{Step: 25 * time.Millisecond},
		Listener: rec,
	})
	defer animated.Close()

	reduced.RequestSpin()
	animated.RequestSpin()
	rec.wait(t, EventComplete, 1)

	r, a := reduced.Snapshot(), animated.Snapshot()
	if r.Angle != a.Angle || r.Outcome.Reward.ID != a.Outcome.Reward.ID {
		t.Errorf("两种模式终态应一致: reduced=%v/%d animated=%v/%d", r.Angle, r.Outcome.Reward.ID, a.Angle, a.Outcome.Reward.ID)
	}
}

func TestMysteryRevealFlow(t *testing.T) {
	rec := newRecorder()
	player := &failingPlayer{}
	s := NewSession(Options{
		ID: "m1",
		Wheel: mustWheel(t, wheel.NewCylinder(), []reward.Reward{
			{ID: 1, Name: "$1.00", Chance: 50},
			{ID: 9, Name: reward.MysteryName, Chance: 25},
			{ID: 10, Name: reward.MysteryName, Chance: 25},
		}),
		// 0.6 命中第一个神秘盒，0.9 命中第二个
		RNG:           &scriptedRNG{floats: []float64{0.6, 0.9}, ints: []int{0, 2}},
		Player:        player,
		Listener:      rec,
		ReducedMotion: true,
	})

	if !s.RequestSpin() {
		t.Fatalf("RequestSpin 应被接受")
	}
	snap := s.Snapshot()
	if snap.Outcome.Reward.ID != 9 || snap.Reveal.Phase != reveal.PhaseWon {
		t.Fatalf("应进入 Won: %+v", snap)
	}

	// 非法触发
	if s.RequestSpin() || s.OnExternalMediaEnded() {
		t.Fatalf("Won 阶段只接受 open/spinAgain")
	}

	if !s.OpenMysteryBox() {
		t.Fatalf("OpenMysteryBox 应被接受")
	}
	snap = s.Snapshot()
	if snap.Reveal.Phase != reveal.PhaseVideo || snap.Reveal.Value != "$25.00" {
		t.Fatalf("应进入 Video 且抽中 $25.00: %+v", snap.Reveal)
	}
	if s.OpenMysteryBox() || s.RequestSpin() {
		t.Errorf("Video 阶段不应重复打开或旋转")
	}

	if !s.OnExternalMediaEnded() {
		t.Fatalf("MediaEnded 应被接受")
	}
	ev, _ := rec.last(EventReveal)
	if ev.Reveal.Phase != reveal.PhaseReveal || ev.Reveal.Value != "$25.00" {
		t.Errorf("reveal 事件错误: %+v", ev.Reveal)
	}

	// 第二个同名神秘盒同样进入揭晓流程
	if !s.SpinAgain() {
		t.Fatalf("SpinAgain 应被接受")
	}
	snap = s.Snapshot()
	if snap.Outcome.Reward.ID != 10 || snap.Reveal.Phase != reveal.PhaseWon || snap.Reveal.Value != "" {
		t.Fatalf("重复神秘盒应进入 Won 且奖励清空: %+v", snap)
	}

	// 播放失败不影响流程
	player.mu.Lock()
	calls := len(player.calls)
	player.mu.Unlock()
	if calls != 3 {
		t.Errorf("应尝试播放 win/video/win, got %d", calls)
	}
}

func TestSpinAgainFromCash(t *testing.T) {
	s := NewSession(Options{ID: "c1", Wheel: twoSegmentWheel(t), RNG: &scriptedRNG{floats: []float64{0.1, 0.5}}, ReducedMotion: true})
	if s.SpinAgain() || s.OpenMysteryBox() || s.OnExternalMediaEnded() {
		t.Fatalf("空闲会话上的 spinAgain/open/mediaEnded 应为空操作")
	}
	s.RequestSpin()
	if !s.SpinAgain() {
		t.Fatalf("现金结果之后 SpinAgain 应被接受")
	}
	if got := s.Snapshot().Spins; got != 2 {
		t.Errorf("spins=%d", got)
	}
}

func TestClosedSessionIgnoresTriggers(t *testing.T) {
	s := NewSession(Options{ID: "x", ReducedMotion: true})
	s.Close()
	if s.RequestSpin() || s.SpinAgain() {
		t.Errorf("关闭后触发应为空操作")
	}
	if !s.Snapshot().Closed {
		t.Errorf("snapshot 应标记关闭")
	}
}
