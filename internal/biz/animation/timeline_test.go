package animation

import (
	"math"
	"testing"
	"time"

	"spinwheel/internal/biz/geometry"
)

func linearPlan() Plan {
	return Plan{
		Start:    0,
		Target:   geometry.TwoPi,
		Duration: time.Second,
		Segments: 4,
		Style:    geometry.Drum,
		Easing:   Linear,
	}
}

func TestTimelineCrossings(t *testing.T) {
	tl := NewTimeline(linearPlan())

	f0 := tl.Sample(0)
	if f0.Crossing != nil || f0.Segment != 0 || f0.Deflection != 0 {
		t.Fatalf("首帧只记录扇区: %+v", f0)
	}

	f1 := tl.Sample(300 * time.Millisecond)
	if f1.Crossing == nil || f1.Crossing.From != 0 || f1.Crossing.To != 1 {
		t.Fatalf("应跨入扇区 1: %+v", f1)
	}
	if want := 0.8 + 0.7*0.6; math.Abs(f1.Crossing.Pitch-want) > 1e-9 {
		t.Errorf("pitch=%v want %v", f1.Crossing.Pitch, want)
	}
	if f1.Deflection != deflectionKick {
		t.Errorf("跨界帧回弹应为 %v, got %v", deflectionKick, f1.Deflection)
	}

	f2 := tl.Sample(310 * time.Millisecond)
	if f2.Crossing != nil {
		t.Errorf("同一扇区不应重复触发: %+v", f2.Crossing)
	}
	if math.Abs(f2.Deflection-deflectionKick*deflectionDecay) > 1e-12 {
		t.Errorf("回弹应衰减, got %v", f2.Deflection)
	}
	if f2.Seq != 2 {
		t.Errorf("seq=%d", f2.Seq)
	}
}

func TestTimelineDeflectionSnapsToZero(t *testing.T) {
	plan := linearPlan()
	plan.Duration = time.Hour
	tl := NewTimeline(plan)
	tl.Sample(0)
	tl.Sample(time.Duration(0.3 * float64(time.Hour)))
	var last float64
	for i := 0; i < 40; i++ {
		last = tl.Sample(time.Duration(0.3*float64(time.Hour)) + time.Duration(i)*time.Millisecond).Deflection
	}
	// 0.3*0.85^n < 0.005 时归零
	if last != 0 {
		t.Errorf("回弹应归零, got %v", last)
	}
}

func TestTimelineFinalSnap(t *testing.T) {
	plan := Plan{Start: 1.234, Target: 1.234 + 37.7, Duration: DefaultDuration, Segments: 10, Style: geometry.Pointer}
	tl := NewTimeline(plan)
	tl.Sample(0)
	tl.Sample(DefaultDuration / 2)
	f := tl.Sample(DefaultDuration + time.Second)
	if !f.Final || f.Angle != plan.Target || f.Progress != 1 || f.Deflection != 0 {
		t.Fatalf("终帧应精确落在 target: %+v", f)
	}
	again := tl.Sample(2 * DefaultDuration)
	if !again.Final || again.Crossing != nil || again.Seq != f.Seq {
		t.Errorf("终帧之后应重复终帧: %+v", again)
	}
}

func TestTimelineMonotonic(t *testing.T) {
	plan := Plan{Start: 0, Target: 40, Duration: DefaultDuration, Segments: 10, Style: geometry.Pointer, Easing: SpinEase}
	tl := NewTimeline(plan)
	prev := math.Inf(-1)
	for el := time.Duration(0); ; el += 16 * time.Millisecond {
		f := tl.Sample(el)
		if f.Angle < prev {
			t.Fatalf("角度回退: %v < %v", f.Angle, prev)
		}
		prev = f.Angle
		if f.Final {
			break
		}
	}
}

func TestZeroDurationIsFinal(t *testing.T) {
	tl := NewTimeline(Plan{Start: 0, Target: 3, Segments: 2, Style: geometry.Pointer})
	if f := tl.Sample(0); !f.Final || f.Angle != 3 {
		t.Errorf("零时长应直接完成: %+v", f)
	}
}
