package geometry

import (
	"math"
	"testing"

	"spinwheel/internal/biz/selector"
)

type fixedRNG struct {
	f float64
	i int
}

func (r fixedRNG) Float64() float64 { return r.f }
func (r fixedRNG) IntN(n int) int   { return r.i % n }

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		if got := Normalize(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Normalize(%v)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestTargetStrictlyAhead(t *testing.T) {
	rng := selector.NewRNG(42)
	for _, style := range []Style{Pointer, Drum} {
		for _, n := range []int{2, 3, 8, 10, 37} {
			current := 0.0
			for i := 0; i < 500; i++ {
				idx := rng.IntN(n)
				target := style.TargetAngle(idx, n, current, rng)
				if target <= current {
					t.Fatalf("%s n=%d: target %v <= current %v", style.Kind, n, target, current)
				}
				current = target
			}
		}
	}
}

func TestTargetLandsOnWinner(t *testing.T) {
	rng := selector.NewRNG(99)
	for _, style := range []Style{Pointer, Drum} {
		for _, n := range []int{2, 5, 10, 12} {
			current := rng.Float64() * 100
			for idx := 0; idx < n; idx++ {
				for k := 0; k < 50; k++ {
					target := style.TargetAngle(idx, n, current, rng)
					if got := style.SegmentAt(target, n); got != idx {
						t.Fatalf("%s n=%d idx=%d: landed on %d (target=%v)", style.Kind, n, idx, got, target)
					}
					current = target
				}
			}
		}
	}
}

func TestPointerJitterBounds(t *testing.T) {
	const n = 10
	seg := SegmentAngle(n)
	for _, f := range []float64{0, 0.5, 0.999999} {
		target := Pointer.TargetAngle(3, n, 0, fixedRNG{f: f})
		off := Normalize(PointerAngle-target) - 3*seg
		if off < seg*0.2-1e-9 || off > seg*0.8+1e-9 {
			t.Errorf("u=%v: 落点偏移 %.4f 超出中间 60%%", f, off/seg)
		}
	}
	mid := Pointer.TargetAngle(3, n, 0, fixedRNG{f: 0.5})
	if off := Normalize(PointerAngle-mid) - 3*seg; math.Abs(off-seg/2) > 1e-9 {
		t.Errorf("u=0.5 应落在扇区正中, got %.4f", off/seg)
	}
}

func TestTurnsRange(t *testing.T) {
	for _, c := range []struct {
		style    Style
		min, max int
	}{{Pointer, 4, 7}, {Drum, 5, 7}} {
		lo := c.style.TargetAngle(0, 4, -1e9, fixedRNG{f: 0.5, i: 0})
		hi := c.style.TargetAngle(0, 4, -1e9, fixedRNG{f: 0.5, i: c.max - c.min})
		if turns := math.Round((hi - lo) / TwoPi); int(turns) != c.max-c.min {
			t.Errorf("%s: 圈数跨度 %v want %d", c.style.Kind, turns, c.max-c.min)
		}
	}
}

func TestConsecutiveSpinsKeepFullTurns(t *testing.T) {
	for _, style := range []Style{Pointer, Drum} {
		current := 0.0
		for i := 0; i < 10; i++ {
			target := style.TargetAngle(i%4, 4, current, fixedRNG{f: 0.5, i: 0})
			// 最少圈数，落点偏移不足一圈
			if d := target - current; d < float64(style.MinTurns)*TwoPi || d > float64(style.MinTurns+1)*TwoPi {
				t.Fatalf("%s spin %d: 转过 %.2f 圈", style.Kind, i, d/TwoPi)
			}
			current = target
		}
	}
}

func TestTargetAngleLargeAndNonFinite(t *testing.T) {
	rng := fixedRNG{f: 0.5, i: 0}
	// 累计百万圈后的角度
	current := 1e6*TwoPi + 0.3
	for _, style := range []Style{Pointer, Drum} {
		target := style.TargetAngle(2, 4, current, rng)
		if d := target - current; d < float64(style.MinTurns)*TwoPi || d > float64(style.MinTurns+1)*TwoPi {
			t.Errorf("%s: 转过 %.2f 圈", style.Kind, d/TwoPi)
		}
		if got := style.SegmentAt(target, 4); got != 2 {
			t.Errorf("%s: 应停在 2, got %d", style.Kind, got)
		}
	}

	want := Pointer.TargetAngle(1, 4, 0, rng)
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := Pointer.TargetAngle(1, 4, bad, rng)
		if got != want {
			t.Errorf("current=%v: got %v, want %v", bad, got, want)
		}
	}
}

func TestTwoSegmentScenario(t *testing.T) {
	// [A 50, B 50]，B 的下标为 1
	target := Pointer.TargetAngle(1, 2, 0, fixedRNG{f: 0.5})
	if got := Pointer.SegmentAt(target, 2); got != 1 {
		t.Errorf("应停在 B 扇区, got %d", got)
	}
}

func TestSegmentAtDegenerate(t *testing.T) {
	if Pointer.SegmentAt(1, 0) != -1 {
		t.Errorf("n=0 应返回 -1")
	}
	if got := Drum.SegmentAt(TwoPi-1e-12, 8); got != 0 {
		t.Errorf("接近整圈应回到 0, got %d", got)
	}
}
