package geometry

import (
	"math"

	"spinwheel/internal/biz/selector"
)

const (
	TwoPi = 2 * math.Pi
	// PointerAngle 指针固定在正上方
	PointerAngle = -math.Pi / 2
)

// Kind 转盘落点约定
type Kind int32

const (
	KindPointer Kind = 1 // 平面转盘 + 顶部指针，带扇区内抖动
	KindDrum    Kind = 2 // 滚筒，扇区正对观察者
)

func (k Kind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindDrum:
		return "drum"
	default:
		return "unknown"
	}
}

// Style 一种落点约定的全部参数
type Style struct {
	Kind     Kind
	MinTurns int     // 额外整圈数下限（含）
	MaxTurns int     // 额外整圈数上限（含）
	Jitter   float64 // 落点在扇区内的可用比例，0 表示正中
}

var (
	// Pointer 经典转盘：4~7 圈，落在扇区中间 60%
	Pointer = Style{Kind: KindPointer, MinTurns: 4, MaxTurns: 7, Jitter: 0.6}
	// Drum 滚筒：5~7 圈，无抖动
	Drum = Style{Kind: KindDrum, MinTurns: 5, MaxTurns: 7}
)

// SegmentAngle 每个扇区的弧度
func SegmentAngle(n int) float64 {
	if n <= 0 {
		return 0
	}
	return TwoPi / float64(n)
}

// Normalize 映射到 [0, 2π)
func Normalize(angle float64) float64 {
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// TargetAngle 计算让 idx 扇区停在参考方向的终止角，结果严格大于 current 且至少多转 MinTurns 圈。
// current 为 NaN 或 ±Inf 时按 0 计算
func (s Style) TargetAngle(idx, n int, current float64, rng selector.RNG) float64 {
	seg := SegmentAngle(n)
	var landing float64
	switch s.Kind {
	case KindDrum:
		landing = float64(idx) * seg
	default:
		jitter := (rng.Float64() - 0.5) * seg * s.Jitter
		landing = PointerAngle - (float64(idx)*seg + seg/2 + jitter)
	}

	// 非有限角度按 0 处理
	if math.IsNaN(current) || math.IsInf(current, 0) {
		current = 0
	}
	// 先把落点抬到 current 之上，再叠加整圈，连续旋转也保证至少 MinTurns 圈
	target := landing
	if target <= current {
		target += math.Ceil((current-landing)/TwoPi) * TwoPi
		if target <= current {
			target += TwoPi
		}
	}
	return target + float64(s.turns(rng))*TwoPi
}

func (s Style) turns(rng selector.RNG) int {
	lo, hi := s.MinTurns, s.MaxTurns
	if hi < lo {
		hi = lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// SegmentAt 当前角度下位于参考方向的扇区下标
func (s Style) SegmentAt(angle float64, n int) int {
	if n <= 0 {
		return -1
	}
	seg := SegmentAngle(n)
	var idx int
	switch s.Kind {
	case KindDrum:
		idx = int(math.Round(Normalize(angle)/seg)) % n
	default:
		idx = int(math.Floor(Normalize(PointerAngle-angle) / seg))
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}
