package animation

import "math"

// Easing 把线性进度 [0,1] 映射为角度进度 [0,1]
type Easing interface {
	Ease(t float64) float64
}

// EasingFunc 函数适配
type EasingFunc func(t float64) float64

func (f EasingFunc) Ease(t float64) float64 { return f(clamp01(t)) }

// Linear 仅用于测试与调试
var Linear = EasingFunc(func(t float64) float64 { return t })

// TwoPhase 前段二次加速，后段 (1-p)^Power 渐近减速
//
//	t < Split: Knee * (t/Split)^2
//	t >= Split: Knee + (1-Knee) * (1 - (1-p)^Power), p = (t-Split)/(1-Split)
type TwoPhase struct {
	Split float64
	Knee  float64
	Power float64
}

var (
	// SpinEase 经典转盘
	SpinEase = TwoPhase{Split: 0.3, Knee: 0.6, Power: 5}
	// DrumEase 滚筒，减速段稍短
	DrumEase = TwoPhase{Split: 0.3, Knee: 0.6, Power: 4}
)

func (e TwoPhase) Ease(t float64) float64 {
	t = clamp01(t)
	if e.Split <= 0 || e.Split >= 1 {
		return 1 - math.Pow(1-t, e.Power)
	}
	if t < e.Split {
		x := t / e.Split
		return e.Knee * x * x
	}
	p := (t - e.Split) / (1 - e.Split)
	return e.Knee + (1-e.Knee)*(1-math.Pow(1-p, e.Power))
}

func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
