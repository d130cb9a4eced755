package animation

import (
	"time"

	"spinwheel/internal/biz/geometry"
)

// DefaultDuration 一次旋转的总时长
const DefaultDuration = 5500 * time.Millisecond

// 指针回弹
const (
	deflectionKick  = 0.3
	deflectionDecay = 0.85
	deflectionFloor = 0.005
)

// Plan 一次旋转的全部输入，运行期间不可变
type Plan struct {
	Start    float64
	Target   float64
	Duration time.Duration
	Segments int
	Style    geometry.Style
	Easing   Easing
}

// Crossing 指针跨过扇区边界
type Crossing struct {
	From  int     `json:"from"`
	To    int     `json:"to"`
	Pitch float64 `json:"pitch"`
}

// Frame 一帧的完整状态
type Frame struct {
	Seq        int           `json:"seq"`
	Elapsed    time.Duration `json:"elapsed"`
	Progress   float64       `json:"progress"`
	Angle      float64       `json:"angle"`
	Segment    int           `json:"segment"`
	Deflection float64       `json:"deflection"`
	Crossing   *Crossing     `json:"crossing,omitempty"`
	Final      bool          `json:"final"`
}

// Timeline 逐帧采样器，记录上一帧的扇区与指针回弹；非并发安全
type Timeline struct {
	plan       Plan
	easing     Easing
	lastSeg    int
	deflection float64
	seq        int
	done       bool
	final      Frame
}

func NewTimeline(plan Plan) *Timeline {
	e := plan.Easing
	if e == nil {
		e = SpinEase
	}
	return &Timeline{plan: plan, easing: e, lastSeg: -1}
}

func (tl *Timeline) Plan() Plan { return tl.plan }

func (tl *Timeline) Done() bool { return tl.done }

// Sample 采样 elapsed 时刻；进度到 1 时角度精确落在 Target 并标记 Final，之后重复返回终帧
func (tl *Timeline) Sample(elapsed time.Duration) Frame {
	if tl.done {
		return tl.final
	}

	progress := 1.0
	if tl.plan.Duration > 0 {
		progress = clamp01(float64(elapsed) / float64(tl.plan.Duration))
	}
	angle := tl.plan.Start + (tl.plan.Target-tl.plan.Start)*tl.easing.Ease(progress)
	if progress >= 1 {
		angle = tl.plan.Target
	}
	seg := tl.plan.Style.SegmentAt(angle, tl.plan.Segments)

	tl.deflection *= deflectionDecay
	if tl.deflection < deflectionFloor {
		tl.deflection = 0
	}

	f := Frame{
		Seq:      tl.seq,
		Elapsed:  elapsed,
		Progress: progress,
		Angle:    angle,
		Segment:  seg,
	}
	tl.seq++

	// 首帧只记录扇区
	if tl.lastSeg != -1 && seg != tl.lastSeg {
		f.Crossing = &Crossing{From: tl.lastSeg, To: seg, Pitch: TickPitch(progress)}
		tl.deflection = deflectionKick
	}
	tl.lastSeg = seg
	f.Deflection = tl.deflection

	if progress >= 1 {
		f.Final = true
		f.Deflection = 0
		tl.deflection = 0
		tl.done = true
		tl.final = f
		tl.final.Crossing = nil
	}
	return f
}

// Final 直接跳到终帧
func (tl *Timeline) Final() Frame {
	return tl.Sample(tl.plan.Duration)
}

// TickPitch 越接近停止音调越低：0.8 + (1-progress)*0.6
func TickPitch(progress float64) float64 {
	return 0.8 + (1-clamp01(progress))*0.6
}
