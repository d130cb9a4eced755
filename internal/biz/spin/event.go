package spin

import (
	"spinwheel/internal/biz/animation"
	"spinwheel/internal/biz/reveal"
	"spinwheel/internal/biz/reward"
)

type EventKind string

const (
	EventFrame    EventKind = "frame"
	EventCrossing EventKind = "crossing"
	EventComplete EventKind = "complete"
	EventReveal   EventKind = "reveal"
	EventCue      EventKind = "cue"
)

// Event 会话对外输出，Spin 为该会话内的旋转序号
type Event struct {
	Kind      EventKind           `json:"kind"`
	SessionID string              `json:"session_id"`
	Spin      int64               `json:"spin"`
	Frame     *animation.Frame    `json:"frame,omitempty"`
	Crossing  *animation.Crossing `json:"crossing,omitempty"`
	Outcome   *Outcome            `json:"outcome,omitempty"`
	Reveal    *RevealInfo         `json:"reveal,omitempty"`
	Cue       *Cue                `json:"cue,omitempty"`
}

// Outcome 一次旋转的结果
type Outcome struct {
	Index  int           `json:"index"`
	Reward reward.Reward `json:"reward"`
	Angle  float64       `json:"angle"`
}

type RevealInfo struct {
	Phase reveal.Phase `json:"phase"`
	Value string       `json:"value,omitempty"`
}

// Cue 媒体播放指令，由客户端执行
type Cue struct {
	Name  string  `json:"name"`
	Src   string  `json:"src,omitempty"`
	Pitch float64 `json:"pitch,omitempty"`
}

type Listener interface {
	OnEvent(Event)
}

type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Listeners 依次转发
type Listeners []Listener

func (ls Listeners) OnEvent(e Event) {
	for _, l := range ls {
		if l != nil {
			l.OnEvent(e)
		}
	}
}

type noopListener struct{}

func (noopListener) OnEvent(Event) {}
