package data

import (
	"context"
	"testing"

	"spinwheel/internal/biz/spin"

	"github.com/go-kratos/kratos/v2/log"
)

func TestHubFanOut(t *testing.T) {
	h := newHub(4, log.DefaultLogger)
	a, cancelA := h.Subscribe("s1")
	b, cancelB := h.Subscribe("s1")
	other, cancelOther := h.Subscribe("s2")
	defer cancelA()
	defer cancelB()
	defer cancelOther()

	h.Publish(spin.Event{Kind: spin.EventComplete, SessionID: "s1"})

	for _, ch := range []<-chan spin.Event{a, b} {
		if e := <-ch; e.Kind != spin.EventComplete {
			t.Errorf("kind=%s", e.Kind)
		}
	}
	select {
	case e := <-other:
		t.Errorf("其他会话不应收到: %+v", e)
	default:
	}
}

func TestHubDropsWhenFull(t *testing.T) {
	h := newHub(2, log.DefaultLogger)
	_, cancel := h.Subscribe("s1")
	defer cancel()
	for i := 0; i < 5; i++ {
		h.Publish(spin.Event{Kind: spin.EventFrame, SessionID: "s1"})
	}
	if got := h.Dropped(); got != 3 {
		t.Errorf("dropped=%d want 3", got)
	}
}

func TestHubUnsubscribeAndClose(t *testing.T) {
	h := newHub(1, log.DefaultLogger)
	ch, cancel := h.Subscribe("s1")
	cancel()
	cancel() // 重复调用安全
	if _, ok := <-ch; ok {
		t.Errorf("取消后通道应关闭")
	}
	if h.subscribers("s1") != 0 {
		t.Errorf("订阅应被移除")
	}

	ch2, cancel2 := h.Subscribe("s1")
	h.CloseSession("s1")
	if _, ok := <-ch2; ok {
		t.Errorf("CloseSession 后通道应关闭")
	}
	cancel2() // 已关闭的会话上取消不应 panic
	h.Publish(spin.Event{SessionID: "s1"})
}

func TestCuePlayer(t *testing.T) {
	h := newHub(8, log.DefaultLogger)
	ch, cancel := h.Subscribe("s1")
	defer cancel()
	p := NewCuePlayer(h)

	ctx := context.Background()
	_ = p.PlayTick(ctx, "s1", 1.1)
	_ = p.PlayWin(ctx, "s1")
	_ = p.PlayRevealVideo(ctx, "s1")

	want := []spin.Cue{
		{Name: spin.CueTick, Pitch: 1.1},
		{Name: spin.CueWin, Src: spin.WinSound},
		{Name: spin.CueVideo, Src: spin.RevealVideo},
	}
	for _, w := range want {
		e := <-ch
		if e.Kind != spin.EventCue || *e.Cue != w {
			t.Errorf("cue=%+v want %+v", e.Cue, w)
		}
	}

	cctx, stop := context.WithCancel(ctx)
	stop()
	if err := p.PlayWin(cctx, "s1"); err == nil {
		t.Errorf("ctx 取消后应返回错误")
	}
}
