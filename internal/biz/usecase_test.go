package biz

import (
	"context"
	"errors"
	"testing"
	"time"

	"spinwheel/internal/biz/reveal"
	"spinwheel/internal/biz/spin"
	"spinwheel/internal/conf"
	"spinwheel/internal/notify"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/panjf2000/ants/v2"
)

type nopHub struct{}

func (nopHub) Publish(spin.Event) {}
func (nopHub) Subscribe(string) (<-chan spin.Event, func()) {
	ch := make(chan spin.Event)
	return ch, func() {}
}
func (nopHub) CloseSession(string) {}

type recordNotifier struct {
	sent chan *notify.Message
}

func (r recordNotifier) Send(_ context.Context, msg *notify.Message) error {
	r.sent <- msg
	return nil
}

func TestRevealNotifyWhenWorkersBusy(t *testing.T) {
	rec := recordNotifier{sent: make(chan *notify.Message, 1)}
	uc, cleanup, err := NewUseCase(&conf.Wheel{WorkerPoolSize: 1}, nopHub{}, nil, rec, log.DefaultLogger)
	if err != nil {
		t.Fatalf("NewUseCase: %v", err)
	}
	defer cleanup()

	// 占满动画池
	block := make(chan struct{})
	defer close(block)
	if err := uc.workers.Submit(func() { <-block }); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := uc.workers.Submit(func() {}); !errors.Is(err, ants.ErrPoolOverload) {
		t.Fatalf("动画池应已满, got %v", err)
	}

	w := uc.ListWheels()[0]
	uc.onReveal(w, spin.Event{
		Kind:      spin.EventReveal,
		SessionID: "s1",
		Spin:      1,
		Reveal:    &spin.RevealInfo{Phase: reveal.PhaseReveal, Value: "$5.00"},
	})

	select {
	case msg := <-rec.sent:
		if msg == nil {
			t.Fatal("空消息")
		}
	case <-time.After(time.Second):
		t.Fatal("动画池满时揭晓通知不应丢失")
	}
}

func TestRevealNotifyIgnoresOtherPhases(t *testing.T) {
	rec := recordNotifier{sent: make(chan *notify.Message, 1)}
	uc, cleanup, err := NewUseCase(&conf.Wheel{}, nopHub{}, nil, rec, log.DefaultLogger)
	if err != nil {
		t.Fatalf("NewUseCase: %v", err)
	}
	defer cleanup()

	w := uc.ListWheels()[0]
	for _, p := range []reveal.Phase{reveal.PhaseWon, reveal.PhaseVideo} {
		uc.onReveal(w, spin.Event{Kind: spin.EventReveal, Reveal: &spin.RevealInfo{Phase: p}})
	}
	select {
	case msg := <-rec.sent:
		t.Errorf("只在 reveal 阶段通知, got %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}
