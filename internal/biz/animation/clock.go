package animation

import (
	"context"
	"time"
)

// DefaultFrameInterval 约 60Hz
const DefaultFrameInterval = 16 * time.Millisecond

// FrameClock 帧时钟，按显示刷新节奏产出自开始以来的耗时；ctx 取消后关闭通道
type FrameClock interface {
	Frames(ctx context.Context) <-chan time.Duration
}

// TickerClock 基于 time.Ticker 的真实时钟，首帧立即产出 0
type TickerClock struct {
	Interval time.Duration
}

func (c TickerClock) Frames(ctx context.Context) <-chan time.Duration {
	interval := c.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	out := make(chan time.Duration)
	go func() {
		defer close(out)
		start := time.Now()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		select {
		case out <- 0:
		case <-ctx.Done():
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				select {
				case out <- now.Sub(start):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// StepClock 不看墙钟，按固定步长产出 0, Step, 2*Step...，用于模拟与测试
type StepClock struct {
	Step time.Duration
}

func (c StepClock) Frames(ctx context.Context) <-chan time.Duration {
	step := c.Step
	if step <= 0 {
		step = DefaultFrameInterval
	}
	out := make(chan time.Duration)
	go func() {
		defer close(out)
		for elapsed := time.Duration(0); ; elapsed += step {
			select {
			case out <- elapsed:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
