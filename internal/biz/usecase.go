package biz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spinwheel/internal/biz/animation"
	"spinwheel/internal/biz/metrics"
	"spinwheel/internal/biz/reveal"
	"spinwheel/internal/biz/reward"
	"spinwheel/internal/biz/selector"
	"spinwheel/internal/biz/spin"
	"spinwheel/internal/biz/wheel"
	"spinwheel/internal/conf"
	"spinwheel/internal/notify"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

// 业务常量
const (
	defaultWorkerPoolSize = 1024
	defaultSessionIdleTTL = 30 * time.Minute
	defaultSweepInterval  = time.Minute
	notifyTimeout         = 5 * time.Second
	notifyPoolSize        = 16
	notifyMaxBlocking     = 256
)

var (
	ErrWheelNotFound   = errors.New("wheel not found")
	ErrSessionNotFound = errors.New("session not found")
)

// 触发名，用于日志与指标
const (
	TriggerSpin       = "spin"
	TriggerSpinAgain  = "spin_again"
	TriggerOpen       = "open"
	TriggerMediaEnded = "media_ended"
)

// EventHub 会话事件分发：数据层实现
type EventHub interface {
	Publish(e spin.Event)
	Subscribe(sessionID string) (<-chan spin.Event, func())
	CloseSession(sessionID string)
}

// UseCase 编排层：转盘池 + 会话池 + 事件分发 + 通知
type UseCase struct {
	ctx    context.Context
	cancel context.CancelFunc

	log    *log.Helper
	logger log.Logger
	c      *conf.Wheel

	wheelPool *wheel.Pool
	sessions  *spin.Pool
	workers   *ants.Pool
	notifiers *ants.Pool // 通知单独一个阻塞池，不和动画争抢
	observers map[string]*metrics.Observer

	hub    EventHub
	player spin.Player
	notify notify.Notifier
	clock  animation.FrameClock
}

// NewUseCase 创建 UseCase
func NewUseCase(c *conf.Wheel, hub EventHub, player spin.Player, n notify.Notifier, logger log.Logger) (*UseCase, func(), error) {
	if c == nil {
		c = &conf.Wheel{}
	}
	overrides, err := wheelOverrides(c.Wheels)
	if err != nil {
		return nil, nil, err
	}
	wheelPool, err := wheel.NewPool(overrides...)
	if err != nil {
		return nil, nil, err
	}

	size := int(c.WorkerPoolSize)
	if size <= 0 {
		size = defaultWorkerPoolSize
	}
	workers, err := ants.NewPool(size, ants.WithNonblocking(true))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create ants pool: %v", err)
	}
	notifiers, err := ants.NewPool(notifyPoolSize, ants.WithMaxBlockingTasks(notifyMaxBlocking))
	if err != nil {
		workers.Release()
		return nil, nil, fmt.Errorf("failed to create notify pool: %v", err)
	}

	observers := make(map[string]*metrics.Observer)
	for _, w := range wheelPool.List() {
		observers[w.ID()] = metrics.NewObserver(w.ID())
	}

	ctx, cancel := context.WithCancel(context.Background())
	uc := &UseCase{
		ctx:       ctx,
		cancel:    cancel,
		log:       log.NewHelper(logger),
		logger:    logger,
		c:         c,
		wheelPool: wheelPool,
		sessions:  spin.NewPool(),
		workers:   workers,
		notifiers: notifiers,
		observers: observers,
		hub:       hub,
		player:    player,
		notify:    n,
		clock:     animation.TickerClock{Interval: c.FrameInterval.AsDuration()},
	}

	ttl := durationOr(c.SessionIdleTtl, defaultSessionIdleTTL)
	interval := durationOr(c.SweepInterval, defaultSweepInterval)
	go uc.sessions.StartAutoCleanup(ctx, logger, ttl, interval, uc.onExpired)
	go metrics.ReportSessions(ctx, uc.sessions)

	cleanup := func() {
		// 先等待已提交的通知发完
		if err := uc.notifiers.ReleaseTimeout(notifyTimeout); err != nil {
			uc.log.Warnf("release notify pool: %v", err)
		}
		uc.cancel()
		n := uc.sessions.CloseAll()
		uc.workers.Release()
		uc.log.Infof("closed %d sessions", n)
	}
	return uc, cleanup, nil
}

// ListWheels 转盘列表（按 id 升序）
func (uc *UseCase) ListWheels() []*wheel.Wheel {
	return uc.wheelPool.List()
}

// GetWheel 按 id 获取转盘
func (uc *UseCase) GetWheel(id string) (*wheel.Wheel, bool) {
	return uc.wheelPool.Get(id)
}

// CreateSession 创建会话；reduced 为 nil 时使用配置默认值
func (uc *UseCase) CreateSession(wheelID string, reduced *bool) (*spin.Session, error) {
	if wheelID == "" {
		wheelID = wheel.ClassicID
	}
	w, ok := uc.wheelPool.Get(wheelID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWheelNotFound, wheelID)
	}
	reducedMotion := uc.c.ReducedMotion
	if reduced != nil {
		reducedMotion = *reduced
	}

	id := uuid.NewString()
	s := spin.NewSession(spin.Options{
		ID:     id,
		Wheel:  w,
		RNG:    selector.NewRNG(0),
		Clock:  uc.clock,
		Player: uc.player,
		Listener: spin.Listeners{
			spin.ListenerFunc(uc.hub.Publish),
			uc.observers[w.ID()],
			spin.ListenerFunc(func(e spin.Event) { uc.onReveal(w, e) }),
		},
		Runner:        uc.workers,
		ReducedMotion: reducedMotion,
		Logger:        uc.logger,
	})
	uc.sessions.Add(s)
	uc.log.Infof("session created: id=%s wheel=%s reduced=%v", id, w.ID(), reducedMotion)
	return s, nil
}

// GetSession 按 id 获取会话
func (uc *UseCase) GetSession(id string) (*spin.Session, error) {
	s, ok := uc.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// ListSessions 所有会话（按创建时间倒序）
func (uc *UseCase) ListSessions() []*spin.Session {
	return uc.sessions.List()
}

// Spin 请求旋转
func (uc *UseCase) Spin(id string) (bool, spin.Snapshot, error) {
	return uc.trigger(id, TriggerSpin, (*spin.Session).RequestSpin)
}

// SpinAgain 重置后再转
func (uc *UseCase) SpinAgain(id string) (bool, spin.Snapshot, error) {
	return uc.trigger(id, TriggerSpinAgain, (*spin.Session).SpinAgain)
}

// OpenMysteryBox 打开神秘盒
func (uc *UseCase) OpenMysteryBox(id string) (bool, spin.Snapshot, error) {
	return uc.trigger(id, TriggerOpen, (*spin.Session).OpenMysteryBox)
}

// MediaEnded 客户端报告开箱视频播放结束
func (uc *UseCase) MediaEnded(id string) (bool, spin.Snapshot, error) {
	return uc.trigger(id, TriggerMediaEnded, (*spin.Session).OnExternalMediaEnded)
}

// trigger 非法触发只记录，不当作错误
func (uc *UseCase) trigger(id, name string, fn func(*spin.Session) bool) (bool, spin.Snapshot, error) {
	s, err := uc.GetSession(id)
	if err != nil {
		return false, spin.Snapshot{}, err
	}
	accepted := fn(s)
	if !accepted {
		metrics.Rejected(s.Wheel().ID(), name)
		uc.log.Debugf("trigger ignored: session=%s trigger=%s", id, name)
	}
	return accepted, s.Snapshot(), nil
}

// CloseSession 关闭会话并断开订阅
func (uc *UseCase) CloseSession(id string) error {
	if _, ok := uc.sessions.Remove(id); !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	uc.hub.CloseSession(id)
	uc.log.Infof("session closed: id=%s", id)
	return nil
}

// Subscribe 订阅会话事件，返回的 cancel 必须调用
func (uc *UseCase) Subscribe(id string) (<-chan spin.Event, func(), error) {
	if _, err := uc.GetSession(id); err != nil {
		return nil, nil, err
	}
	ch, cancel := uc.hub.Subscribe(id)
	return ch, cancel, nil
}

func (uc *UseCase) onExpired(expired []*spin.Session) {
	for _, s := range expired {
		uc.hub.CloseSession(s.ID())
		metrics.Expired(s.Wheel().ID())
	}
}

// onReveal 神秘盒揭晓后异步通知
func (uc *UseCase) onReveal(w *wheel.Wheel, e spin.Event) {
	if e.Kind != spin.EventReveal || e.Reveal == nil || e.Reveal.Phase != reveal.PhaseReveal {
		return
	}
	msg := notify.BuildRevealMessage(&notify.RevealReport{
		SessionID: e.SessionID,
		WheelID:   w.ID(),
		WheelName: w.Name(),
		Spin:      e.Spin,
		Value:     e.Reveal.Value,
		At:        time.Now(),
	})
	err := uc.notifiers.Submit(func() {
		ctx, cancel := context.WithTimeout(uc.ctx, notifyTimeout)
		defer cancel()
		if err := uc.notify.Send(ctx, msg); err != nil {
			uc.log.Warnf("notify reveal: %v", err)
		}
	})
	if err != nil {
		uc.log.Warnf("notify reveal dropped: %v", err)
	}
}

func wheelOverrides(items []*conf.WheelTable) ([]wheel.Override, error) {
	out := make([]wheel.Override, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		o := wheel.Override{
			ID:       it.Id,
			Name:     it.Name,
			Duration: it.Duration.AsDuration(),
			Catalog:  it.Catalog,
		}
		for _, r := range it.Rewards {
			if r == nil {
				continue
			}
			cat, err := reward.ParseCategory(r.Category)
			if err != nil {
				return nil, fmt.Errorf("wheel %q reward %d: %w", it.Id, r.Id, err)
			}
			o.Rewards = append(o.Rewards, reward.Reward{
				ID:       r.Id,
				Name:     r.Name,
				Image:    r.Image,
				Chance:   r.Chance,
				Category: cat,
			})
		}
		out = append(out, o)
	}
	return out, nil
}

func durationOr(d *conf.Duration, def time.Duration) time.Duration {
	if v := d.AsDuration(); v > 0 {
		return v
	}
	return def
}
