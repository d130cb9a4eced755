package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelWheel     = "wheel"
	labelPhase     = "phase"
	labelReward    = "reward"
	labelCategory  = "category"
	labelValue     = "value"
	labelTrigger   = "trigger"
	reportInterval = 10 * time.Second
)

// 指标名规范：spinwheel_<name>，标签 wheel

var (
	sessions      = newGauge("spinwheel_sessions", "会话数（按阶段）", labelWheel, labelPhase)
	revealPending = newGauge("spinwheel_reveal_pending", "等待开箱/视频播放中的会话数", labelWheel)

	spins         = newCounter("spinwheel_spins_total", "完成的旋转次数", labelWheel)
	outcomes      = newCounter("spinwheel_outcomes_total", "各奖励命中次数", labelWheel, labelReward, labelCategory)
	reveals       = newCounter("spinwheel_mystery_reveals_total", "神秘盒揭晓次数", labelWheel, labelValue)
	rejected      = newCounter("spinwheel_triggers_rejected_total", "被忽略的触发", labelWheel, labelTrigger)
	expired       = newCounter("spinwheel_sessions_expired_total", "空闲回收的会话", labelWheel)
	spinDurations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "spinwheel_spin_duration_seconds",
		Help:    "旋转从请求到停止的耗时",
		Buckets: []float64{0.1, 1, 3, 5, 5.5, 6, 8, 12},
	}, []string{labelWheel})
)

func newGauge(name, help string, labels ...string) *prometheus.GaugeVec {
	return promauto.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labels)
}

func newCounter(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
}

func set(g *prometheus.GaugeVec, labels prometheus.Labels, v float64) {
	g.With(labels).Set(v)
}

func inc(c *prometheus.CounterVec, labels prometheus.Labels) {
	c.With(labels).Inc()
}
