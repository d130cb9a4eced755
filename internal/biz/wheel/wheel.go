package wheel

import (
	"time"

	"spinwheel/internal/biz/animation"
	"spinwheel/internal/biz/geometry"
	"spinwheel/internal/biz/reward"
)

// Wheel 一种转盘：奖励表 + 落点约定 + 缓动曲线，构造后只读
type Wheel struct {
	id       string
	name     string
	style    geometry.Style
	easing   animation.Easing
	duration time.Duration
	table    *reward.Table
	catalog  []string
}

// New 创建转盘，table/catalog 为空时使用默认值
func New(id, name string, style geometry.Style, easing animation.Easing, table *reward.Table, catalog []string) *Wheel {
	if table == nil {
		table = reward.DefaultTable()
	}
	if len(catalog) == 0 {
		catalog = reward.DefaultCatalog()
	}
	return &Wheel{
		id:       id,
		name:     name,
		style:    style,
		easing:   easing,
		duration: animation.DefaultDuration,
		table:    table,
		catalog:  append([]string(nil), catalog...),
	}
}

func (w *Wheel) ID() string { return w.id }

func (w *Wheel) Name() string { return w.name }

func (w *Wheel) Style() geometry.Style { return w.style }

func (w *Wheel) Easing() animation.Easing { return w.easing }

func (w *Wheel) Duration() time.Duration { return w.duration }

func (w *Wheel) Table() *reward.Table { return w.table }

func (w *Wheel) Catalog() []string { return append([]string(nil), w.catalog...) }

// Plan 一次旋转的时间线输入
func (w *Wheel) Plan(start, target float64) animation.Plan {
	return animation.Plan{
		Start:    start,
		Target:   target,
		Duration: w.duration,
		Segments: w.table.Len(),
		Style:    w.style,
		Easing:   w.easing,
	}
}

// Override 配置覆盖项，零值字段保持原样
type Override struct {
	ID       string
	Name     string
	Duration time.Duration
	Rewards  []reward.Reward
	Catalog  []string
}

// With 返回应用覆盖后的新转盘
func (w *Wheel) With(o Override) (*Wheel, error) {
	cp := *w
	if o.Name != "" {
		cp.name = o.Name
	}
	if o.Duration > 0 {
		cp.duration = o.Duration
	}
	if len(o.Rewards) > 0 {
		t, err := reward.NewTable(o.Rewards)
		if err != nil {
			return nil, err
		}
		cp.table = t
	}
	if len(o.Catalog) > 0 {
		cp.catalog = append([]string(nil), o.Catalog...)
	}
	return &cp, nil
}
