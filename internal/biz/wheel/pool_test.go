package wheel

import (
	"errors"
	"testing"
	"time"

	"spinwheel/internal/biz/geometry"
	"spinwheel/internal/biz/reward"
)

func TestBuiltins(t *testing.T) {
	p, err := NewPool()
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	list := p.List()
	if len(list) != 2 || list[0].ID() != ClassicID || list[1].ID() != CylinderID {
		t.Fatalf("内置转盘列表错误: %v", list)
	}
	classic, _ := p.Get(ClassicID)
	if classic.Style().Kind != geometry.KindPointer || classic.Table().Len() != 10 {
		t.Errorf("classic 配置错误")
	}
	cyl, _ := p.Get(CylinderID)
	if cyl.Style().Kind != geometry.KindDrum || cyl.Duration() != 5500*time.Millisecond {
		t.Errorf("cylinder 配置错误")
	}
	if _, ok := p.Get("nope"); ok {
		t.Errorf("未知 id 不应命中")
	}
}

func TestOverride(t *testing.T) {
	p, err := NewPool(Override{
		ID:       ClassicID,
		Name:     "Promo",
		Duration: 3 * time.Second,
		Rewards:  []reward.Reward{{ID: 1, Name: "A", Chance: 50}, {ID: 2, Name: "B", Chance: 50}},
		Catalog:  []string{"$1.00"},
	})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	w, _ := p.Get(ClassicID)
	if w.Name() != "Promo" || w.Duration() != 3*time.Second || w.Table().Len() != 2 || len(w.Catalog()) != 1 {
		t.Errorf("覆盖未生效: %s %v %d %v", w.Name(), w.Duration(), w.Table().Len(), w.Catalog())
	}
	plan := w.Plan(1, 2)
	if plan.Segments != 2 || plan.Duration != 3*time.Second || plan.Style.Kind != geometry.KindPointer {
		t.Errorf("plan=%+v", plan)
	}

	if _, err := NewPool(Override{ID: "nope"}); err == nil {
		t.Errorf("未知 id 覆盖应报错")
	}
	_, err = NewPool(Override{ID: CylinderID, Rewards: []reward.Reward{{ID: 1, Chance: 0}}})
	if !errors.Is(err, reward.ErrInvalidChance) {
		t.Errorf("非法权重应报错, got %v", err)
	}
}
