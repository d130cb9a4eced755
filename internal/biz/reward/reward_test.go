package reward

import (
	"errors"
	"math"
	"testing"
)

func TestNewTable(t *testing.T) {
	if _, err := NewTable(nil); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("空表应返回 ErrEmptyTable, got %v", err)
	}
	for _, c := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewTable([]Reward{{ID: 1, Name: "x", Chance: c}})
		if !errors.Is(err, ErrInvalidChance) {
			t.Errorf("chance=%v 应报错, got %v", c, err)
		}
	}

	src := []Reward{{ID: 1, Name: "A", Chance: 50}, {ID: 2, Name: "B", Chance: 50}}
	tb, err := NewTable(src)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	src[0].Name = "changed"
	if tb.At(0).Name != "A" {
		t.Errorf("表应拷贝输入")
	}
	all := tb.All()
	all[1].Name = "changed"
	if tb.At(1).Name != "B" {
		t.Errorf("All 应返回副本")
	}
	if tb.Total() != 100 || tb.Probability(1) != 0.5 {
		t.Errorf("total=%v p=%v", tb.Total(), tb.Probability(1))
	}
	if tb.IndexOf(2) != 1 || tb.IndexOf(99) != -1 {
		t.Errorf("IndexOf 错误")
	}
}

func TestMysteryDetection(t *testing.T) {
	tb, err := NewTable([]Reward{
		{ID: 1, Name: "$1.00", Chance: 1},
		{ID: 2, Name: MysteryName, Chance: 8},
		{ID: 3, Name: MysteryName, Chance: 4},
		{ID: 4, Name: "Golden Chest", Chance: 1, Category: CategoryMystery},
		{ID: 5, Name: "mystery box", Chance: 1},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	want := []bool{false, true, true, true, false}
	for i, w := range want {
		if got := tb.At(i).IsMystery(); got != w {
			t.Errorf("entry %d (%s) IsMystery=%v want %v", i, tb.At(i).Name, got, w)
		}
	}
}

func TestDefaults(t *testing.T) {
	tb := DefaultTable()
	if tb.Len() != 10 {
		t.Fatalf("默认表应为 10 项, got %d", tb.Len())
	}
	if tb.Total() != 100 {
		t.Errorf("默认权重和 = %v", tb.Total())
	}
	var mystery int
	for _, r := range tb.All() {
		if r.IsMystery() {
			mystery++
		}
	}
	if mystery != 2 {
		t.Errorf("默认表应有两个神秘盒, got %d", mystery)
	}
	c := DefaultCatalog()
	c[0] = "changed"
	if DefaultCatalog()[0] != "$5.00" || len(c) != 7 {
		t.Errorf("DefaultCatalog 应返回副本")
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{"": CategoryUnknown, "cash": CategoryCash, " Mystery ": CategoryMystery}
	for in, want := range cases {
		got, err := ParseCategory(in)
		if err != nil || got != want {
			t.Errorf("ParseCategory(%q)=%v,%v", in, got, err)
		}
	}
	if _, err := ParseCategory("gem"); err == nil {
		t.Errorf("未知分类应报错")
	}
}
