package selector

import (
	"math"
	"testing"

	"spinwheel/internal/biz/reward"
)

func mustTable(t *testing.T, entries []reward.Reward) *reward.Table {
	t.Helper()
	tb, err := reward.NewTable(entries)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tb
}

func TestSelectDeterministic(t *testing.T) {
	tb := mustTable(t, []reward.Reward{{ID: 1, Name: "A", Chance: 50}, {ID: 2, Name: "B", Chance: 50}})
	cases := []struct {
		draw float64
		want int64
	}{
		{0, 1},
		{0.3, 1},
		{0.5, 1}, // r 恰好减到 0 时命中当前项
		{0.9, 2},
		{0.999999, 2},
	}
	for _, c := range cases {
		idx, got := Select(tb, &scriptedRNG{floats: []float64{c.draw}})
		if got.ID != c.want || tb.At(idx).ID != c.want {
			t.Errorf("draw=%v got id=%d idx=%d want %d", c.draw, got.ID, idx, c.want)
		}
	}
}

func TestSelectFallbackToLast(t *testing.T) {
	entries := []reward.Reward{{ID: 1, Chance: 0.1}, {ID: 2, Chance: 0.2}, {ID: 3, Chance: 0.3}}
	// 超出 [0,1) 的随机值模拟累减的浮点误差
	idx, got := SelectFrom(entries, &scriptedRNG{floats: []float64{1.0000001}})
	if idx != 2 || got.ID != 3 {
		t.Errorf("应兜底为最后一项, got idx=%d id=%d", idx, got.ID)
	}
}

func TestSelectEmpty(t *testing.T) {
	if idx, _ := SelectFrom(nil, &scriptedRNG{}); idx != -1 {
		t.Errorf("空切片应返回 -1, got %d", idx)
	}
	if idx, _ := Select(nil, &scriptedRNG{}); idx != -1 {
		t.Errorf("nil 表应返回 -1, got %d", idx)
	}
}

func TestSelectDistribution(t *testing.T) {
	const rounds = 200_000
	const tolerance = 0.005

	tb := reward.DefaultTable()
	rng := NewRNG(20240601)
	counts := make([]int, tb.Len())
	for i := 0; i < rounds; i++ {
		idx, _ := Select(tb, rng)
		counts[idx]++
	}
	for i, n := range counts {
		got := float64(n) / rounds
		want := tb.Probability(i)
		if math.Abs(got-want) > tolerance {
			t.Errorf("entry %d (%s): freq %.4f want %.4f", i, tb.At(i).Name, got, want)
		}
	}
}

func TestPick(t *testing.T) {
	pool := reward.DefaultCatalog()
	if got := Pick(pool, &scriptedRNG{ints: []int{6}}); got != "$500.00" {
		t.Errorf("Pick got %q", got)
	}
	if got := Pick(nil, &scriptedRNG{}); got != "" {
		t.Errorf("空池应返回空串, got %q", got)
	}

	seen := make(map[string]int)
	rng := NewRNG(7)
	for i := 0; i < 7000; i++ {
		seen[Pick(pool, rng)]++
	}
	for _, v := range pool {
		if seen[v] < 800 {
			t.Errorf("%s 抽中次数过少: %d", v, seen[v])
		}
	}
}
