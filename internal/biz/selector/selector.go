package selector

import (
	"math/rand/v2"
	"time"

	"spinwheel/internal/biz/reward"
)

// RNG 均匀随机源，*rand.Rand 直接满足
type RNG interface {
	Float64() float64
	IntN(n int) int
}

var _ RNG = (*rand.Rand)(nil)

// NewRNG seed 为 0 时按当前时间播种
func NewRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Select 按权重抽取，返回扇区下标与奖励
func Select(t *reward.Table, rng RNG) (int, reward.Reward) {
	if t == nil || t.Len() == 0 {
		return -1, reward.Reward{}
	}
	r := rng.Float64() * t.Total()
	for i := 0; i < t.Len(); i++ {
		r -= t.At(i).Chance
		if r <= 0 {
			return i, t.At(i)
		}
	}
	// 浮点误差兜底
	last := t.Len() - 1
	return last, t.At(last)
}

// SelectFrom 对未建表的切片做同样的累减抽取，空切片返回 -1
func SelectFrom(entries []reward.Reward, rng RNG) (int, reward.Reward) {
	if len(entries) == 0 {
		return -1, reward.Reward{}
	}
	var total float64
	for _, e := range entries {
		total += e.Chance
	}
	r := rng.Float64() * total
	for i, e := range entries {
		r -= e.Chance
		if r <= 0 {
			return i, e
		}
	}
	return len(entries) - 1, entries[len(entries)-1]
}

// Pick 从字符串池中均匀抽取，空池返回 ""
func Pick(pool []string, rng RNG) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.IntN(len(pool))]
}
