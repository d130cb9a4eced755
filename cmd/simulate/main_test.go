package main

import (
	"context"
	"testing"

	"spinwheel/internal/biz/wheel"
)

func TestSimulateLandsOnSelected(t *testing.T) {
	pool, err := wheel.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range pool.List() {
		rep, err := simulate(context.Background(), w, options{spins: 2000, workers: 4, seed: 7})
		if err != nil {
			t.Fatalf("%s: %v", w.ID(), err)
		}
		if rep.Spins != 2000 || rep.Mismatches != 0 {
			t.Errorf("%s: spins=%d mismatches=%d", w.ID(), rep.Spins, rep.Mismatches)
		}
		var hits int64
		for _, s := range rep.Rewards {
			hits += s.Hits
		}
		if hits != rep.Spins {
			t.Errorf("%s: hits=%d, want %d", w.ID(), hits, rep.Spins)
		}
	}
}

func TestSimulateFrames(t *testing.T) {
	pool, _ := wheel.NewPool()
	w, _ := pool.Get(wheel.CylinderID)
	rep, err := simulate(context.Background(), w, options{spins: 20, workers: 3, seed: 1, frames: true})
	if err != nil {
		t.Fatal(err)
	}
	// 至少转 5 圈，每圈 n 次越界
	if min := float64(5 * w.Table().Len()); rep.AvgTicks < min-1 {
		t.Errorf("avg ticks=%.1f, want >= %.0f", rep.AvgTicks, min-1)
	}
	if rep.Mismatches != 0 {
		t.Errorf("mismatches=%d", rep.Mismatches)
	}
}
