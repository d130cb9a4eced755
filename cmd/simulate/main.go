package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"spinwheel/internal/biz/animation"
	"spinwheel/internal/biz/selector"
	"spinwheel/internal/biz/wheel"
	"spinwheel/pkg/xgo"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/sync/errgroup"
)

type options struct {
	wheelID string
	spins   int
	workers int
	seed    uint64
	frames  bool
	json    bool
}

// rewardStat 单个奖项的统计
type rewardStat struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Expected float64 `json:"expected_pct"`
	Observed float64 `json:"observed_pct"`
	Hits     int64   `json:"hits"`
}

type report struct {
	Wheel      string        `json:"wheel"`
	Spins      int64         `json:"spins"`
	Mismatches int64         `json:"mismatches"`
	AvgTicks   float64       `json:"avg_ticks,omitempty"`
	Elapsed    string        `json:"elapsed"`
	PerSpin    string        `json:"per_spin"`
	Rewards    []*rewardStat `json:"rewards"`
}

func main() {
	var opts options
	flag.StringVar(&opts.wheelID, "wheel", wheel.ClassicID, "wheel id: classic | cylinder")
	flag.IntVar(&opts.spins, "spins", 100000, "total spins")
	flag.IntVar(&opts.workers, "workers", 8, "concurrent workers")
	flag.Uint64Var(&opts.seed, "seed", 0, "base seed, 0 = random")
	flag.BoolVar(&opts.frames, "frames", false, "sample every frame and count ticks")
	flag.BoolVar(&opts.json, "json", false, "print report as json")
	flag.Parse()

	pool, err := wheel.NewPool()
	if err != nil {
		log.Fatalf("wheel pool: %v", err)
	}
	w, ok := pool.Get(opts.wheelID)
	if !ok {
		log.Errorf("unknown wheel %q", opts.wheelID)
		os.Exit(2)
	}

	rep, err := simulate(context.Background(), w, opts)
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}
	if opts.json {
		fmt.Println(xgo.ToJSONPretty(rep))
		return
	}
	printReport(rep)
}

// simulate 每个 worker 独立 RNG，结果按下标累加
func simulate(ctx context.Context, w *wheel.Wheel, opts options) (*report, error) {
	if opts.workers < 1 {
		opts.workers = 1
	}
	n := w.Table().Len()
	hits := make([]atomic.Int64, n)
	var mismatches, ticks, done atomic.Int64

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)
	per := opts.spins / opts.workers
	for i := 0; i < opts.workers; i++ {
		count := per
		if i == opts.workers-1 {
			count = opts.spins - per*(opts.workers-1)
		}
		seed := opts.seed
		if seed != 0 {
			seed += uint64(i)
		}
		g.Go(func() error {
			rng := selector.NewRNG(seed)
			angle := 0.0
			for j := 0; j < count; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				idx, _ := selector.Select(w.Table(), rng)
				target := w.Style().TargetAngle(idx, n, angle, rng)
				tl := animation.NewTimeline(w.Plan(angle, target))

				var final animation.Frame
				if opts.frames {
					var c int64
					final, c = sampleAll(tl)
					ticks.Add(c)
				} else {
					final = tl.Final()
				}
				if final.Segment != idx {
					mismatches.Add(1)
				}
				hits[idx].Add(1)
				done.Add(1)
				angle = final.Angle
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	total := done.Load()
	rep := &report{
		Wheel:      w.ID(),
		Spins:      total,
		Mismatches: mismatches.Load(),
		Elapsed:    xgo.ShortDuration(elapsed),
		PerSpin:    xgo.AvgDuration(elapsed, total),
	}
	if opts.frames && total > 0 {
		rep.AvgTicks = float64(ticks.Load()) / float64(total)
	}
	for i, r := range w.Table().All() {
		h := hits[i].Load()
		rep.Rewards = append(rep.Rewards, &rewardStat{
			Index:    i,
			Name:     r.Name,
			Expected: w.Table().Probability(i) * 100,
			Observed: xgo.Pct(h, total),
			Hits:     h,
		})
	}
	return rep, nil
}

// sampleAll 按默认帧间隔逐帧采样，返回终帧并累加越界次数
func sampleAll(tl *animation.Timeline) (animation.Frame, int64) {
	var crossings int64
	for elapsed := time.Duration(0); ; elapsed += animation.DefaultFrameInterval {
		f := tl.Sample(elapsed)
		if f.Crossing != nil {
			crossings++
		}
		if f.Final {
			return f, crossings
		}
	}
}

func printReport(rep *report) {
	fmt.Printf("wheel=%s spins=%d mismatches=%d elapsed=%s per_spin=%s\n",
		rep.Wheel, rep.Spins, rep.Mismatches, rep.Elapsed, rep.PerSpin)
	if rep.AvgTicks > 0 {
		fmt.Printf("avg ticks per spin: %.1f\n", rep.AvgTicks)
	}
	fmt.Printf("%-3s %-12s %10s %10s %10s\n", "#", "reward", "expected", "observed", "hits")
	for _, s := range rep.Rewards {
		fmt.Printf("%-3d %-12s %9.2f%% %9.2f%% %10d\n", s.Index, s.Name, s.Expected, s.Observed, s.Hits)
	}
}
