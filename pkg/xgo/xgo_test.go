package xgo

import (
	"strings"
	"testing"
	"time"
)

func TestShortDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{1500 * time.Microsecond, "1.50ms"},
		{5500 * time.Millisecond, "5.50s"},
		{90 * time.Second, "1.50m"},
		{36 * time.Hour, "1.50d"},
		{250 * time.Nanosecond, "250ns"},
	}
	for _, c := range cases {
		if got := ShortDuration(c.in); got != c.want {
			t.Errorf("ShortDuration(%v)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestAvgDuration(t *testing.T) {
	if got := AvgDuration(time.Second, 0); got != "0" {
		t.Errorf("step=0: %q", got)
	}
	if got := AvgDuration(time.Second, 4); got != "250ms" {
		t.Errorf("got %q", got)
	}
}

func TestPct(t *testing.T) {
	if Pct(1, 0) != 0 || Pct(1, 4) != 25 {
		t.Errorf("Pct: %v %v", Pct(1, 0), Pct(1, 4))
	}
}

func TestToJSON(t *testing.T) {
	if got := ToJSON(map[string]int{"spin": 1}); got != `{"spin":1}` {
		t.Errorf("ToJSON=%s", got)
	}
	if got := ToJSONPretty([]int{1}); !strings.Contains(got, "\n  1") {
		t.Errorf("ToJSONPretty=%q", got)
	}
	// 不可序列化的值返回错误串
	if got := ToJSON(make(chan int)); !strings.Contains(got, "unsupported") {
		t.Errorf("chan: %q", got)
	}
}

func TestRecoverFromError(t *testing.T) {
	var got any
	func() {
		defer RecoverFromError(func(e any) { got = e })
		panic("boom")
	}()
	if got != "boom" {
		t.Errorf("recovered %v", got)
	}
}
