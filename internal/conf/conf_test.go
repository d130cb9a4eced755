package conf

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
)

func TestDurationUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{`"16ms"`, 16 * time.Millisecond},
		{`"5.5s"`, 5500 * time.Millisecond},
		{`"1000"`, time.Microsecond},
		{`2000000`, 2 * time.Millisecond},
	}
	for _, c := range cases {
		var d Duration
		if err := jsoniter.Unmarshal([]byte(c.in), &d); err != nil {
			t.Fatalf("%s: %v", c.in, err)
		}
		if d.Duration != c.want {
			t.Errorf("%s: got %v want %v", c.in, d.Duration, c.want)
		}
	}

	var bad Duration
	if err := jsoniter.Unmarshal([]byte(`"soon"`), &bad); err == nil {
		t.Errorf("非法时长应报错")
	}
}

func TestBootstrapScan(t *testing.T) {
	raw := `{
		"server": {"http": {"addr": "0.0.0.0:8000", "timeout": "30s"}},
		"wheel": {"frame_interval": "16ms", "worker_pool_size": 64,
			"wheels": [{"id": "classic", "rewards": [{"id": 1, "name": "$1.00", "chance": 1}]}]},
		"notify": {"enabled": false}
	}`
	var bc Bootstrap
	if err := jsoniter.Unmarshal([]byte(raw), &bc); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if got := bc.Server.Http.Timeout.AsDuration(); got != 30*time.Second {
		t.Errorf("http timeout = %v", got)
	}
	if got := bc.Wheel.FrameInterval.AsDuration(); got != 16*time.Millisecond {
		t.Errorf("frame interval = %v", got)
	}
	if len(bc.Wheel.Wheels) != 1 || bc.Wheel.Wheels[0].Rewards[0].Chance != 1 {
		t.Errorf("wheels = %+v", bc.Wheel.Wheels)
	}
	if bc.Server.Grpc != nil {
		t.Errorf("grpc 未配置应为 nil")
	}
	var nilDur *Duration
	if nilDur.AsDuration() != 0 {
		t.Errorf("nil duration 应为 0")
	}
}
