package conf

import (
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Bootstrap 启动配置根节点，对应 configs/config.yaml
type Bootstrap struct {
	Server *Server `json:"server"`
	Log    *Log    `json:"log"`
	Wheel  *Wheel  `json:"wheel"`
	Notify *Notify `json:"notify"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
	Grpc *Server_GRPC `json:"grpc"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

type Server_GRPC struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

// Log 日志配置，Mode: 0=dev 1=prod
type Log struct {
	Mode   int32  `json:"mode"`
	Level  string `json:"level"`
	App    string `json:"app"`
	Dir    string `json:"dir"`
	File   bool   `json:"file"`
	Format string `json:"format"` // console | json

	MaxSizeMb  int32 `json:"max_size_mb"`
	MaxBackups int32 `json:"max_backups"`
	MaxAgeDays int32 `json:"max_age_days"`
}

// Wheel 转盘会话宿主配置
type Wheel struct {
	FrameInterval  *Duration     `json:"frame_interval"`
	ReducedMotion  bool          `json:"reduced_motion"`
	SessionIdleTtl *Duration     `json:"session_idle_ttl"`
	SweepInterval  *Duration     `json:"sweep_interval"`
	WorkerPoolSize int32         `json:"worker_pool_size"`
	Wheels         []*WheelTable `json:"wheels"`
}

// WheelTable 覆盖内置转盘的奖励表/隐藏奖池/时长，按 id 匹配
type WheelTable struct {
	Id       string        `json:"id"`
	Name     string        `json:"name"`
	Duration *Duration     `json:"duration"`
	Rewards  []*RewardItem `json:"rewards"`
	Catalog  []string      `json:"catalog"`
}

type RewardItem struct {
	Id       int64   `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Chance   float64 `json:"chance"`
	Category string  `json:"category"`
}

type Notify struct {
	Enabled       bool   `json:"enabled"`
	WebhookUrl    string `json:"webhook_url"`
	SigningSecret string `json:"signing_secret"`
	Prefix        string `json:"prefix"`
}

func (x *Notify) GetWebhookUrl() string {
	if x != nil {
		return x.WebhookUrl
	}
	return ""
}

func (x *Notify) GetSigningSecret() string {
	if x != nil {
		return x.SigningSecret
	}
	return ""
}

func (x *Notify) GetPrefix() string {
	if x != nil {
		return x.Prefix
	}
	return ""
}

// Duration 配置中的时长，支持 "5s"、"16ms" 或纳秒整数
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := jsoniter.Unmarshal(b, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case float64:
		d.Duration = time.Duration(val)
	case string:
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			d.Duration = time.Duration(n)
			return nil
		}
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("conf: invalid duration %q: %w", val, err)
		}
		d.Duration = parsed
	case nil:
		d.Duration = 0
	default:
		return fmt.Errorf("conf: invalid duration %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(d.String())
}

// AsDuration nil 安全
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}
