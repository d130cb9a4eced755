package main

import (
	"flag"
	"os"
	"time"

	"spinwheel/internal/conf"
	"spinwheel/pkg/zap"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/grpc"
	"github.com/go-kratos/kratos/v2/transport/http"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	Name     = "spinwheel"
	Version  = "v0.0.1"
	flagconf string
	id, _    = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, eg: -conf config.yaml")

	time.Local = initLocation()
}

// initLocation 初始化时区，失败时使用UTC
func initLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		log.Warnf("无法加载 Asia/Shanghai 时区，使用 UTC: %v", err)
		return time.UTC
	}
	return loc
}

// logConfig 未配置 log 段时使用开发模式
func logConfig(c *conf.Log) *zap.Config {
	if c == nil {
		return &zap.Config{Mode: zap.Dev, Level: "info", App: Name}
	}
	return &zap.Config{
		Mode:   zap.Mode(c.Mode),
		Level:  c.Level,
		App:    c.App,
		Dir:    c.Dir,
		File:   c.File,
		Format: c.Format,

		MaxSizeMB:  int(c.MaxSizeMb),
		MaxBackups: int(c.MaxBackups),
		MaxAgeDays: int(c.MaxAgeDays),
	}
}

func newApp(logger log.Logger, gs *grpc.Server, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(
			gs,
			hs,
		),
	)
}

func main() {
	flag.Parse()

	log.Infof("Starting server. Name=%q, Version=%q", Name, Version)

	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}

	logger := zap.NewLoggerWithConfig(logConfig(bc.Log))
	defer logger.Sync()
	log.SetLogger(logger)

	// log.level 支持热更新
	if err := c.Watch("log.level", func(_ string, v config.Value) {
		lv, err := v.String()
		if err != nil {
			return
		}
		if err := logger.SetLevel(lv); err != nil {
			log.Warnf("set log level %q: %v", lv, err)
			return
		}
		log.Infof("log level changed to %s", lv)
	}); err != nil {
		log.Warnf("watch log.level: %v", err)
	}

	app, cleanup, err := wireApp(bc.Server, bc.Wheel, bc.Notify, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	// start and wait for stop signal
	if err := app.Run(); err != nil {
		panic(err)
	}
}
