package zap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFmt = "2006/01/02 15:04:05.000"

const (
	Dev Mode = iota
	Prod
)

type Mode int32

// 输出格式
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var ErrLevelFixed = errors.New("logger: level is not adjustable")

type Config struct {
	Mode   Mode
	Level  string
	App    string
	Dir    string
	File   bool
	Format string // console | json，只影响文件输出

	// 文件滚动，<=0 用默认值
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func (c *Config) rotation() (size, backups, age int) {
	size, backups, age = 100, 7, 10
	if c.MaxSizeMB > 0 {
		size = c.MaxSizeMB
	}
	if c.MaxBackups > 0 {
		backups = c.MaxBackups
	}
	if c.MaxAgeDays > 0 {
		age = c.MaxAgeDays
	}
	return
}

// Logger 把 kratos 的 keyvals 日志转给 zap，级别可在运行时调整
type Logger struct {
	log    *zap.Logger
	level  *zap.AtomicLevel
	msgKey string
}

var _ log.Logger = (*Logger)(nil)

type Option func(*Logger)

// WithMessageKey 指定哪个 key 作为消息正文，默认 msg
func WithMessageKey(key string) Option {
	return func(l *Logger) {
		l.msgKey = key
	}
}

func NewLogger(zapLogger *zap.Logger, opts ...Option) *Logger {
	l := &Logger{
		log:    zapLogger,
		msgKey: log.DefaultMessageKey,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewLoggerWithConfig 按配置构建，返回的 Logger 支持 SetLevel
func NewLoggerWithConfig(cfg *Config, opts ...Option) *Logger {
	zl, lv := build(cfg)
	l := NewLogger(zl, opts...)
	l.level = &lv
	return l
}

func NewZapLogger(cfg *Config) *zap.Logger {
	zl, _ := build(cfg)
	return zl
}

func (l *Logger) Log(level log.Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "!MISSING-VALUE")
	}

	msg := ""
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		if key == l.msgKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}
	if msg == "" {
		msg = "no message"
	}

	// Check 与 Info/Warn 等调用深度相同，caller skip 不变
	if ce := l.log.Check(zapLevel(level), msg); ce != nil {
		ce.Write(fields...)
	}
	return nil
}

// SetLevel 运行时切换级别，仅 NewLoggerWithConfig 创建的 Logger 支持
func (l *Logger) SetLevel(text string) error {
	if l.level == nil {
		return ErrLevelFixed
	}
	return l.level.UnmarshalText([]byte(text))
}

// Level 当前级别
func (l *Logger) Level() string {
	if l.level == nil {
		return ""
	}
	return l.level.String()
}

func (l *Logger) Sync() error {
	return l.log.Sync()
}

func (l *Logger) ZapLogger() *zap.Logger {
	return l.log
}

func zapLevel(lv log.Level) zapcore.Level {
	switch lv {
	case log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelWarn:
		return zapcore.WarnLevel
	case log.LevelError:
		return zapcore.ErrorLevel
	case log.LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// build 控制台一路 + 可选的文件两路（全量、error 单独一份）
func build(cfg *Config) (*zap.Logger, zap.AtomicLevel) {
	if cfg == nil {
		_, _ = fmt.Fprintln(os.Stderr, "logger: using default development logger with nil config")
		cfg = &Config{Mode: Dev, Level: "debug"}
	}
	if cfg.App == "" {
		cfg.App = "app"
	}
	lv := zap.NewAtomicLevel()
	if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
		lv.SetLevel(zapcore.DebugLevel)
		_, _ = fmt.Fprintf(os.Stderr, "logger: invalid log level %q, defaulting to DEBUG\n", cfg.Level)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg(true)), zapcore.Lock(os.Stdout), lv),
	}
	if cfg.File || cfg.Mode == Prod {
		name := filepath.Join(cfg.Dir, cfg.App)
		cores = append(cores,
			fileCore(cfg, name+".log", lv),
			fileCore(cfg, name+"_error.log", zap.ErrorLevel),
		)
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(2)), lv
}

func fileCore(cfg *Config, file string, lv zapcore.LevelEnabler) zapcore.Core {
	size, backups, age := cfg.rotation()
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    size,
		MaxBackups: backups,
		MaxAge:     age,
		Compress:   true,
	}
	return zapcore.NewCore(fileEncoder(cfg.Format), zapcore.AddSync(w), lv)
}

func fileEncoder(format string) zapcore.Encoder {
	if format == FormatJSON {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(ec)
	}
	return zapcore.NewConsoleEncoder(encCfg(false))
}

func encCfg(color bool) zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + t.Format(timeFmt) + "]")
	}
	ec.ConsoleSeparator = " "
	ec.EncodeCaller = zapcore.ShortCallerEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return ec
}
