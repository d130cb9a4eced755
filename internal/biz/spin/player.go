package spin

import "context"

// 媒体资源
const (
	CueTick     = "tick"
	CueWin      = "win"
	CueVideo    = "reveal_video"
	WinSound    = "/gamewin.mp3"
	RevealVideo = "/The_box_opens.mp4"
)

// Player 播放端口，实现不得阻塞；返回的错误只记录不传播
type Player interface {
	PlayTick(ctx context.Context, sessionID string, pitch float64) error
	PlayWin(ctx context.Context, sessionID string) error
	PlayRevealVideo(ctx context.Context, sessionID string) error
}

// NoopPlayer 静音
type NoopPlayer struct{}

func (NoopPlayer) PlayTick(context.Context, string, float64) error { return nil }
func (NoopPlayer) PlayWin(context.Context, string) error            { return nil }
func (NoopPlayer) PlayRevealVideo(context.Context, string) error    { return nil }

// Runner 异步执行器，*ants.Pool 直接满足
type Runner interface {
	Submit(task func()) error
}

type goRunner struct{}

func (goRunner) Submit(task func()) error {
	go task()
	return nil
}
