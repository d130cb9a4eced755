package data

import (
	"context"

	"spinwheel/internal/biz"
	"spinwheel/internal/biz/spin"
)

// cuePlayer 把播放请求转成 cue 事件推给客户端，由客户端真正发声
type cuePlayer struct {
	hub biz.EventHub
}

// NewCuePlayer .
func NewCuePlayer(h biz.EventHub) spin.Player {
	return &cuePlayer{hub: h}
}

func (p *cuePlayer) publish(ctx context.Context, sessionID string, cue spin.Cue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.hub.Publish(spin.Event{Kind: spin.EventCue, SessionID: sessionID, Cue: &cue})
	return nil
}

func (p *cuePlayer) PlayTick(ctx context.Context, sessionID string, pitch float64) error {
	return p.publish(ctx, sessionID, spin.Cue{Name: spin.CueTick, Pitch: pitch})
}

func (p *cuePlayer) PlayWin(ctx context.Context, sessionID string) error {
	return p.publish(ctx, sessionID, spin.Cue{Name: spin.CueWin, Src: spin.WinSound})
}

func (p *cuePlayer) PlayRevealVideo(ctx context.Context, sessionID string) error {
	return p.publish(ctx, sessionID, spin.Cue{Name: spin.CueVideo, Src: spin.RevealVideo})
}
