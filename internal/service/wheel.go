package service

import (
	"context"
	"errors"

	v1 "spinwheel/api/spinwheel/v1"
	"spinwheel/internal/biz"
	"spinwheel/internal/biz/reward"
	"spinwheel/internal/biz/spin"
	"spinwheel/internal/biz/wheel"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewWheelService)

// WheelService 转盘会话服务
type WheelService struct {
	v1.UnimplementedWheelServiceServer
	uc  *biz.UseCase
	log *log.Helper
}

// NewWheelService new a wheel service.
func NewWheelService(uc *biz.UseCase, logger log.Logger) *WheelService {
	return &WheelService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

// ListWheels 转盘列表
func (s *WheelService) ListWheels(ctx context.Context, in *v1.ListWheelsRequest) (*v1.ListWheelsReply, error) {
	all := s.uc.ListWheels()
	wheels := make([]*v1.WheelInfo, len(all))
	for i, w := range all {
		wheels[i] = buildWheel(w)
	}
	return &v1.ListWheelsReply{Wheels: wheels, Total: int32(len(wheels))}, nil
}

// CreateSession 创建会话
func (s *WheelService) CreateSession(ctx context.Context, in *v1.CreateSessionRequest) (*v1.SessionReply, error) {
	sess, err := s.uc.CreateSession(in.GetWheelId(), in.ReducedMotion)
	if err != nil {
		s.log.Warnf("CreateSession failed: %v", err)
		return nil, toError(err)
	}
	return &v1.SessionReply{Session: buildSession(sess.Snapshot())}, nil
}

// GetSession 会话详情
func (s *WheelService) GetSession(ctx context.Context, in *v1.SessionRequest) (*v1.SessionReply, error) {
	sess, err := s.uc.GetSession(in.GetId())
	if err != nil {
		return nil, toError(err)
	}
	return &v1.SessionReply{Session: buildSession(sess.Snapshot())}, nil
}

// ListSessions 会话列表
func (s *WheelService) ListSessions(ctx context.Context, in *v1.ListSessionsRequest) (*v1.ListSessionsReply, error) {
	all := s.uc.ListSessions()
	out := make([]*v1.Session, len(all))
	for i, sess := range all {
		out[i] = buildSession(sess.Snapshot())
	}
	return &v1.ListSessionsReply{Sessions: out, Total: int32(len(out))}, nil
}

// Spin 请求旋转
func (s *WheelService) Spin(ctx context.Context, in *v1.SessionRequest) (*v1.TriggerReply, error) {
	return triggerReply(s.uc.Spin(in.GetId()))
}

// SpinAgain 重置并再转
func (s *WheelService) SpinAgain(ctx context.Context, in *v1.SessionRequest) (*v1.TriggerReply, error) {
	return triggerReply(s.uc.SpinAgain(in.GetId()))
}

// OpenMysteryBox 打开神秘盒
func (s *WheelService) OpenMysteryBox(ctx context.Context, in *v1.SessionRequest) (*v1.TriggerReply, error) {
	return triggerReply(s.uc.OpenMysteryBox(in.GetId()))
}

// MediaEnded 开箱视频播放结束
func (s *WheelService) MediaEnded(ctx context.Context, in *v1.SessionRequest) (*v1.TriggerReply, error) {
	return triggerReply(s.uc.MediaEnded(in.GetId()))
}

// CloseSession 关闭会话
func (s *WheelService) CloseSession(ctx context.Context, in *v1.SessionRequest) (*v1.CloseSessionReply, error) {
	if err := s.uc.CloseSession(in.GetId()); err != nil {
		return nil, toError(err)
	}
	return &v1.CloseSessionReply{}, nil
}

func triggerReply(accepted bool, snap spin.Snapshot, err error) (*v1.TriggerReply, error) {
	if err != nil {
		return nil, toError(err)
	}
	return &v1.TriggerReply{Accepted: accepted, Session: buildSession(snap)}, nil
}

func buildWheel(w *wheel.Wheel) *v1.WheelInfo {
	t := w.Table()
	probs := make([]float64, t.Len())
	for i := range probs {
		probs[i] = t.Probability(i)
	}
	all := t.All()
	rewards := make([]*v1.Reward, len(all))
	for i, r := range all {
		rewards[i] = buildReward(r)
	}
	return &v1.WheelInfo{
		Id:            w.ID(),
		Name:          w.Name(),
		Style:         w.Style().Kind.String(),
		DurationMs:    w.Duration().Milliseconds(),
		Rewards:       rewards,
		Probabilities: probs,
		Catalog:       w.Catalog(),
	}
}

func buildReward(r reward.Reward) *v1.Reward {
	return &v1.Reward{
		Id:       r.ID,
		Name:     r.Name,
		Image:    r.Image,
		Chance:   r.Chance,
		Category: r.Category.String(),
	}
}

// buildSession 时间字段以毫秒时间戳输出；旋转中 Outcome 为空
func buildSession(snap spin.Snapshot) *v1.Session {
	out := &v1.Session{
		Id:            snap.ID,
		WheelId:       snap.WheelID,
		Phase:         snap.Phase.String(),
		Angle:         snap.Angle,
		Target:        snap.Target,
		Spins:         snap.Spins,
		Reveal:        &v1.Reveal{Phase: snap.Reveal.Phase.String(), Value: snap.Reveal.Value},
		ReducedMotion: snap.ReducedMotion,
		Closed:        snap.Closed,
		CreatedAt:     snap.CreatedAt.UnixMilli(),
		ActiveAt:      snap.ActiveAt.UnixMilli(),
	}
	if o := snap.Outcome; o != nil {
		out.Outcome = &v1.Outcome{
			Index:  int32(o.Index),
			Reward: buildReward(o.Reward),
			Angle:  o.Angle,
		}
	}
	return out
}

func toError(err error) error {
	switch {
	case errors.Is(err, biz.ErrSessionNotFound):
		return kerrors.NotFound("SESSION_NOT_FOUND", err.Error())
	case errors.Is(err, biz.ErrWheelNotFound):
		return kerrors.NotFound("WHEEL_NOT_FOUND", err.Error())
	default:
		return kerrors.InternalServer("INTERNAL", err.Error())
	}
}
