package data

import (
	"spinwheel/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewEventHub, NewCuePlayer)

// 每个订阅者的缓冲帧数，约 1 秒的 60Hz 帧
const defaultSubscriberBuffer = 64

// Data 进程内数据资源：会话事件总线
type Data struct {
	hub *hub
}

// NewData .
func NewData(c *conf.Wheel, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(logger)
	h := newHub(defaultSubscriberBuffer, logger)
	cleanup := func() {
		n := h.closeAll()
		l.Infof("closing the data resources, dropped %d subscribers, %d events", n, h.Dropped())
	}
	return &Data{hub: h}, cleanup, nil
}
