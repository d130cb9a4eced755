package service

import (
	"fmt"
	nethttp "net/http"

	"spinwheel/pkg/xgo"

	"github.com/go-kratos/kratos/v2/transport/http"
)

// 客户端断线重连间隔（毫秒）
const sseRetryMillis = 2000

// StreamEvents 以 Server-Sent Events 推送会话事件：先推一次快照，然后逐条转发
func (s *WheelService) StreamEvents(ctx http.Context) error {
	id := ctx.Vars().Get("id")
	sess, err := s.uc.GetSession(id)
	if err != nil {
		return toError(err)
	}
	events, cancel, err := s.uc.Subscribe(id)
	if err != nil {
		return toError(err)
	}
	defer cancel()

	w := ctx.Response()
	flusher, ok := w.(nethttp.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}
	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	w.WriteHeader(nethttp.StatusOK)

	fmt.Fprintf(w, "retry: %d\n\n", sseRetryMillis)
	writeSSE(w, "snapshot", sess.Snapshot())
	flusher.Flush()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case e, ok := <-events:
			if !ok {
				writeSSE(w, "closed", map[string]string{"session_id": id})
				flusher.Flush()
				return nil
			}
			writeSSE(w, string(e.Kind), e)
			flusher.Flush()
		}
	}
}

func writeSSE(w nethttp.ResponseWriter, event string, v any) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, xgo.ToJSON(v))
}
