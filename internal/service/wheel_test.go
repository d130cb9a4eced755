package service_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spinwheel/internal/biz"
	"spinwheel/internal/conf"
	"spinwheel/internal/data"
	"spinwheel/internal/notify"
	"spinwheel/internal/server"
	"spinwheel/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	jsoniter "github.com/json-iterator/go"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	logger := log.DefaultLogger
	wc := &conf.Wheel{ReducedMotion: true, WorkerPoolSize: 8}
	d, cleanupData, err := data.NewData(wc, logger)
	if err != nil {
		t.Fatalf("NewData: %v", err)
	}
	hub := data.NewEventHub(d)
	uc, cleanupUC, err := biz.NewUseCase(wc, hub, data.NewCuePlayer(hub), notify.Noop{}, logger)
	if err != nil {
		t.Fatalf("NewUseCase: %v", err)
	}
	t.Cleanup(func() {
		cleanupUC()
		cleanupData()
	})
	return server.NewHTTPServer(&conf.Server{}, service.NewWheelService(uc, logger), logger)
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	out := map[string]any{}
	_ = jsoniter.Unmarshal(rec.Body.Bytes(), &out)
	return rec.Code, out
}

func TestWheelHTTPFlow(t *testing.T) {
	h := newTestServer(t)

	code, out := do(t, h, http.MethodGet, "/v1/wheels", "")
	if code != http.StatusOK || out["total"] != float64(2) {
		t.Fatalf("ListWheels: %d %v", code, out)
	}

	code, out = do(t, h, http.MethodPost, "/v1/sessions", `{"wheel_id":"cylinder"}`)
	if code != http.StatusOK {
		t.Fatalf("CreateSession: %d %v", code, out)
	}
	sess := out["session"].(map[string]any)
	id := sess["id"].(string)
	if sess["wheelId"] != "cylinder" || sess["phase"] != "idle" || sess["reducedMotion"] != true {
		t.Fatalf("session=%v", sess)
	}

	code, out = do(t, h, http.MethodPost, "/v1/sessions/"+id+"/spin", "")
	if code != http.StatusOK || out["accepted"] != true {
		t.Fatalf("Spin: %d %v", code, out)
	}
	snap := out["session"].(map[string]any)
	if snap["phase"] != "settled" || snap["outcome"] == nil {
		t.Fatalf("减少动效下应同步停止: %v", snap)
	}
	// int64 按 protojson 约定编码为字符串
	if snap["spins"] != "1" {
		t.Fatalf("spins=%v", snap["spins"])
	}
	outcome := snap["outcome"].(map[string]any)
	category := outcome["reward"].(map[string]any)["category"]

	// 开箱只在神秘盒结果下有效
	code, out = do(t, h, http.MethodPost, "/v1/sessions/"+id+"/open", "")
	if code != http.StatusOK || out["accepted"] != (category == "mystery") {
		t.Fatalf("Open: category=%v %d %v", category, code, out)
	}

	code, out = do(t, h, http.MethodPost, "/v1/sessions/"+id+"/spin-again", "")
	if code != http.StatusOK || out["accepted"] != true {
		t.Fatalf("SpinAgain: %d %v", code, out)
	}

	code, _ = do(t, h, http.MethodDelete, "/v1/sessions/"+id, "")
	if code != http.StatusOK {
		t.Fatalf("CloseSession: %d", code)
	}
	code, out = do(t, h, http.MethodGet, "/v1/sessions/"+id, "")
	if code != http.StatusNotFound || out["reason"] != "SESSION_NOT_FOUND" {
		t.Fatalf("关闭后应 404: %d %v", code, out)
	}
}

func TestWheelHTTPErrors(t *testing.T) {
	h := newTestServer(t)

	code, out := do(t, h, http.MethodPost, "/v1/sessions", `{"wheel_id":"roulette"}`)
	if code != http.StatusNotFound || out["reason"] != "WHEEL_NOT_FOUND" {
		t.Errorf("未知转盘: %d %v", code, out)
	}
	code, _ = do(t, h, http.MethodPost, "/v1/sessions", `{"wheel_id":"bad id!"}`)
	if code != http.StatusBadRequest {
		t.Errorf("非法 wheel_id 应 400, got %d", code)
	}
	code, _ = do(t, h, http.MethodPost, "/v1/sessions/nope/spin", "")
	if code != http.StatusNotFound {
		t.Errorf("未知会话应 404, got %d", code)
	}
}

func TestMediaEndedIgnoredWhenIdle(t *testing.T) {
	h := newTestServer(t)
	_, out := do(t, h, http.MethodPost, "/v1/sessions", `{}`)
	id := out["session"].(map[string]any)["id"].(string)

	code, out := do(t, h, http.MethodPost, "/v1/sessions/"+id+"/media-ended", "")
	if code != http.StatusOK || out["accepted"] != false {
		t.Errorf("空闲会话的 media-ended 应被忽略: %d %v", code, out)
	}
}

func TestTriggerWithoutContentType(t *testing.T) {
	h := newTestServer(t)
	_, out := do(t, h, http.MethodPost, "/v1/sessions", `{"reducedMotion":true}`)
	id := out["session"].(map[string]any)["id"].(string)

	// 空 body 且不带 Content-Type 的触发请求
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+id+"/spin", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Spin 无 Content-Type: %d %s", rec.Code, rec.Body.String())
	}
	out = map[string]any{}
	_ = jsoniter.Unmarshal(rec.Body.Bytes(), &out)
	if out["accepted"] != true {
		t.Errorf("out=%v", out)
	}
}

func TestSessionIDValidation(t *testing.T) {
	h := newTestServer(t)
	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"非法字符", http.MethodGet, "/v1/sessions/bad%20id!", http.StatusBadRequest},
		{"超长", http.MethodPost, "/v1/sessions/" + strings.Repeat("a", 65) + "/spin", http.StatusBadRequest},
		{"合法但不存在", http.MethodDelete, "/v1/sessions/abc-123", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := do(t, h, tt.method, tt.path, "")
			if code != tt.want {
				t.Errorf("%s %s = %d %v, want %d", tt.method, tt.path, code, out, tt.want)
			}
		})
	}
}

func TestStreamEventsSnapshot(t *testing.T) {
	h := newTestServer(t)
	_, out := do(t, h, http.MethodPost, "/v1/sessions", `{}`)
	id := out["session"].(map[string]any)["id"].(string)

	ts := httptest.NewServer(h)
	defer ts.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/v1/sessions/"+id+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type=%q", ct)
	}

	// retry 提示之后第一条是快照
	sc := bufio.NewScanner(resp.Body)
	var lines []string
	for sc.Scan() && len(lines) < 3 {
		if l := sc.Text(); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 3 || lines[0] != "retry: 2000" || lines[1] != "event: snapshot" || !strings.Contains(lines[2], id) {
		t.Errorf("lines=%q", lines)
	}
}
