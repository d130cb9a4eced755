package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spinwheel/internal/conf"

	jsoniter "github.com/json-iterator/go"
)

func TestNewFeishuDisabled(t *testing.T) {
	for _, c := range []*conf.Notify{nil, {Enabled: false, WebhookUrl: "http://x"}, {Enabled: true, WebhookUrl: "  "}} {
		if _, ok := NewFeishu(c).(Noop); !ok {
			t.Errorf("%+v 应返回 Noop", c)
		}
	}
}

func TestFeishuSend(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = jsoniter.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"code":0,"msg":"ok"}`))
	}))
	defer srv.Close()

	f := NewFeishu(&conf.Notify{Enabled: true, WebhookUrl: srv.URL, SigningSecret: "s3cret", Prefix: "[test]"}).(*Feishu)
	f.now = func() time.Time { return time.Unix(1700000000, 0) }

	msg := BuildRevealMessage(&RevealReport{SessionID: "abc", WheelID: "classic", WheelName: "Classic Wheel", Spin: 3, Value: "$250.00", At: time.Now()})
	if err := f.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got["timestamp"] != "1700000000" || got["sign"] != sign("1700000000", "s3cret") {
		t.Errorf("签名字段错误: %v %v", got["timestamp"], got["sign"])
	}
	card := got["card"].(map[string]any)
	header := card["header"].(map[string]any)
	title := header["title"].(map[string]any)["content"].(string)
	if title != "[test] 神秘盒揭晓" || header["template"] != "green" {
		t.Errorf("header=%v", header)
	}
	elements := card["elements"].([]any)
	text := elements[0].(map[string]any)["text"].(map[string]any)["content"].(string)
	if !strings.Contains(text, "$250.00") || !strings.Contains(text, "abc") {
		t.Errorf("content=%q", text)
	}
}

func TestFeishuErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":19021,"msg":"sign match fail"}`))
	}))
	defer srv.Close()

	f := &Feishu{WebhookURL: srv.URL}
	err := f.Send(context.Background(), &Message{Title: "t"})
	if err == nil || !strings.Contains(err.Error(), "19021") {
		t.Errorf("应返回飞书错误码, got %v", err)
	}
	if err := (&Feishu{}).Send(context.Background(), &Message{}); err != nil {
		t.Errorf("未配置 webhook 应直接返回, got %v", err)
	}
}
