package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"spinwheel/internal/conf"

	"github.com/google/wire"
	jsoniter "github.com/json-iterator/go"
)

var ProviderSet = wire.NewSet(NewFeishu)

const (
	defaultTitle   = "通知"
	defaultColor   = "blue"
	requestTimeout = 10 * time.Second
)

// Feishu 飞书自定义机器人
type Feishu struct {
	WebhookURL    string
	SigningSecret string
	Prefix        string
	Client        *http.Client
	now           func() time.Time
}

// NewFeishu 未启用或未配置 webhook 时返回 Noop
func NewFeishu(c *conf.Notify) Notifier {
	if c == nil || !c.Enabled || strings.TrimSpace(c.GetWebhookUrl()) == "" {
		return Noop{}
	}
	return &Feishu{
		WebhookURL:    strings.TrimSpace(c.GetWebhookUrl()),
		SigningSecret: strings.TrimSpace(c.GetSigningSecret()),
		Prefix:        strings.TrimSpace(c.GetPrefix()),
		Client:        &http.Client{Timeout: requestTimeout},
	}
}

type feishuReply struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (f *Feishu) Send(ctx context.Context, msg *Message) error {
	if f.WebhookURL == "" || msg == nil {
		return nil
	}

	body, err := jsoniter.Marshal(f.payload(msg))
	if err != nil {
		return fmt.Errorf("feishu: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("feishu: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feishu: status %d", resp.StatusCode)
	}
	var r feishuReply
	_ = jsoniter.NewDecoder(resp.Body).Decode(&r)
	if r.Code != 0 {
		return fmt.Errorf("feishu: code=%d msg=%s", r.Code, r.Msg)
	}
	return nil
}

// payload 交互卡片；配置了密钥时附带 timestamp + sign
func (f *Feishu) payload(msg *Message) map[string]any {
	title := msg.Title
	if title == "" {
		title = defaultTitle
	}
	if f.Prefix != "" {
		title = f.Prefix + " " + title
	}
	content := msg.Content
	if content == "" {
		content = msg.Title
	}
	color := msg.Color
	if color == "" {
		color = defaultColor
	}

	p := map[string]any{
		"msg_type": "interactive",
		"card": map[string]any{
			"config":   map[string]bool{"wide_screen_mode": true},
			"header":   map[string]any{"title": map[string]string{"tag": "plain_text", "content": title}, "template": color},
			"elements": []map[string]any{{"tag": "div", "text": map[string]string{"tag": "lark_md", "content": content}}},
		},
	}
	if f.SigningSecret != "" {
		now := time.Now
		if f.now != nil {
			now = f.now
		}
		ts := strconv.FormatInt(now().Unix(), 10)
		p["timestamp"] = ts
		p["sign"] = sign(ts, f.SigningSecret)
	}
	return p
}

// sign 飞书加签：HMAC-SHA256(key=timestamp+"\n"+secret, message="")
func sign(ts, secret string) string {
	h := hmac.New(sha256.New, []byte(ts+"\n"+secret))
	h.Write(nil)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// RevealReport 神秘盒揭晓结果
type RevealReport struct {
	SessionID string
	WheelID   string
	WheelName string
	Spin      int64
	Value     string
	At        time.Time
}

// BuildRevealMessage 构建神秘盒揭晓的 Markdown 消息
func BuildRevealMessage(r *RevealReport) *Message {
	if r == nil {
		return &Message{Title: "神秘盒揭晓", Color: "green"}
	}
	lines := []string{
		fmt.Sprintf("**会话**：%s", r.SessionID),
		fmt.Sprintf("**转盘**：%s (%s)", r.WheelName, r.WheelID),
		fmt.Sprintf("**旋转序号**：%d", r.Spin),
		fmt.Sprintf("**隐藏奖励**：%s", r.Value),
		fmt.Sprintf("**时间**：%s", r.At.Format(time.DateTime)),
	}
	return &Message{Title: "神秘盒揭晓", Content: strings.Join(lines, "\n"), Color: "green"}
}
