package spin

import (
	"testing"
	"time"
)

func TestPool(t *testing.T) {
	p := NewPool()
	a := NewSession(Options{ID: "a", ReducedMotion: true})
	time.Sleep(time.Millisecond)
	b := NewSession(Options{ID: "b", ReducedMotion: true})
	p.Add(a)
	p.Add(b)

	if got, ok := p.Get("a"); !ok || got != a {
		t.Fatalf("Get 失败")
	}
	list := p.List()
	if len(list) != 2 || list[0].ID() != "b" {
		t.Errorf("List 应按创建时间倒序: %v", list)
	}
	if _, ok := p.Remove("a"); !ok || !a.Closed() || p.Len() != 1 {
		t.Errorf("Remove 应关闭会话")
	}
	if _, ok := p.Remove("a"); ok {
		t.Errorf("重复 Remove 应返回 false")
	}
	if n := p.CloseAll(); n != 1 || !b.Closed() || p.Len() != 0 {
		t.Errorf("CloseAll=%d", n)
	}
}

func TestCleanupIdle(t *testing.T) {
	p := NewPool()
	old := NewSession(Options{ID: "old", ReducedMotion: true})
	p.Add(old)
	time.Sleep(20 * time.Millisecond)
	fresh := NewSession(Options{ID: "fresh", ReducedMotion: true})
	p.Add(fresh)

	expired := p.CleanupIdle(10 * time.Millisecond)
	if len(expired) != 1 || expired[0] != old || !old.Closed() {
		t.Fatalf("应只清理 old: %v", expired)
	}
	if _, ok := p.Get("fresh"); !ok {
		t.Errorf("fresh 不应被清理")
	}
}
