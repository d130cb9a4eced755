package reveal

import "testing"

func TestFullSequence(t *testing.T) {
	m := NewMachine()
	steps := []struct {
		name  string
		apply func() bool
		phase Phase
	}{
		{"win", m.Win, PhaseWon},
		{"open", func() bool { return m.Open("$250.00") }, PhaseVideo},
		{"media ended", m.MediaEnded, PhaseReveal},
		{"reset", m.Reset, PhaseIdle},
	}
	for _, s := range steps {
		if !s.apply() {
			t.Fatalf("%s 应被接受", s.name)
		}
		if got := m.Phase(); got != s.phase {
			t.Fatalf("%s 之后 phase=%v want %v", s.name, got, s.phase)
		}
		if s.phase == PhaseVideo || s.phase == PhaseReveal {
			if _, v := m.Snapshot(); v != "$250.00" {
				t.Errorf("%s 之后奖励应保留, got %q", s.name, v)
			}
		}
	}
	if _, v := m.Snapshot(); v != "" {
		t.Errorf("reset 应清空奖励, got %q", v)
	}
}

func TestOutOfOrderTriggersIgnored(t *testing.T) {
	m := NewMachine()
	if m.Open("$5.00") || m.MediaEnded() || m.Reset() {
		t.Fatalf("Idle 状态下 open/mediaEnded/reset 应为空操作")
	}

	m.Win()
	if m.Win() || m.MediaEnded() {
		t.Errorf("Won 状态只接受 open/reset")
	}
	if p, v := m.Snapshot(); p != PhaseWon || v != "" {
		t.Errorf("非法触发不应改变状态: %v %q", p, v)
	}

	m.Open("$10.00")
	if m.Open("$500.00") {
		t.Errorf("奖励只允许写入一次")
	}
	if _, v := m.Snapshot(); v != "$10.00" {
		t.Errorf("value=%q", v)
	}

	m.MediaEnded()
	if m.MediaEnded() || m.Win() || m.Open("x") {
		t.Errorf("Reveal 状态只接受 reset")
	}
}

func TestResetFromEveryPhase(t *testing.T) {
	drive := []func(m *Machine){
		func(m *Machine) { m.Win() },
		func(m *Machine) { m.Win(); m.Open("$5.00") },
		func(m *Machine) { m.Win(); m.Open("$5.00"); m.MediaEnded() },
	}
	for i, d := range drive {
		m := NewMachine()
		d(m)
		if !m.Reset() || m.Phase() != PhaseIdle {
			t.Errorf("case %d: reset 失败", i)
		}
	}
}
