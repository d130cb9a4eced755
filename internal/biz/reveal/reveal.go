package reveal

import "sync"

// Phase 神秘盒揭晓阶段
type Phase int32

const (
	PhaseIdle   Phase = 0
	PhaseWon    Phase = 1 // 抽中神秘盒，等待打开
	PhaseVideo  Phase = 2 // 开箱视频播放中
	PhaseReveal Phase = 3 // 展示隐藏奖励
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWon:
		return "won"
	case PhaseVideo:
		return "video"
	case PhaseReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Machine Idle -> Won -> Video -> Reveal -> Idle，非法触发是空操作
type Machine struct {
	mu    sync.RWMutex
	phase Phase
	value string
}

func NewMachine() *Machine { return &Machine{} }

// Win 旋转以神秘盒结束
func (m *Machine) Win() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != PhaseIdle {
		return false
	}
	m.phase = PhaseWon
	return true
}

// Open 打开神秘盒，value 只在此时写入一次
func (m *Machine) Open(value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != PhaseWon {
		return false
	}
	m.phase = PhaseVideo
	m.value = value
	return true
}

// MediaEnded 开箱视频播放结束
func (m *Machine) MediaEnded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != PhaseVideo {
		return false
	}
	m.phase = PhaseReveal
	return true
}

// Reset 任意非 Idle 状态回到 Idle 并清空奖励
func (m *Machine) Reset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase == PhaseIdle {
		return false
	}
	m.phase = PhaseIdle
	m.value = ""
	return true
}

func (m *Machine) Phase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

// Snapshot 阶段与已揭晓的奖励
func (m *Machine) Snapshot() (Phase, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase, m.value
}
