package wheel

import (
	"fmt"
	"sort"
	"sync"
)

type Pool struct {
	mu   sync.RWMutex
	byID map[string]*Wheel
	list []*Wheel
}

// NewPool 内置转盘 + 配置覆盖，覆盖未知 id 时报错
func NewPool(overrides ...Override) (*Pool, error) {
	all := builtins()
	p := &Pool{
		byID: make(map[string]*Wheel, len(all)),
		list: make([]*Wheel, 0, len(all)),
	}
	for _, w := range all {
		p.byID[w.ID()] = w
	}
	for _, o := range overrides {
		w, ok := p.byID[o.ID]
		if !ok {
			return nil, fmt.Errorf("wheel: unknown wheel %q", o.ID)
		}
		nw, err := w.With(o)
		if err != nil {
			return nil, fmt.Errorf("wheel %q: %w", o.ID, err)
		}
		p.byID[o.ID] = nw
	}
	for _, w := range p.byID {
		p.list = append(p.list, w)
	}
	sort.Slice(p.list, func(i, j int) bool {
		return p.list[i].ID() < p.list[j].ID()
	})
	return p, nil
}

func (p *Pool) Get(id string) (*Wheel, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	w, ok := p.byID[id]
	return w, ok
}

func (p *Pool) List() []*Wheel {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]*Wheel{}, p.list...)
}
