package reward

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MysteryName 老数据里没有分类时，按名字识别神秘盒
const MysteryName = "Mystery Box"

var (
	ErrEmptyTable    = errors.New("reward: table is empty")
	ErrInvalidChance = errors.New("reward: chance must be a positive number")
)

type Category int32

const (
	CategoryUnknown Category = 0
	CategoryCash    Category = 1
	CategoryMystery Category = 2
)

func (c Category) String() string {
	switch c {
	case CategoryCash:
		return "cash"
	case CategoryMystery:
		return "mystery"
	default:
		return "unknown"
	}
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCategory 空串返回 CategoryUnknown，由表构造时按名字推断
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown":
		return CategoryUnknown, nil
	case "cash":
		return CategoryCash, nil
	case "mystery":
		return CategoryMystery, nil
	default:
		return CategoryUnknown, fmt.Errorf("reward: unknown category %q", s)
	}
}

// Reward 转盘上的一个扇区，Chance 是相对权重
type Reward struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	Chance   float64  `json:"chance"`
	Category Category `json:"category"`
}

func (r Reward) IsMystery() bool {
	return r.Category == CategoryMystery
}

// Table 有序、只读的奖励表
type Table struct {
	entries []Reward
	total   float64
}

// NewTable 拷贝并校验条目，未声明分类的按名字推断
func NewTable(entries []Reward) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}
	out := make([]Reward, len(entries))
	var total float64
	for i, e := range entries {
		if math.IsNaN(e.Chance) || math.IsInf(e.Chance, 0) || e.Chance <= 0 {
			return nil, fmt.Errorf("%w: entry %d (%s) chance=%v", ErrInvalidChance, e.ID, e.Name, e.Chance)
		}
		if e.Category == CategoryUnknown {
			e.Category = inferCategory(e.Name)
		}
		out[i] = e
		total += e.Chance
	}
	return &Table{entries: out, total: total}, nil
}

func inferCategory(name string) Category {
	if name == MysteryName {
		return CategoryMystery
	}
	return CategoryCash
}

func (t *Table) Len() int { return len(t.entries) }

func (t *Table) At(i int) Reward { return t.entries[i] }

// Total 权重总和
func (t *Table) Total() float64 { return t.total }

// All 返回副本
func (t *Table) All() []Reward {
	return append([]Reward(nil), t.entries...)
}

// IndexOf 按 id 查找扇区下标，找不到返回 -1
func (t *Table) IndexOf(id int64) int {
	for i, e := range t.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Probability 单个扇区的命中概率 chance/total
func (t *Table) Probability(i int) float64 {
	if i < 0 || i >= len(t.entries) || t.total <= 0 {
		return 0
	}
	return t.entries[i].Chance / t.total
}
