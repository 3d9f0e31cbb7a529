// Package overlay 维护历史命令侧边面板的卡片、选择与过滤状态。
package overlay

import (
	"fmt"
	"time"

	"github.com/sahilm/fuzzy"
)

// DefaultTimeLayout 是卡片时间戳的默认格式。
const DefaultTimeLayout = "2006-01-02 15:04:05"

// Labels 提供卡片上的本地化文字。
type Labels struct {
	Command          string
	PlaceholderTitle string
	PlaceholderBody  string
	TimeLayout       string
}

// Card 代表面板中的一张卡片。
type Card struct {
	Label       string
	Command     string
	Placeholder bool
}

// State 是面板的单例状态，由 Model 持有。
type State struct {
	visible bool
	cards   []Card
	matches []match
	cursor  int
	query   string
}

type match struct {
	card       int
	highlights []int
}

// Open 用最新获取的历史填充面板，最新的命令排在最前。
func (s *State) Open(items []string, now time.Time, labels Labels) {
	layout := labels.TimeLayout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	s.visible = true
	s.query = ""
	s.cursor = 0
	s.cards = s.cards[:0]
	if len(items) == 0 {
		s.cards = append(s.cards, Card{
			Label:       labels.PlaceholderTitle,
			Command:     labels.PlaceholderBody,
			Placeholder: true,
		})
	} else {
		stamp := now.Format(layout)
		for i := len(items) - 1; i >= 0; i-- {
			s.cards = append(s.cards, Card{
				Label:   fmt.Sprintf("%s • %s", labels.Command, stamp),
				Command: items[i],
			})
		}
	}
	s.refilter()
}

// Close 隐藏面板并清空内容。
func (s *State) Close() {
	s.visible = false
	s.cards = nil
	s.matches = nil
	s.cursor = 0
	s.query = ""
}

func (s *State) Visible() bool {
	return s != nil && s.visible
}

// Cards 返回当前过滤后可见的卡片。
func (s *State) Cards() []Card {
	out := make([]Card, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, s.cards[m.card])
	}
	return out
}

// Highlights 返回第 i 张可见卡片命令中被查询命中的字符下标。
func (s *State) Highlights(i int) []int {
	if i < 0 || i >= len(s.matches) {
		return nil
	}
	return s.matches[i].highlights
}

func (s *State) Cursor() int {
	return s.cursor
}

func (s *State) Query() string {
	return s.query
}

func (s *State) MoveUp() {
	if len(s.matches) == 0 {
		return
	}
	s.cursor--
	if s.cursor < 0 {
		s.cursor = len(s.matches) - 1
	}
}

func (s *State) MoveDown() {
	if len(s.matches) == 0 {
		return
	}
	s.cursor++
	if s.cursor >= len(s.matches) {
		s.cursor = 0
	}
}

// SetCursor 将光标移到第 i 张可见卡片（鼠标点击）。
func (s *State) SetCursor(i int) bool {
	if i < 0 || i >= len(s.matches) {
		return false
	}
	s.cursor = i
	return true
}

// Selected 返回光标所在卡片；占位卡片不可选。
func (s *State) Selected() (Card, bool) {
	if !s.visible || s.cursor < 0 || s.cursor >= len(s.matches) {
		return Card{}, false
	}
	card := s.cards[s.matches[s.cursor].card]
	if card.Placeholder {
		return Card{}, false
	}
	return card, true
}

// SetQuery 按模糊匹配过滤卡片，空查询显示全部。
func (s *State) SetQuery(q string) {
	s.query = q
	s.refilter()
}

func (s *State) refilter() {
	s.matches = s.matches[:0]
	if s.query == "" || s.placeholderOnly() {
		for i := range s.cards {
			s.matches = append(s.matches, match{card: i})
		}
	} else {
		commands := make([]string, len(s.cards))
		for i, c := range s.cards {
			commands[i] = c.Command
		}
		// 结果按原下标回排，保持时间顺序。
		found := fuzzy.Find(s.query, commands)
		byIndex := make(map[int][]int, len(found))
		for _, f := range found {
			byIndex[f.Index] = f.MatchedIndexes
		}
		for i := range s.cards {
			if hl, ok := byIndex[i]; ok {
				s.matches = append(s.matches, match{card: i, highlights: hl})
			}
		}
	}
	if s.cursor >= len(s.matches) {
		s.cursor = 0
	}
}

func (s *State) placeholderOnly() bool {
	return len(s.cards) == 1 && s.cards[0].Placeholder
}
