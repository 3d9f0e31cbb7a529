package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Span 表示一段文本及其样式。
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Line 由多个 Span 组成，可选整体样式。
type Line struct {
	Spans []Span
	Style lipgloss.Style
}

// String 将样式化的行拼接为终端字符串。
func (l Line) String() string {
	var b strings.Builder
	for _, sp := range l.Spans {
		b.WriteString(sp.Style.Render(sp.Text))
	}
	return l.Style.Render(b.String())
}

// PlainText 返回去掉样式的文本。
func (l Line) PlainText() string {
	var b strings.Builder
	for _, sp := range l.Spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
