package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	punctStyle   = lipgloss.NewStyle().Faint(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#88C0D0"))
	literalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EBCB8B"))
)

// HighlightJSON 使用轻量规则为一行 JSON 着色。
// 键、字符串、字面量与标点分别着色；逐字显示中被截断的 token 按已有部分着色。
func HighlightJSON(row string) Line {
	var spans []Span
	for i := 0; i < len(row); {
		c := row[i]
		switch {
		case c == '"':
			end := stringEnd(row, i)
			style := resultStyle
			if isKey(row[end:]) {
				style = keyStyle
			}
			spans = append(spans, Span{Text: row[i:end], Style: style})
			i = end
		case isPunct(c):
			spans = append(spans, Span{Text: row[i : i+1], Style: punctStyle})
			i++
		case c == ' ':
			j := i
			for j < len(row) && row[j] == ' ' {
				j++
			}
			spans = append(spans, Span{Text: row[i:j]})
			i = j
		default:
			j := i
			for j < len(row) && row[j] != ' ' && row[j] != '"' && !isPunct(row[j]) {
				j++
			}
			spans = append(spans, Span{Text: row[i:j], Style: literalStyle})
			i = j
		}
	}
	return Line{Spans: spans}
}

func stringEnd(row string, start int) int {
	for i := start + 1; i < len(row); i++ {
		switch row[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(row)
}

func isKey(rest string) bool {
	return strings.HasPrefix(strings.TrimLeft(rest, " "), ":")
}

func isPunct(c byte) bool {
	switch c {
	case '{', '}', '[', ']', ',', ':':
		return true
	default:
		return false
	}
}
