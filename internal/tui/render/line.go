package render

import (
	"evalterm/internal/transcript"

	"github.com/charmbracelet/lipgloss"
)

// CaretGlyph 在逐字显示期间出现在行前缀中。
const CaretGlyph = "▌"

const prefixWidth = 2

var (
	plainStyle  = lipgloss.NewStyle()
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A3BE8C"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#BF616A"))
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7A85"))
)

// LineState 描述绘制一行时的动画状态。
type LineState struct {
	// CaretOn 为 true 时在仍在显示中的行前绘制光标。
	CaretOn bool
	// Entering 为 true 时行仍处于入场阶段，以淡色绘制。
	Entering bool
}

// RenderLine 将一条记录绘制为若干终端行。
func RenderLine(line transcript.Line, width int, state LineState) []string {
	rows := WrapText(transcript.Display(line.RenderedText), width-prefixWidth)
	style := styleFor(line.Kind)
	if state.Entering {
		style = style.Faint(true)
	}
	out := make([]string, 0, len(rows))
	for i, row := range rows {
		prefix := "  "
		if i == 0 && line.Revealing && state.CaretOn {
			prefix = caretStyle.Render(CaretGlyph) + " "
		}
		if line.Kind == transcript.KindResult && !state.Entering {
			out = append(out, prefix+HighlightJSON(row).String())
			continue
		}
		out = append(out, prefix+style.Render(row))
	}
	return out
}

// Muted 以次要颜色绘制文字。
func Muted(text string) string {
	return mutedStyle.Render(text)
}

func styleFor(kind transcript.Kind) lipgloss.Style {
	switch kind {
	case transcript.KindResult:
		return resultStyle
	case transcript.KindError:
		return errorStyle
	default:
		return plainStyle
	}
}
