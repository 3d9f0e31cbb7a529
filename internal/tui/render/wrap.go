package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapText 按显示宽度换行，保留空行与前导空白。
func WrapText(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	lines := []string{}
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapLine(raw, width)...)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// wrapLine 在单词边界处断行，过长的单词按宽度硬断。
func wrapLine(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	indent := leadingSpaces(line)
	if runewidth.StringWidth(indent) >= width {
		indent = ""
	}
	out := []string{}
	current := indent
	for _, word := range strings.Fields(line) {
		if strings.TrimSpace(current) == "" {
			if runewidth.StringWidth(current+word) > width {
				parts := breakLongWord(current+word, width)
				out = append(out, parts[:len(parts)-1]...)
				current = parts[len(parts)-1]
				continue
			}
			current += word
			continue
		}
		if runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width {
			current += " " + word
			continue
		}
		out = append(out, current)
		if runewidth.StringWidth(word) > width {
			parts := breakLongWord(word, width)
			out = append(out, parts[:len(parts)-1]...)
			current = parts[len(parts)-1]
			continue
		}
		current = word
	}
	if current != "" {
		out = append(out, current)
	}
	if len(out) == 0 {
		return []string{line}
	}
	return out
}

func breakLongWord(word string, width int) []string {
	out := []string{}
	var current strings.Builder
	w := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && w > 0 {
			out = append(out, current.String())
			current.Reset()
			w = 0
		}
		current.WriteRune(r)
		w += rw
	}
	if current.Len() > 0 || len(out) == 0 {
		out = append(out, current.String())
	}
	return out
}

func leadingSpaces(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " "))]
}

// Truncate 截断到指定显示宽度，超出时以 … 结尾。
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
