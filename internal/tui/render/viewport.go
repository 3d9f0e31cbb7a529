package render

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// Viewport 包装 bubbles viewport，跳过未变化的内容并在底部时保持贴底。
type Viewport struct {
	viewport.Model
	lastLines []string
}

// NewViewport 创建视口，鼠标滚轮由 Model 自行处理。
func NewViewport(width, height int) Viewport {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = false
	return Viewport{Model: vp}
}

// Resize 更新宽高，宽度变化时丢弃缓存。
func (v *Viewport) Resize(width, height int) {
	if v == nil {
		return
	}
	if v.Width == width && v.Height == height {
		return
	}
	if v.Width != width {
		v.Invalidate()
	}
	v.Width = width
	v.Height = height
}

// SetLines 更新内容；stick 为 true 或原本就在底部时滚到底部。
func (v *Viewport) SetLines(lines []string, stick bool) {
	if v == nil {
		return
	}
	if slices.Equal(lines, v.lastLines) {
		if stick {
			v.GotoBottom()
		}
		return
	}
	stick = stick || v.AtBottom()
	v.lastLines = append([]string(nil), lines...)
	v.SetContent(strings.Join(lines, "\n"))
	if stick {
		v.GotoBottom()
	}
}

// Lines 返回当前内容的副本。
func (v *Viewport) Lines() []string {
	return append([]string(nil), v.lastLines...)
}

func (v *Viewport) ScrollPageDown() {
	v.PageDown()
}

func (v *Viewport) ScrollPageUp() {
	v.PageUp()
}

func (v *Viewport) ScrollLineDown(n int) {
	v.ScrollDown(n)
}

func (v *Viewport) ScrollLineUp(n int) {
	v.ScrollUp(n)
}

// Invalidate 清空已缓存的行，强制下次更新重新设置内容。
func (v *Viewport) Invalidate() {
	if v == nil {
		return
	}
	v.lastLines = nil
}
