package tui

import (
	"strings"

	"evalterm/internal/i18n"
	"evalterm/internal/tui/render"
	"evalterm/internal/tui/slash"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// 屏幕布局：第 0 行工具栏，之后是记录区（可能并排历史面板），最后是输入行与状态行。
const (
	brand      = " evalterm "
	bodyTop    = 1
	chromeRows = 3
	wheelStep  = 3
)

var (
	brandStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7D56F4"))
	buttonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C4A1FF"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB454"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7A85"))
	selectStyle = lipgloss.NewStyle().Reverse(true)
)

type toolbarAction int

const (
	actionVars toolbarAction = iota
	actionHistory
	actionClear
)

type toolbarButton struct {
	action toolbarAction
	label  string
	x0, x1 int
}

func (m *Model) toolbarButtons() []toolbarButton {
	x := runewidth.StringWidth(brand) + 1
	specs := []struct {
		action toolbarAction
		key    i18n.Key
	}{
		{actionVars, i18n.ToolbarVars},
		{actionHistory, i18n.ToolbarHistory},
		{actionClear, i18n.ToolbarClear},
	}
	out := make([]toolbarButton, 0, len(specs))
	for _, s := range specs {
		label := "[" + i18n.T(m.lang, s.key) + "]"
		w := runewidth.StringWidth(label)
		out = append(out, toolbarButton{action: s.action, label: label, x0: x, x1: x + w})
		x += w + 1
	}
	return out
}

func (m *Model) buttonAt(x, y int) (toolbarButton, bool) {
	if y != 0 {
		return toolbarButton{}, false
	}
	for _, b := range m.toolbarButtons() {
		if x >= b.x0 && x < b.x1 {
			return b, true
		}
	}
	return toolbarButton{}, false
}

func (m *Model) runToolbar(action toolbarAction) tea.Cmd {
	switch action {
	case actionVars:
		return m.loadVars()
	case actionHistory:
		return m.openHistory()
	case actionClear:
		m.clearTranscript()
	}
	return nil
}

// handleMouse 处理工具栏按钮、面板点击、面板外点击关闭以及滚轮。
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	hit := m.hitPanel(msg.X, msg.Y)
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if hit.inside {
			m.overlay.MoveUp()
		} else {
			m.viewport.ScrollLineUp(wheelStep)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if hit.inside {
			m.overlay.MoveDown()
		} else {
			m.viewport.ScrollLineDown(wheelStep)
		}
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if hit.inside {
		return m.handlePanelClick(hit)
	}
	button, onButton := m.buttonAt(msg.X, msg.Y)
	if m.overlay.Visible() && !(onButton && button.action == actionHistory) {
		m.closeHistory()
	}
	if onButton {
		return m.runToolbar(button.action)
	}
	if msg.Y == m.inputRow() {
		m.focusInput()
	}
	return nil
}

func (m *Model) bodyHeight() int {
	return maxInt(3, m.height-chromeRows)
}

func (m *Model) inputRow() int {
	return bodyTop + m.bodyHeight()
}

func (m *Model) relayout() {
	m.viewport.Resize(maxInt(10, m.width-m.panelWidth()), m.bodyHeight())
	m.input.Width = maxInt(1, m.width-lipgloss.Width(m.input.Prompt)-1)
	m.help.Width = m.width
	m.refreshTranscript(false)
}

func (m *Model) View() string {
	body := m.viewport.View()
	if m.overlay.Visible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.panelView())
	}
	return strings.Join([]string{
		m.toolbarView(),
		body,
		m.inputView(),
		m.statusView(),
	}, "\n")
}

func (m *Model) toolbarView() string {
	parts := []string{brandStyle.Render(brand)}
	for _, b := range m.toolbarButtons() {
		style := buttonStyle
		if b.action == actionHistory && m.overlay.Visible() {
			style = activeStyle
		}
		parts = append(parts, style.Render(b.label))
	}
	left := strings.Join(parts, " ")
	right := render.Muted(m.url)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// inputView 在全选状态下以反色显示整个输入。
func (m *Model) inputView() string {
	if m.selectAll && m.input.Value() != "" {
		return m.input.Prompt + selectStyle.Render(render.Truncate(m.input.Value(), m.input.Width))
	}
	return m.input.View()
}

func (m *Model) statusView() string {
	var parts []string
	if m.inFlight > 0 {
		parts = append(parts, m.spin.View()+" "+i18n.T(m.lang, i18n.Pending, m.inFlight))
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	if items := slash.Complete(m.input.Value()); len(items) > 0 && m.focus == focusInput {
		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, item.DisplayName())
		}
		parts = append(parts, strings.Join(names, " "))
	}
	left := statusStyle.Render(strings.Join(parts, " • "))
	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, m.width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
