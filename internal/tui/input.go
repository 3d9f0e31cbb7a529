package tui

import (
	"strings"

	"evalterm/internal/tui/slash"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey 先处理全局快捷键，再按焦点分发给面板或输入框。
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Close):
		if m.overlay.Visible() {
			m.closeHistory()
		}
		return nil
	case key.Matches(msg, m.keys.Focus):
		m.focusInput()
		m.input.CursorEnd()
		m.selectAll = m.input.Value() != ""
		return nil
	case key.Matches(msg, m.keys.Help):
		return m.showHelp()
	case key.Matches(msg, m.keys.Vars):
		return m.loadVars()
	case key.Matches(msg, m.keys.History):
		return m.openHistory()
	case key.Matches(msg, m.keys.Clear):
		m.clearTranscript()
		return nil
	case key.Matches(msg, m.keys.Copy):
		return m.copySelection()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ScrollPageUp()
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ScrollPageDown()
		return nil
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return nil
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return nil
	}

	if m.focus == focusOverlay && m.overlay.Visible() {
		return m.handleOverlayKey(msg)
	}
	return m.handleInputKey(msg)
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		value := m.input.Value()
		m.selectAll = false
		act := slash.Resolve(value)
		if act.Kind == slash.ActionNone {
			return m.submit(value)
		}
		m.input.Reset()
		m.prompts.Add(value)
		return m.runCommand(act)
	case key.Matches(msg, m.keys.Up):
		m.selectAll = false
		if text, ok := m.prompts.Prev(m.input.Value()); ok {
			m.input.SetValue(text)
			m.input.CursorEnd()
		}
		return nil
	case key.Matches(msg, m.keys.Down):
		m.selectAll = false
		if text, ok := m.prompts.Next(); ok {
			m.input.SetValue(text)
			m.input.CursorEnd()
		}
		return nil
	case key.Matches(msg, m.keys.Toggle):
		if m.completeCommand() {
			return nil
		}
		m.focusPanel()
		return nil
	}

	if m.selectAll {
		m.selectAll = false
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			m.input.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			m.input.SetValue("")
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// completeCommand 用唯一或最佳匹配补全斜杠命令。
func (m *Model) completeCommand() bool {
	value := m.input.Value()
	if !strings.HasPrefix(strings.TrimSpace(value), "/") {
		return false
	}
	items := slash.Complete(value)
	if len(items) == 0 {
		return false
	}
	completed := items[0].DisplayName()
	if items[0].NeedsArg {
		completed += " "
	}
	m.input.SetValue(completed)
	m.input.CursorEnd()
	return true
}
