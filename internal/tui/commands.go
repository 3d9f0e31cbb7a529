package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"evalterm/internal/i18n"
	"evalterm/internal/transcript"
	"evalterm/internal/tui/slash"

	tea "github.com/charmbracelet/bubbletea"
)

type varsResultMsg struct {
	Vars json.RawMessage
	Err  error
}

type clearHistoryResultMsg struct {
	Err error
}

// runCommand 执行本地斜杠命令。
func (m *Model) runCommand(act slash.Action) tea.Cmd {
	switch act.Kind {
	case slash.ActionUnknown:
		return m.appendLine(i18n.T(m.lang, i18n.UnknownCommand, act.Token), transcript.Options{Kind: transcript.KindError})
	case slash.ActionUsage:
		return m.appendLine(i18n.T(m.lang, i18n.Usage, act.Usage), transcript.Options{Kind: transcript.KindError})
	case slash.ActionRun:
	default:
		return nil
	}
	switch act.Command {
	case slash.CommandVars:
		return m.loadVars()
	case slash.CommandHistory:
		return m.openHistory()
	case slash.CommandClear:
		m.clearTranscript()
	case slash.CommandClearHistory:
		return m.clearServerHistory()
	case slash.CommandExport:
		return m.exportTranscript(act.Args)
	case slash.CommandCopy:
		return m.copySelection()
	case slash.CommandHelp:
		return m.showHelp()
	case slash.CommandQuit:
		return tea.Quit
	}
	return nil
}

// loadVars 拉取变量表，成功时先输出标题行再逐字显示 JSON。
func (m *Model) loadVars() tea.Cmd {
	svc := m.service
	if svc == nil {
		return func() tea.Msg { return varsResultMsg{Err: errNoService} }
	}
	return func() tea.Msg {
		vars, err := svc.Variables(context.Background())
		return varsResultMsg{Vars: vars, Err: err}
	}
}

func (m *Model) handleVarsResult(msg varsResultMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warnf("vars fetch failed: %v", msg.Err)
		return m.appendLine(i18n.T(m.lang, i18n.VariablesLoadError, msg.Err), transcript.Options{Kind: transcript.KindError, Animated: true})
	}
	return tea.Batch(
		m.appendLine(i18n.T(m.lang, i18n.VariablesHeader), transcript.Options{Kind: transcript.KindPlain}),
		m.appendLine(msg.Vars, transcript.Options{Kind: transcript.KindResult, Animated: true}),
	)
}

func (m *Model) clearServerHistory() tea.Cmd {
	svc := m.service
	if svc == nil {
		return func() tea.Msg { return clearHistoryResultMsg{Err: errNoService} }
	}
	return func() tea.Msg {
		return clearHistoryResultMsg{Err: svc.ClearHistory(context.Background())}
	}
}

func (m *Model) handleClearHistoryResult(msg clearHistoryResultMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warnf("clear history failed: %v", msg.Err)
		return m.appendLine(i18n.T(m.lang, i18n.ClearHistoryError, msg.Err), transcript.Options{Kind: transcript.KindError, Animated: true})
	}
	var cmd tea.Cmd
	if m.overlay.Visible() {
		cmd = m.openHistory()
	}
	return tea.Batch(m.appendLine(i18n.T(m.lang, i18n.HistoryCleared), transcript.Options{Kind: transcript.KindPlain}), cmd)
}

// exportTranscript 把当前记录（含仍在显示中的部分文本）写成 HTML 片段。
func (m *Model) exportTranscript(path string) tea.Cmd {
	path = expandHome(strings.TrimSpace(path))
	if err := m.writeTranscript(path); err != nil {
		m.log.Warnf("export to %s failed: %v", path, err)
		return m.appendLine(i18n.T(m.lang, i18n.ExportError, err), transcript.Options{Kind: transcript.KindError})
	}
	return m.appendLine(i18n.T(m.lang, i18n.Exported, path), transcript.Options{Kind: transcript.KindPlain})
}

func (m *Model) writeTranscript(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.store.WriteHTML(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// copySelection 复制面板中选中的命令；面板未聚焦时复制最近一次结果。
func (m *Model) copySelection() tea.Cmd {
	text := m.lastResult
	if m.focus == focusOverlay {
		if card, ok := m.overlay.Selected(); ok {
			text = card.Command
		}
	}
	if text == "" {
		m.notice = i18n.T(m.lang, i18n.NothingToCopy)
		return nil
	}
	if m.clipboard == nil {
		m.notice = i18n.T(m.lang, i18n.CopyError, "clipboard unavailable")
		return nil
	}
	if err := m.clipboard(text); err != nil {
		m.log.Warnf("copy failed: %v", err)
		m.notice = i18n.T(m.lang, i18n.CopyError, err)
		return nil
	}
	m.notice = i18n.T(m.lang, i18n.Copied)
	return nil
}

// showHelp 把按键与命令说明作为普通行追加到记录中。
func (m *Model) showHelp() tea.Cmd {
	var b strings.Builder
	b.WriteString(i18n.T(m.lang, i18n.HelpKeys))
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "\n  %-8s %s", h.Key, h.Desc)
		}
	}
	b.WriteString("\n")
	b.WriteString(i18n.T(m.lang, i18n.HelpCommands))
	for _, item := range slash.Items() {
		fmt.Fprintf(&b, "\n  %-16s %s", item.Usage, item.Description)
	}
	return m.appendLine(b.String(), transcript.Options{Kind: transcript.KindPlain})
}
