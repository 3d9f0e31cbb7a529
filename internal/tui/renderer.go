package tui

import (
	"time"

	"evalterm/internal/i18n"
	"evalterm/internal/transcript"
	"evalterm/internal/tui/render"

	tea "github.com/charmbracelet/bubbletea"
)

// revealTickMsg 推进某一行的逐字显示；Epoch 过期的消息会被忽略。
type revealTickMsg struct {
	Index int
	Epoch uint64
}

type caretBlinkMsg struct{}

type entranceMsg struct {
	Epoch uint64
}

// appendLine 立即把一行挂到记录末尾并滚动到底部。动画行返回逐字显示的 tick 链，
// 调用返回时该行通常尚未显示完整。
func (m *Model) appendLine(value any, opts transcript.Options) tea.Cmd {
	if m.noReveal {
		opts.Animated = false
	}
	line := m.store.Append(value, opts)
	m.refreshTranscript(true)

	var cmds []tea.Cmd
	if opts.Animated {
		cmds = append(cmds, m.revealTick(line.Index, m.store.Epoch()), m.startCaret())
	}
	if m.entranceStagger > 0 {
		epoch := m.store.Epoch()
		delay := line.EntranceAt(m.entranceStagger).Sub(m.now())
		cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
			return entranceMsg{Epoch: epoch}
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) revealTick(index int, epoch uint64) tea.Cmd {
	return tea.Tick(m.revealInterval, func(time.Time) tea.Msg {
		return revealTickMsg{Index: index, Epoch: epoch}
	})
}

func (m *Model) handleRevealTick(msg revealTickMsg) tea.Cmd {
	if msg.Epoch != m.store.Epoch() {
		return nil
	}
	more := m.store.Advance(msg.Index, msg.Epoch)
	m.refreshTranscript(true)
	if !more {
		return nil
	}
	return m.revealTick(msg.Index, msg.Epoch)
}

func (m *Model) startCaret() tea.Cmd {
	m.caretOn = true
	if m.caretBlink <= 0 || m.caretTicks {
		return nil
	}
	m.caretTicks = true
	return tea.Tick(m.caretBlink, func(time.Time) tea.Msg { return caretBlinkMsg{} })
}

func (m *Model) handleCaretBlink() tea.Cmd {
	if m.store.Pending() == 0 {
		m.caretTicks = false
		m.caretOn = true
		return nil
	}
	m.caretOn = !m.caretOn
	m.refreshTranscript(false)
	return tea.Tick(m.caretBlink, func(time.Time) tea.Msg { return caretBlinkMsg{} })
}

// clearTranscript 清空记录并取消所有进行中的逐字显示。
func (m *Model) clearTranscript() {
	cancelled := m.store.Clear()
	m.lastResult = ""
	if cancelled > 0 {
		m.log.Debugf("transcript cleared, cancelled %d reveal(s)", cancelled)
	}
	m.refreshTranscript(true)
}

func (m *Model) refreshTranscript(stick bool) {
	m.transcriptDirty = true
	m.scrollToBottom = m.scrollToBottom || stick
}

func (m *Model) flushTranscript() {
	if !m.transcriptDirty {
		return
	}
	m.viewport.SetLines(m.renderTranscriptLines(), m.scrollToBottom)
	m.transcriptDirty = false
	m.scrollToBottom = false
}

// entering 报告该行在 now 时是否仍处于入场阶段。
func (m *Model) entering(line transcript.Line, now time.Time) bool {
	return m.entranceStagger > 0 && now.Before(line.EntranceAt(m.entranceStagger))
}

func (m *Model) renderTranscriptLines() []string {
	lines := m.store.Lines()
	if len(lines) == 0 {
		return []string{render.Muted(i18n.T(m.lang, i18n.Welcome, m.url))}
	}
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	now := m.now()
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		state := render.LineState{
			CaretOn:  m.caretOn,
			Entering: m.entering(line, now),
		}
		out = append(out, render.RenderLine(line, width, state)...)
	}
	return out
}
