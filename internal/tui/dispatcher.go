package tui

import (
	"context"
	"errors"
	"strings"

	"evalterm/internal/api"
	"evalterm/internal/i18n"
	"evalterm/internal/transcript"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

var errNoService = errors.New("service not configured")

// executeResultMsg 是一次提交的完成消息，同时也是渲染指令。
type executeResultMsg struct {
	ID      string
	Input   string
	Outcome api.Outcome
	Err     error
}

// submit 校验输入、立即回显并发出一个异步请求。空白输入不产生任何输出或请求。
func (m *Model) submit(raw string) tea.Cmd {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	m.selectAll = false
	cmds := []tea.Cmd{m.appendLine("> "+raw, transcript.Options{Kind: transcript.KindPlain, Animated: true})}
	m.input.Reset()
	m.prompts.Add(raw)

	svc := m.service
	if svc == nil {
		m.cue.Error()
		cmds = append(cmds, m.appendLine(i18n.T(m.lang, i18n.NetworkError, errNoService), transcript.Options{Kind: transcript.KindError, Animated: true}))
		return tea.Batch(cmds...)
	}

	id := uuid.NewString()
	m.inFlight++
	if m.inFlight == 1 {
		cmds = append(cmds, m.spin.Tick)
	}
	m.log.WithField("dispatch_id", id).Debugf("submit %q", raw)
	cmds = append(cmds, func() tea.Msg {
		out, err := svc.Execute(context.Background(), raw)
		return executeResultMsg{ID: id, Input: raw, Outcome: out, Err: err}
	})
	return tea.Batch(cmds...)
}

func (m *Model) handleExecuteResult(msg executeResultMsg) tea.Cmd {
	if m.inFlight > 0 {
		m.inFlight--
	}
	entry := m.log.WithField("dispatch_id", msg.ID)
	if msg.Err != nil {
		entry.Warnf("execute %q failed: %v", msg.Input, msg.Err)
		m.cue.Error()
		return m.appendLine(i18n.T(m.lang, i18n.NetworkError, msg.Err), transcript.Options{Kind: transcript.KindError, Animated: true})
	}
	if text, failed := msg.Outcome.Failure(); failed {
		entry.Debugf("execute %q: remote error %q", msg.Input, text)
		m.cue.Error()
		return m.appendLine(text, transcript.Options{Kind: transcript.KindError, Animated: true})
	}
	var value any = transcript.Undefined
	if !msg.Outcome.Undefined() {
		value, _ = msg.Outcome.Result()
	}
	m.cue.Success()
	m.lastResult = transcript.Format(value)
	return m.appendLine(value, transcript.Options{Kind: transcript.KindResult, Animated: true})
}
