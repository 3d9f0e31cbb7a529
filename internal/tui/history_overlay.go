package tui

import (
	"context"
	"strings"
	"time"

	"evalterm/internal/i18n"
	"evalterm/internal/overlay"
	"evalterm/internal/transcript"
	"evalterm/internal/tui/render"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyResultMsg 携带一次历史获取的结果；Seq 过期的结果会被丢弃。
type historyResultMsg struct {
	Seq   uint64
	Items []string
	Err   error
}

type flashDoneMsg struct {
	Seq uint64
}

const (
	maxPanelWidth = 44
	minPanelWidth = 24
	// 面板内容区：标题行、过滤行，之后每张卡片占三行。
	panelHeaderRows = 2
	cardRows        = 3
	closeControl    = "[x]"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFB454")).
			Padding(0, 1)
	panelTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB454"))
	cardLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7A85"))
	cardCursorStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#2F2A3D"))
	cardFlashStyle   = lipgloss.NewStyle().Reverse(true)
	cardMatchStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EBCB8B"))
	closeButtonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BF616A"))
)

// openHistory 取消上一次未完成的获取，并发起新的历史请求。
func (m *Model) openHistory() tea.Cmd {
	m.cancelHistoryFetch()
	m.fetchSeq++
	seq := m.fetchSeq

	svc := m.service
	if svc == nil {
		return func() tea.Msg { return historyResultMsg{Seq: seq, Err: errNoService} }
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.fetchCancel = cancel
	return func() tea.Msg {
		items, err := svc.History(ctx)
		return historyResultMsg{Seq: seq, Items: items, Err: err}
	}
}

func (m *Model) handleHistoryResult(msg historyResultMsg) tea.Cmd {
	if msg.Seq != m.fetchSeq {
		m.log.Debugf("dropping stale history result seq=%d current=%d", msg.Seq, m.fetchSeq)
		return nil
	}
	m.cancelHistoryFetch()
	if msg.Err != nil {
		m.log.Warnf("history fetch failed: %v", msg.Err)
		return m.appendLine(i18n.T(m.lang, i18n.HistoryLoadError, msg.Err), transcript.Options{Kind: transcript.KindError, Animated: true})
	}
	m.overlay.Open(msg.Items, m.now(), overlay.Labels{
		Command:          i18n.T(m.lang, i18n.CardLabel),
		PlaceholderTitle: i18n.T(m.lang, i18n.HistoryTitle),
		PlaceholderBody:  i18n.T(m.lang, i18n.HistoryEmpty),
	})
	m.flashCard = -1
	m.relayout()
	return nil
}

// closeHistory 隐藏面板、清空内容，并使未完成的获取失效。
func (m *Model) closeHistory() {
	m.cancelHistoryFetch()
	m.fetchSeq++
	m.overlay.Close()
	m.flashCard = -1
	m.focusInput()
	m.relayout()
}

func (m *Model) cancelHistoryFetch() {
	if m.fetchCancel != nil {
		m.fetchCancel()
		m.fetchCancel = nil
	}
}

// selectCard 把卡片命令填入输入框并聚焦，不会提交，面板保持打开。
func (m *Model) selectCard() tea.Cmd {
	card, ok := m.overlay.Selected()
	if !ok {
		return nil
	}
	m.input.SetValue(card.Command)
	m.input.CursorEnd()
	m.prompts.ResetBrowsing()
	m.focusInput()

	m.flashSeq++
	m.flashCard = m.overlay.Cursor()
	seq := m.flashSeq
	return tea.Tick(cardFlash, func(time.Time) tea.Msg { return flashDoneMsg{Seq: seq} })
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.overlay.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.overlay.MoveDown()
	case key.Matches(msg, m.keys.Submit):
		return m.selectCard()
	case key.Matches(msg, m.keys.Toggle):
		m.focusInput()
	case msg.Type == tea.KeyBackspace:
		q := []rune(m.overlay.Query())
		if len(q) > 0 {
			m.overlay.SetQuery(string(q[:len(q)-1]))
		}
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		m.overlay.SetQuery(m.overlay.Query() + string(msg.Runes))
	}
	return nil
}

func (m *Model) panelWidth() int {
	if !m.overlay.Visible() {
		return 0
	}
	w := m.width / 2
	if w > maxPanelWidth {
		w = maxPanelWidth
	}
	if w < minPanelWidth {
		w = minPanelWidth
	}
	if w > m.width {
		w = m.width
	}
	return w
}

func (m *Model) panelContentWidth() int {
	return maxInt(1, m.panelWidth()-4)
}

func (m *Model) visibleCardCount() int {
	return maxInt(1, (m.bodyHeight()-2-panelHeaderRows)/cardRows)
}

func (m *Model) cardOffset() int {
	visible := m.visibleCardCount()
	if cur := m.overlay.Cursor(); cur >= visible {
		return cur - visible + 1
	}
	return 0
}

func (m *Model) panelView() string {
	width := m.panelContentWidth()
	height := m.bodyHeight() - 2

	title := panelTitleStyle.Render(render.Truncate(i18n.T(m.lang, i18n.HistoryTitle), width-len(closeControl)-1))
	gap := maxInt(1, width-lipgloss.Width(title)-len(closeControl))
	rows := []string{title + strings.Repeat(" ", gap) + closeButtonStyle.Render(closeControl)}

	switch {
	case m.overlay.Query() != "":
		rows = append(rows, render.Truncate("/ "+m.overlay.Query(), width))
	case m.focus == focusOverlay:
		rows = append(rows, render.Muted(render.Truncate(i18n.T(m.lang, i18n.FilterHint), width)))
	default:
		rows = append(rows, "")
	}

	cards := m.overlay.Cards()
	if len(cards) == 0 {
		rows = append(rows, render.Muted(i18n.T(m.lang, i18n.HistoryNoMatches)))
	}
	offset := m.cardOffset()
	end := minInt(len(cards), offset+m.visibleCardCount())
	for i := offset; i < end; i++ {
		card := cards[i]
		label := cardLabelStyle.Render(render.Truncate(card.Label, width))
		body := render.Truncate(firstLine(card.Command), width)
		if !card.Placeholder {
			body = highlight(body, m.overlay.Highlights(i))
		}
		switch {
		case i == m.flashCard:
			label = cardFlashStyle.Render(render.Truncate(card.Label, width))
			body = cardFlashStyle.Render(render.Truncate(firstLine(card.Command), width))
		case i == m.overlay.Cursor() && m.focus == focusOverlay:
			label = cardCursorStyle.Width(width).Render(render.Truncate(card.Label, width))
			body = cardCursorStyle.Width(width).Render(body)
		}
		rows = append(rows, label, body, "")
	}

	return panelStyle.
		Width(width + 2).
		Height(height).
		MaxHeight(height + 2).
		Render(strings.Join(rows, "\n"))
}

// panelHit 描述一次点击落在面板的哪个部分。
type panelHit struct {
	inside bool
	close  bool
	card   int
}

func (m *Model) hitPanel(x, y int) panelHit {
	if !m.overlay.Visible() {
		return panelHit{card: -1}
	}
	left := m.width - m.panelWidth()
	top := bodyTop
	if x < left || x >= m.width || y < top || y >= top+m.bodyHeight() {
		return panelHit{card: -1}
	}
	hit := panelHit{inside: true, card: -1}
	row := y - top - 1
	col := x - left - 2
	width := m.panelContentWidth()
	if row == 0 && col >= width-len(closeControl) && col <= width {
		hit.close = true
		return hit
	}
	if row >= panelHeaderRows {
		idx := m.cardOffset() + (row-panelHeaderRows)/cardRows
		if idx < len(m.overlay.Cards()) && (row-panelHeaderRows)/cardRows < m.visibleCardCount() {
			hit.card = idx
		}
	}
	return hit
}

func (m *Model) handlePanelClick(hit panelHit) tea.Cmd {
	if hit.close {
		m.closeHistory()
		return nil
	}
	if hit.card >= 0 && m.overlay.SetCursor(hit.card) {
		return m.selectCard()
	}
	return nil
}

func firstLine(s string) string {
	line, _, found := strings.Cut(s, "\n")
	if found {
		return line + " …"
	}
	return line
}

func highlight(text string, indexes []int) string {
	if len(indexes) == 0 {
		return text
	}
	marked := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		marked[idx] = true
	}
	var b strings.Builder
	for i, r := range text {
		if marked[i] {
			b.WriteString(cardMatchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
