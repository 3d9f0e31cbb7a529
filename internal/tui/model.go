package tui

import (
	"context"
	"encoding/json"
	"time"

	"evalterm/internal/api"
	"evalterm/internal/cue"
	"evalterm/internal/i18n"
	"evalterm/internal/logger"
	"evalterm/internal/overlay"
	"evalterm/internal/transcript"
	"evalterm/internal/tui/render"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Service 抽象远程求值服务，避免 TUI 与 HTTP 实现耦合。
type Service interface {
	Execute(ctx context.Context, input string) (api.Outcome, error)
	Variables(ctx context.Context) (json.RawMessage, error)
	History(ctx context.Context) ([]string, error)
	ClearHistory(ctx context.Context) error
}

// 默认动画参数。
const (
	DefaultRevealInterval  = 10 * time.Millisecond
	DefaultEntranceStagger = 40 * time.Millisecond
	DefaultCaretBlink      = 530 * time.Millisecond
	cardFlash              = 150 * time.Millisecond
)

type Options struct {
	Service  Service
	Cue      cue.Player
	Language string
	// URL 仅用于欢迎信息展示。
	URL string
	// RevealInterval 是逐字显示的字符间隔，<=0 时使用默认值。
	RevealInterval time.Duration
	// NoReveal 关闭逐字显示，所有行立即完整出现。
	NoReveal bool
	// EntranceStagger 是每行入场的递增延迟，0 表示关闭入场效果。
	EntranceStagger time.Duration
	// CaretBlink 是光标闪烁周期，0 表示光标常亮。
	CaretBlink time.Duration
	Clock      func() time.Time
	Clipboard  func(string) error
	AltScreen  bool
	Log        *logger.LogEntry
}

type focusArea int

const (
	focusInput focusArea = iota
	focusOverlay
)

// Model 持有整个会话的状态：记录、历史面板、输入框与进行中的请求。
type Model struct {
	input    textinput.Model
	viewport render.Viewport
	spin     spinner.Model
	help     help.Model
	keys     keyMap

	store   *transcript.Store
	overlay overlay.State
	prompts promptHistory

	service   Service
	cue       cue.Player
	lang      i18n.Language
	url       string
	log       *logger.LogEntry
	now       func() time.Time
	clipboard func(string) error

	revealInterval  time.Duration
	noReveal        bool
	entranceStagger time.Duration
	caretBlink      time.Duration

	inFlight    int
	fetchSeq    uint64
	fetchCancel context.CancelFunc
	focus       focusArea
	selectAll   bool
	flashCard   int
	flashSeq    uint64
	caretOn     bool
	caretTicks  bool
	lastResult  string
	notice      string

	width           int
	height          int
	transcriptDirty bool
	scrollToBottom  bool
}

func New(opts Options) *Model {
	lang := i18n.Normalize(opts.Language)

	ti := textinput.New()
	ti.Prompt = "$ "
	ti.Placeholder = i18n.T(lang, i18n.InputPlaceholder)
	ti.CharLimit = 0
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	player := opts.Cue
	if player == nil {
		player = cue.Nop{}
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	log := opts.Log
	if log == nil {
		log = logger.Named("tui")
	}
	reveal := opts.RevealInterval
	if reveal <= 0 {
		reveal = DefaultRevealInterval
	}
	stagger := opts.EntranceStagger
	if stagger < 0 {
		stagger = 0
	}
	blink := opts.CaretBlink
	if blink < 0 {
		blink = 0
	}

	m := &Model{
		input:           ti,
		viewport:        render.NewViewport(80, 20),
		spin:            spin,
		help:            help.New(),
		keys:            defaultKeyMap(),
		store:           transcript.NewStore(now),
		service:         opts.Service,
		cue:             player,
		lang:            lang,
		url:             opts.URL,
		log:             log,
		now:             now,
		clipboard:       opts.Clipboard,
		revealInterval:  reveal,
		noReveal:        opts.NoReveal,
		entranceStagger: stagger,
		caretBlink:      blink,
		flashCard:       -1,
		caretOn:         true,
		width:           80,
		height:          24,
	}
	m.relayout()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("evalterm")
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
	case revealTickMsg:
		cmds = append(cmds, m.handleRevealTick(msg))
	case caretBlinkMsg:
		cmds = append(cmds, m.handleCaretBlink())
	case entranceMsg:
		if msg.Epoch != m.store.Epoch() {
			m.log.Debugf("dropping stale entrance tick epoch=%d current=%d", msg.Epoch, m.store.Epoch())
		} else {
			m.refreshTranscript(false)
		}
	case executeResultMsg:
		cmds = append(cmds, m.handleExecuteResult(msg))
	case varsResultMsg:
		cmds = append(cmds, m.handleVarsResult(msg))
	case historyResultMsg:
		cmds = append(cmds, m.handleHistoryResult(msg))
	case clearHistoryResultMsg:
		cmds = append(cmds, m.handleClearHistoryResult(msg))
	case flashDoneMsg:
		if msg.Seq == m.flashSeq {
			m.flashCard = -1
		}
	case spinner.TickMsg:
		if m.inFlight > 0 {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	}
	return m.finish(cmds...)
}

func (m *Model) finish(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.flushTranscript()
	return m, tea.Batch(cmds...)
}

// Lines 返回当前记录的快照。
func (m *Model) Lines() []transcript.Line {
	return m.store.Lines()
}

// InputValue 返回输入框内容。
func (m *Model) InputValue() string {
	return m.input.Value()
}

// OverlayVisible 报告历史面板是否打开。
func (m *Model) OverlayVisible() bool {
	return m.overlay.Visible()
}

func (m *Model) focusInput() {
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) focusPanel() {
	if !m.overlay.Visible() {
		return
	}
	m.focus = focusOverlay
	m.selectAll = false
	m.input.Blur()
}
