package tui

import (
	"context"
	"errors"

	"evalterm/internal/transcript"

	tea "github.com/charmbracelet/bubbletea"
)

// Result 返回 TUI 退出时的必要信息。
type Result struct {
	Lines    []transcript.Line
	InFlight int
}

// Run 封装 Bubble Tea 入口。鼠标点击定位依赖全屏坐标，因此只在备用屏幕下开启鼠标。
func Run(ctx context.Context, opts Options) (Result, error) {
	programOptions := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOptions = append(programOptions, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(New(opts), programOptions...)
	m, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Result{}, err
	}
	tuiModel, ok := m.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	return Result{
		Lines:    tuiModel.Lines(),
		InFlight: tuiModel.inFlight,
	}, nil
}
