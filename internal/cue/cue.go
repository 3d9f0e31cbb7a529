// Package cue 提供命令完成时的提示音。
package cue

import (
	"io"
	"sync"
)

// Player 播放成功或失败提示，调用方不关心结果。
type Player interface {
	Success()
	Error()
}

// Bell 向终端写入 BEL 控制字符。失败提示响两次。
type Bell struct {
	mu sync.Mutex
	W  io.Writer
}

func NewBell(w io.Writer) *Bell {
	return &Bell{W: w}
}

func (b *Bell) Success() {
	b.ring("\a")
}

func (b *Bell) Error() {
	b.ring("\a\a")
}

func (b *Bell) ring(s string) {
	if b == nil || b.W == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.W, s)
}

// Nop 不发出任何声音。
type Nop struct{}

func (Nop) Success() {}
func (Nop) Error()   {}

// Recorder 记录播放过的提示，便于测试。
type Recorder struct {
	mu     sync.Mutex
	Events []string
}

func (r *Recorder) Success() {
	r.record("success")
}

func (r *Recorder) Error() {
	r.record("error")
}

func (r *Recorder) record(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, kind)
}

// Played 返回已播放提示的副本。
func (r *Recorder) Played() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Events...)
}
