package tui

import "strings"

// maxPromptHistory 限制会话内可回溯的命令条数。
const maxPromptHistory = 500

// promptHistory 负责输入框的命令回溯（上下箭头），仅保存在内存中。
// cursor == len(entries) 表示当前在“最新输入”（非浏览历史）位置。
type promptHistory struct {
	entries []string
	cursor  int
	draft   string
}

// Add 记录一条已提交的命令，与上一条相同时不重复记录。
func (h *promptHistory) Add(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if n := len(h.entries); n == 0 || h.entries[n-1] != text {
		h.entries = append(h.entries, text)
	}
	if over := len(h.entries) - maxPromptHistory; over > 0 {
		h.entries = append([]string(nil), h.entries[over:]...)
	}
	h.ResetBrowsing()
}

func (h *promptHistory) Browsing() bool {
	return h.cursor < len(h.entries)
}

func (h *promptHistory) ResetBrowsing() {
	h.cursor = len(h.entries)
	h.draft = ""
}

// Prev 回到上一条命令；首次进入浏览时保存当前草稿。
func (h *promptHistory) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == len(h.entries) {
		h.draft = current
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next 前进一条命令，越过最新一条时恢复草稿。
func (h *promptHistory) Next() (string, bool) {
	if len(h.entries) == 0 || h.cursor == len(h.entries) {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor], true
	}
	h.cursor = len(h.entries)
	return h.draft, true
}
