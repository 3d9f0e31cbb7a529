// Package slash 解析与补全本地斜杠命令。
package slash

import (
	"sort"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

// ActionKind 描述输入解析后的处理类型。
type ActionKind int

const (
	// ActionNone 表示输入不是本地命令，应当发送到服务端。
	ActionNone ActionKind = iota
	ActionRun
	ActionUsage
	ActionUnknown
)

// Action 汇总解析结果。
type Action struct {
	Kind    ActionKind
	Command Command
	Args    string
	Token   string
	Usage   string
}

// Resolve 按 Enter 行为解析输入。只有 "/" 紧跟字母的输入才被视为命令，
// 其余输入（例如 "/2"）原样交给服务端。
func Resolve(value string) Action {
	token, args, ok := parseToken(value)
	if !ok {
		return Action{Kind: ActionNone}
	}
	item, found := findItem(token)
	if !found {
		return Action{Kind: ActionUnknown, Token: "/" + token}
	}
	if item.Command == CommandExit {
		item.Command = CommandQuit
	}
	if item.NeedsArg && args == "" {
		return Action{Kind: ActionUsage, Command: item.Command, Token: "/" + token, Usage: item.Usage}
	}
	return Action{Kind: ActionRun, Command: item.Command, Args: args, Token: "/" + token}
}

// Complete 返回与输入前缀匹配的命令，得分高的在前。带参数或非命令输入返回 nil。
func Complete(value string) []Item {
	trimmed := strings.TrimLeft(value, " ")
	if !strings.HasPrefix(trimmed, "/") || strings.ContainsAny(trimmed, " \t") {
		return nil
	}
	query := strings.ToLower(strings.TrimPrefix(trimmed, "/"))
	items := Items()
	if query == "" {
		return items
	}
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = string(item.Command)
	}
	results := fuzzy.Find(query, keys)
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Index < results[j].Index
		}
		return results[i].Score > results[j].Score
	})
	out := make([]Item, 0, len(results))
	for _, res := range results {
		out = append(out, items[res.Index])
	}
	return out
}

func parseToken(value string) (string, string, bool) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "/") {
		return "", "", false
	}
	body := strings.TrimPrefix(trimmed, "/")
	if body == "" {
		return "", "", false
	}
	first := []rune(body)[0]
	if !unicode.IsLetter(first) {
		return "", "", false
	}
	token, args, _ := strings.Cut(body, " ")
	return strings.ToLower(token), strings.TrimSpace(args), true
}

func findItem(token string) (Item, bool) {
	if token == string(CommandExit) {
		return Item{Command: CommandExit}, true
	}
	for _, item := range Items() {
		if string(item.Command) == token {
			return item, true
		}
	}
	return Item{}, false
}
