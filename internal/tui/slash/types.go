package slash

// Command 表示本地斜杠命令的标识符，这些命令不会发送到求值服务。
type Command string

const (
	CommandVars         Command = "vars"
	CommandHistory      Command = "history"
	CommandClear        Command = "clear"
	CommandClearHistory Command = "clear-history"
	CommandExport       Command = "export"
	CommandCopy         Command = "copy"
	CommandHelp         Command = "help"
	CommandQuit         Command = "quit"
	CommandExit         Command = "exit"
)

// Item 代表一条本地命令及其说明。
type Item struct {
	Command     Command
	Usage       string
	Description string
	// NeedsArg 为 true 时命令必须带参数。
	NeedsArg bool
}

// DisplayName 返回带前缀斜杠的展示名称。
func (i Item) DisplayName() string {
	return "/" + string(i.Command)
}

// Items 返回全部本地命令，顺序即帮助中的展示顺序。
func Items() []Item {
	return []Item{
		{Command: CommandVars, Usage: "/vars", Description: "show server variables"},
		{Command: CommandHistory, Usage: "/history", Description: "open the history panel"},
		{Command: CommandClear, Usage: "/clear", Description: "clear the transcript"},
		{Command: CommandClearHistory, Usage: "/clear-history", Description: "clear the server command history"},
		{Command: CommandExport, Usage: "/export <file>", Description: "save the transcript as HTML", NeedsArg: true},
		{Command: CommandCopy, Usage: "/copy", Description: "copy the last result"},
		{Command: CommandHelp, Usage: "/help", Description: "show keys and commands"},
		{Command: CommandQuit, Usage: "/quit", Description: "exit"},
	}
}
